package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

// approxVec compares component-wise with an absolute tolerance. mgl32's ApproxEqualThreshold is
// relative and rejects float32 trig noise against an exact zero.
func approxVec(a, b mgl32.Vec3) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y()) && approx(a.Z(), b.Z())
}

func approxPoint(a, b mgl32.Vec4) bool {
	return approxVec(a.Vec3(), b.Vec3()) && approx(a.W(), b.W())
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Position() != (mgl32.Vec3{}) {
		t.Errorf("Position() = %v, want origin", c.Position())
	}
	if c.Yaw() != 0 || c.Pitch() != 0 {
		t.Errorf("yaw, pitch = %v, %v, want 0, 0", c.Yaw(), c.Pitch())
	}
	if !approxVec(c.Forward(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Forward() = %v, want +X", c.Forward())
	}
}

func TestNewCameraClampsInitialPitch(t *testing.T) {
	c := NewCamera(WithPitch(mgl32.DegToRad(120)))
	if c.Pitch() != MaxPitch {
		t.Errorf("Pitch() = %v, want %v", c.Pitch(), MaxPitch)
	}
}

func TestCameraForward(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{"yaw 0", 0, 0, mgl32.Vec3{1, 0, 0}},
		{"yaw 90", mgl32.DegToRad(90), 0, mgl32.Vec3{0, 0, 1}},
		{"yaw -90", mgl32.DegToRad(-90), 0, mgl32.Vec3{0, 0, -1}},
		{"pitch 45", 0, mgl32.DegToRad(45), mgl32.Vec3{float32(math.Sqrt2 / 2), float32(math.Sqrt2 / 2), 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(WithYaw(tt.yaw), WithPitch(tt.pitch))
			got := c.Forward()
			if !approxVec(got, tt.want) {
				t.Errorf("Forward() = %v, want %v", got, tt.want)
			}
			if !approx(got.Len(), 1) {
				t.Errorf("Forward() length = %v, want 1", got.Len())
			}
		})
	}
}

func TestCameraViewMatrix(t *testing.T) {
	c := NewCamera()
	// Looking down +X from the origin, a point ahead lands on the view-space -Z axis.
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{5, 0, 0, 1})
	if !approxPoint(p, mgl32.Vec4{0, 0, -5, 1}) {
		t.Errorf("view-space point = %v, want (0, 0, -5, 1)", p)
	}

	moved := NewCamera(WithPosition(1, 2, 3), WithYaw(mgl32.DegToRad(-90)))
	eye := moved.ViewMatrix().Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	if !approxPoint(eye, mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("eye in view space = %v, want origin", eye)
	}
	ahead := moved.ViewMatrix().Mul4x1(mgl32.Vec4{1, 2, 0, 1})
	if !approxPoint(ahead, mgl32.Vec4{0, 0, -3, 1}) {
		t.Errorf("point ahead in view space = %v, want (0, 0, -3, 1)", ahead)
	}
}

func TestCameraViewMatrixIsRecomputed(t *testing.T) {
	c := NewCamera()
	before := c.ViewMatrix()
	c.setPose(mgl32.Vec3{0, 0, 0}, mgl32.DegToRad(90), 0)
	if c.ViewMatrix() == before {
		t.Error("ViewMatrix() did not change after the pose changed")
	}
}

func TestSetPoseClampsPitch(t *testing.T) {
	c := NewCamera()
	c.setPose(mgl32.Vec3{}, 0, -10)
	if c.Pitch() != -MaxPitch {
		t.Errorf("Pitch() = %v, want %v", c.Pitch(), -MaxPitch)
	}
}

func TestSetPoseRejectsNonFiniteAngles(t *testing.T) {
	c := NewCamera(WithYaw(0.5), WithPitch(0.25))
	nan := float32(math.NaN())

	c.setPose(mgl32.Vec3{1, 0, 0}, nan, nan)
	if c.Yaw() != 0.5 || c.Pitch() != 0.25 {
		t.Errorf("yaw, pitch = %v, %v, want previous 0.5, 0.25", c.Yaw(), c.Pitch())
	}
	if c.Position() != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Position() = %v, want (1, 0, 0)", c.Position())
	}

	c.setPose(mgl32.Vec3{}, 0, float32(math.Inf(-1)))
	if c.Pitch() != -MaxPitch {
		t.Errorf("Pitch() = %v, want %v", c.Pitch(), -MaxPitch)
	}

	view := c.ViewMatrix()
	for i, v := range view {
		if math.IsNaN(float64(v)) {
			t.Fatalf("ViewMatrix()[%d] is NaN", i)
		}
	}
}

func TestNewCameraRejectsNaNPitch(t *testing.T) {
	c := NewCamera(WithPitch(float32(math.NaN())))
	if c.Pitch() != 0 {
		t.Errorf("Pitch() = %v, want 0", c.Pitch())
	}
}
