package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewProjectionOrder(t *testing.T) {
	cam := NewCamera(WithPosition(0, 1, 5), WithYaw(mgl32.DegToRad(-90)))
	proj := NewProjection()

	want := proj.ProjectionMatrix().Mul4(cam.ViewMatrix())
	if got := ViewProjection(cam, proj); got != want {
		t.Errorf("ViewProjection() = %v, want %v", got, want)
	}
	if reversed := cam.ViewMatrix().Mul4(proj.ProjectionMatrix()); reversed == want {
		t.Error("test setup does not distinguish multiplication order")
	}
}

func TestGPUCameraUniformUpdateAndMarshal(t *testing.T) {
	cam := NewCamera(WithPosition(-1.2, 13, 25))
	proj := NewProjection()

	var u GPUCameraUniform
	u.Update(cam, proj)

	if u.Size() != 80 {
		t.Fatalf("Size() = %d, want 80", u.Size())
	}
	if u.ViewPosition != [4]float32{-1.2, 13, 25, 1} {
		t.Errorf("ViewPosition = %v", u.ViewPosition)
	}

	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("len(Marshal()) = %d, want 80", len(buf))
	}
	readF32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	if readF32(12) != 1 {
		t.Errorf("view position w = %v, want 1", readF32(12))
	}
	for i := range 16 {
		if readF32(16+i*4) != u.ViewProj[i] {
			t.Fatalf("view_proj[%d] = %v, want %v", i, readF32(16+i*4), u.ViewProj[i])
		}
	}
}

func TestGPUCameraUniformSource(t *testing.T) {
	for _, field := range []string{"view_position: vec4<f32>", "view_proj: mat4x4<f32>"} {
		if !strings.Contains(GPUCameraUniformSource, field) {
			t.Errorf("WGSL source missing %q", field)
		}
	}
}
