package instance

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGridSingleInstance(t *testing.T) {
	g := NewGrid(WithWorkers(2))
	defer g.Stop()

	got := g.Build(1, 3)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !got[0].Position.ApproxEqual(mgl32.Vec3{-1.5, 0, -1.5}) {
		t.Errorf("Position = %v, want (-1.5, 0, -1.5)", got[0].Position)
	}
	if !got[0].Rotation.ApproxEqual(mgl32.QuatIdent()) {
		t.Errorf("Rotation = %v, want identity", got[0].Rotation)
	}
}

func TestGridLayout(t *testing.T) {
	g := NewGrid(WithWorkers(4))
	defer g.Stop()

	const perRow = 10
	got := g.Build(perRow, 2)
	if len(got) != perRow*perRow {
		t.Fatalf("len = %d, want %d", len(got), perRow*perRow)
	}
	for z := range perRow {
		for x := range perRow {
			want := mgl32.Vec3{2 * (float32(x) - 5), 0, 2 * (float32(z) - 5)}
			if p := got[z*perRow+x].Position; !p.ApproxEqual(want) {
				t.Fatalf("instance (%d, %d) at %v, want %v", x, z, p, want)
			}
		}
	}
}

func TestGridRotationAroundPositionAxis(t *testing.T) {
	g := NewGrid(WithWorkers(1), WithRotationAngle(mgl32.DegToRad(45)))
	defer g.Stop()

	// perRow 2 puts instance (1, 1) at (0, 0, 0) and the others off-origin.
	for _, inst := range g.Build(2, 1) {
		axis := mgl32.Vec3{0, 0, 1}
		if inst.Position.Len() > 0 {
			axis = inst.Position.Normalize()
		}
		// Points on the rotation axis are fixed by the rotation.
		if rotated := inst.Rotation.Rotate(axis); !rotated.ApproxEqualThreshold(axis, 1e-5) {
			t.Errorf("instance at %v: axis %v rotated to %v", inst.Position, axis, rotated)
		}
		if math.Abs(float64(inst.Rotation.Len()-1)) > 1e-5 {
			t.Errorf("rotation not normalized: %v", inst.Rotation)
		}
	}
}

func TestGridEmpty(t *testing.T) {
	g := NewGrid()
	defer g.Stop()
	if got := g.Build(0, 3); got != nil {
		t.Errorf("Build(0) = %v, want nil", got)
	}
}

func TestGridLogsBuild(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	g := NewGrid(WithLogger(zap.New(core)))
	defer g.Stop()

	g.Build(3, 1)
	logs := recorded.FilterMessage("instance grid built").All()
	if len(logs) != 1 {
		t.Fatalf("expected 1 build log, got %d", len(logs))
	}
	if logs[0].ContextMap()["instances"] != int64(9) {
		t.Errorf("instances field = %v, want 9", logs[0].ContextMap()["instances"])
	}
}

func TestMarshalInstances(t *testing.T) {
	instances := []Instance{
		{Position: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()},
		{Position: mgl32.Vec3{-4, 0, 0}, Rotation: mgl32.QuatIdent()},
	}
	buf := MarshalInstances(instances)
	if len(buf) != 2*GPUInstanceSize {
		t.Fatalf("len = %d, want %d", len(buf), 2*GPUInstanceSize)
	}
	// Translation lives in the fourth column: floats 12, 13, 14.
	read := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	if read(48) != 1 || read(52) != 2 || read(56) != 3 || read(60) != 1 {
		t.Errorf("first translation column = %v %v %v %v", read(48), read(52), read(56), read(60))
	}
	if read(GPUInstanceSize+48) != -4 {
		t.Errorf("second instance x = %v, want -4", read(GPUInstanceSize+48))
	}
	var g GPUInstance
	if g.Size() != GPUInstanceSize {
		t.Errorf("Size() = %d, want %d", g.Size(), GPUInstanceSize)
	}
}
