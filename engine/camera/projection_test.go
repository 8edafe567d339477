package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewProjectionDefaults(t *testing.T) {
	p := NewProjection()
	if !approx(p.Aspect(), 800.0/600.0) {
		t.Errorf("Aspect() = %v, want 4/3", p.Aspect())
	}
	if !approx(p.FovY(), mgl32.DegToRad(45)) {
		t.Errorf("FovY() = %v, want 45 degrees", p.FovY())
	}
	if p.ZNear() != 0.1 || p.ZFar() != 100 {
		t.Errorf("clip planes = %v, %v, want 0.1, 100", p.ZNear(), p.ZFar())
	}
}

func TestProjectionDepthRange(t *testing.T) {
	p := NewProjection(WithZNear(0.5), WithZFar(50))
	m := p.ProjectionMatrix()

	near := m.Mul4x1(mgl32.Vec4{0, 0, -0.5, 1})
	if d := near.Z() / near.W(); !approx(d, 0) {
		t.Errorf("near plane depth = %v, want 0", d)
	}
	far := m.Mul4x1(mgl32.Vec4{0, 0, -50, 1})
	if d := far.Z() / far.W(); !approx(d, 1) {
		t.Errorf("far plane depth = %v, want 1", d)
	}
}

func TestProjectionResize(t *testing.T) {
	p := NewProjection()
	p.Resize(1920, 1080)
	if !approx(p.Aspect(), 1920.0/1080.0) {
		t.Errorf("Aspect() = %v, want 16/9", p.Aspect())
	}
}

func TestProjectionResizeIdempotent(t *testing.T) {
	p := NewProjection()
	p.Resize(1280, 720)
	first := p.ProjectionMatrix()
	p.Resize(1280, 720)
	second := p.ProjectionMatrix()
	if first != second {
		t.Errorf("projection drifted across identical resizes:\n%v\n%v", first, second)
	}
}

func TestProjectionResizeZeroIsNoop(t *testing.T) {
	p := NewProjection(WithSize(1024, 512))
	before := p.ProjectionMatrix()
	p.Resize(0, 600)
	p.Resize(800, 0)
	p.Resize(0, 0)
	if p.ProjectionMatrix() != before {
		t.Error("zero-dimension resize changed the projection")
	}
	if !approx(p.Aspect(), 2) {
		t.Errorf("Aspect() = %v, want 2", p.Aspect())
	}
}

func TestNewProjectionPanicsOnInvalidPlanes(t *testing.T) {
	tests := []struct {
		name    string
		options []ProjectionBuilderOption
	}{
		{"zero near", []ProjectionBuilderOption{WithZNear(0)}},
		{"far before near", []ProjectionBuilderOption{WithZNear(10), WithZFar(1)}},
		{"zero fov", []ProjectionBuilderOption{WithFovY(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewProjection did not panic")
				}
			}()
			NewProjection(tt.options...)
		})
	}
}
