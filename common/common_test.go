package common

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"inside", 0.5, -1, 1, 0.5},
		{"below", -3, -1, 1, -1},
		{"above", 7, -1, 1, 1},
		{"on bound", 1, -1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestOpenGLToWGPUDepthRange(t *testing.T) {
	near := OpenGLToWGPU.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	far := OpenGLToWGPU.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	if near.Z()/near.W() != 0 {
		t.Errorf("near plane depth = %v, want 0", near.Z()/near.W())
	}
	if far.Z()/far.W() != 1 {
		t.Errorf("far plane depth = %v, want 1", far.Z()/far.W())
	}
}

func TestModelMatrixTranslatesOrigin(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{1, 2, 3}, mgl32.QuatIdent())
	p := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !p.Vec3().ApproxEqual(mgl32.Vec3{1, 2, 3}) {
		t.Errorf("origin mapped to %v, want (1,2,3)", p)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "b", "c"); got != "b" {
		t.Errorf("Coalesce = %q, want %q", got, "b")
	}
	if got := Coalesce[float32](0, 0); got != 0 {
		t.Errorf("Coalesce of zeros = %v, want 0", got)
	}
}

func TestImportedTextureDecode(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 0, color.NRGBA{B: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}

	tex := &ImportedTexture{Name: "test", Data: buf.Bytes()}
	staged, err := tex.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if staged.Width != 2 || staged.Height != 1 {
		t.Fatalf("size = %dx%d, want 2x1", staged.Width, staged.Height)
	}
	want := []byte{255, 0, 0, 255, 0, 0, 255, 255}
	if !bytes.Equal(staged.Pixels, want) {
		t.Errorf("pixels = %v, want %v", staged.Pixels, want)
	}
	if tex.Width != 2 || tex.Height != 1 {
		t.Errorf("texture dimensions not recorded: %dx%d", tex.Width, tex.Height)
	}
}

func TestImportedTextureDecodeNoSource(t *testing.T) {
	_, err := (&ImportedTexture{}).Decode()
	if !errors.Is(err, ErrNoTextureSource) {
		t.Errorf("err = %v, want ErrNoTextureSource", err)
	}
}
