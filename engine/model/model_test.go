package model

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/common"
)

func triangle() Mesh {
	return Mesh{
		Name: "tri",
		Vertices: []GPUVertex{
			NewGPUVertex([3]float32{0, 0, 0}, [2]float32{0, 1}),
			NewGPUVertex([3]float32{3, 0, 0}, [2]float32{1, 1}),
			NewGPUVertex([3]float32{0, 4, 0}, [2]float32{0, 0}),
		},
		Indices:       []uint32{0, 1, 2},
		MaterialIndex: -1,
	}
}

func TestGPUVertexMarshal(t *testing.T) {
	v := NewGPUVertex([3]float32{1, 2, 3}, [2]float32{0.5, 0.25})
	if v.Size() != GPUVertexSize {
		t.Fatalf("Size() = %d, want %d", v.Size(), GPUVertexSize)
	}
	buf := v.Marshal()
	if len(buf) != GPUVertexSize {
		t.Fatalf("len(Marshal()) = %d", len(buf))
	}
	want := []float32{1, 2, 3, 1, 0.5, 0.25}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestMeshBufferData(t *testing.T) {
	m := triangle()
	if got := len(m.VertexData()); got != 3*GPUVertexSize {
		t.Errorf("len(VertexData()) = %d", got)
	}
	idx := m.IndexData()
	if len(idx) != 12 {
		t.Fatalf("len(IndexData()) = %d, want 12", len(idx))
	}
	if binary.LittleEndian.Uint32(idx[8:]) != 2 {
		t.Errorf("third index = %d, want 2", binary.LittleEndian.Uint32(idx[8:]))
	}
}

func TestNewModel(t *testing.T) {
	m, err := NewModel(WithName("tri.obj"), WithMeshes(triangle()))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if m.Name() != "tri.obj" || len(m.Meshes()) != 1 {
		t.Errorf("unexpected model %s with %d meshes", m.Name(), len(m.Meshes()))
	}
	if m.TriangleCount() != 1 {
		t.Errorf("TriangleCount() = %d, want 1", m.TriangleCount())
	}
	if m.BoundingRadius() != 4 {
		t.Errorf("BoundingRadius() = %v, want 4", m.BoundingRadius())
	}
}

func TestNewModelEmpty(t *testing.T) {
	if _, err := NewModel(WithName("empty")); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("err = %v, want ErrEmptyMesh", err)
	}
}

func TestMaterialPixelsWithoutTexture(t *testing.T) {
	px, err := (&Material{Name: "plain"}).Pixels()
	if err != nil {
		t.Fatalf("Pixels: %v", err)
	}
	white := common.WhiteTexture()
	if px.Width != white.Width || px.Height != white.Height || !bytes.Equal(px.Pixels, white.Pixels) {
		t.Errorf("Pixels() = %+v, want 1x1 white", px)
	}
}
