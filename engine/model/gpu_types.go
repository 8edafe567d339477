package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct.
// Matches GPUVertex layout exactly (24 bytes).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertexSize is the stride of one GPUVertex in a vertex buffer.
const GPUVertexSize = 24

// GPUVertex is the GPU-aligned representation of a single textured mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 24 bytes.
type GPUVertex struct {
	Position [4]float32 // offset  0: model-space position, w = 1 (16 bytes)
	TexCoord [2]float32 // offset 16: UV texture coordinate, V pointing down (8 bytes)
}

// NewGPUVertex builds a vertex from a 3D position and a UV coordinate.
//
// Parameters:
//   - position: model-space position
//   - uv: texture coordinate
//
// Returns:
//   - GPUVertex: the vertex with w set to 1
func NewGPUVertex(position [3]float32, uv [2]float32) GPUVertex {
	return GPUVertex{
		Position: [4]float32{position[0], position[1], position[2], 1},
		TexCoord: uv,
	}
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	return g.appendTo(make([]byte, 0, GPUVertexSize))
}

func (g *GPUVertex) appendTo(buf []byte) []byte {
	for _, f := range g.Position {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, f := range g.TexCoord {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
