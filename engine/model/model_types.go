package model

import (
	"encoding/binary"

	"github.com/Carmen-Shannon/oxy-viewer/common"
)

// Mesh is one drawable group of triangles sharing a material.
type Mesh struct {
	// Name is the OBJ object or group name.
	Name string

	// Vertices are the deduplicated vertices of the group.
	Vertices []GPUVertex

	// Indices are triangle-list indices into Vertices.
	Indices []uint32

	// MaterialIndex indexes the owning model's materials, or -1 when the group has none.
	MaterialIndex int
}

// VertexData serializes all vertices for a vertex buffer upload.
//
// Returns:
//   - []byte: len(Vertices) * GPUVertexSize bytes
func (m *Mesh) VertexData() []byte {
	buf := make([]byte, 0, len(m.Vertices)*GPUVertexSize)
	for i := range m.Vertices {
		buf = m.Vertices[i].appendTo(buf)
	}
	return buf
}

// IndexData serializes the indices as little-endian uint32 values.
//
// Returns:
//   - []byte: len(Indices) * 4 bytes
func (m *Mesh) IndexData() []byte {
	buf := make([]byte, 0, len(m.Indices)*4)
	for _, idx := range m.Indices {
		buf = binary.LittleEndian.AppendUint32(buf, idx)
	}
	return buf
}

// Material describes how a mesh is shaded. Only the diffuse map is used.
type Material struct {
	// Name is the MTL newmtl name.
	Name string

	// DiffuseTexture is the map_Kd texture, nil when the material has none.
	DiffuseTexture *common.ImportedTexture
}

// Pixels decodes the diffuse texture, falling back to a white pixel when there is none.
//
// Returns:
//   - *common.TextureStagingData: RGBA pixels ready for upload
//   - error: error if the texture exists but cannot be decoded
func (m *Material) Pixels() (*common.TextureStagingData, error) {
	if m.DiffuseTexture == nil {
		return common.WhiteTexture(), nil
	}
	return m.DiffuseTexture.Decode()
}
