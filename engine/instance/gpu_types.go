package instance

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUInstanceSource is the canonical WGSL definition of the InstanceInput struct.
// Matches GPUInstance layout exactly (64 bytes, one vec4<f32> per matrix column).
//
//go:embed assets/instance.wgsl
var GPUInstanceSource string

// GPUInstanceSize is the stride of one GPUInstance in the instance vertex buffer.
const GPUInstanceSize = 64

// GPUInstance is the per-instance vertex data: a column-major model matrix
// read by the vertex shader as four vec4<f32> attributes at locations 5 to 8.
type GPUInstance struct {
	Model [16]float32 // offset 0: model matrix columns (64 bytes)
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, GPUInstanceSize)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	return buf
}

// MarshalInstances serializes a list of instances back to back.
//
// Parameters:
//   - instances: the instances to serialize
//
// Returns:
//   - []byte: len(instances) * GPUInstanceSize bytes
func MarshalInstances(instances []Instance) []byte {
	buf := make([]byte, 0, len(instances)*GPUInstanceSize)
	for _, inst := range instances {
		raw := inst.GPU()
		buf = append(buf, raw.Marshal()...)
	}
	return buf
}
