package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (80 bytes, WGSL uniform aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 80 bytes.
type GPUCameraUniform struct {
	ViewPosition [4]float32  // offset  0: homogeneous world-space eye position, w = 1 (vec4<f32>)
	ViewProj     [16]float32 // offset 16: projection * view, column-major (mat4x4<f32>)
}

// ViewProjection combines the projection and view matrices for the current frame.
// The projection is the outer transform: clip = P * V * world.
//
// Parameters:
//   - cam: the camera supplying the view matrix
//   - proj: the projection supplying the projection matrix
//
// Returns:
//   - mgl32.Mat4: the combined view-projection matrix
func ViewProjection(cam Camera, proj Projection) mgl32.Mat4 {
	return proj.ProjectionMatrix().Mul4(cam.ViewMatrix())
}

// Update refreshes the uniform from the camera and projection.
//
// Parameters:
//   - cam: the camera supplying the eye position and view matrix
//   - proj: the projection supplying the projection matrix
func (g *GPUCameraUniform) Update(cam Camera, proj Projection) {
	g.ViewPosition = cam.Position().Vec4(1)
	g.ViewProj = ViewProjection(cam, proj)
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewPosition[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.ViewProj[i]))
	}
	return buf
}
