// Package instance places copies of the loaded model in the scene.
package instance

import (
	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Instance is one placement of the model: a translation and an orientation.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// ModelMatrix returns translate(Position) * rotate(Rotation).
//
// Returns:
//   - mgl32.Mat4: the model matrix
func (i Instance) ModelMatrix() mgl32.Mat4 {
	return common.ModelMatrix(i.Position, i.Rotation)
}

// GPU converts the instance to its vertex buffer representation.
//
// Returns:
//   - GPUInstance: the packed model matrix
func (i Instance) GPU() GPUInstance {
	return GPUInstance{Model: i.ModelMatrix()}
}
