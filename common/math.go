package common

import "github.com/go-gl/mathgl/mgl32"

// OpenGLToWGPU converts OpenGL clip space (depth in [-1, 1]) to WebGPU clip space (depth in [0, 1]).
// Left-multiply a projection built with mgl32.Perspective by this matrix. Column-major.
var OpenGLToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// WorldUp is the fixed up axis of the viewer. The camera never rolls.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Number is the set of numeric types accepted by Clamp.
type Number interface {
	~int | ~int32 | ~int64 | ~uint32 | ~float32 | ~float64
}

// Clamp restricts v to the closed interval [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound (must be >= lo)
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ModelMatrix composes translation and rotation into a model matrix (T * R).
//
// Parameters:
//   - position: world-space translation
//   - rotation: orientation quaternion
//
// Returns:
//   - mgl32.Mat4: the column-major model matrix
func ModelMatrix(position mgl32.Vec3, rotation mgl32.Quat) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).Mul4(rotation.Mat4())
}
