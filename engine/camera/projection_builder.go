package camera

// ProjectionBuilderOption is a functional option for configuring a Projection.
type ProjectionBuilderOption func(*projectionImpl)

// WithFovY sets the vertical field of view in radians.
//
// Parameters:
//   - fovY: vertical field of view in radians, in (0, pi)
//
// Returns:
//   - ProjectionBuilderOption: functional option to set the fov
func WithFovY(fovY float32) ProjectionBuilderOption {
	return func(p *projectionImpl) {
		p.fovY = fovY
	}
}

// WithZNear sets the near clip plane distance.
//
// Parameters:
//   - zNear: near plane distance, > 0
//
// Returns:
//   - ProjectionBuilderOption: functional option to set the near plane
func WithZNear(zNear float32) ProjectionBuilderOption {
	return func(p *projectionImpl) {
		p.zNear = zNear
	}
}

// WithZFar sets the far clip plane distance.
//
// Parameters:
//   - zFar: far plane distance, > zNear
//
// Returns:
//   - ProjectionBuilderOption: functional option to set the far plane
func WithZFar(zFar float32) ProjectionBuilderOption {
	return func(p *projectionImpl) {
		p.zFar = zFar
	}
}

// WithSize sets the initial aspect ratio from a surface size. A zero dimension is ignored.
//
// Parameters:
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - ProjectionBuilderOption: functional option to set the aspect ratio
func WithSize(width, height uint32) ProjectionBuilderOption {
	return func(p *projectionImpl) {
		if width == 0 || height == 0 {
			return
		}
		p.aspect = float32(width) / float32(height)
	}
}
