package instance

import "go.uber.org/zap"

// GridBuilderOption is a functional option for configuring a Grid.
type GridBuilderOption func(*gridImpl)

// WithWorkers sets the maximum number of pool workers.
//
// Parameters:
//   - n: worker count, values below 1 are raised to 1 by the pool
//
// Returns:
//   - GridBuilderOption: functional option to set the worker count
func WithWorkers(n int) GridBuilderOption {
	return func(g *gridImpl) {
		g.workers = n
	}
}

// WithRotationAngle sets the rotation applied to every instance around its position axis.
//
// Parameters:
//   - radians: rotation angle in radians
//
// Returns:
//   - GridBuilderOption: functional option to set the angle
func WithRotationAngle(radians float32) GridBuilderOption {
	return func(g *gridImpl) {
		g.rotationAngle = radians
	}
}

// WithLogger sets the logger used for build timings.
//
// Parameters:
//   - logger: the zap logger, nil keeps the no-op logger
//
// Returns:
//   - GridBuilderOption: functional option to set the logger
func WithLogger(logger *zap.Logger) GridBuilderOption {
	return func(g *gridImpl) {
		if logger != nil {
			g.logger = logger.Named("instance")
		}
	}
}
