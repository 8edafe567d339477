package input

import "go.uber.org/zap"

// DispatcherBuilderOption is a functional option for configuring a Dispatcher.
type DispatcherBuilderOption func(*dispatcherImpl)

// WithLookButton selects the mouse button that must be held for mouse look.
//
// Parameters:
//   - button: mouse button code (see common mouse button codes)
//
// Returns:
//   - DispatcherBuilderOption: functional option to set the look button
func WithLookButton(button int) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.lookButton = button
	}
}

// WithAlwaysLook makes every mouse motion rotate the camera, as with a captured cursor.
//
// Returns:
//   - DispatcherBuilderOption: functional option to enable permanent mouse look
func WithAlwaysLook() DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.alwaysLook = true
	}
}

// WithQuitKey sets the key that requests quit when the controller does not handle it.
//
// Parameters:
//   - keyCode: the virtual key code
//
// Returns:
//   - DispatcherBuilderOption: functional option to set the quit key
func WithQuitKey(keyCode uint32) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.quitKey = keyCode
	}
}

// WithLogger sets the logger used for dispatch diagnostics.
//
// Parameters:
//   - logger: the zap logger, nil keeps the no-op logger
//
// Returns:
//   - DispatcherBuilderOption: functional option to set the logger
func WithLogger(logger *zap.Logger) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		if logger != nil {
			d.logger = logger.Named("input")
		}
	}
}
