package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithMoveSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - CameraControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveSpeed = speed
	}
}

// WithLookSensitivity sets the mouse look multiplier.
//
// Parameters:
//   - sensitivity: radians per device unit per second
//
// Returns:
//   - CameraControllerOption: functional option to set the look sensitivity
func WithLookSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.lookSensitivity = sensitivity
	}
}

// WithScrollSensitivity sets the forward impulse added per scrolled line.
//
// Parameters:
//   - sensitivity: impulse per line
//
// Returns:
//   - CameraControllerOption: functional option to set the scroll sensitivity
func WithScrollSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.scrollSensitivity = sensitivity
	}
}

// WithKeyBinding binds a key code to a direction, replacing any existing binding for that key.
//
// Parameters:
//   - keyCode: the virtual key code
//   - dir: the direction the key drives
//
// Returns:
//   - CameraControllerOption: functional option to add the binding
func WithKeyBinding(keyCode uint32, dir Direction) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bindings[keyCode] = dir
	}
}

// WithoutDefaultBindings clears the default WASD / arrow / Space / LeftShift bindings.
// Options are applied in order, so place it before any WithKeyBinding.
//
// Returns:
//   - CameraControllerOption: functional option to clear the bindings
func WithoutDefaultBindings() CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		clear(cc.bindings)
	}
}
