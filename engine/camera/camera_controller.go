package camera

// Direction identifies one of the six movement intents a key can drive.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown

	directionCount
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// PixelsPerLine converts precise (pixel) scroll deltas into wheel lines, the unit the controller accumulates.
const PixelsPerLine = 100.0

// ScrollDelta is a single scroll event. Wheels report Lines, touchpads report Pixels; both may be set.
// Positive values scroll away from the user, which moves the camera forward.
type ScrollDelta struct {
	Lines  float64
	Pixels float64
}

// Normalized returns the delta expressed in wheel lines.
//
// Returns:
//   - float64: Lines + Pixels / PixelsPerLine
func (s ScrollDelta) Normalized() float64 {
	return s.Lines + s.Pixels/PixelsPerLine
}

// CameraController turns input events into camera motion.
// Input handlers only accumulate: key intents persist until released, while mouse and scroll deltas
// are summed until the next Update, which integrates them over dt and resets them.
// All methods are safe to call from the input callback goroutine while Update runs on the frame loop.
type CameraController interface {
	// ProcessKey records a press or release of a bound direction key.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key codes)
	//   - pressed: true on press or repeat, false on release
	//
	// Returns:
	//   - bool: true if the key is bound to a direction, false if it was ignored
	ProcessKey(keyCode uint32, pressed bool) bool

	// ProcessMouse adds a relative pointer motion to the look accumulators.
	//
	// Parameters:
	//   - dx: horizontal motion in device units, positive to the right
	//   - dy: vertical motion in device units, positive downwards
	ProcessMouse(dx, dy float64)

	// ProcessScroll adds a scroll event to the forward impulse accumulator.
	//
	// Parameters:
	//   - delta: the scroll amount in lines and/or pixels
	ProcessScroll(delta ScrollDelta)

	// Update integrates the accumulated input into the camera pose over dt seconds and
	// resets the look and scroll accumulators. Held keys keep their intent.
	// Panics if dt is negative.
	//
	// Parameters:
	//   - cam: the camera to move
	//   - dt: elapsed time since the previous Update, in seconds
	Update(cam Camera, dt float32)

	// MoveSpeed returns the translation speed in world units per second.
	//
	// Returns:
	//   - float32: move speed
	MoveSpeed() float32

	// LookSensitivity returns the multiplier applied to accumulated mouse motion.
	//
	// Returns:
	//   - float32: radians per device unit per second
	LookSensitivity() float32

	// ScrollSensitivity returns the forward impulse per scrolled line.
	//
	// Returns:
	//   - float32: scroll multiplier
	ScrollSensitivity() float32
}
