package camera

import (
	"fmt"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultScrollSensitivity is the forward impulse per wheel line.
const DefaultScrollSensitivity = 40.0

type cameraControllerImpl struct {
	mu *sync.Mutex

	// Held-key intents, 0 or 1, indexed by Direction.
	intents [directionCount]float32

	// Accumulated since the last Update.
	rotateHorizontal float32
	rotateVertical   float32
	scroll           float32

	moveSpeed         float32
	lookSensitivity   float32
	scrollSensitivity float32

	bindings map[uint32]Direction
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new free-fly controller with a move speed of 4, a look sensitivity
// of 0.4 and the default bindings: W/Up forward, S/Down backward, A/Left left, D/Right right,
// Space up and LeftShift down.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:                &sync.Mutex{},
		moveSpeed:         4.0,
		lookSensitivity:   0.4,
		scrollSensitivity: DefaultScrollSensitivity,
		bindings: map[uint32]Direction{
			common.KeyW:         DirectionForward,
			common.KeyUp:        DirectionForward,
			common.KeyS:         DirectionBackward,
			common.KeyDown:      DirectionBackward,
			common.KeyA:         DirectionLeft,
			common.KeyLeft:      DirectionLeft,
			common.KeyD:         DirectionRight,
			common.KeyRight:     DirectionRight,
			common.KeySpace:     DirectionUp,
			common.KeyLeftShift: DirectionDown,
		},
	}

	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) ProcessKey(keyCode uint32, pressed bool) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	dir, ok := cc.bindings[keyCode]
	if !ok {
		return false
	}
	if pressed {
		cc.intents[dir] = 1
	} else {
		cc.intents[dir] = 0
	}
	return true
}

func (cc *cameraControllerImpl) ProcessMouse(dx, dy float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotateHorizontal += float32(dx)
	cc.rotateVertical += float32(dy)
}

func (cc *cameraControllerImpl) ProcessScroll(delta ScrollDelta) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.scroll += float32(delta.Normalized()) * cc.scrollSensitivity
}

func (cc *cameraControllerImpl) Update(cam Camera, dt float32) {
	if dt < 0 {
		panic(fmt.Sprintf("camera: negative time step %v", dt))
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()

	position, yaw, pitch := cam.pose()

	// Movement ignores pitch so that looking up does not make forward motion climb.
	sinYaw, cosYaw := math.Sincos(float64(yaw))
	forward := mgl32.Vec3{float32(cosYaw), 0, float32(sinYaw)}
	right := mgl32.Vec3{float32(-sinYaw), 0, float32(cosYaw)}

	step := cc.moveSpeed * dt
	position = position.Add(forward.Mul((cc.intents[DirectionForward] - cc.intents[DirectionBackward]) * step))
	position = position.Add(right.Mul((cc.intents[DirectionRight] - cc.intents[DirectionLeft]) * step))
	position[1] += (cc.intents[DirectionUp] - cc.intents[DirectionDown]) * step

	position = position.Add(forward.Mul(cc.scroll * step))
	cc.scroll = 0

	yaw += cc.rotateHorizontal * cc.lookSensitivity * dt
	// Screen Y grows downwards, so moving the pointer up looks up.
	pitch += -cc.rotateVertical * cc.lookSensitivity * dt

	cc.rotateHorizontal = 0
	cc.rotateVertical = 0

	cam.setPose(position, yaw, pitch)
}

func (cc *cameraControllerImpl) MoveSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.moveSpeed
}

func (cc *cameraControllerImpl) LookSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.lookSensitivity
}

func (cc *cameraControllerImpl) ScrollSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.scrollSensitivity
}
