package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"go.uber.org/zap"
)

type dispatcherImpl struct {
	mu *sync.Mutex

	controller camera.CameraController
	projection camera.Projection
	logger     *zap.Logger

	lookButton    int
	lookHeld      bool
	alwaysLook    bool
	quitKey       uint32
	quitRequested bool

	onResize []func(width, height uint32)
}

// Dispatcher routes input events to the camera controller and window events to the projection.
// Dispatch is synchronous: when it returns the event has been fully applied.
type Dispatcher interface {
	// Dispatch applies a single event.
	//   - KeyEvent goes to the controller; an unhandled press of the quit key latches QuitRequested.
	//   - MouseMotionEvent goes to the controller only while the look button is held.
	//   - MouseButtonEvent tracks the look button.
	//   - ScrollEvent goes to the controller.
	//   - ResizeEvent with a zero dimension is dropped, otherwise it resizes the projection
	//     and then runs the resize hooks.
	//
	// Parameters:
	//   - ev: the event to apply
	Dispatch(ev Event)

	// OnResize registers a hook run after the projection has been resized.
	//
	// Parameters:
	//   - hook: function receiving the new size in pixels
	OnResize(hook func(width, height uint32))

	// QuitRequested reports whether the quit key was pressed.
	//
	// Returns:
	//   - bool: true once the quit key has been pressed
	QuitRequested() bool

	// Looking reports whether mouse motion currently rotates the camera.
	//
	// Returns:
	//   - bool: true while the look button is held or look is always on
	Looking() bool
}

var _ Dispatcher = &dispatcherImpl{}

// NewDispatcher creates a Dispatcher feeding the given controller and projection.
// By default the left mouse button gates mouse look and Escape requests quit.
//
// Parameters:
//   - controller: the camera controller receiving input
//   - projection: the projection receiving resizes
//   - options: functional options to configure the dispatcher
//
// Returns:
//   - Dispatcher: the new dispatcher
func NewDispatcher(controller camera.CameraController, projection camera.Projection, options ...DispatcherBuilderOption) Dispatcher {
	d := &dispatcherImpl{
		mu:         &sync.Mutex{},
		controller: controller,
		projection: projection,
		logger:     zap.NewNop(),
		lookButton: common.MouseButtonLeft,
		quitKey:    common.KeyEsc,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

func (d *dispatcherImpl) Dispatch(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		if d.controller.ProcessKey(e.KeyCode, e.Pressed) {
			return
		}
		if e.KeyCode == d.quitKey && e.Pressed {
			d.mu.Lock()
			d.quitRequested = true
			d.mu.Unlock()
			d.logger.Info("quit requested")
		}

	case MouseButtonEvent:
		if e.Button != d.lookButton {
			return
		}
		d.mu.Lock()
		d.lookHeld = e.Pressed
		d.mu.Unlock()

	case MouseMotionEvent:
		if !d.Looking() {
			return
		}
		d.controller.ProcessMouse(e.DX, e.DY)

	case ScrollEvent:
		d.controller.ProcessScroll(e.Delta)

	case ResizeEvent:
		if e.Width == 0 || e.Height == 0 {
			d.logger.Debug("ignoring zero-size resize", zap.Uint32("width", e.Width), zap.Uint32("height", e.Height))
			return
		}
		d.projection.Resize(e.Width, e.Height)

		d.mu.Lock()
		hooks := append([]func(width, height uint32){}, d.onResize...)
		d.mu.Unlock()
		for _, hook := range hooks {
			hook(e.Width, e.Height)
		}
		d.logger.Debug("resized", zap.Uint32("width", e.Width), zap.Uint32("height", e.Height))

	default:
		d.logger.Warn("unknown event type", zap.Any("event", ev))
	}
}

func (d *dispatcherImpl) OnResize(hook func(width, height uint32)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onResize = append(d.onResize, hook)
}

func (d *dispatcherImpl) QuitRequested() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.quitRequested
}

func (d *dispatcherImpl) Looking() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.alwaysLook || d.lookHeld
}
