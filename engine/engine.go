package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"go.uber.org/zap"
)

// Window is the part of window.Window the engine drives.
type Window interface {
	SetUpdateCallback(callback func())
	SetEventCallback(callback func(ev input.Event))
	ProcessMessages()
	RequestClose()
	Width() int
	Height() int
}

// Renderer is the part of renderer.Renderer the engine drives each frame.
type Renderer interface {
	WriteCamera(uniform *camera.GPUCameraUniform)
	Resize(width, height uint32) error
	Render() error
}

// engine implements the Engine interface.
// Owns the camera state and runs one frame per window message loop iteration.
type engine struct {
	mu *sync.Mutex

	window   Window
	renderer Renderer
	logger   *zap.Logger

	camera     camera.Camera
	projection camera.Projection
	controller camera.CameraController
	dispatcher input.Dispatcher
	uniform    camera.GPUCameraUniform

	profiler         *profiler.Profiler
	profilingEnabled bool

	now              func() time.Time
	lastFrame        time.Time
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	quitOnce sync.Once
	frames   uint64
}

// Engine is the main entry point of the viewer.
// It wires window events into the input dispatcher and, once per frame, advances the camera
// controller, refreshes the camera uniform and renders.
type Engine interface {
	// Camera returns the camera moved by the controller.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Projection returns the projection kept in sync with the window size.
	//
	// Returns:
	//   - camera.Projection: the projection
	Projection() camera.Projection

	// Controller returns the free-fly camera controller.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController

	// Dispatcher returns the input dispatcher receiving window events.
	//
	// Returns:
	//   - input.Dispatcher: the dispatcher
	Dispatcher() input.Dispatcher

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Step runs one frame with the given elapsed time: controller update, uniform refresh,
	// camera upload and render.
	//
	// Parameters:
	//   - dt: seconds since the previous frame, must not be negative
	//
	// Returns:
	//   - error: error if the frame could not be rendered
	Step(dt float32) error

	// Frames returns the number of frames stepped so far.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64

	// Run starts the window message loop and blocks until the window closes or quit is requested.
	Run()

	// Quit asks the window to close. Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine from the provided options.
// A window and a renderer are required. Camera, projection, controller and dispatcher default
// to fresh instances, with the projection sized to the window.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: error if the window or renderer is missing
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		mu:     &sync.Mutex{},
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range options {
		opt(e)
	}

	var errs []error
	if e.window == nil {
		errs = append(errs, errors.New("engine requires a window"))
	}
	if e.renderer == nil {
		errs = append(errs, errors.New("engine requires a renderer"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.projection == nil {
		e.projection = camera.NewProjection(camera.WithSize(uint32(max(e.window.Width(), 0)), uint32(max(e.window.Height(), 0))))
	}
	if e.controller == nil {
		e.controller = camera.NewCameraController()
	}
	if e.dispatcher == nil {
		e.dispatcher = input.NewDispatcher(e.controller, e.projection, input.WithLogger(e.logger))
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger), profiler.WithClock(e.now))
	}

	e.dispatcher.OnResize(func(width, height uint32) {
		if err := e.renderer.Resize(width, height); err != nil {
			e.logger.Error("renderer resize failed", zap.Error(err))
		}
	})
	e.window.SetEventCallback(e.dispatcher.Dispatch)
	e.window.SetUpdateCallback(e.tick)

	return e, nil
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Projection() camera.Projection {
	return e.projection
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Dispatcher() input.Dispatcher {
	return e.dispatcher
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Step(dt float32) error {
	e.controller.Update(e.camera, dt)
	e.uniform.Update(e.camera, e.projection)
	e.renderer.WriteCamera(&e.uniform)

	err := e.renderer.Render()

	e.mu.Lock()
	e.frames++
	profiling := e.profilingEnabled
	e.mu.Unlock()

	if profiling {
		e.profiler.Tick()
	}
	return err
}

func (e *engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

func (e *engine) Run() {
	e.lastFrame = e.now()
	e.logger.Info("engine running",
		zap.Int("width", e.window.Width()),
		zap.Int("height", e.window.Height()),
	)
	e.window.ProcessMessages()
	e.logger.Info("engine stopped", zap.Uint64("frames", e.Frames()))
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.window.RequestClose()
	})
}

// tick is the window update callback: one frame per message loop iteration.
// A panic inside the frame is logged and closes the window instead of crashing the process.
func (e *engine) tick() {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("frame panicked", zap.Any("panic", r))
			e.Quit()
		}
	}()

	if e.dispatcher.QuitRequested() {
		e.Quit()
		return
	}

	frameStart := e.now()
	dt := float32(frameStart.Sub(e.lastFrame).Seconds())
	e.lastFrame = frameStart

	if err := e.Step(max(dt, 0)); err != nil {
		// Lost or outdated surfaces recover on the next configure; skip the frame.
		e.logger.Debug("frame skipped", zap.Error(err))
	}

	e.mu.Lock()
	limit := e.renderFrameLimit
	e.mu.Unlock()
	if limit > 0 {
		if remaining := limit - e.now().Sub(frameStart); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}
