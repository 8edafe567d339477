package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeWindow runs the update callback until RequestClose or maxIterations.
type fakeWindow struct {
	width, height int
	onUpdate      func()
	onEvent       func(ev input.Event)
	closed        bool
	iterations    int
	maxIterations int
}

func (w *fakeWindow) SetUpdateCallback(callback func()) { w.onUpdate = callback }
func (w *fakeWindow) SetEventCallback(callback func(ev input.Event)) { w.onEvent = callback }
func (w *fakeWindow) RequestClose() { w.closed = true }
func (w *fakeWindow) Width() int { return w.width }
func (w *fakeWindow) Height() int { return w.height }

func (w *fakeWindow) ProcessMessages() {
	for !w.closed && w.iterations < w.maxIterations {
		w.iterations++
		w.onUpdate()
	}
}

type fakeRenderer struct {
	uniforms  []camera.GPUCameraUniform
	resizes   [][2]uint32
	frames    int
	renderErr error
	panicOn   int
}

func (r *fakeRenderer) WriteCamera(uniform *camera.GPUCameraUniform) {
	r.uniforms = append(r.uniforms, *uniform)
}

func (r *fakeRenderer) Resize(width, height uint32) error {
	r.resizes = append(r.resizes, [2]uint32{width, height})
	return nil
}

func (r *fakeRenderer) Render() error {
	r.frames++
	if r.panicOn > 0 && r.frames == r.panicOn {
		panic("device lost")
	}
	return r.renderErr
}

type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newTestEngine(t *testing.T, options ...EngineBuilderOption) (Engine, *fakeWindow, *fakeRenderer) {
	t.Helper()
	w := &fakeWindow{width: 800, height: 600, maxIterations: 10}
	r := &fakeRenderer{}
	e, err := NewEngine(append([]EngineBuilderOption{WithWindow(w), WithRenderer(r)}, options...)...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, w, r
}

func TestNewEngineRequiresWindowAndRenderer(t *testing.T) {
	if _, err := NewEngine(); err == nil {
		t.Fatal("NewEngine() with no window or renderer succeeded")
	}
	if _, err := NewEngine(WithWindow(&fakeWindow{})); err == nil {
		t.Fatal("NewEngine() with no renderer succeeded")
	}
}

func TestNewEngineSizesProjectionToWindow(t *testing.T) {
	w := &fakeWindow{width: 1000, height: 500}
	e, err := NewEngine(WithWindow(w), WithRenderer(&fakeRenderer{}))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if got := e.Projection().Aspect(); got != 2 {
		t.Errorf("Aspect() = %v, want 2", got)
	}
	if w.onUpdate == nil || w.onEvent == nil {
		t.Error("window callbacks not registered")
	}
}

func TestStepMovesCameraAndUploadsUniform(t *testing.T) {
	e, w, r := newTestEngine(t)

	w.onEvent(input.KeyEvent{KeyCode: common.KeyW, Pressed: true})
	if err := e.Step(0.5); err != nil {
		t.Fatalf("Step: %v", err)
	}

	if got := e.Camera().Position(); !got.ApproxEqual(mgl32.Vec3{2, 0, 0}) {
		t.Errorf("Position() = %v, want (2, 0, 0)", got)
	}
	if len(r.uniforms) != 1 || r.frames != 1 {
		t.Fatalf("uniforms = %d, frames = %d", len(r.uniforms), r.frames)
	}

	want := camera.ViewProjection(e.Camera(), e.Projection())
	if got := mgl32.Mat4(r.uniforms[0].ViewProj); !got.ApproxEqual(want) {
		t.Errorf("ViewProj = %v, want %v", got, want)
	}
	if e.Frames() != 1 {
		t.Errorf("Frames() = %d", e.Frames())
	}
}

func TestResizeEventReachesProjectionAndRenderer(t *testing.T) {
	e, w, r := newTestEngine(t)

	w.onEvent(input.ResizeEvent{Width: 0, Height: 300})
	if len(r.resizes) != 0 {
		t.Errorf("zero-size resize reached the renderer: %v", r.resizes)
	}

	w.onEvent(input.ResizeEvent{Width: 1200, Height: 400})
	if len(r.resizes) != 1 || r.resizes[0] != [2]uint32{1200, 400} {
		t.Errorf("resizes = %v", r.resizes)
	}
	if got := e.Projection().Aspect(); got != 3 {
		t.Errorf("Aspect() = %v, want 3", got)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	e, w, r := newTestEngine(t)

	w.maxIterations = 100
	w.onUpdate = func() {
		if w.iterations == 3 {
			w.onEvent(input.KeyEvent{KeyCode: common.KeyEsc, Pressed: true})
		}
		e.(*engine).tick()
	}
	e.Run()

	if !w.closed {
		t.Fatal("quit key did not close the window")
	}
	if r.frames != 2 {
		t.Errorf("frames = %d, want 2 before the quit tick", r.frames)
	}
}

func TestRunUsesClockForDeltaTime(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0), step: 250 * time.Millisecond}
	e, w, _ := newTestEngine(t, WithClock(clock.now))

	w.onEvent(input.KeyEvent{KeyCode: common.KeyW, Pressed: true})
	w.maxIterations = 4
	e.Run()

	// four frames of 0.25s at the default speed of 4
	if got := e.Camera().Position().X(); !mgl32.FloatEqualThreshold(got, 4, 1e-4) {
		t.Errorf("x = %v, want 4", got)
	}
	if e.Frames() != 4 {
		t.Errorf("Frames() = %d, want 4", e.Frames())
	}
}

func TestRenderErrorDoesNotStopLoop(t *testing.T) {
	e, w, r := newTestEngine(t)
	r.renderErr = errors.New("surface outdated")

	e.Run()

	if w.closed {
		t.Error("render error closed the window")
	}
	if r.frames != w.maxIterations {
		t.Errorf("frames = %d, want %d", r.frames, w.maxIterations)
	}
}

func TestPanicInFrameQuits(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	e, w, r := newTestEngine(t, WithLogger(zap.New(core)))
	r.panicOn = 2

	e.Run()

	if !w.closed {
		t.Fatal("panic did not close the window")
	}
	if r.frames != 2 {
		t.Errorf("frames = %d, want 2", r.frames)
	}
	if logs.FilterMessage("frame panicked").Len() != 1 {
		t.Errorf("panic was not logged")
	}
}

func TestProfilerTicksOnlyWhenEnabled(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	clock := &stepClock{t: time.Unix(0, 0), step: time.Second}
	p := profiler.NewProfiler(profiler.WithLogger(zap.New(core)), profiler.WithClock(clock.now))
	e, _, _ := newTestEngine(t, WithProfiler(p))

	for range 3 {
		_ = e.Step(0)
	}
	if n := logs.FilterMessage("frame stats").Len(); n != 0 {
		t.Fatalf("profiler logged %d entries while disabled", n)
	}

	e.EnableProfiler()
	for range 3 {
		_ = e.Step(0)
	}
	if n := logs.FilterMessage("frame stats").Len(); n != 3 {
		t.Errorf("profiler logged %d entries, want 3", n)
	}

	e.DisableProfiler()
	_ = e.Step(0)
	if n := logs.FilterMessage("frame stats").Len(); n != 3 {
		t.Errorf("profiler logged after disable: %d entries", n)
	}
}

func TestSetRenderFrameLimit(t *testing.T) {
	e, _, _ := newTestEngine(t)
	impl := e.(*engine)

	e.SetRenderFrameLimit(50)
	if impl.renderFrameLimit != 20*time.Millisecond {
		t.Errorf("renderFrameLimit = %v, want 20ms", impl.renderFrameLimit)
	}
	e.SetRenderFrameLimit(0)
	if impl.renderFrameLimit != 0 {
		t.Errorf("renderFrameLimit = %v, want 0", impl.renderFrameLimit)
	}
}
