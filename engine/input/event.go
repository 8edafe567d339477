// Package input turns window events into controller and projection calls.
package input

import "github.com/Carmen-Shannon/oxy-viewer/engine/camera"

// Event is any input or window notification the Dispatcher understands.
type Event interface {
	isEvent()
}

// KeyEvent is a key press, repeat or release.
type KeyEvent struct {
	KeyCode uint32
	Pressed bool
}

// MouseMotionEvent is a relative pointer movement in device units.
type MouseMotionEvent struct {
	DX, DY float64
}

// MouseButtonEvent is a mouse button press or release.
type MouseButtonEvent struct {
	Button  int
	Pressed bool
}

// ScrollEvent is a wheel or touchpad scroll.
type ScrollEvent struct {
	Delta camera.ScrollDelta
}

// ResizeEvent carries the new framebuffer size in pixels.
type ResizeEvent struct {
	Width, Height uint32
}

func (KeyEvent) isEvent()         {}
func (MouseMotionEvent) isEvent() {}
func (MouseButtonEvent) isEvent() {}
func (ScrollEvent) isEvent()      {}
func (ResizeEvent) isEvent()      {}
