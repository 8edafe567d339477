package camera

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

type projectionImpl struct {
	mu *sync.Mutex

	aspect float32
	fovY   float32
	zNear  float32
	zFar   float32
}

// Projection holds the viewport-derived perspective parameters and produces the projection matrix.
// Resize is the only mutator and is driven by the window's framebuffer resize notifications.
type Projection interface {
	// ProjectionMatrix returns the WebGPU clip-space perspective matrix (depth in [0, 1], column-major).
	//
	// Returns:
	//   - mgl32.Mat4: OpenGLToWGPU * Perspective(fovY, aspect, zNear, zFar)
	ProjectionMatrix() mgl32.Mat4

	// Resize recomputes the aspect ratio from a new surface size.
	// Either dimension being zero (a minimized window) leaves the projection unchanged.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	Resize(width, height uint32)

	// Aspect returns the current width / height ratio.
	//
	// Returns:
	//   - float32: the aspect ratio, always > 0
	Aspect() float32

	// FovY returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: vertical fov in radians
	FovY() float32

	// ZNear returns the near clip plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	ZNear() float32

	// ZFar returns the far clip plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	ZFar() float32
}

var _ Projection = &projectionImpl{}

// NewProjection creates a new Projection with a 45 degree vertical fov, clip planes at 0.1 and 100
// and a 4:3 aspect ratio. It panics when the configured clip planes do not satisfy 0 < zNear < zFar
// or the fov is outside (0, pi), since those are programming errors in the caller.
//
// Parameters:
//   - options: functional options to configure the projection
//
// Returns:
//   - Projection: the newly created projection
func NewProjection(options ...ProjectionBuilderOption) Projection {
	p := &projectionImpl{
		mu:     &sync.Mutex{},
		aspect: 800.0 / 600.0,
		fovY:   mgl32.DegToRad(45),
		zNear:  0.1,
		zFar:   100.0,
	}
	for _, option := range options {
		option(p)
	}
	if p.zNear <= 0 || p.zFar <= p.zNear {
		panic(fmt.Sprintf("camera: invalid clip planes near=%v far=%v", p.zNear, p.zFar))
	}
	if p.fovY <= 0 || p.fovY >= mgl32.DegToRad(180) {
		panic(fmt.Sprintf("camera: invalid vertical fov %v", p.fovY))
	}
	return p
}

func (p *projectionImpl) ProjectionMatrix() mgl32.Mat4 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return common.OpenGLToWGPU.Mul4(mgl32.Perspective(p.fovY, p.aspect, p.zNear, p.zFar))
}

func (p *projectionImpl) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.aspect = float32(width) / float32(height)
}

func (p *projectionImpl) Aspect() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.aspect
}

func (p *projectionImpl) FovY() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fovY
}

func (p *projectionImpl) ZNear() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.zNear
}

func (p *projectionImpl) ZFar() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.zFar
}
