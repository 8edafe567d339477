package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewer/common"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// String returns the configuration name of the present mode.
func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "fifo"
	case PresentModeUncapped:
		return "immediate"
	default:
		return fmt.Sprintf("PresentMode(%d)", int(m))
	}
}

// ParsePresentMode maps a configuration name to a PresentMode.
//
// Parameters:
//   - name: "fifo" (or "vsync") and "immediate" (or "uncapped")
//
// Returns:
//   - PresentMode: the matching mode
//   - error: error if the name is not recognized
func ParsePresentMode(name string) (PresentMode, error) {
	switch name {
	case "fifo", "vsync", "":
		return PresentModeVSync, nil
	case "immediate", "uncapped":
		return PresentModeUncapped, nil
	default:
		return PresentModeVSync, fmt.Errorf("unknown present mode %q", name)
	}
}

// RendererBackend is the GPU-facing half of the Renderer. The Renderer owns the bookkeeping
// (material lookup, resize filtering, frame gating) and the backend owns every GPU object.
// Byte slices passed in are already laid out for upload.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and recreates the depth texture.
	ConfigureSurface(width, height uint32) error

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the frame is cleared to.
	SetClearColor(rgba [4]float64)

	// CreatePipeline compiles the WGSL source and builds the render pipeline together with the
	// camera uniform buffer and its bind group.
	CreatePipeline(label, source string) error

	// CreateMaterial uploads an RGBA8 texture with a sampler and returns the handle of its bind group.
	CreateMaterial(label string, pixels *common.TextureStagingData) (int, error)

	// CreateMesh uploads vertex and index data drawn with the given material handle.
	CreateMesh(label string, vertexData, indexData []byte, indexCount uint32, material int) error

	// WriteCamera replaces the contents of the camera uniform buffer.
	WriteCamera(data []byte)

	// WriteInstances replaces the instance buffer, growing it when needed.
	WriteInstances(data []byte, count uint32) error

	// Render records and submits one frame and presents it.
	Render() error

	// Release frees every GPU object owned by the backend.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}
