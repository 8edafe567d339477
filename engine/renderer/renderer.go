package renderer

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/instance"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

//go:embed assets/viewer.wgsl
var viewerShaderBody string

// ShaderSource is the complete WGSL program of the viewer pipeline: the shared struct
// definitions of the camera uniform, the mesh vertex and the instance input followed by
// the entry points.
var ShaderSource = camera.GPUCameraUniformSource + "\n" +
	model.GPUVertexSource + "\n" +
	instance.GPUInstanceSource + "\n" +
	viewerShaderBody

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
	logger      *zap.Logger

	width  uint32
	height uint32

	defaultMaterial int
	meshCount       int
	instanceCount   int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	clearColor           [4]float64
	presentMode          PresentMode
}

// Renderer draws the instanced, textured model with the current camera uniform.
//
// The Renderer owns every GPU resource through its backend. It keeps the surface size, maps
// model materials to GPU materials and ignores degenerate resizes.
type Renderer interface {
	// UploadModel uploads every mesh and material of the model. Meshes without a material, or
	// whose texture cannot be decoded, are drawn with a white texture.
	//
	// Parameters:
	//   - m: the model to upload
	//
	// Returns:
	//   - error: error if a GPU resource cannot be created
	UploadModel(m model.Model) error

	// UploadInstances replaces the instance list drawn for every mesh.
	//
	// Parameters:
	//   - instances: the instances to draw
	//
	// Returns:
	//   - error: error if the instance buffer cannot be created
	UploadInstances(instances []instance.Instance) error

	// WriteCamera uploads the camera uniform for the next frame.
	//
	// Parameters:
	//   - uniform: the uniform to upload
	WriteCamera(uniform *camera.GPUCameraUniform)

	// Resize reconfigures the surface and depth texture. A zero dimension is ignored, which
	// happens while the window is minimized.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	//
	// Returns:
	//   - error: error if the surface cannot be reconfigured
	Resize(width, height uint32) error

	// Size returns the current surface size.
	//
	// Returns:
	//   - uint32: width in pixels
	//   - uint32: height in pixels
	Size() (uint32, uint32)

	// Render draws one frame and presents it.
	//
	// Returns:
	//   - error: error if the frame cannot be acquired or submitted
	Render() error

	// Release frees every GPU resource. The Renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing to the surface described by surfaceDescriptor.
//
// Parameters:
//   - surfaceDescriptor: the platform surface descriptor obtained from the window
//   - width: the initial surface width in pixels
//   - height: the initial surface height in pixels
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer with its pipeline built
//   - error: error if the device, surface or pipeline cannot be created
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height uint32, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(options...)

	backend, err := newWGPURendererBackend(surfaceDescriptor, r.forceFallbackAdapter, r.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer backend: %w", err)
	}
	if err := r.attach(backend, width, height); err != nil {
		backend.Release()
		return nil, err
	}
	return r, nil
}

func newRenderer(options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:              &sync.Mutex{},
		backendType:     BackendTypeWGPU,
		logger:          zap.NewNop(),
		defaultMaterial: -1,
		clearColor:      [4]float64{0.1, 0.2, 0.3, 1.0},
		presentMode:     PresentModeVSync,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// attach hands the collected options to the backend, configures the surface and builds the pipeline.
func (r *renderer) attach(backend RendererBackend, width, height uint32) error {
	r.backend = backend
	r.width = max(width, 1)
	r.height = max(height, 1)

	backend.SetPresentMode(r.presentMode)
	backend.SetClearColor(r.clearColor)
	if err := backend.ConfigureSurface(r.width, r.height); err != nil {
		return fmt.Errorf("failed to configure surface: %w", err)
	}
	if err := backend.CreatePipeline("Viewer", ShaderSource); err != nil {
		return fmt.Errorf("failed to create viewer pipeline: %w", err)
	}

	r.logger.Info("renderer ready",
		zap.Uint32("width", r.width),
		zap.Uint32("height", r.height),
		zap.Stringer("present_mode", r.presentMode),
	)
	return nil
}

func (r *renderer) UploadModel(m model.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles := make([]int, len(m.Materials()))
	for i, mat := range m.Materials() {
		pixels, err := mat.Pixels()
		if err != nil {
			r.logger.Warn("texture decode failed, using white",
				zap.String("material", mat.Name),
				zap.Error(err),
			)
			pixels = common.WhiteTexture()
		}
		handle, err := r.backend.CreateMaterial(common.Coalesce(mat.Name, fmt.Sprintf("material %d", i)), pixels)
		if err != nil {
			return err
		}
		handles[i] = handle
	}

	for i, mesh := range m.Meshes() {
		if len(mesh.Indices) == 0 {
			continue
		}

		var handle int
		if mesh.MaterialIndex >= 0 && mesh.MaterialIndex < len(handles) {
			handle = handles[mesh.MaterialIndex]
		} else {
			var err error
			if handle, err = r.whiteMaterial(); err != nil {
				return err
			}
		}

		label := common.Coalesce(mesh.Name, fmt.Sprintf("%s mesh %d", m.Name(), i))
		if err := r.backend.CreateMesh(label, mesh.VertexData(), mesh.IndexData(), uint32(len(mesh.Indices)), handle); err != nil {
			return err
		}
		r.meshCount++
	}

	r.logger.Info("model uploaded",
		zap.String("model", m.Name()),
		zap.Int("meshes", r.meshCount),
		zap.Int("materials", len(handles)),
		zap.Int("triangles", m.TriangleCount()),
	)
	return nil
}

// whiteMaterial returns the shared fallback material, creating it on first use. Caller holds r.mu.
func (r *renderer) whiteMaterial() (int, error) {
	if r.defaultMaterial >= 0 {
		return r.defaultMaterial, nil
	}
	handle, err := r.backend.CreateMaterial("default", common.WhiteTexture())
	if err != nil {
		return -1, err
	}
	r.defaultMaterial = handle
	return handle, nil
}

func (r *renderer) UploadInstances(instances []instance.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.WriteInstances(instance.MarshalInstances(instances), uint32(len(instances))); err != nil {
		return err
	}
	r.instanceCount = len(instances)
	return nil
}

func (r *renderer) WriteCamera(uniform *camera.GPUCameraUniform) {
	r.backend.WriteCamera(uniform.Marshal())
}

func (r *renderer) Resize(width, height uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width == 0 || height == 0 {
		return nil
	}
	if width == r.width && height == r.height {
		return nil
	}

	if err := r.backend.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("failed to resize surface to %dx%d: %w", width, height, err)
	}
	r.width = width
	r.height = height
	r.logger.Debug("surface resized", zap.Uint32("width", width), zap.Uint32("height", height))
	return nil
}

func (r *renderer) Size() (uint32, uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.width, r.height
}

func (r *renderer) Render() error {
	return r.backend.Render()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backend != nil {
		r.backend.Release()
		r.backend = nil
	}
}
