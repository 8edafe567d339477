package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the largest absolute pitch the camera accepts, in radians (89 degrees).
// Keeping pitch strictly inside (-90, 90) degrees stops the look-at basis from degenerating at the poles.
var MaxPitch = mgl32.DegToRad(89)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	yaw      float32
	pitch    float32
}

// Camera defines the interface for the free-fly viewer camera.
// The camera only owns its pose (position, yaw, pitch). The view basis is derived from yaw and pitch
// each time it is requested and never cached.
//
// Camera has no exported mutators: the pose is written exclusively by a CameraController through Update,
// which keeps the controller the single writer.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// Yaw returns the horizontal look angle in radians. Yaw 0 looks down +X.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// Pitch returns the vertical look angle in radians, always within [-MaxPitch, MaxPitch].
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// Forward returns the unit look direction derived from yaw and pitch.
	//
	// Returns:
	//   - mgl32.Vec3: (cos p cos y, sin p, cos p sin y)
	Forward() mgl32.Vec3

	// ViewMatrix returns the right-handed look-at matrix for the current pose (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// pose returns the position, yaw and pitch under a single lock.
	pose() (mgl32.Vec3, float32, float32)

	// setPose replaces the pose. Pitch is clamped to [-MaxPitch, MaxPitch]; a NaN angle or an
	// infinite yaw keeps the previous value.
	setPose(position mgl32.Vec3, yaw, pitch float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down +X.
//
// Parameters:
//   - options: functional options to configure the initial pose
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(c)
	}
	c.yaw = finiteOr(c.yaw, 0)
	c.pitch = common.Clamp(finiteOr(c.pitch, 0), -MaxPitch, MaxPitch)
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return forward(c.yaw, c.pitch)
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.LookAtV(c.position, c.position.Add(forward(c.yaw, c.pitch)), common.WorldUp)
}

func (c *cameraImpl) pose() (mgl32.Vec3, float32, float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position, c.yaw, c.pitch
}

func (c *cameraImpl) setPose(position mgl32.Vec3, yaw, pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
	c.yaw = finiteOr(yaw, c.yaw)
	if !math.IsNaN(float64(pitch)) {
		c.pitch = common.Clamp(pitch, -MaxPitch, MaxPitch)
	}
}

// finiteOr returns v, or fallback when v is NaN or infinite.
func finiteOr(v, fallback float32) float32 {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return fallback
	}
	return v
}

// forward computes the unit look direction for the given angles.
func forward(yaw, pitch float32) mgl32.Vec3 {
	sinYaw, cosYaw := math.Sincos(float64(yaw))
	sinPitch, cosPitch := math.Sincos(float64(pitch))
	return mgl32.Vec3{
		float32(cosPitch * cosYaw),
		float32(sinPitch),
		float32(cosPitch * sinYaw),
	}
}
