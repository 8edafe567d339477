package instance

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type gridImpl struct {
	mu *sync.Mutex

	workers       int
	rotationAngle float32
	logger        *zap.Logger

	pool worker.DynamicWorkerPool
}

// Grid lays out instances on a square grid in the XZ plane.
// Rows are computed in parallel on a worker pool that lives until Stop.
type Grid interface {
	// Build returns perRow*perRow instances in row-major order (z outer, x inner).
	// Instance (x, z) sits at spacing * (x - perRow/2, 0, z - perRow/2) and is rotated by the
	// configured angle around the axis through its own position (+Z at the origin).
	//
	// Parameters:
	//   - perRow: instances per row, values below 1 yield no instances
	//   - spacing: distance between neighbours in world units
	//
	// Returns:
	//   - []Instance: the placed instances
	Build(perRow int, spacing float32) []Instance

	// Stop shuts the worker pool down. Build must not be called afterwards.
	Stop()
}

var _ Grid = &gridImpl{}

// NewGrid creates a Grid backed by a dynamic worker pool with one worker per spare CPU.
//
// Parameters:
//   - options: functional options to configure the grid
//
// Returns:
//   - Grid: the new grid
func NewGrid(options ...GridBuilderOption) Grid {
	g := &gridImpl{
		mu:      &sync.Mutex{},
		workers: max(runtime.NumCPU()-1, 1),
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(g)
	}
	// Initialized after options so WithWorkers can override the default.
	g.pool = worker.NewDynamicWorkerPool(g.workers, 256, 1*time.Second)
	return g
}

func (g *gridImpl) Build(perRow int, spacing float32) []Instance {
	g.mu.Lock()
	defer g.mu.Unlock()

	if perRow < 1 {
		return nil
	}

	start := time.Now()
	instances := make([]Instance, perRow*perRow)
	half := float32(perRow) / 2

	// A WaitGroup gives a per-build barrier; pool.Wait only returns once workers go idle.
	var wg sync.WaitGroup
	for z := range perRow {
		wg.Add(1)
		row := instances[z*perRow : (z+1)*perRow]
		g.pool.SubmitTask(worker.Task{
			ID: z,
			Do: func() (any, error) {
				defer wg.Done()
				fz := spacing * (float32(z) - half)
				for x := range row {
					position := mgl32.Vec3{spacing * (float32(x) - half), 0, fz}
					row[x] = Instance{Position: position, Rotation: g.rotationFor(position)}
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	g.logger.Debug("instance grid built",
		zap.Int("instances", len(instances)),
		zap.Float32("spacing", spacing),
		zap.Duration("elapsed", time.Since(start)),
	)
	return instances
}

func (g *gridImpl) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pool.Stop()
}

// rotationFor returns the rotation around the axis through position, or around +Z at the origin.
func (g *gridImpl) rotationFor(position mgl32.Vec3) mgl32.Quat {
	axis := mgl32.Vec3{0, 0, 1}
	if position.Len() > 0 {
		axis = position.Normalize()
	}
	return mgl32.QuatRotate(g.rotationAngle, axis)
}
