package model

import (
	"errors"
	"math"
)

// ErrEmptyMesh is returned when a model would contain no triangles.
var ErrEmptyMesh = errors.New("model has no triangles")

type model struct {
	name           string
	meshes         []Mesh
	materials      []Material
	boundingRadius float32
}

// Model is an immutable textured mesh ready for upload.
type Model interface {
	// Name returns the model identifier, usually the source file name.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Meshes returns the drawable groups of the model.
	//
	// Returns:
	//   - []Mesh: the meshes
	Meshes() []Mesh

	// Materials returns the materials referenced by Mesh.MaterialIndex.
	//
	// Returns:
	//   - []Material: the materials
	Materials() []Material

	// BoundingRadius returns the distance from the model origin to its farthest vertex.
	//
	// Returns:
	//   - float32: the bounding sphere radius
	BoundingRadius() float32

	// TriangleCount returns the total number of triangles across all meshes.
	//
	// Returns:
	//   - int: triangle count
	TriangleCount() int
}

var _ Model = &model{}

// NewModel creates a Model from the given options.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the new model
//   - error: ErrEmptyMesh if no mesh has any indices
func NewModel(options ...ModelBuilderOption) (Model, error) {
	m := &model{}
	for _, option := range options {
		option(m)
	}

	triangles := 0
	var maxSq float64
	for _, mesh := range m.meshes {
		triangles += len(mesh.Indices) / 3
		for _, v := range mesh.Vertices {
			sq := float64(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2])
			maxSq = max(maxSq, sq)
		}
	}
	if triangles == 0 {
		return nil, ErrEmptyMesh
	}
	m.boundingRadius = float32(math.Sqrt(maxSq))
	return m, nil
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Meshes() []Mesh {
	return m.meshes
}

func (m *model) Materials() []Material {
	return m.materials
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) TriangleCount() int {
	n := 0
	for _, mesh := range m.meshes {
		n += len(mesh.Indices) / 3
	}
	return n
}
