package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
	"go.uber.org/zap"
)

// objLoaderBackend decodes Wavefront OBJ geometry and its MTL material libraries.
// Faces are fan-triangulated, normals are ignored and V texture coordinates are flipped
// so that images upload top row first.
type objLoaderBackend struct {
	logger *zap.Logger
}

var _ loaderBackend = &objLoaderBackend{}

func newOBJLoaderBackend(logger *zap.Logger) *objLoaderBackend {
	return &objLoaderBackend{logger: logger}
}

// objVertexKey identifies a unique position/uv pair after index resolution. uv is -1 when absent.
type objVertexKey struct {
	position int
	uv       int
}

// objParseState is the mutable state of one OBJ parse.
type objParseState struct {
	positions [][3]float32
	uvs       [][2]float32

	meshes       []model.Mesh
	meshMaterial []string
	current      model.Mesh
	currentMtl   string
	vertexMap    map[objVertexKey]uint32

	libraries []string
}

func (b *objLoaderBackend) Load(name string, r io.Reader, baseDir string) (model.Model, error) {
	st := &objParseState{
		current:   model.Mesh{Name: "default"},
		vertexMap: make(map[objVertexKey]uint32),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)

		if err := st.parseLine(parts); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}
	st.flush()

	materials, index := b.loadLibraries(st.libraries, baseDir)
	for i := range st.meshes {
		st.meshes[i].MaterialIndex = -1
		mtl := st.meshMaterial[i]
		if mtl == "" {
			continue
		}
		if idx, ok := index[mtl]; ok {
			st.meshes[i].MaterialIndex = idx
		} else {
			b.logger.Warn("mesh references unknown material",
				zap.String("mesh", st.meshes[i].Name),
				zap.String("material", mtl),
			)
		}
	}

	return model.NewModel(
		model.WithName(name),
		model.WithMeshes(st.meshes...),
		model.WithMaterials(materials...),
	)
}

// parseLine applies one tokenized OBJ statement to the parse state.
func (st *objParseState) parseLine(parts []string) error {
	switch parts[0] {
	case "v":
		if len(parts) < 4 {
			return fmt.Errorf("vertex needs 3 coordinates, got %d", len(parts)-1)
		}
		p, err := parseFloats(parts[1:4])
		if err != nil {
			return err
		}
		st.positions = append(st.positions, [3]float32{p[0], p[1], p[2]})

	case "vt":
		if len(parts) < 2 {
			return fmt.Errorf("texture coordinate needs at least 1 component")
		}
		uv := [2]float32{}
		n := min(len(parts)-1, 2)
		p, err := parseFloats(parts[1 : 1+n])
		if err != nil {
			return err
		}
		copy(uv[:], p)
		st.uvs = append(st.uvs, [2]float32{uv[0], 1 - uv[1]})

	case "f":
		if len(parts) < 4 {
			return fmt.Errorf("face needs at least 3 vertices, got %d", len(parts)-1)
		}
		face := make([]uint32, 0, len(parts)-1)
		for _, token := range parts[1:] {
			idx, err := st.faceVertex(token)
			if err != nil {
				return err
			}
			face = append(face, idx)
		}
		for i := 2; i < len(face); i++ {
			st.current.Indices = append(st.current.Indices, face[0], face[i-1], face[i])
		}

	case "o", "g":
		st.flush()
		name := "unnamed"
		if len(parts) > 1 {
			name = strings.Join(parts[1:], " ")
		}
		st.current = model.Mesh{Name: name}

	case "usemtl":
		if len(parts) < 2 {
			return fmt.Errorf("usemtl needs a material name")
		}
		mtl := strings.Join(parts[1:], " ")
		if mtl != st.currentMtl && len(st.current.Indices) > 0 {
			name := st.current.Name
			st.flush()
			st.current = model.Mesh{Name: name}
		}
		st.currentMtl = mtl

	case "mtllib":
		if len(parts) > 1 {
			st.libraries = append(st.libraries, strings.Join(parts[1:], " "))
		}

	default:
		// vn, s, l, p and vendor extensions are not used by the viewer.
	}
	return nil
}

// faceVertex resolves one "v", "v/vt", "v//vn" or "v/vt/vn" token to a mesh vertex index.
func (st *objParseState) faceVertex(token string) (uint32, error) {
	fields := strings.Split(token, "/")

	pos, err := resolveIndex(fields[0], len(st.positions))
	if err != nil {
		return 0, fmt.Errorf("face vertex %q: %w", token, err)
	}
	uv := -1
	if len(fields) > 1 && fields[1] != "" {
		uv, err = resolveIndex(fields[1], len(st.uvs))
		if err != nil {
			return 0, fmt.Errorf("face texture coordinate %q: %w", token, err)
		}
	}

	key := objVertexKey{position: pos, uv: uv}
	if idx, ok := st.vertexMap[key]; ok {
		return idx, nil
	}

	var tex [2]float32
	if uv >= 0 {
		tex = st.uvs[uv]
	}
	idx := uint32(len(st.current.Vertices))
	st.current.Vertices = append(st.current.Vertices, model.NewGPUVertex(st.positions[pos], tex))
	st.vertexMap[key] = idx
	return idx, nil
}

// flush appends the current mesh if it has triangles and starts a fresh vertex map.
func (st *objParseState) flush() {
	if len(st.current.Indices) > 0 {
		st.meshes = append(st.meshes, st.current)
		st.meshMaterial = append(st.meshMaterial, st.currentMtl)
	}
	st.current = model.Mesh{Name: st.current.Name}
	st.vertexMap = make(map[objVertexKey]uint32)
}

// loadLibraries parses every referenced MTL file. A library that cannot be read is logged and skipped
// so that the geometry still loads untextured.
func (b *objLoaderBackend) loadLibraries(libraries []string, baseDir string) ([]model.Material, map[string]int) {
	var materials []model.Material
	index := make(map[string]int)

	for _, lib := range libraries {
		path := filepath.Join(baseDir, lib)
		f, err := os.Open(path)
		if err != nil {
			b.logger.Warn("failed to open material library", zap.String("path", path), zap.Error(err))
			continue
		}
		mtls, err := parseMTL(f, filepath.Dir(path))
		f.Close()
		if err != nil {
			b.logger.Warn("failed to parse material library", zap.String("path", path), zap.Error(err))
			continue
		}
		for _, m := range mtls {
			if _, dup := index[m.Name]; dup {
				continue
			}
			index[m.Name] = len(materials)
			materials = append(materials, m)
		}
	}
	return materials, index
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index into a 0-based slice index.
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index: %w", err)
	}
	switch {
	case i > 0 && i <= count:
		return i - 1, nil
	case i < 0 && -i <= count:
		return count + i, nil
	default:
		return 0, fmt.Errorf("index %d out of range (%d defined)", i, count)
	}
}

func parseFloats(fields []string) ([]float32, error) {
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}
