package loader

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

// parseMTL reads a Wavefront material library. Only newmtl and map_Kd are used; texture
// paths are resolved against baseDir and decoded lazily by the renderer.
func parseMTL(r io.Reader, baseDir string) ([]model.Material, error) {
	var materials []model.Material
	current := -1

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "newmtl":
			if len(parts) < 2 {
				return nil, fmt.Errorf("newmtl needs a name")
			}
			materials = append(materials, model.Material{Name: strings.Join(parts[1:], " ")})
			current = len(materials) - 1
		case "map_Kd":
			if current < 0 || len(parts) < 2 {
				continue
			}
			// Options such as -s or -o precede the file name, which is always last.
			file := parts[len(parts)-1]
			materials[current].DiffuseTexture = &common.ImportedTexture{
				Name: file,
				Path: filepath.Join(baseDir, filepath.FromSlash(file)),
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read MTL data: %w", err)
	}
	return materials, nil
}
