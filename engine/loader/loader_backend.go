package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

// loaderBackend defines the generic interface for decoding a model from a stream.
// Concrete implementations (e.g., objLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load decodes a model from r.
	//
	// Parameters:
	//   - name: the model name
	//   - r: the reader providing model data
	//   - baseDir: directory used to resolve referenced files
	//
	// Returns:
	//   - model.Model: the decoded model
	//   - error: error if decoding fails
	Load(name string, r io.Reader, baseDir string) (model.Model, error)
}
