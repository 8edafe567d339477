// package common contains plain types and helpers shared across the viewer. They are not interface-wrapped structs,
// just plain structs and functions that express commonly used data.
package common

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// ErrNoTextureSource is returned by Decode when a texture has neither embedded bytes nor a path.
var ErrNoTextureSource = errors.New("texture has neither data nor path")

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
type TextureStagingData struct {
	// Pixels is the RGBA8 pixel data, 4 bytes per pixel, row-major.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// ImportedTexture references an image used by a material.
// For external textures the Path field holds the file path, for in-memory images Data holds the encoded bytes.
type ImportedTexture struct {
	// Name is an identifier for this texture (e.g., the MTL map_Kd value).
	Name string

	// Path is the file path for external textures.
	Path string

	// Data contains encoded image bytes (PNG/JPEG). Takes precedence over Path.
	Data []byte

	// Width is the texture width in pixels (populated after Decode).
	Width int

	// Height is the texture height in pixels (populated after Decode).
	Height int
}

// Decode decodes the texture to raw RGBA pixel data.
// Uses either Data bytes or loads from Path on disk. Supports PNG and JPEG formats.
// Reference: https://pkg.go.dev/image
//
// Returns:
//   - *TextureStagingData: RGBA pixels with their dimensions
//   - error: error if decoding fails
func (t *ImportedTexture) Decode() (*TextureStagingData, error) {
	if t == nil {
		return nil, fmt.Errorf("texture is nil")
	}

	var img image.Image
	var err error

	switch {
	case len(t.Data) > 0:
		img, _, err = image.Decode(bytes.NewReader(t.Data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode embedded image: %w", err)
		}
	case t.Path != "":
		file, fileErr := os.Open(t.Path)
		if fileErr != nil {
			return nil, fmt.Errorf("failed to open texture file %s: %w", t.Path, fileErr)
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode texture file %s: %w", t.Path, err)
		}
	default:
		return nil, ErrNoTextureSource
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	t.Width = bounds.Dx()
	t.Height = bounds.Dy()

	return &TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(t.Width),
		Height: uint32(t.Height),
	}, nil
}

// WhiteTexture returns a 1x1 opaque white texture, used for materials without a diffuse map.
//
// Returns:
//   - *TextureStagingData: single white RGBA pixel
func WhiteTexture() *TextureStagingData {
	return &TextureStagingData{Pixels: []byte{255, 255, 255, 255}, Width: 1, Height: 1}
}
