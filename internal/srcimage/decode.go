// Package srcimage ingests GIF, PNG, JPEG, WebP, BMP and TIFF source
// images so they can be quantized and re-encoded as TGIF.
package srcimage

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/gen2brain/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Decode reads an image out of data. hint is an optional file name or
// bare format name ("png", "jpg", ...) used to pick a decoder directly;
// an empty hint falls back to content sniffing. Grounded on
// internal/encode/decode.go's format-switch shape, extended with the
// extra source formats TGIF ingestion needs that the teacher's tile
// pipeline never had to read (GIF, BMP, TIFF).
func Decode(data []byte, hint string) (image.Image, error) {
	switch normalizeHint(hint) {
	case "png":
		return png.Decode(bytes.NewReader(data))
	case "jpeg", "jpg":
		return jpeg.Decode(bytes.NewReader(data))
	case "gif":
		return gif.Decode(bytes.NewReader(data))
	case "webp":
		return webp.Decode(bytes.NewReader(data))
	case "bmp":
		return bmp.Decode(bytes.NewReader(data))
	case "tiff", "tif":
		return tiff.Decode(bytes.NewReader(data))
	case "":
		return decodeSniffed(data)
	default:
		return nil, fmt.Errorf("srcimage: unsupported format %q", hint)
	}
}

func normalizeHint(hint string) string {
	if ext := filepath.Ext(hint); ext != "" {
		return strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	return strings.ToLower(hint)
}

// decodeSniffed tries every registered stdlib/x/image decoder (png, gif,
// jpeg, bmp and tiff all call image.RegisterFormat in their init()),
// then falls back to WebP explicitly since gen2brain/webp does not
// register itself the same way.
func decodeSniffed(data []byte) (image.Image, error) {
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("srcimage: could not detect a supported image format")
}
