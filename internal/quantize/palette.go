// Package quantize reduces an arbitrary source image's colors down to the
// RGB565 palette a TGIF image embeds in its header.
package quantize

import (
	"fmt"
	"image"
	"image/color"

	"github.com/urjaman/tgif/internal/tgif"
)

// Result is a quantized image ready for tgif.Encoder: a flat, row-major
// slice of palette indices plus the palette itself.
type Result struct {
	Width, Height int
	Palette       tgif.Palette
	Indices       []byte
}

// Quantize converts img to RGB565 and deduplicates colors into a palette
// of at most maxColors entries. Grounded on convert.c's MapColor: a
// first-seen-wins linear scan rather than a median-cut/octree reduction,
// since TGIF's source images are typically already palettized (GIFs) or
// small enough that a linear scan is cheap. When the image's RGB565
// color count exceeds maxColors, Quantize returns an error instead of
// approximating — TGIF has no dithering or nearest-color fallback in its
// scope, and guessing silently would hide a caller mistake (e.g. feeding
// a photographic JPEG through a path meant for flat-color art).
func Quantize(img image.Image, maxColors int) (*Result, error) {
	if maxColors < 1 || maxColors > tgif.MaxPaletteSize {
		maxColors = tgif.MaxPaletteSize
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	res := &Result{Width: w, Height: h, Indices: make([]byte, w*h)}
	seen := make(map[tgif.Color]int, maxColors)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c := rgb565(uint8(r>>8), uint8(g>>8), uint8(b>>8))

			idx, ok := seen[c]
			if !ok {
				if len(res.Palette) >= maxColors {
					return nil, fmt.Errorf("quantize: source image needs more than %d distinct RGB565 colors", maxColors)
				}
				idx = len(res.Palette)
				seen[c] = idx
				res.Palette = append(res.Palette, c)
			}
			res.Indices[y*w+x] = byte(idx)
		}
	}

	return res, nil
}

func rgb565(r, g, b uint8) tgif.Color {
	return tgif.NewColor(r>>3, g>>2, b>>3)
}

// ColorAt converts a single color.Color to the RGB565 value TGIF stores.
func ColorAt(c color.Color) tgif.Color {
	r, g, b, _ := c.RGBA()
	return rgb565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
