package termart

import (
	"fmt"
	"image"
)

// PixelGrid is an image already resized to the output size, one pixel per
// terminal cell, indexed [row][col].
type PixelGrid [][]RGB

// PixelGridFromImage copies img into a PixelGrid.
func PixelGridFromImage(img image.Image) PixelGrid {
	bounds := img.Bounds()
	pixels := make(PixelGrid, bounds.Dy())
	for y := range pixels {
		pixels[y] = make([]RGB, bounds.Dx())
		for x := range pixels[y] {
			pixels[y][x] = RGBFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return pixels
}

// Size returns the grid's width and height, or an error if it is empty or
// its rows differ in length.
func (p PixelGrid) Size() (width, height int, err error) {
	if len(p) == 0 || len(p[0]) == 0 {
		return 0, 0, fmt.Errorf("pixel grid: %w", ErrNoData)
	}
	width = len(p[0])
	for y, row := range p {
		if len(row) != width {
			return 0, 0, fmt.Errorf("pixel grid row %d has %d pixels, want %d: %w",
				y, len(row), width, ErrRaggedPixels)
		}
	}
	return width, len(p), nil
}

// ImageRasterizer turns a PixelGrid into glyphs, one per pixel, picking the
// glyph by luminance and, in colorized mode, the nearest palette color.
type ImageRasterizer struct {
	settings
	quantizer *ColorQuantizer
}

// NewImageRasterizer creates an image rasterizer. Output is monochrome
// unless WithColorized(true) is given.
func NewImageRasterizer(opts ...Option) *ImageRasterizer {
	return &ImageRasterizer{settings: newSettings(opts)}
}

// Rasterize maps every pixel to one cell of a grid of the same size. No
// aspect correction happens here; the pixels must already be sized for
// the terminal.
func (r *ImageRasterizer) Rasterize(pixels PixelGrid) (*GlyphGrid, error) {
	width, height, err := pixels.Size()
	if err != nil {
		return nil, err
	}
	mapper := r.luminanceMapper()
	// Each render starts with an empty color cache.
	q := NewColorQuantizer(r.palette, r.colorMethod)
	r.quantizer = q
	grid := NewGlyphGrid(height, width, r.palette)
	for y, row := range pixels {
		for x, c := range row {
			tag := NoColor
			if r.colorized {
				tag = q.Nearest(c)
			}
			grid.Set(y, x, mapper.GlyphFor(c), tag)
		}
	}
	return grid, nil
}

// Quantizer returns the color quantizer of the most recent Rasterize
// call, mainly for its cache statistics. It is nil before the first call.
func (r *ImageRasterizer) Quantizer() *ColorQuantizer {
	return r.quantizer
}
