package termart

import (
	"image/color"
	"math"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255.
type RGB struct {
	R, G, B uint8
}

// toUint32 packs an RGB color into a 32-bit unsigned integer
func (r RGB) toUint32() uint32 {
	return uint32(r.R)<<16 | uint32(r.G)<<8 | uint32(r.B)
}

// rgbFromUint32 converts a 32-bit unsigned integer to an RGB color
func rgbFromUint32(c uint32) RGB {
	return RGB{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

// RGBFromColor converts any color.Color to RGB, dropping alpha.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ToColor converts RGB to an opaque color.RGBA.
func (r RGB) ToColor() color.RGBA {
	return color.RGBA{R: r.R, G: r.G, B: r.B, A: 255}
}

// average returns the mean of the three channels.
func (r RGB) average() float64 {
	return (float64(r.R) + float64(r.G) + float64(r.B)) / 3
}

// colorDistance calculates the Euclidean distance between two RGB colors
// in the RGB color space.
func (r RGB) colorDistance(other RGB) float64 {
	dr := int(r.R) - int(other.R)
	dg := int(r.G) - int(other.G)
	db := int(r.B) - int(other.B)
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}
