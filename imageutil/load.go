package imageutil

// DefaultSymbolAspect is the height-to-width ratio of a terminal character
// cell (16x8 pixels).
const DefaultSymbolAspect = 16.0 / 8.0

// Prepare resizes img to width x height with bilinear interpolation and
// then applies the brightness factor.
func Prepare(img *RGBAImage, width, height int, brightness float64) *RGBAImage {
	resized := Resize(img, width, height, InterpolationLinear)
	return AdjustBrightness(resized, brightness)
}

// LoadAndResize decodes the image at path and prepares it for a grid of
// width x height cells. A height of 0 derives the height from the image
// aspect ratio and DefaultSymbolAspect.
func LoadAndResize(path string, width, height int, brightness float64) (*RGBAImage, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	if height <= 0 {
		height = CellHeight(width, img.Width(), img.Height(), DefaultSymbolAspect)
	}
	return Prepare(img, width, height, brightness), nil
}
