package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear Interpolation = iota

	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		scaler = draw.CatmullRom
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.BiLinear
	}

	scaler.Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// CellHeight returns the number of character rows needed to show an image
// of imgWidth x imgHeight pixels across width columns, when one character
// cell is symbolAspect times taller than it is wide. The result is at
// least 1.
func CellHeight(width, imgWidth, imgHeight int, symbolAspect float64) int {
	if imgWidth <= 0 || imgHeight <= 0 || symbolAspect <= 0 {
		return 1
	}
	aspect := float64(imgWidth) / float64(imgHeight)
	height := int(float64(width)/aspect/symbolAspect + 0.5)
	return max(height, 1)
}
