package imageutil

import (
	"image"

	"github.com/disintegration/gift"
)

// AdjustBrightness scales every color channel by factor, clipping at full
// intensity. 1 leaves the image unchanged, 0 makes it black, values above
// 1 brighten it. Alpha is preserved.
func AdjustBrightness(img *RGBAImage, factor float64) *RGBAImage {
	if factor == 1 {
		return img.Clone()
	}
	f := float32(max(factor, 0))
	g := gift.New(gift.ColorFunc(
		func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
			return min(r0*f, 1), min(g0*f, 1), min(b0*f, 1), a0
		},
	))
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img.RGBA)
	return &RGBAImage{RGBA: dst}
}
