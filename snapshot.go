package termart

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/wbrown/termart/imageutil"
)

const (
	// GlyphWidth and GlyphHeight define the snapshot character cell size.
	// The 1:2 ratio matches a typical terminal cell.
	GlyphWidth  = 8
	GlyphHeight = 16

	glyphPointSize = 13
)

// GlyphBitmap is an 8x16 character, one byte per row, bit x set where
// the glyph covers column x.
type GlyphBitmap [GlyphHeight]uint8

// getBit checks if a specific bit is set in the bitmap
func (g GlyphBitmap) getBit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g[y]&(1<<x) != 0
}

// setBit sets a specific bit in the bitmap
func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	if value {
		g[y] |= 1 << x
	} else {
		g[y] &^= 1 << x
	}
}

// FontBitmaps rasterizes glyphs of a TrueType font on demand and keeps
// them for reuse.
type FontBitmaps struct {
	font   *truetype.Font
	glyphs map[rune]GlyphBitmap
	name   string
}

// LoadFontBitmaps prepares the Go Mono font, which covers the box drawing
// and block glyphs the charts use.
func LoadFontBitmaps() (*FontBitmaps, error) {
	return LoadFontBitmapsFromTTF(gomono.TTF, "Go Mono")
}

// LoadFontBitmapsFromTTF prepares a font from raw TrueType data.
func LoadFontBitmapsFromTTF(ttf []byte, name string) (*FontBitmaps, error) {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	return &FontBitmaps{
		font:   f,
		glyphs: make(map[rune]GlyphBitmap),
		name:   name,
	}, nil
}

// Name returns the font name.
func (fb *FontBitmaps) Name() string { return fb.name }

// GetGlyph returns the bitmap for r, rendering it on first use. Blank and
// Solid are synthesized so bars tile without gaps.
func (fb *FontBitmaps) GetGlyph(r rune) GlyphBitmap {
	if bitmap, ok := fb.glyphs[r]; ok {
		return bitmap
	}
	var bitmap GlyphBitmap
	switch r {
	case Blank, continuation:
	case Solid:
		for y := range bitmap {
			bitmap[y] = 0xFF
		}
	default:
		bitmap = renderGlyphToBitmap(fb.font, r)
	}
	fb.glyphs[r] = bitmap
	return bitmap
}

// renderGlyphToBitmap renders a single glyph into an 8x16 cell, keeping
// pixels with more than 25% coverage so thin strokes survive.
func renderGlyphToBitmap(ttfFont *truetype.Font, r rune) GlyphBitmap {
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    glyphPointSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(glyphPointSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	baselineY := (GlyphHeight + ascent - descent) / 2

	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baselineY)); err != nil {
		return GlyphBitmap{}
	}

	var bitmap GlyphBitmap
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 {
				bitmap.setBit(x, y, true)
			}
		}
	}
	return bitmap
}

// RenderGrid paints grid as an image on a black background, each cell
// GlyphWidth x GlyphHeight pixels times scale. Colored cells use their
// palette RGB; uncolored cells use the palette's White, or light grey if
// the palette has none.
func (fb *FontBitmaps) RenderGrid(grid *GlyphGrid, scale int) *image.RGBA {
	scale = max(scale, 1)
	cw, ch := GlyphWidth*scale, GlyphHeight*scale
	img := image.NewRGBA(image.Rect(0, 0, grid.Cols()*cw, grid.Rows()*ch))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	defaultFG := RGB{R: 0xD3, G: 0xD7, B: 0xCF}
	if e, ok := grid.Palette().Lookup(White); ok {
		defaultFG = e.RGB
	}

	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			cell := grid.Get(y, x)
			fg := defaultFG
			if e, ok := grid.Palette().Lookup(cell.Color); ok {
				fg = e.RGB
			}
			fb.renderBitmap(img, fb.GetGlyph(cell.Glyph), x*cw, y*ch, scale, fg)
		}
	}
	return img
}

// renderBitmap paints the set bits of bitmap at the given position with
// scaling.
func (fb *FontBitmaps) renderBitmap(img *image.RGBA, bitmap GlyphBitmap, startX, startY, scale int, fg RGB) {
	c := fg.ToColor()
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if !bitmap.getBit(x, y) {
				continue
			}
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					img.SetRGBA(startX+x*scale+sx, startY+y*scale+sy, c)
				}
			}
		}
	}
}

// SaveGridPNG renders grid with fb and writes it to path as PNG.
func SaveGridPNG(grid *GlyphGrid, fb *FontBitmaps, path string, scale int) error {
	return imageutil.SavePNG(fb.RenderGrid(grid, scale), path)
}
