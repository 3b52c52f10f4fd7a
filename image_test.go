package termart

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestRasterizeMonochrome(t *testing.T) {
	t.Parallel()

	r := NewImageRasterizer()
	g, err := r.Rasterize(PixelGrid{{RGB{}}})
	if err != nil {
		t.Fatal(err)
	}
	if c := g.Get(0, 0); c.Glyph != ' ' || c.Color != NoColor {
		t.Errorf("Expected uncolored space for black, got %+v", c)
	}
	if got := g.String(); got != " \n" {
		t.Errorf("Expected %q, got %q", " \n", got)
	}
}

func TestRasterizeColorized(t *testing.T) {
	t.Parallel()

	pixels := PixelGrid{
		{RGB{255, 255, 255}, RGB{204, 0, 0}},
		{RGB{0, 0, 0}, RGB{52, 101, 164}},
	}
	g, err := NewImageRasterizer(WithColorized(true)).Rasterize(pixels)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Fatalf("Expected 2x2 grid, got %dx%d", g.Rows(), g.Cols())
	}

	want := [][]Cell{
		{{'@', White}, {'_', Red}},
		{{' ', Black}, {'\\', Blue}},
	}
	for y, row := range want {
		for x, w := range row {
			if c := g.Get(y, x); c != w {
				t.Errorf("Cell (%d,%d): expected %+v, got %+v", y, x, w, c)
			}
		}
	}
	lines := g.Lines()
	if lines[0] != "\x1b[0m@\x1b[31m_\x1b[0m" {
		t.Errorf("Unexpected first row %q", lines[0])
	}
	if lines[1] != "\x1b[30m \x1b[34m\\\x1b[0m" {
		t.Errorf("Unexpected second row %q", lines[1])
	}
}

func TestRasterizeOptions(t *testing.T) {
	t.Parallel()

	pixels := PixelGrid{{RGB{255, 255, 255}}}

	g, err := NewImageRasterizer(WithCorrectedLuminance()).Rasterize(pixels)
	if err != nil {
		t.Fatal(err)
	}
	if c := g.Get(0, 0); c.Glyph != '$' {
		t.Errorf("Expected corrected white to be '$', got %q", c.Glyph)
	}

	g, err = NewImageRasterizer(WithRamp(".#")).Rasterize(pixels)
	if err != nil {
		t.Fatal(err)
	}
	if c := g.Get(0, 0); c.Glyph != '.' {
		t.Errorf("Expected custom ramp glyph '.', got %q", c.Glyph)
	}
}

func TestRasterizeCachesColors(t *testing.T) {
	t.Parallel()

	pixels := PixelGrid{
		{RGB{10, 20, 30}, RGB{10, 20, 30}},
		{RGB{10, 20, 30}, RGB{10, 20, 30}},
	}
	r := NewImageRasterizer(WithColorized(true), WithColorMethod(LABMethod{}))
	if _, err := r.Rasterize(pixels); err != nil {
		t.Fatal(err)
	}
	hits, misses, _ := r.Quantizer().CacheStats()
	if hits != 3 || misses != 1 {
		t.Errorf("Expected 3 hits and 1 miss, got %d hits and %d misses", hits, misses)
	}
}

func TestRasterizeFreshCachePerCall(t *testing.T) {
	t.Parallel()

	pixels := PixelGrid{{RGB{10, 20, 30}, RGB{10, 20, 30}}}
	r := NewImageRasterizer(WithColorized(true))
	if r.Quantizer() != nil {
		t.Error("Expected no quantizer before the first render")
	}
	for i := 0; i < 2; i++ {
		if _, err := r.Rasterize(pixels); err != nil {
			t.Fatal(err)
		}
		hits, misses, _ := r.Quantizer().CacheStats()
		if hits != 1 || misses != 1 {
			t.Errorf("Render %d: expected 1 hit and 1 miss, got %d hits and %d misses", i, hits, misses)
		}
	}
}

func TestRasterizeErrors(t *testing.T) {
	t.Parallel()

	r := NewImageRasterizer()
	if _, err := r.Rasterize(nil); !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData for empty grid, got %v", err)
	}
	if _, err := r.Rasterize(PixelGrid{{}}); !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData for empty row, got %v", err)
	}
	ragged := PixelGrid{{RGB{}, RGB{}}, {RGB{}}}
	if _, err := r.Rasterize(ragged); !errors.Is(err, ErrRaggedPixels) {
		t.Errorf("Expected ErrRaggedPixels, got %v", err)
	}
}

func TestPixelGridFromImage(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(5, 7, 8, 9))
	img.Set(5, 7, color.RGBA{R: 255, A: 255})
	img.Set(7, 8, color.RGBA{B: 200, A: 255})

	pixels := PixelGridFromImage(img)
	w, h, err := pixels.Size()
	if err != nil {
		t.Fatal(err)
	}
	if w != 3 || h != 2 {
		t.Fatalf("Expected 3x2 pixels, got %dx%d", w, h)
	}
	if pixels[0][0] != (RGB{R: 255}) {
		t.Errorf("Expected red at origin, got %v", pixels[0][0])
	}
	if pixels[1][2] != (RGB{B: 200}) {
		t.Errorf("Expected blue at bottom right, got %v", pixels[1][2])
	}
}
