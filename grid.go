package termart

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/wbrown/termart/terminal"
)

const (
	// Blank is the glyph of an unwritten cell.
	Blank = ' '
	// Solid is the full block used for bars, points and line segments.
	Solid = '█'

	// continuation fills the cell covered by the right half of a wide rune.
	continuation rune = 0
)

// Cell is one terminal character cell: a printable glyph and an optional
// color tag.
type Cell struct {
	Glyph rune
	Color ColorTag
}

// IsBlank reports whether the cell still holds the blank glyph.
func (c Cell) IsBlank() bool {
	return c.Glyph == Blank
}

// GlyphGrid is a rows x cols buffer of styled characters. Writes outside
// the grid are ignored, so callers clip where clipping carries meaning.
type GlyphGrid struct {
	rows, cols int
	cells      [][]Cell
	palette    *Palette
}

// NewGlyphGrid returns a grid filled with blank, uncolored cells. A nil
// palette selects DefaultPalette. Negative sizes are treated as zero.
func NewGlyphGrid(rows, cols int, palette *Palette) *GlyphGrid {
	rows, cols = max(rows, 0), max(cols, 0)
	if palette == nil {
		palette = DefaultPalette()
	}
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
		for x := range cells[y] {
			cells[y][x] = Cell{Glyph: Blank}
		}
	}
	return &GlyphGrid{rows: rows, cols: cols, cells: cells, palette: palette}
}

// Rows returns the grid height.
func (g *GlyphGrid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *GlyphGrid) Cols() int { return g.cols }

// Palette returns the palette used to emit color tags.
func (g *GlyphGrid) Palette() *Palette { return g.palette }

// InBounds reports whether (row, col) addresses a cell.
func (g *GlyphGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Set overwrites a cell. Out of bounds writes are a no-op.
func (g *GlyphGrid) Set(row, col int, glyph rune, tag ColorTag) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row][col] = Cell{Glyph: glyph, Color: tag}
}

// Get returns the cell at (row, col); out of bounds reads return a blank
// cell.
func (g *GlyphGrid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Cell{Glyph: Blank}
	}
	return g.cells[row][col]
}

// IsBlank reports whether (row, col) is an in-bounds blank cell.
func (g *GlyphGrid) IsBlank(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col].IsBlank()
}

// WriteText copies s starting at (row, col). A double-width rune takes
// two cells, the second holding a continuation marker that prints
// nothing. Runes falling outside the grid are dropped.
func (g *GlyphGrid) WriteText(row, col int, s string, tag ColorTag) {
	x := col
	for _, r := range s {
		g.Set(row, x, r, tag)
		if runewidth.RuneWidth(r) == 2 {
			x++
			g.Set(row, x, continuation, tag)
		}
		x++
	}
}

// Lines returns each row as a string with color prefixes.
func (g *GlyphGrid) Lines() []string {
	lines := make([]string, g.rows)
	var sb strings.Builder
	for y, row := range g.cells {
		sb.Reset()
		rowToAnsi(&sb, row, g.palette)
		lines[y] = sb.String()
	}
	return lines
}

// String joins all rows, top to bottom, each terminated by a newline.
func (g *GlyphGrid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		rowToAnsi(&sb, row, g.palette)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the rendered grid to w in a single write.
func (g *GlyphGrid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

// Flush clears the terminal behind w, when it is one, and writes the grid.
func (g *GlyphGrid) Flush(w io.Writer) error {
	if err := terminal.Clear(w); err != nil {
		return err
	}
	_, err := g.WriteTo(w)
	return err
}
