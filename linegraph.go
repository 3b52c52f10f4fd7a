package termart

import (
	"fmt"
	"math"

	"github.com/wbrown/termart/textwrap"
)

// labelDecimals is the precision of the values printed beside points.
const labelDecimals = 5

// Point is one (x, y) sample of a line graph.
type Point struct {
	X, Y float64
}

// LineGraph plots points as solid cells joined by straight connector
// segments, in input order.
type LineGraph struct {
	Rows, Cols int
	settings
}

// NewLineGraph creates a line graph renderer for a rows x cols grid.
func NewLineGraph(rows, cols int, opts ...Option) *LineGraph {
	return &LineGraph{Rows: rows, Cols: cols, settings: newSettings(opts)}
}

type graphLayout struct {
	leftMargin int
	axisRow    int
	maxX, maxY float64
}

func (g *LineGraph) layout(points []Point) (graphLayout, error) {
	if len(points) == 0 {
		return graphLayout{}, fmt.Errorf("line graph: %w", ErrNoData)
	}
	l := graphLayout{
		axisRow: g.Rows - BottomMargin,
		maxX:    math.Inf(-1),
		maxY:    math.Inf(-1),
	}
	widest := 0
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return graphLayout{}, fmt.Errorf("line graph: (%v, %v): %w", p.X, p.Y, ErrInvalidValue)
		}
		l.maxX = max(l.maxX, p.X)
		l.maxY = max(l.maxY, p.Y)
		widest = max(widest, len(yLabel(p.Y)))
	}
	// A zero maximum would divide by zero; fail rather than pick a scale.
	if l.maxX <= 0 {
		return graphLayout{}, fmt.Errorf("line graph: max x is %v: %w", l.maxX, ErrZeroScale)
	}
	if l.maxY <= 0 {
		return graphLayout{}, fmt.Errorf("line graph: max y is %v: %w", l.maxY, ErrZeroScale)
	}
	l.leftMargin = widest + 1
	if l.axisRow < 1 || g.Cols <= l.leftMargin+1 {
		return graphLayout{}, fmt.Errorf("line graph: %dx%d: %w", g.Rows, g.Cols, ErrGridTooSmall)
	}
	return l, nil
}

// locate returns the cell a point is plotted at.
func (l graphLayout) locate(p Point, rows, cols int) Position {
	return Position{
		Row: rows - BottomMargin - int(math.Floor(p.Y/l.maxY*float64(rows-BottomMargin))),
		Col: l.leftMargin + int(math.Floor(p.X/l.maxX*float64(cols-l.leftMargin-1))),
	}
}

// Render draws the graph: connectors first, then points over them, then
// labels, and the axes last so they always win at the origin.
func (g *LineGraph) Render(points []Point) (*GlyphGrid, error) {
	l, err := g.layout(points)
	if err != nil {
		return nil, err
	}
	grid := NewGlyphGrid(g.Rows, g.Cols, g.palette)

	labelRows := BottomMargin - 1
	prev := Position{Row: l.axisRow, Col: l.leftMargin}
	for i, p := range points {
		pos := l.locate(p, g.Rows, g.Cols)
		if i > 0 || g.leadIn {
			DrawSegment(grid, prev, pos, g.connector)
		}
		prev = pos

		grid.Set(pos.Row, pos.Col, Solid, g.color)

		if grid.InBounds(pos.Row, 0) {
			grid.WriteText(pos.Row, 0, textwrap.PadLeft(yLabel(p.Y), l.leftMargin), g.color)
		}

		// x labels rotate through the rows under the axis so that
		// neighbouring labels are less likely to collide.
		xText := formatNumber(roundTo(p.X, labelDecimals))
		row := l.axisRow + 1 + i%labelRows
		grid.WriteText(row, pos.Col-textwrap.Width(xText)/2, xText, g.color)
	}

	drawAxes(grid, l.leftMargin, l.axisRow, g.color)
	return grid, nil
}

// Position returns the cell p would be plotted at for the given point
// set, or an error if the set cannot be laid out.
func (g *LineGraph) Position(points []Point, p Point) (Position, error) {
	l, err := g.layout(points)
	if err != nil {
		return Position{}, err
	}
	return l.locate(p, g.Rows, g.Cols), nil
}

func yLabel(y float64) string {
	return formatNumber(roundTo(y, labelDecimals))
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
