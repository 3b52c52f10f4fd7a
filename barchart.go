package termart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wbrown/termart/textwrap"
)

const (
	// BottomMargin is the number of rows reserved for labels below the
	// horizontal axis, the axis row included.
	BottomMargin = 5
	// Headroom scales the largest value so the tallest bar stops short
	// of the top row.
	Headroom = 1.1
	// MaxLabelLines bounds the wrapped label under each bar.
	MaxLabelLines = 4
	// LabelPlaceholder marks a label cut short.
	LabelPlaceholder = "..."
)

// NamedValue is one bar: a label and a non-negative value.
type NamedValue struct {
	Label string
	Value float64
}

// BarChart lays out one solid column per value, left to right in input
// order, scaled against the largest value.
type BarChart struct {
	Rows, Cols int
	settings
}

// NewBarChart creates a bar chart renderer for a rows x cols grid.
func NewBarChart(rows, cols int, opts ...Option) *BarChart {
	return &BarChart{Rows: rows, Cols: cols, settings: newSettings(opts)}
}

// barLayout holds the derived geometry of a bar chart.
type barLayout struct {
	leftMargin      int
	axisRow         int
	scaleMax        float64
	maxColumnHeight int
	recordWidth     int
	columnWidth     int
	spacing         int
}

func (c *BarChart) layout(values []NamedValue) (barLayout, error) {
	if len(values) == 0 {
		return barLayout{}, fmt.Errorf("bar chart: %w", ErrNoData)
	}
	maxValue := 0.0
	for _, v := range values {
		if v.Value < 0 || math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			return barLayout{}, fmt.Errorf("bar chart: %q=%v: %w",
				v.Label, v.Value, ErrInvalidValue)
		}
		maxValue = max(maxValue, v.Value)
	}
	if maxValue == 0 {
		return barLayout{}, fmt.Errorf("bar chart: all values are zero: %w", ErrZeroScale)
	}

	l := barLayout{
		leftMargin:      len(formatNumber(maxValue)) + 1,
		axisRow:         c.Rows - BottomMargin,
		scaleMax:        maxValue * Headroom,
		maxColumnHeight: c.Rows - BottomMargin - 1,
	}
	if l.maxColumnHeight < 1 || c.Cols <= l.leftMargin+1 {
		return barLayout{}, fmt.Errorf("bar chart: %dx%d: %w", c.Rows, c.Cols, ErrGridTooSmall)
	}
	l.recordWidth = (c.Cols - l.leftMargin) / len(values)
	l.columnWidth = l.recordWidth * 2 / 3
	l.spacing = l.recordWidth - l.columnWidth
	return l, nil
}

// columnHeight returns the number of solid rows drawn for value.
func (l barLayout) columnHeight(value float64) int {
	return int(math.Floor(value / l.scaleMax * float64(l.maxColumnHeight)))
}

// Render draws the chart. The grid is only allocated once the input has
// been validated.
func (c *BarChart) Render(values []NamedValue) (*GlyphGrid, error) {
	l, err := c.layout(values)
	if err != nil {
		return nil, err
	}
	grid := NewGlyphGrid(c.Rows, c.Cols, c.palette)
	drawAxes(grid, l.leftMargin, l.axisRow, c.color)

	for i, v := range values {
		height := l.columnHeight(v.Value)
		minX := i*l.recordWidth + l.spacing/2 + l.leftMargin + 1

		// The bar occupies exactly height rows directly above the axis.
		for y := l.axisRow - height; y < l.axisRow; y++ {
			for x := minX; x < minX+l.columnWidth; x++ {
				grid.Set(y, x, Solid, c.color)
			}
		}

		// Value, right-justified in the margin and cut to fit it, on the
		// row just above the bar's top.
		valueRow := l.maxColumnHeight - height
		valueText := textwrap.Clip(textwrap.PadLeft(formatNumber(v.Value), l.leftMargin), l.leftMargin)
		grid.WriteText(valueRow, 0, valueText, c.color)

		if l.columnWidth < 1 {
			continue
		}
		lines := textwrap.Wrap(v.Label, l.columnWidth, MaxLabelLines, LabelPlaceholder)
		for j, line := range lines {
			grid.WriteText(l.axisRow+1+j, minX, textwrap.Center(line, l.columnWidth), c.color)
		}
	}
	return grid, nil
}

// drawAxes draws the vertical axis from the top row down to just above
// axisRow at column leftMargin, the horizontal axis from leftMargin+1 to
// the right edge on axisRow, and the corner where they meet.
func drawAxes(grid *GlyphGrid, leftMargin, axisRow int, tag ColorTag) {
	for y := 0; y < axisRow; y++ {
		grid.Set(y, leftMargin, '│', tag)
	}
	for x := leftMargin + 1; x < grid.Cols(); x++ {
		grid.Set(axisRow, x, '─', tag)
	}
	grid.Set(axisRow, leftMargin, '└', tag)
}

// formatNumber renders v with the fewest digits that round-trip.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
