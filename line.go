package termart

import "math"

// Position addresses a grid cell.
type Position struct {
	Row, Col int
}

// DrawSegment rasterizes the straight segment from start to end by
// stepping one column at a time, from the smaller column up to but not
// including the larger one. Only blank cells are painted, so axes and
// data points drawn earlier are never overwritten.
//
// A segment whose endpoints share a column has no run to step over and is
// skipped; it reports false in that case.
func DrawSegment(grid *GlyphGrid, start, end Position, tag ColorTag) bool {
	if start.Col == end.Col {
		return false
	}
	m := float64(end.Row-start.Row) / float64(end.Col-start.Col)
	b := float64(start.Row) - m*float64(start.Col)

	for col := min(start.Col, end.Col); col < max(start.Col, end.Col); col++ {
		row := int(math.Floor(m*float64(col) + b))
		if grid.IsBlank(row, col) {
			grid.Set(row, col, Solid, tag)
		}
	}
	return true
}
