package termart

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// barHeight counts the solid cells stacked directly above the axis in col.
func barHeight(g *GlyphGrid, axisRow, col int) int {
	h := 0
	for y := axisRow - 1; y >= 0 && g.Get(y, col).Glyph == Solid; y-- {
		h++
	}
	return h
}

func TestBarChartLayout(t *testing.T) {
	t.Parallel()

	values := []NamedValue{{"a", 10}, {"b", 20}}
	g, err := NewBarChart(20, 40, WithColor(Green)).Render(values)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 20 || g.Cols() != 40 {
		t.Fatalf("Expected 20x40 grid, got %dx%d", g.Rows(), g.Cols())
	}

	// leftMargin 3, axis row 15, record width 18, column width 12.
	const axisRow = 15
	if h := barHeight(g, axisRow, 7); h != 6 {
		t.Errorf("Expected bar a height 6, got %d", h)
	}
	if h := barHeight(g, axisRow, 25); h != 12 {
		t.Errorf("Expected bar b height 12, got %d", h)
	}
	for x := 7; x < 19; x++ {
		if g.Get(axisRow-1, x).Glyph != Solid {
			t.Errorf("Expected bar a to span col %d", x)
		}
	}
	if g.Get(axisRow-1, 6).Glyph == Solid || g.Get(axisRow-1, 19).Glyph == Solid {
		t.Error("Bar a wider than its column")
	}

	if c := g.Get(axisRow, 3); c.Glyph != '└' {
		t.Errorf("Expected corner at axis origin, got %q", c.Glyph)
	}
	for y := 0; y < axisRow; y++ {
		if c := g.Get(y, 3); c.Glyph != '│' {
			t.Errorf("Expected vertical axis at row %d, got %q", y, c.Glyph)
		}
	}
	for x := 4; x < 40; x++ {
		if c := g.Get(axisRow, x); c.Glyph != '─' {
			t.Errorf("Expected horizontal axis at col %d, got %q", x, c.Glyph)
		}
	}

	lines := g.Lines()
	if !strings.HasPrefix(stripAnsi(lines[8]), " 10") {
		t.Errorf("Expected value label of a on row 8, got %q", stripAnsi(lines[8]))
	}
	if !strings.HasPrefix(stripAnsi(lines[2]), " 20") {
		t.Errorf("Expected value label of b on row 2, got %q", stripAnsi(lines[2]))
	}
	if c := g.Get(16, 12); c.Glyph != 'a' {
		t.Errorf("Expected centered label 'a' at (16,12), got %q", c.Glyph)
	}
	if c := g.Get(16, 30); c.Glyph != 'b' {
		t.Errorf("Expected centered label 'b' at (16,30), got %q", c.Glyph)
	}

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if c := g.Get(y, x); !c.IsBlank() && c.Color != Green {
				t.Errorf("Cell (%d,%d) %q: expected green, got %s", y, x, c.Glyph, c.Color)
			}
		}
	}
}

func TestBarChartMonotonicHeights(t *testing.T) {
	t.Parallel()

	var values []NamedValue
	for i := 1; i <= 10; i++ {
		values = append(values, NamedValue{Label: strings.Repeat("x", i), Value: float64(i)})
	}
	g, err := NewBarChart(30, 80).Render(values)
	if err != nil {
		t.Fatal(err)
	}

	// leftMargin 3, record width 7, spacing 3.
	axisRow := 30 - BottomMargin
	maxColumnHeight := axisRow - 1
	prev := 0
	for i := range values {
		col := i*7 + 3/2 + 3 + 1
		h := barHeight(g, axisRow, col)
		if h < prev {
			t.Errorf("Bar %d height %d lower than previous %d", i, h, prev)
		}
		if h >= maxColumnHeight {
			t.Errorf("Bar %d height %d leaves no headroom", i, h)
		}
		prev = h
	}
}

func TestBarChartZeroValue(t *testing.T) {
	t.Parallel()

	g, err := NewBarChart(20, 40).Render([]NamedValue{{"none", 0}, {"some", 5}})
	if err != nil {
		t.Fatal(err)
	}
	if h := barHeight(g, 15, 7); h != 0 {
		t.Errorf("Expected zero value to draw no bar, got height %d", h)
	}
	// Its value label sits right above the axis.
	if got := stripAnsi(g.Lines()[14]); !strings.HasPrefix(got, " 0") {
		t.Errorf("Expected zero label on row 14, got %q", got)
	}
}

func TestBarChartValueLabelFitsMargin(t *testing.T) {
	t.Parallel()

	values := []NamedValue{{"big", 100}, {"small", 0.123456}}
	g, err := NewBarChart(20, 40).Render(values)
	if err != nil {
		t.Fatal(err)
	}
	// leftMargin is 4, sized from "100"; the small value's label sits on
	// row 14 and must stop short of the axis.
	for y := 0; y < 15; y++ {
		if c := g.Get(y, 4); c.Glyph != '│' {
			t.Errorf("Expected vertical axis at (%d,4), got %q", y, c.Glyph)
		}
	}
	if got := stripAnsi(g.Lines()[14]); !strings.HasPrefix(got, "0.12│") {
		t.Errorf("Expected clipped value label, got %q", got)
	}
}

func TestBarChartLongLabels(t *testing.T) {
	t.Parallel()

	values := []NamedValue{
		{"oak", 100},
		{"a very long coconut label that will never fit", 50},
	}
	g, err := NewBarChart(20, 30).Render(values)
	if err != nil {
		t.Fatal(err)
	}
	// Four label rows fit under the axis; the last one is shortened.
	lines := g.Lines()
	for i, want := range []string{"a very", "long", "coconut", "label..."} {
		if got := stripAnsi(lines[16+i]); !strings.Contains(got, want) {
			t.Errorf("Label row %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestBarChartManyValuesStayInBounds(t *testing.T) {
	t.Parallel()

	var values []NamedValue
	for i := 0; i < 100; i++ {
		values = append(values, NamedValue{Label: "label", Value: float64(i + 1)})
	}
	g, err := NewBarChart(10, 20).Render(values)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Lines()) != 10 {
		t.Errorf("Expected 10 rows, got %d", len(g.Lines()))
	}
}

func TestBarChartErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rows   int
		cols   int
		values []NamedValue
		want   error
	}{
		{"empty", 20, 40, nil, ErrNoData},
		{"negative", 20, 40, []NamedValue{{"a", -1}}, ErrInvalidValue},
		{"nan", 20, 40, []NamedValue{{"a", math.NaN()}}, ErrInvalidValue},
		{"inf", 20, 40, []NamedValue{{"a", math.Inf(1)}}, ErrInvalidValue},
		{"all zero", 20, 40, []NamedValue{{"a", 0}, {"b", 0}}, ErrZeroScale},
		{"too few rows", 6, 40, []NamedValue{{"a", 1}}, ErrGridTooSmall},
		{"too few cols", 20, 2, []NamedValue{{"a", 1}}, ErrGridTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewBarChart(tt.rows, tt.cols).Render(tt.values)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if g != nil {
				t.Error("Expected no grid on error")
			}
		})
	}
}

func stripAnsi(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
