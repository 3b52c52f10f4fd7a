package termart

import "math"

// DefaultRamp orders glyphs from least ink to most ink.
const DefaultRamp = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

// LuminanceMapper picks a ramp glyph proportional to a color's average
// channel intensity.
//
// By default the chosen index is shifted down by one position, which keeps
// output identical to earlier renders of this tool: black still maps to
// the first glyph but white maps to the second-to-last. The shift is very
// likely an off-by-one; NewCorrectedLuminanceMapper drops it.
type LuminanceMapper struct {
	ramp      []rune
	corrected bool
}

// NewLuminanceMapper returns a mapper over ramp with the legacy one
// position bias. An empty ramp selects DefaultRamp.
func NewLuminanceMapper(ramp string) *LuminanceMapper {
	if ramp == "" {
		ramp = DefaultRamp
	}
	return &LuminanceMapper{ramp: []rune(ramp)}
}

// NewCorrectedLuminanceMapper is NewLuminanceMapper without the bias, so
// the full ramp is reachable.
func NewCorrectedLuminanceMapper(ramp string) *LuminanceMapper {
	m := NewLuminanceMapper(ramp)
	m.corrected = true
	return m
}

// Len returns the number of glyphs in the ramp.
func (m *LuminanceMapper) Len() int { return len(m.ramp) }

// Index returns the ramp position used for c.
func (m *LuminanceMapper) Index(c RGB) int {
	last := len(m.ramp) - 1
	idx := int(math.Floor(c.average() / 255 * float64(len(m.ramp))))
	idx = min(max(idx, 0), last)
	if !m.corrected {
		idx = max(idx-1, 0)
	}
	return idx
}

// GlyphFor returns the ramp glyph for c.
func (m *LuminanceMapper) GlyphFor(c RGB) rune {
	return m.ramp[m.Index(c)]
}
