package termart

import "math"

// ColorQuantizer maps arbitrary colors to the nearest palette entry.
//
// Results are memoised per input color, since decoded images repeat
// colors heavily. The cache belongs to the quantizer; a quantizer is meant
// to live for a single render.
type ColorQuantizer struct {
	palette *Palette
	method  ColorDistanceMethod
	tree    *colorNode

	cache        map[uint32]ColorTag
	lookupHits   int
	lookupMisses int
}

// NewColorQuantizer creates a quantizer over palette. A nil palette selects
// DefaultPalette and a nil method selects RGBMethod.
func NewColorQuantizer(palette *Palette, method ColorDistanceMethod) *ColorQuantizer {
	if palette == nil {
		palette = DefaultPalette()
	}
	if method == nil {
		method = RGBMethod{}
	}
	q := &ColorQuantizer{
		palette: palette,
		method:  method,
		cache:   make(map[uint32]ColorTag),
	}
	if _, ok := method.(RGBMethod); ok && palette.Len() >= kdTreeMinColors {
		q.tree = newPaletteTree(palette)
	}
	return q
}

// Nearest returns the tag of the palette color closest to c. On a tie the
// entry declared first in the palette wins.
func (q *ColorQuantizer) Nearest(c RGB) ColorTag {
	key := c.toUint32()
	if tag, ok := q.cache[key]; ok {
		q.lookupHits++
		return tag
	}
	q.lookupMisses++
	var best ColorTag
	if q.tree != nil {
		best = q.tree.nearest(c)
	} else {
		best = q.scan(c)
	}
	q.cache[key] = best
	return best
}

// scan compares c against every palette entry in declaration order.
func (q *ColorQuantizer) scan(c RGB) ColorTag {
	best := NoColor
	minDistance := math.MaxFloat64
	for _, entry := range q.palette.entries {
		d := q.method.Distance(c, entry.RGB)
		if d < minDistance {
			minDistance = d
			best = entry.Tag
		}
	}
	return best
}

// CacheStats returns cache hit/miss statistics.
func (q *ColorQuantizer) CacheStats() (hits, misses int, hitRate float64) {
	total := q.lookupHits + q.lookupMisses
	if total == 0 {
		return 0, 0, 0
	}
	return q.lookupHits, q.lookupMisses, float64(q.lookupHits) / float64(total)
}
