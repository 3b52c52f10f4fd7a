package termart

import (
	"sort"
)

// kdTreeMinColors is the palette size from which a quantizer using
// RGBMethod indexes the palette in a k-d tree instead of scanning it.
const kdTreeMinColors = 32

// colorNode is a k-d tree node holding one palette entry. index is the
// entry's position in the palette and breaks distance ties, so the tree
// agrees with a linear scan.
type colorNode struct {
	tag         ColorTag
	color       RGB
	index       int
	left, right *colorNode
	splitAxis   int
}

type indexedColor struct {
	tag   ColorTag
	color RGB
	index int
}

// newPaletteTree builds a k-d tree over every palette entry.
func newPaletteTree(p *Palette) *colorNode {
	colors := make([]indexedColor, len(p.entries))
	for i, e := range p.entries {
		colors[i] = indexedColor{tag: e.Tag, color: e.RGB, index: i}
	}
	return buildKDTree(colors)
}

// buildKDTree splits on the axis with the largest variance and recurses
// on each half of the median.
func buildKDTree(colors []indexedColor) *colorNode {
	if len(colors) == 0 {
		return nil
	}

	axis := chooseSplitAxis(colors)
	sort.SliceStable(colors, func(i, j int) bool {
		return getColorComponent(colors[i].color, axis) <
			getColorComponent(colors[j].color, axis)
	})

	median := len(colors) / 2
	return &colorNode{
		tag:       colors[median].tag,
		color:     colors[median].color,
		index:     colors[median].index,
		left:      buildKDTree(colors[:median]),
		right:     buildKDTree(colors[median+1:]),
		splitAxis: axis,
	}
}

// chooseSplitAxis returns the index of the channel with the largest
// variance.
func chooseSplitAxis(colors []indexedColor) int {
	var varR, varG, varB float64
	var meanR, meanG, meanB float64

	for _, c := range colors {
		meanR += float64(c.color.R)
		meanG += float64(c.color.G)
		meanB += float64(c.color.B)
	}
	n := float64(len(colors))
	meanR /= n
	meanG /= n
	meanB /= n

	for _, c := range colors {
		dr := float64(c.color.R) - meanR
		dg := float64(c.color.G) - meanG
		db := float64(c.color.B) - meanB
		varR += dr * dr
		varG += dg * dg
		varB += db * db
	}

	if varR > varG && varR > varB {
		return 0 // R axis
	} else if varG > varB {
		return 1 // G axis
	}
	return 2 // B axis
}

func getColorComponent(c RGB, axis int) uint8 {
	switch axis {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

func squaredDistance(c1, c2 RGB) int {
	dr := int(c1.R) - int(c2.R)
	dg := int(c1.G) - int(c2.G)
	db := int(c1.B) - int(c2.B)
	return dr*dr + dg*dg + db*db
}

// nearest returns the tag of the entry closest to target in plain RGB
// distance, preferring the lowest palette index on a tie.
func (node *colorNode) nearest(target RGB) ColorTag {
	best, _ := node.nearestNeighbor(target, nil, 0)
	if best == nil {
		return NoColor
	}
	return best.tag
}

func (node *colorNode) nearestNeighbor(
	target RGB, best *colorNode, bestDist int) (*colorNode, int) {
	if node == nil {
		return best, bestDist
	}

	dist := squaredDistance(node.color, target)
	if best == nil || dist < bestDist || (dist == bestDist && node.index < best.index) {
		best, bestDist = node, dist
	}

	axisDist := int(getColorComponent(target, node.splitAxis)) -
		int(getColorComponent(node.color, node.splitAxis))
	next, other := node.right, node.left
	if axisDist < 0 {
		next, other = node.left, node.right
	}

	best, bestDist = next.nearestNeighbor(target, best, bestDist)

	// Equal distances may still hold an earlier palette entry.
	if axisDist*axisDist <= bestDist {
		best, bestDist = other.nearestNeighbor(target, best, bestDist)
	}
	return best, bestDist
}
