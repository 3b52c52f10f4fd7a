package termart

import (
	"fmt"
	"strings"
)

// ColorTag names one entry of a Palette. The zero value, NoColor, means the
// terminal's default foreground.
type ColorTag int

const (
	NoColor ColorTag = iota
	White
	Black
	Red
	Green
	Orange
	Blue
	Purple
	Cyan
	LightGrey
	DarkGrey
	LightRed
	LightGreen
	Yellow
	LightBlue
	Pink
	LightCyan
)

var tagNames = map[ColorTag]string{
	NoColor:    "none",
	White:      "white",
	Black:      "black",
	Red:        "red",
	Green:      "green",
	Orange:     "orange",
	Blue:       "blue",
	Purple:     "purple",
	Cyan:       "cyan",
	LightGrey:  "light-grey",
	DarkGrey:   "dark-grey",
	LightRed:   "light-red",
	LightGreen: "light-green",
	Yellow:     "yellow",
	LightBlue:  "light-blue",
	Pink:       "pink",
	LightCyan:  "light-cyan",
}

func (t ColorTag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ColorTag(%d)", int(t))
}

// ParseColorTag looks a tag up by its String() name. Underscores and
// spaces are accepted in place of dashes.
func ParseColorTag(name string) (ColorTag, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "-", " ", "-").Replace(name))
	for tag, n := range tagNames {
		if n == norm {
			return tag, nil
		}
	}
	return NoColor, fmt.Errorf("unknown color %q", name)
}

// PaletteEntry binds a tag to the SGR parameter that selects it and the
// RGB value the terminal is assumed to display for it.
type PaletteEntry struct {
	Tag  ColorTag
	Code string
	RGB  RGB
}

// Palette is an immutable, ordered set of colors. Order matters: nearest
// color searches break ties in favor of the earlier entry.
type Palette struct {
	entries []PaletteEntry
	byTag   map[ColorTag]int
}

// NewPalette builds a palette from entries in the given order. Duplicate
// or NoColor tags are rejected.
func NewPalette(entries ...PaletteEntry) (*Palette, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("palette: %w", ErrNoData)
	}
	p := &Palette{
		entries: make([]PaletteEntry, len(entries)),
		byTag:   make(map[ColorTag]int, len(entries)),
	}
	for i, e := range entries {
		if e.Tag == NoColor {
			return nil, fmt.Errorf("palette entry %d: NoColor is reserved", i)
		}
		if _, dup := p.byTag[e.Tag]; dup {
			return nil, fmt.Errorf("palette entry %d: duplicate tag %s", i, e.Tag)
		}
		p.entries[i] = e
		p.byTag[e.Tag] = i
	}
	return p, nil
}

// The 16 ANSI colors with the Tango terminal RGB values. White maps to SGR
// reset so it renders in the terminal's own default foreground.
var defaultEntries = []PaletteEntry{
	{White, "0", rgbFromUint32(0xEEEEEC)},
	{Black, "30", rgbFromUint32(0x2E3436)},
	{Red, "31", rgbFromUint32(0xCC0000)},
	{Green, "32", rgbFromUint32(0x4E9A06)},
	{Orange, "33", rgbFromUint32(0xC4A000)},
	{Blue, "34", rgbFromUint32(0x3465A4)},
	{Purple, "35", rgbFromUint32(0x75507B)},
	{Cyan, "36", rgbFromUint32(0x06989A)},
	{LightGrey, "37", rgbFromUint32(0xD3D7CF)},
	{DarkGrey, "90", rgbFromUint32(0x555753)},
	{LightRed, "91", rgbFromUint32(0xEF2929)},
	{LightGreen, "92", rgbFromUint32(0x8AE234)},
	{Yellow, "93", rgbFromUint32(0xFCE94F)},
	{LightBlue, "94", rgbFromUint32(0x729FCF)},
	{Pink, "95", rgbFromUint32(0xAD7FA8)},
	{LightCyan, "96", rgbFromUint32(0x34E2E2)},
}

// DefaultPalette returns the 16-color ANSI palette.
func DefaultPalette() *Palette {
	p, err := NewPalette(defaultEntries...)
	if err != nil {
		panic(err)
	}
	return p
}

// Entries returns a copy of the palette in declaration order.
func (p *Palette) Entries() []PaletteEntry {
	return append([]PaletteEntry(nil), p.entries...)
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.entries) }

// Lookup returns the entry for tag.
func (p *Palette) Lookup(tag ColorTag) (PaletteEntry, bool) {
	i, ok := p.byTag[tag]
	if !ok {
		return PaletteEntry{}, false
	}
	return p.entries[i], true
}

// Code returns the SGR parameter for tag, or "" if the palette lacks it.
func (p *Palette) Code(tag ColorTag) string {
	e, _ := p.Lookup(tag)
	return e.Code
}
