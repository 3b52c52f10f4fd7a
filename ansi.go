package termart

import "strings"

const (
	ESC = "\u001b"

	// Reset restores the default graphic rendition.
	Reset = ESC + "[0m"
)

// writeSGR writes the select-graphic-rendition sequence for code.
func writeSGR(sb *strings.Builder, code string) {
	sb.WriteString(ESC)
	sb.WriteByte('[')
	sb.WriteString(code)
	sb.WriteByte('m')
}

// rowToAnsi renders one grid row. An SGR prefix is written only when the
// color differs from the previous cell, and a trailing reset is added if
// the row ends colored.
func rowToAnsi(sb *strings.Builder, row []Cell, palette *Palette) {
	current := NoColor
	for _, cell := range row {
		if cell.Glyph == continuation {
			continue
		}
		tag := cell.Color
		if tag != NoColor && palette.Code(tag) == "" {
			tag = NoColor
		}
		if tag != current {
			if tag == NoColor {
				sb.WriteString(Reset)
			} else {
				writeSGR(sb, palette.Code(tag))
			}
			current = tag
		}
		sb.WriteRune(cell.Glyph)
	}
	if current != NoColor {
		sb.WriteString(Reset)
	}
}
