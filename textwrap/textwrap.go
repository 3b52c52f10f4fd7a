// Package textwrap lays out short labels inside fixed-width terminal
// columns. Widths are display widths, so East Asian wide runes count as
// two cells.
package textwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks s into lines no wider than width, splitting on whitespace
// and breaking words that are wider than a line. If more than maxLines
// lines would be produced, the last kept line is shortened so that
// placeholder fits after it. maxLines <= 0 means unlimited.
//
// A placeholder wider than width cannot be shown; the text is then cut at
// maxLines without one.
func Wrap(s string, width, maxLines int, placeholder string) []string {
	if width < 1 {
		return nil
	}
	lines := greedy(strings.Fields(s), width)
	if maxLines <= 0 || len(lines) <= maxLines {
		return joinAll(lines)
	}
	if runewidth.StringWidth(placeholder) > width {
		return joinAll(lines[:maxLines])
	}
	return shorten(lines[:maxLines], width, placeholder)
}

// greedy fills lines word by word. Each line is kept as its list of
// words so that shorten can drop them one at a time.
func greedy(words []string, width int) [][]string {
	var lines [][]string
	var cur []string
	curWidth := 0

	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, cur)
		}
		cur, curWidth = nil, 0
	}

	for _, word := range words {
		sep := 0
		if len(cur) > 0 {
			sep = 1
		}
		ww := runewidth.StringWidth(word)
		if curWidth+sep+ww <= width {
			cur = append(cur, word)
			curWidth += sep + ww
			continue
		}
		if ww <= width {
			flush()
			cur, curWidth = []string{word}, ww
			continue
		}

		// Long word: use what is left of the current line, then whole
		// lines, and carry the tail forward.
		if left := width - curWidth - sep; left > 0 {
			head, rest := splitAtWidth(word, left)
			if head != "" {
				cur = append(cur, head)
				word = rest
			}
		}
		flush()
		for runewidth.StringWidth(word) > width {
			var head string
			head, word = splitAtWidth(word, width)
			if head == "" {
				// A single rune wider than the line; emit it alone.
				head, word = splitFirstRune(word)
			}
			lines = append(lines, []string{head})
		}
		if word != "" {
			cur, curWidth = []string{word}, runewidth.StringWidth(word)
		}
	}
	flush()
	return lines
}

func shorten(lines [][]string, width int, placeholder string) []string {
	phWidth := runewidth.StringWidth(placeholder)
	last := lines[len(lines)-1]
	kept := joinAll(lines[:len(lines)-1])

	for n := len(last); n > 0; n-- {
		line := strings.Join(last[:n], " ")
		if runewidth.StringWidth(line)+phWidth <= width {
			return append(kept, line+placeholder)
		}
	}
	if len(kept) > 0 {
		prev := strings.TrimRight(kept[len(kept)-1], " ")
		if runewidth.StringWidth(prev)+phWidth <= width {
			kept[len(kept)-1] = prev + placeholder
			return kept
		}
	}
	return append(kept, strings.TrimLeft(placeholder, " "))
}

// splitAtWidth returns the longest prefix of s whose display width does
// not exceed w, and the remainder.
func splitAtWidth(s string, w int) (string, string) {
	width := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > w {
			return s[:i], s[i:]
		}
		width += rw
	}
	return s, ""
}

func splitFirstRune(s string) (string, string) {
	for i := range s {
		if i > 0 {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func joinAll(lines [][]string) []string {
	out := make([]string, len(lines))
	for i, words := range lines {
		out[i] = strings.Join(words, " ")
	}
	return out
}

// Center pads s on both sides to width. When the padding is odd the extra
// space goes on the right, except for odd widths, where it goes on the
// left. Strings already at least width wide are returned unchanged.
func Center(s string, width int) string {
	margin := width - runewidth.StringWidth(s)
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}

// PadLeft right-justifies s in a field of width cells.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// Clip cuts s to at most width cells, keeping its leading part.
func Clip(s string, width int) string {
	return runewidth.Truncate(s, max(width, 0), "")
}

// Width returns the display width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
