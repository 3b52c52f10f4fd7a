// Package termart draws bar charts, line graphs and images as grids of
// terminal character cells.
//
// Every renderer produces a GlyphGrid: a fixed rows x cols buffer of
// glyphs, each optionally tagged with one of a 16-color ANSI Palette.
// The grid is printed with minimal SGR escape sequences, one prefix per
// change of color, or painted to a PNG snapshot with a TrueType font.
//
// Images are expected to be decoded and resized already, one pixel per
// cell; see the imageutil package. Each pixel becomes a glyph from a
// luminance ramp and, in colorized mode, the nearest palette color.
package termart
