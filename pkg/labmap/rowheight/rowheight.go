// Package rowheight estimates wrapped line counts from character capacity and turns
// them into row heights. It does not measure glyphs.
package rowheight

import (
	"strings"
	"unicode/utf8"
)

// WidthUnitsPerChar is the number of native column width units per character.
const WidthUnitsPerChar = 256

// CharPt approximates the advance of one 10pt character in points.
const CharPt = 5.5

// RotatedLinePt is the spacing of rotated text lines stacked across a column, in points.
const RotatedLinePt = 12.0

// TwipsPerChar approximates one character of 10-11pt text in a Word table cell.
const TwipsPerChar = 120

// AvailableChars returns the character capacity of a column span given native column widths.
// Each width is divided by 256 separately; the result is at least 1.
func AvailableChars(widths ...int) int {
	total := 0
	for _, w := range widths {
		if w > 0 {
			total += w / WidthUnitsPerChar
		}
	}
	if total < 1 {
		return 1
	}
	return total
}

// CharsForTwips returns the character capacity of a Word cell of the given width.
func CharsForTwips(twips int) int {
	if n := twips / TwipsPerChar; n > 1 {
		return n
	}
	return 1
}

// EstimateLines returns the number of wrapped lines text needs. Every newline-delimited
// segment takes ceil(max(1, len)/availableChars) lines; the total is at least 1.
func EstimateLines(text string, availableChars int) int {
	if availableChars < 1 {
		availableChars = 1
	}
	lines := 0
	for _, seg := range strings.Split(text, "\n") {
		n := utf8.RuneCountInString(seg)
		if n < 1 {
			n = 1
		}
		lines += (n + availableChars - 1) / availableChars
	}
	if lines < 1 {
		return 1
	}
	return lines
}

// Height returns base * max(1, lines).
func Height(base float64, lines int) float64 {
	if lines < 1 {
		lines = 1
	}
	return base * float64(lines)
}

// DoubledHeight returns twice base when the text overflows one line, otherwise base.
// Used for fields whose paper template reserves exactly two lines.
func DoubledHeight(base float64, lines int) float64 {
	if lines > 1 {
		return base * 2
	}
	return base
}

// RotatedHeight returns the height in points that text rotated by 90 degrees needs in a span
// of availableChars character widths. Lines stack across the span; the text wraps along the height.
func RotatedHeight(text string, availableChars int) float64 {
	across := int(float64(availableChars) * CharPt / RotatedLinePt)
	if across < 1 {
		across = 1
	}
	n := utf8.RuneCountInString(strings.ReplaceAll(text, "\n", ""))
	perLine := (n + across - 1) / across
	if perLine < 1 {
		perLine = 1
	}
	return float64(perLine) * CharPt
}
