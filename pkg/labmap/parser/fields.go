// Package parser extracts scalar header fields, measurement dates and instrument lists
// from loosely structured source sheets by label matching.
package parser

import (
	"strings"
	"unicode"

	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
)

// FindByPrefix scans rows top-to-bottom and cells left-to-right for the first cell whose
// text starts with prefix. It returns the cleaned remainder of that cell, or the cleaned
// text of the next cell in the row when the remainder is empty. Any miss yields "".
func FindByPrefix(g *grid.Grid, prefix string) string {
	if g == nil || prefix == "" {
		return ""
	}
	row, col, ok := locate(g, prefix)
	if !ok {
		return ""
	}

	text := strings.TrimSpace(g.Text(row, col))
	if v := clean(strings.TrimPrefix(text, prefix)); v != "" {
		return v
	}

	next := col + 1
	if r, merged := g.RegionAt(row, col); merged {
		next = r.LastCol + 1
	}
	return clean(g.Resolved(row, next))
}

// FindInSheets runs FindByPrefix over grids in order and returns the first non-empty hit.
func FindInSheets(grids []*grid.Grid, prefix string) string {
	for _, g := range grids {
		if v := FindByPrefix(g, prefix); v != "" {
			return v
		}
	}
	return ""
}

// locate returns the position of the first cell starting with prefix.
func locate(g *grid.Grid, prefix string) (int, int, bool) {
	for rowIdx := 0; rowIdx < g.RowCount(); rowIdx++ {
		for colIdx, v := range g.Row(rowIdx) {
			if strings.HasPrefix(strings.TrimSpace(v), prefix) {
				return rowIdx, colIdx, true
			}
		}
	}
	return 0, 0, false
}

// clean trims whitespace and strips leading runes that are neither letters nor digits.
func clean(s string) string {
	s = strings.TrimLeftFunc(strings.TrimSpace(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.TrimSpace(s)
}
