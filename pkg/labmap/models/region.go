package models

import "fmt"

// MergedRegion represents the zero-based, inclusive bounds of a merged cell range.
type MergedRegion struct {
	// FirstRow is the top row.
	FirstRow int `json:"first_row"`
	// LastRow is the bottom row (inclusive).
	LastRow int `json:"last_row"`
	// FirstCol is the leftmost column.
	FirstCol int `json:"first_col"`
	// LastCol is the rightmost column (inclusive).
	LastCol int `json:"last_col"`
}

// Valid reports whether the bounds are ordered and non-negative.
func (r MergedRegion) Valid() bool {
	return r.FirstRow >= 0 && r.FirstCol >= 0 && r.FirstRow <= r.LastRow && r.FirstCol <= r.LastCol
}

// Contains reports whether (row, col) lies inside the region.
func (r MergedRegion) Contains(row, col int) bool {
	return row >= r.FirstRow && row <= r.LastRow && col >= r.FirstCol && col <= r.LastCol
}

// Overlaps reports whether the two regions share at least one cell.
func (r MergedRegion) Overlaps(o MergedRegion) bool {
	return r.FirstRow <= o.LastRow && o.FirstRow <= r.LastRow &&
		r.FirstCol <= o.LastCol && o.FirstCol <= r.LastCol
}

// RowSpan returns the number of rows covered.
func (r MergedRegion) RowSpan() int { return r.LastRow - r.FirstRow + 1 }

// ColSpan returns the number of columns covered.
func (r MergedRegion) ColSpan() int { return r.LastCol - r.FirstCol + 1 }

func (r MergedRegion) String() string {
	return fmt.Sprintf("R%dC%d:R%dC%d", r.FirstRow, r.FirstCol, r.LastRow, r.LastCol)
}
