package grid

import "strings"

// Bounds is the bounding box of non-empty cells, zero-based and inclusive.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// DataBounds finds the bounding box of non-empty cells, counting merged regions by their full extent.
// ok is false for an empty grid.
func (g *Grid) DataBounds() (b Bounds, ok bool) {
	b = Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}
	extend := func(row, col int) {
		if b.MinRow < 0 || row < b.MinRow {
			b.MinRow = row
		}
		if b.MaxRow < 0 || row > b.MaxRow {
			b.MaxRow = row
		}
		if b.MinCol < 0 || col < b.MinCol {
			b.MinCol = col
		}
		if b.MaxCol < 0 || col > b.MaxCol {
			b.MaxCol = col
		}
	}

	if g == nil {
		return b, false
	}
	for rowIdx, row := range g.rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				extend(rowIdx, colIdx)
			}
		}
	}
	for _, r := range g.regions {
		if strings.TrimSpace(g.Text(r.FirstRow, r.FirstCol)) == "" {
			continue
		}
		extend(r.FirstRow, r.FirstCol)
		extend(r.LastRow, r.LastCol)
	}

	return b, b.MinRow >= 0
}

// LastDataCol returns the rightmost column holding data, or -1 for an empty grid.
func (g *Grid) LastDataCol() int {
	b, ok := g.DataBounds()
	if !ok {
		return -1
	}
	return b.MaxCol
}
