// Package grid exposes source sheets as read-only grids of formatted cell text plus their merged regions.
package grid

import (
	"sort"
	"strings"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

// Grid is a read-only view of one sheet: formatted rows and non-overlapping merged regions.
// All indices are zero-based.
type Grid struct {
	name    string
	rows    [][]string
	regions []models.MergedRegion
	// byCol lists, per column, the indices of regions covering it in FirstRow order.
	byCol   map[int][]int
	content []bool
}

// New builds a grid from rows of cell text and merged regions.
// Invalid regions and regions overlapping an earlier one are dropped.
func New(name string, rows [][]string, regions []models.MergedRegion) *Grid {
	g := &Grid{
		name:  name,
		rows:  rows,
		byCol: make(map[int][]int),
	}

	sorted := make([]models.MergedRegion, 0, len(regions))
	for _, r := range regions {
		if r.Valid() {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FirstRow != sorted[j].FirstRow {
			return sorted[i].FirstRow < sorted[j].FirstRow
		}
		return sorted[i].FirstCol < sorted[j].FirstCol
	})

	for _, r := range sorted {
		if g.overlapsIndexed(r) {
			continue
		}
		idx := len(g.regions)
		g.regions = append(g.regions, r)
		for col := r.FirstCol; col <= r.LastCol; col++ {
			g.byCol[col] = append(g.byCol[col], idx)
		}
	}

	g.content = make([]bool, g.RowCount())
	for rowIdx, row := range rows {
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				g.content[rowIdx] = true
				break
			}
		}
	}
	for _, r := range g.regions {
		if strings.TrimSpace(g.Text(r.FirstRow, r.FirstCol)) == "" {
			continue
		}
		for row := r.FirstRow; row <= r.LastRow && row < len(g.content); row++ {
			g.content[row] = true
		}
	}

	return g
}

func (g *Grid) overlapsIndexed(r models.MergedRegion) bool {
	for _, o := range g.regions {
		if o.Overlaps(r) {
			return true
		}
	}
	return false
}

// Name returns the sheet name.
func (g *Grid) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

// RowCount returns the number of rows, including rows reached only by merged regions.
func (g *Grid) RowCount() int {
	if g == nil {
		return 0
	}
	n := len(g.rows)
	for _, r := range g.regions {
		if r.LastRow+1 > n {
			n = r.LastRow + 1
		}
	}
	return n
}

// Row returns the raw cell texts of a row.
func (g *Grid) Row(row int) []string {
	if g == nil || row < 0 || row >= len(g.rows) {
		return nil
	}
	return g.rows[row]
}

// Text returns the raw text at (row, col), empty when out of range.
func (g *Grid) Text(row, col int) string {
	r := g.Row(row)
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Cell returns the raw cell at (row, col).
func (g *Grid) Cell(row, col int) models.Cell {
	return models.Cell{Text: g.Text(row, col)}
}

// Resolved returns the text shown at (row, col): the top-left value when the cell is merged.
func (g *Grid) Resolved(row, col int) string {
	if r, ok := g.RegionAt(row, col); ok {
		return g.Text(r.FirstRow, r.FirstCol)
	}
	return g.Text(row, col)
}

// RegionAt returns the merged region covering (row, col).
func (g *Grid) RegionAt(row, col int) (models.MergedRegion, bool) {
	if g == nil {
		return models.MergedRegion{}, false
	}
	idxs := g.byCol[col]
	i := sort.Search(len(idxs), func(i int) bool { return g.regions[idxs[i]].FirstRow > row }) - 1
	if i < 0 || g.regions[idxs[i]].LastRow < row {
		return models.MergedRegion{}, false
	}
	return g.regions[idxs[i]], true
}

// Regions returns the merged regions in row-major order of their top-left cell.
func (g *Grid) Regions() []models.MergedRegion {
	if g == nil {
		return nil
	}
	out := make([]models.MergedRegion, len(g.regions))
	copy(out, g.regions)
	return out
}

// RowBlank reports whether nothing is displayed on the row, merged values included.
func (g *Grid) RowBlank(row int) bool {
	if g == nil || row < 0 || row >= len(g.content) {
		return true
	}
	return !g.content[row]
}
