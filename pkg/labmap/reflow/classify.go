package reflow

import (
	"iter"

	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/ukaji3/labmap-go/pkg/labmap/parser"
)

// Classifier determines the logical kind of the region at a source position.
type Classifier struct {
	layout Layout
}

// NewClassifier returns a classifier for the layout's source shape.
func NewClassifier(l Layout) *Classifier {
	return &Classifier{layout: l}
}

// Classify returns the block starting at (row, col). Unclassified results carry the
// row where scanning resumes: the next row, or past a region that began above row.
func (c *Classifier) Classify(g *grid.Grid, row, col int) models.LogicalBlock {
	return c.classify(g, row, col, c.trailingCol(g))
}

func (c *Classifier) trailingCol(g *grid.Grid) int {
	return parser.ResolveTrailingCol(g, c.layout.TrailingCol)
}

func (c *Classifier) classify(g *grid.Grid, row, col, trailing int) models.LogicalBlock {
	none := models.LogicalBlock{Kind: models.Unclassified, RowStart: row, RowEnd: row, Next: row + 1}

	r, merged := g.RegionAt(row, col)
	if !merged {
		if _, ok := g.Cell(row, 0).Number(); !ok {
			return none
		}
		end := row
		if fr, ok := g.RegionAt(row, c.layout.FreeText.Source); ok && fr.LastRow > end {
			end = fr.LastRow
		}
		return models.LogicalBlock{
			Kind:     models.PlainRecord,
			RowStart: row,
			RowEnd:   end,
			Fields:   resolvedFields(g, row),
			Next:     end + 1,
		}
	}

	if r.FirstRow < row {
		none.Next = r.LastRow + 1
		return none
	}

	switch {
	case r.FirstCol == 0 && r.LastCol == 0 && r.LastRow-r.FirstRow == RecordHeaderSourceRows-1:
		return models.LogicalBlock{
			Kind:     models.RecordHeader,
			RowStart: r.FirstRow,
			RowEnd:   r.LastRow,
			Fields:   resolvedFields(g, r.FirstRow),
			Next:     r.LastRow + 1,
		}
	case parser.DateStampShape(trailing)(r):
		return models.LogicalBlock{
			Kind:     models.DateStamp,
			RowStart: r.FirstRow,
			RowEnd:   r.LastRow,
			Text:     g.Text(r.FirstRow, r.FirstCol),
			Next:     r.LastRow + 1,
		}
	}
	return none
}

func resolvedFields(g *grid.Grid, row int) [models.HeaderFieldCount]string {
	var f [models.HeaderFieldCount]string
	for col := range f {
		f[col] = g.Resolved(row, col)
	}
	return f
}

// Blocks yields the classified blocks of a sheet in order. Each block's rows are consumed
// so scanning resumes after them; the scan ends after BlankRowLimit consecutive blank rows.
func (c *Classifier) Blocks(g *grid.Grid) iter.Seq[models.LogicalBlock] {
	return func(yield func(models.LogicalBlock) bool) {
		trailing := c.trailingCol(g)
		blank := 0
		for row := c.layout.StartRow; row < g.RowCount(); {
			if g.RowBlank(row) {
				blank++
				if c.layout.BlankRowLimit > 0 && blank >= c.layout.BlankRowLimit {
					return
				}
				row++
				continue
			}
			blank = 0

			b := c.classify(g, row, 0, trailing)
			if b.Next <= row {
				b.Next = row + 1
			}
			if b.Kind != models.Unclassified && !yield(b) {
				return
			}
			row = b.Next
		}
	}
}
