package reflow

import (
	"errors"
	"fmt"

	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/ukaji3/labmap-go/pkg/labmap/rowheight"
	"github.com/ukaji3/labmap-go/pkg/labmap/styles"
	"go.uber.org/zap"
)

// ErrNoTemplate is returned when the layout has no target template for a block kind.
var ErrNoTemplate = errors.New("layout has no template for block")

// Target is the write side of a target sheet.
type Target interface {
	SetCell(row, col int, text string, p styles.Preset) error
	Merge(r models.MergedRegion, text string, p styles.Preset) error
	SetRowHeight(row int, pt float64) error
	ColumnWidth(col int) int
}

// Stats counts the blocks one Run emitted.
type Stats struct {
	DateStamps int
	Records    int
	PlainRows  int
	Skipped    int
	Rows       int
}

// Engine re-emits classified source blocks into a target sheet. It only appends.
type Engine struct {
	target     Target
	styles     *styles.Set
	layout     Layout
	classifier *Classifier
	logger     *zap.Logger
}

// NewEngine returns an engine writing layout l into t with the given style set.
func NewEngine(t Target, s *styles.Set, l Layout, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		target:     t,
		styles:     s,
		layout:     l,
		classifier: NewClassifier(l),
		logger:     logger.With(zap.String("sheet", l.Name)),
	}
}

// Classifier returns the classifier matching the engine's layout.
func (e *Engine) Classifier() *Classifier {
	return e.classifier
}

// WriteHeader writes the layout's fixed header table at the cursor. Every header row is at least
// the base height; cells spanning several rows spread their required height over those rows.
func (e *Engine) WriteHeader(cur models.Cursor) (models.Cursor, error) {
	if len(e.layout.Header) == 0 {
		return cur, nil
	}
	base := e.layout.baseHeight()
	heights := make(map[int]float64)
	for _, h := range e.layout.Header {
		r := h.Region
		r.FirstRow += cur.NextRow
		r.LastRow += cur.NextRow
		p := e.styles.Header
		if h.Vertical {
			p = e.styles.Vertical
		}
		if err := e.target.Merge(r, h.Text, p); err != nil {
			return cur, err
		}

		chars := e.capacity(r.FirstCol, r.LastCol)
		need := rowheight.Height(base, rowheight.EstimateLines(h.Text, chars))
		if h.Vertical {
			need = rowheight.RotatedHeight(h.Text, chars)
		}
		per := max(base, need/float64(r.RowSpan()))
		for row := r.FirstRow; row <= r.LastRow; row++ {
			heights[row] = max(heights[row], per)
		}
	}
	for row, pt := range heights {
		if err := e.target.SetRowHeight(row, pt); err != nil {
			return cur, err
		}
	}
	return cur.Advance(e.layout.HeaderRows), nil
}

// Reflow writes one block at the cursor and returns the cursor advanced by the rows written:
// 1 for a date stamp, the card height for a record header, one per source row for a plain record.
func (e *Engine) Reflow(src *grid.Grid, b models.LogicalBlock, cur models.Cursor) (models.Cursor, error) {
	var (
		n   int
		err error
	)
	switch b.Kind {
	case models.DateStamp:
		n, err = e.dateStamp(cur.NextRow)
	case models.RecordHeader:
		if e.layout.Card == nil {
			return cur, fmt.Errorf("%w: %s", ErrNoTemplate, b.Kind)
		}
		n, err = e.recordCard(b, cur.NextRow)
	case models.PlainRecord:
		n, err = e.plainRecord(src, b, cur.NextRow)
	default:
		return cur, nil
	}
	if err != nil {
		return cur, fmt.Errorf("writing %s from source row %d: %w", b.Kind, b.RowStart, err)
	}
	return cur.Advance(n), nil
}

// Run reflows every block of src, starting at the cursor.
func (e *Engine) Run(src *grid.Grid, cur models.Cursor) (models.Cursor, Stats, error) {
	var stats Stats
	start := cur.NextRow
	for b := range e.classifier.Blocks(src) {
		next, err := e.Reflow(src, b, cur)
		if errors.Is(err, ErrNoTemplate) {
			stats.Skipped++
			e.logger.Debug("block skipped",
				zap.Stringer("kind", b.Kind),
				zap.Int("source_row", b.RowStart))
			continue
		}
		if err != nil {
			return cur, stats, err
		}
		switch b.Kind {
		case models.DateStamp:
			stats.DateStamps++
		case models.RecordHeader:
			stats.Records++
		case models.PlainRecord:
			stats.PlainRows += b.Rows()
		}
		cur = next
	}
	stats.Rows = cur.NextRow - start
	return cur, stats, nil
}

func (e *Engine) dateStamp(row int) (int, error) {
	r := models.MergedRegion{FirstRow: row, LastRow: row, FirstCol: 0, LastCol: e.layout.Width - 1}
	if err := e.target.Merge(r, e.layout.DateCaption, e.styles.Left); err != nil {
		return 0, err
	}
	lines := rowheight.EstimateLines(e.layout.DateCaption, e.capacity(0, e.layout.Width-1))
	if err := e.target.SetRowHeight(row, rowheight.Height(e.layout.baseHeight(), lines)); err != nil {
		return 0, err
	}
	return 1, nil
}

func (e *Engine) recordCard(b models.LogicalBlock, row int) (int, error) {
	card := e.layout.Card
	rows := card.Rows()
	last := row + rows - 1

	for i, col := range card.KeyCols {
		r := models.MergedRegion{FirstRow: row, LastRow: last, FirstCol: col, LastCol: col}
		if err := e.target.Merge(r, b.Fields[i], e.styles.Center); err != nil {
			return 0, err
		}
	}

	cs, vs := card.CaptionSpan, card.ValueSpan
	if err := e.target.Merge(models.MergedRegion{FirstRow: row, LastRow: row, FirstCol: cs[0], LastCol: cs[1]}, b.Fields[2], e.styles.Left); err != nil {
		return 0, err
	}
	if err := e.target.Merge(models.MergedRegion{FirstRow: row, LastRow: row, FirstCol: vs[0], LastCol: vs[1]}, b.Fields[3], e.styles.Left); err != nil {
		return 0, err
	}
	lines := max(
		rowheight.EstimateLines(b.Fields[2], e.capacity(cs[0], cs[1])),
		rowheight.EstimateLines(b.Fields[3], e.capacity(vs[0], vs[1])),
	)
	if err := e.target.SetRowHeight(row, rowheight.DoubledHeight(e.layout.baseHeight(), lines)); err != nil {
		return 0, err
	}

	for i, caption := range card.Captions {
		r := row + 1 + i
		placeholder := ""
		if i < len(card.Placeholders) {
			placeholder = card.Placeholders[i]
		}
		if err := e.target.Merge(models.MergedRegion{FirstRow: r, LastRow: r, FirstCol: cs[0], LastCol: cs[1]}, caption, e.styles.Caption); err != nil {
			return 0, err
		}
		for col := vs[0]; col <= vs[1]; col++ {
			if err := e.target.SetCell(r, col, placeholder, e.styles.Center); err != nil {
				return 0, err
			}
		}
		n := rowheight.EstimateLines(caption, e.capacity(cs[0], cs[1]))
		if err := e.target.SetRowHeight(r, rowheight.Height(e.layout.baseHeight(), n)); err != nil {
			return 0, err
		}
	}
	return rows, nil
}

func (e *Engine) plainRecord(src *grid.Grid, b models.LogicalBlock, row int) (int, error) {
	n := b.Rows()
	ft := e.layout.FreeText

	shared, hasShared := src.RegionAt(b.RowStart, ft.Source)
	dedupe := hasShared && shared.LastRow > b.RowStart

	lines := make([]int, n)
	for i := 0; i < n; i++ {
		srcRow, tRow := b.RowStart+i, row+i
		for _, sp := range e.layout.Plain {
			text := src.Text(srcRow, sp.Source)
			if err := e.writeSpan(tRow, tRow, sp, text, e.styles.Center); err != nil {
				return 0, err
			}
			lines[i] = max(lines[i], rowheight.EstimateLines(text, e.capacity(sp.First, sp.Last)))
		}
		if dedupe {
			continue
		}
		text := src.Resolved(srcRow, ft.Source)
		if err := e.writeSpan(tRow, tRow, ft, text, e.styles.Left); err != nil {
			return 0, err
		}
		lines[i] = max(lines[i], rowheight.EstimateLines(text, e.capacity(ft.First, ft.Last)))
	}

	if dedupe {
		text := src.Text(shared.FirstRow, shared.FirstCol)
		end := min(shared.LastRow, b.RowEnd) - b.RowStart
		if err := e.writeSpan(row, row+end, ft, text, e.styles.Left); err != nil {
			return 0, err
		}
		total := rowheight.EstimateLines(text, e.capacity(ft.First, ft.Last))
		per := (total + end) / (end + 1)
		for i := 0; i <= end; i++ {
			lines[i] = max(lines[i], per)
		}
	}

	for i, l := range lines {
		if err := e.target.SetRowHeight(row+i, rowheight.Height(e.layout.baseHeight(), l)); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (e *Engine) writeSpan(firstRow, lastRow int, sp Span, text string, p styles.Preset) error {
	if firstRow == lastRow && sp.First == sp.Last {
		return e.target.SetCell(firstRow, sp.First, text, p)
	}
	return e.target.Merge(models.MergedRegion{FirstRow: firstRow, LastRow: lastRow, FirstCol: sp.First, LastCol: sp.Last}, text, p)
}

// capacity is the character capacity of target columns first..last.
func (e *Engine) capacity(first, last int) int {
	widths := make([]int, 0, last-first+1)
	for c := first; c <= last; c++ {
		widths = append(widths, e.target.ColumnWidth(c))
	}
	return rowheight.AvailableChars(widths...)
}
