package reflow

import (
	"strconv"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/ukaji3/labmap-go/pkg/labmap/rowheight"
)

// WriteTitle writes a borderless title merged across the layout width.
func (e *Engine) WriteTitle(text string, cur models.Cursor) (models.Cursor, error) {
	if text == "" {
		return cur, nil
	}
	row := cur.NextRow
	r := models.MergedRegion{FirstRow: row, LastRow: row, FirstCol: 0, LastCol: e.layout.Width - 1}
	if err := e.target.Merge(r, text, e.styles.Title); err != nil {
		return cur, err
	}
	lines := rowheight.EstimateLines(text, e.capacity(0, e.layout.Width-1))
	if err := e.target.SetRowHeight(row, rowheight.Height(e.layout.baseHeight(), lines)); err != nil {
		return cur, err
	}
	return cur.Advance(1), nil
}

// WriteInstruments writes one numbered row per instrument: number, name, serial number.
// The row height follows the name's wrapped line count.
func (e *Engine) WriteInstruments(list []models.Instrument, cur models.Cursor) (models.Cursor, error) {
	for i, inst := range list {
		row := cur.NextRow
		if err := e.target.SetCell(row, 0, strconv.Itoa(i+1), e.styles.Center); err != nil {
			return cur, err
		}
		if err := e.target.SetCell(row, 1, inst.Name, e.styles.Left); err != nil {
			return cur, err
		}
		if err := e.target.SetCell(row, 2, inst.SerialNumber, e.styles.Center); err != nil {
			return cur, err
		}
		lines := rowheight.EstimateLines(inst.Name, e.capacity(1, 1))
		if err := e.target.SetRowHeight(row, rowheight.Height(e.layout.baseHeight(), lines)); err != nil {
			return cur, err
		}
		cur = cur.Advance(1)
	}
	return cur, nil
}
