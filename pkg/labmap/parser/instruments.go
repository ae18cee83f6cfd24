package parser

import (
	"strings"

	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

// Default instrument table columns, used when no header row names them.
const (
	instrumentNameCol   = 1
	instrumentSerialCol = 2
)

// InstrumentsFromGrid reads the instrument rows listed under the anchor label.
// Reading stops at the first row without an instrument name.
func InstrumentsFromGrid(g *grid.Grid, anchor string) []models.Instrument {
	if g == nil || anchor == "" {
		return nil
	}
	row, _, ok := locate(g, anchor)
	if !ok {
		return nil
	}

	start := row + 1
	nameCol, serialCol := instrumentNameCol, instrumentSerialCol
	if n, s, found := headerColumns(g, start); found {
		nameCol, serialCol = n, s
		start++
	}
	return readInstruments(g, start, nameCol, serialCol)
}

// InstrumentsFromTables reads the first table that has an instrument-name header,
// typically the equipment list tables of a Word document.
func InstrumentsFromTables(tables []*grid.Grid) []models.Instrument {
	for _, t := range tables {
		for row := 0; row < t.RowCount(); row++ {
			nameCol, serialCol, ok := headerColumns(t, row)
			if !ok {
				continue
			}
			if list := readInstruments(t, row+1, nameCol, serialCol); len(list) > 0 {
				return list
			}
		}
	}
	return nil
}

func readInstruments(g *grid.Grid, start, nameCol, serialCol int) []models.Instrument {
	var list []models.Instrument
	for row := start; row < g.RowCount(); row++ {
		name := strings.TrimSpace(g.Resolved(row, nameCol))
		if name == "" {
			break
		}
		list = append(list, models.Instrument{
			Name:         name,
			SerialNumber: strings.TrimSpace(g.Resolved(row, serialCol)),
		})
	}
	return list
}

// headerColumns detects an instrument table header row and returns the name and serial columns.
func headerColumns(g *grid.Grid, row int) (nameCol, serialCol int, ok bool) {
	nameCol, serialCol = -1, -1
	for col, v := range g.Row(row) {
		t := strings.ToLower(strings.TrimSpace(v))
		switch {
		case nameCol < 0 && strings.HasPrefix(t, "наименование"):
			nameCol = col
		case serialCol < 0 && (strings.Contains(t, "заводской") || strings.Contains(t, "серийный")):
			serialCol = col
		}
	}
	if nameCol < 0 {
		return 0, 0, false
	}
	if serialCol < 0 {
		serialCol = nameCol + 1
	}
	return nameCol, serialCol, true
}
