package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Workbook is an open source workbook whose sheets are loaded into grids on demand.
type Workbook struct {
	path   string
	file   *excelize.File
	order  []string
	sheets map[string]*Grid
}

// Open opens a source workbook. The caller must Close it.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	w := Wrap(f)
	w.path = path
	return w, nil
}

// Wrap adopts an already opened excelize file. Close closes it.
func Wrap(f *excelize.File) *Workbook {
	return &Workbook{
		file:   f,
		order:  f.GetSheetList(),
		sheets: make(map[string]*Grid),
	}
}

// NewWorkbook builds an in-memory workbook from grids, in the given sheet order.
func NewWorkbook(grids ...*Grid) *Workbook {
	w := &Workbook{sheets: make(map[string]*Grid)}
	for _, g := range grids {
		if g == nil {
			continue
		}
		w.order = append(w.order, g.Name())
		w.sheets[g.Name()] = g
	}
	return w
}

// Path returns the file the workbook was opened from.
func (w *Workbook) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	if w == nil {
		return nil
	}
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// HasSheet reports whether the workbook contains the named sheet.
func (w *Workbook) HasSheet(name string) bool {
	for _, s := range w.SheetNames() {
		if s == name {
			return true
		}
	}
	return false
}

// Sheet returns the grid for a sheet, loading it on first access.
func (w *Workbook) Sheet(name string) (*Grid, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	if g, ok := w.sheets[name]; ok {
		return g, nil
	}
	if w.file == nil || !w.HasSheet(name) {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	g, err := Load(w.file, name)
	if err != nil {
		return nil, err
	}
	w.sheets[name] = g
	return g, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	return w.file.Close()
}

// Load reads a sheet into a grid: formatted row values, formula results for cells
// without a cached value, and the sheet's merged regions.
func Load(f *excelize.File, sheetName string) (*Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	for rowIdx, row := range rows {
		for colIdx, v := range row {
			if v != "" {
				continue
			}
			cellName := CellName(rowIdx, colIdx)
			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil || formula == "" {
				continue
			}
			if calc, err := f.CalcCellValue(sheetName, cellName); err == nil {
				row[colIdx] = calc
			}
		}
	}

	mergeCells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	regions := make([]models.MergedRegion, 0, len(mergeCells))
	for _, mc := range mergeCells {
		r, err := ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			continue
		}
		regions = append(regions, r)
	}

	return New(sheetName, rows, regions), nil
}
