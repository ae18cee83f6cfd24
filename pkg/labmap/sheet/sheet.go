package sheet

import (
	"fmt"

	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/ukaji3/labmap-go/pkg/labmap/styles"
	"github.com/xuri/excelize/v2"
)

// DefaultFooter prints the page number and page count.
const DefaultFooter = "Лист &P из &N"

const defaultSheetName = "Sheet1"

// Margins are page margins in centimeters.
type Margins struct {
	Left, Right, Top, Bottom float64
	Header, Footer           float64
}

// DefaultMargins are the margins of the laboratory's printed forms.
func DefaultMargins() Margins {
	return Margins{Left: 1.5, Right: 1, Top: 1.5, Bottom: 1.5, Header: 0.8, Footer: 0.8}
}

// Setup describes the page and column layout of a target sheet.
type Setup struct {
	// ColumnWidthsPx lists column widths in pixels, starting at column 0.
	ColumnWidthsPx []int
	// Landscape selects landscape orientation.
	Landscape bool
	// FitToWidth scales the print area to one page wide.
	FitToWidth bool
	// Margins in centimeters. Zero value means DefaultMargins.
	Margins Margins
	// Header is centered header text.
	Header string
	// Footer is centered footer text; empty means DefaultFooter.
	Footer string
}

// Sheet is a write-only target sheet.
type Sheet struct {
	file   *excelize.File
	name   string
	widths []int
}

// New creates (or reuses) the named sheet and applies the setup. When the workbook holds
// only the untouched default sheet it is renamed instead of adding a new one.
func New(f *excelize.File, name string, setup Setup) (*Sheet, error) {
	if err := ensureSheet(f, name); err != nil {
		return nil, err
	}

	s := &Sheet{file: f, name: name}
	for i, px := range setup.ColumnWidthsPx {
		units := PixelsToWidthUnits(px)
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(name, col, col, WidthUnitsToChars(units)); err != nil {
			return nil, fmt.Errorf("setting width of column %s: %w", col, err)
		}
		s.widths = append(s.widths, units)
	}

	if err := s.applyPrintSetup(setup); err != nil {
		return nil, err
	}
	return s, nil
}

func ensureSheet(f *excelize.File, name string) error {
	list := f.GetSheetList()
	for _, n := range list {
		if n == name {
			return nil
		}
	}
	if len(list) == 1 && list[0] == defaultSheetName {
		if rows, err := f.GetRows(defaultSheetName); err == nil && len(rows) == 0 {
			return f.SetSheetName(defaultSheetName, name)
		}
	}
	_, err := f.NewSheet(name)
	return err
}

func (s *Sheet) applyPrintSetup(setup Setup) error {
	layout := &excelize.PageLayoutOptions{}
	if setup.Landscape {
		orientation := "landscape"
		layout.Orientation = &orientation
	}
	if setup.FitToWidth {
		one, zero := 1, 0
		layout.FitToWidth = &one
		layout.FitToHeight = &zero
		fit := true
		if err := s.file.SetSheetProps(s.name, &excelize.SheetPropsOptions{FitToPage: &fit}); err != nil {
			return fmt.Errorf("setting sheet props: %w", err)
		}
	}
	if err := s.file.SetPageLayout(s.name, layout); err != nil {
		return fmt.Errorf("setting page layout: %w", err)
	}

	m := setup.Margins
	if m == (Margins{}) {
		m = DefaultMargins()
	}
	left, right := CentimetersToInches(m.Left), CentimetersToInches(m.Right)
	top, bottom := CentimetersToInches(m.Top), CentimetersToInches(m.Bottom)
	header, footer := CentimetersToInches(m.Header), CentimetersToInches(m.Footer)
	if err := s.file.SetPageMargins(s.name, &excelize.PageLayoutMarginsOptions{
		Left: &left, Right: &right, Top: &top, Bottom: &bottom, Header: &header, Footer: &footer,
	}); err != nil {
		return fmt.Errorf("setting page margins: %w", err)
	}

	footerText := setup.Footer
	if footerText == "" {
		footerText = DefaultFooter
	}
	hf := &excelize.HeaderFooterOptions{OddFooter: "&C" + footerText}
	if setup.Header != "" {
		hf.OddHeader = "&C" + setup.Header
	}
	if err := s.file.SetHeaderFooter(s.name, hf); err != nil {
		return fmt.Errorf("setting header/footer: %w", err)
	}
	return nil
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// ColumnWidth returns the native width of a column.
func (s *Sheet) ColumnWidth(col int) int {
	if col >= 0 && col < len(s.widths) {
		return s.widths[col]
	}
	return PixelsToWidthUnits(DefaultColumnWidthPx)
}

// SpanWidths returns the native widths of columns first..last.
func (s *Sheet) SpanWidths(first, last int) []int {
	var out []int
	for c := first; c <= last; c++ {
		out = append(out, s.ColumnWidth(c))
	}
	return out
}

// SetCell writes text with a preset.
func (s *Sheet) SetCell(row, col int, text string, p styles.Preset) error {
	cell := grid.CellName(row, col)
	if cell == "" {
		return fmt.Errorf("invalid cell R%dC%d", row, col)
	}
	if err := s.file.SetCellStr(s.name, cell, text); err != nil {
		return err
	}
	return s.file.SetCellStyle(s.name, cell, cell, p.ID)
}

// Merge writes text into the region's top-left cell, writes empty strings into the
// other cells, merges the region and applies the preset to every cell so each edge
// carries the preset's borders.
func (s *Sheet) Merge(r models.MergedRegion, text string, p styles.Preset) error {
	if !r.Valid() {
		return fmt.Errorf("invalid region %s", r)
	}
	for row := r.FirstRow; row <= r.LastRow; row++ {
		for col := r.FirstCol; col <= r.LastCol; col++ {
			v := ""
			if row == r.FirstRow && col == r.FirstCol {
				v = text
			}
			if err := s.file.SetCellStr(s.name, grid.CellName(row, col), v); err != nil {
				return err
			}
		}
	}

	topLeft, bottomRight := grid.RangeName(r)
	if r.RowSpan() > 1 || r.ColSpan() > 1 {
		if err := s.file.MergeCell(s.name, topLeft, bottomRight); err != nil {
			return fmt.Errorf("merging %s:%s: %w", topLeft, bottomRight, err)
		}
	}
	return s.file.SetCellStyle(s.name, topLeft, bottomRight, p.ID)
}

// SetRowHeight sets a row height in points, clamped to the worksheet maximum.
func (s *Sheet) SetRowHeight(row int, pt float64) error {
	if pt > MaxRowHeight {
		pt = MaxRowHeight
	}
	if pt <= 0 {
		return nil
	}
	return s.file.SetRowHeight(s.name, row+1, pt)
}
