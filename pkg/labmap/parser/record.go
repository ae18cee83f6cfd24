package parser

import (
	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

// Labels are the cell prefixes that introduce each header field in a source workbook.
type Labels struct {
	CustomerName         string `mapstructure:"customer_name"`
	CustomerLegalAddress string `mapstructure:"customer_legal_address"`
	Representative       string `mapstructure:"representative"`
	Performer            string `mapstructure:"performer"`
	ObjectName           string `mapstructure:"object_name"`
	ObjectAddress        string `mapstructure:"object_address"`
	MeasurementDates     string `mapstructure:"measurement_dates"`
	Instruments          string `mapstructure:"instruments"`
}

// DefaultLabels returns the labels used by the laboratory's source templates.
func DefaultLabels() Labels {
	return Labels{
		CustomerName:         "1. Наименование заказчика:",
		CustomerLegalAddress: "Юридический адрес заказчика:",
		Representative:       "Представитель заказчика:",
		Performer:            "3. Измерения провел, подпись:",
		ObjectName:           "4. Наименование объекта:",
		ObjectAddress:        "5. Адрес объекта:",
		MeasurementDates:     "Дата, время проведения измерений",
		Instruments:          "Средства измерений",
	}
}

// withDefaults fills empty labels from DefaultLabels.
func (l Labels) withDefaults() Labels {
	d := DefaultLabels()
	set := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	set(&l.CustomerName, d.CustomerName)
	set(&l.CustomerLegalAddress, d.CustomerLegalAddress)
	set(&l.Representative, d.Representative)
	set(&l.Performer, d.Performer)
	set(&l.ObjectName, d.ObjectName)
	set(&l.ObjectAddress, d.ObjectAddress)
	set(&l.MeasurementDates, d.MeasurementDates)
	set(&l.Instruments, d.Instruments)
	return l
}

// RecordOptions selects where ExtractFieldRecord looks.
type RecordOptions struct {
	// Labels overrides field labels; empty entries fall back to DefaultLabels.
	Labels Labels
	// TitleSheet is searched first. Empty means the first sheet.
	TitleSheet string
	// ResultSheets are scanned for date stamps.
	ResultSheets []ResultSheet
}

// ResultSheet is a result sheet and the date stamp shape it uses.
type ResultSheet struct {
	Name string
	// TrailingCol is the last column a date stamp region must reach; negative uses the sheet's last data column.
	TrailingCol int
}

// ExtractFieldRecord harvests the header fields of a workbook. Missing sheets and labels
// leave the corresponding fields empty; a nil workbook yields an empty record.
func ExtractFieldRecord(wb *grid.Workbook, opts RecordOptions) models.FieldRecord {
	labels := opts.Labels.withDefaults()
	grids := orderedGrids(wb, opts.TitleSheet)

	rec := models.FieldRecord{
		CustomerName:         FindInSheets(grids, labels.CustomerName),
		CustomerLegalAddress: FindInSheets(grids, labels.CustomerLegalAddress),
		Representative:       FindInSheets(grids, labels.Representative),
		Performer:            FindInSheets(grids, labels.Performer),
		ObjectName:           FindInSheets(grids, labels.ObjectName),
		ObjectAddress:        FindInSheets(grids, labels.ObjectAddress),
	}

	var dates [][]string
	for _, rs := range opts.ResultSheets {
		g, err := wb.Sheet(rs.Name)
		if err != nil {
			continue
		}
		dates = append(dates, FindDatesByPattern(g, DateStampShape(ResolveTrailingCol(g, rs.TrailingCol))))
	}
	if v := FindInSheets(grids, labels.MeasurementDates); v != "" {
		dates = append(dates, ExtractDates(v))
	}
	rec.MeasurementDates = MergeDates(dates...)

	for _, g := range grids {
		if list := InstrumentsFromGrid(g, labels.Instruments); len(list) > 0 {
			rec.Instruments = list
			break
		}
	}

	return rec
}

// orderedGrids loads the title sheet first, then the others in workbook order.
// Sheets that fail to load are skipped.
func orderedGrids(wb *grid.Workbook, title string) []*grid.Grid {
	names := wb.SheetNames()
	if len(names) == 0 {
		return nil
	}
	if title == "" || !wb.HasSheet(title) {
		title = names[0]
	}

	ordered := []string{title}
	for _, n := range names {
		if n != title {
			ordered = append(ordered, n)
		}
	}

	var grids []*grid.Grid
	for _, n := range ordered {
		g, err := wb.Sheet(n)
		if err != nil {
			continue
		}
		grids = append(grids, g)
	}
	return grids
}
