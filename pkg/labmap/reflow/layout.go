// Package reflow classifies merged-cell record blocks in a source sheet and re-emits
// them into a differently shaped target sheet.
package reflow

import "github.com/ukaji3/labmap-go/pkg/labmap/models"

// Section end thresholds: scanning stops after this many consecutive blank rows.
const (
	DefaultBlankRowLimit     = 5
	VentilationBlankRowLimit = 20
)

// RecordHeaderSourceRows is the row span of a record header merge in the source.
const RecordHeaderSourceRows = 3

// DefaultBaseRowHeight is the height of a single text line in points (20px).
const DefaultBaseRowHeight = 15.0

// NoiseDateCaption replaces every date stamp in the noise map. The source date is informational only.
const NoiseDateCaption = "Дата, время проведения измерений: ____________"

// Span maps a source column onto an inclusive range of target columns.
type Span struct {
	Source int
	First  int
	Last   int
}

// HeaderCell is one cell of a fixed header table, positioned relative to the table's first row.
type HeaderCell struct {
	Region   models.MergedRegion
	Text     string
	Vertical bool
}

// Card is the target template of a record header block: the key fields merged down
// every row, a first row with the remaining fields, then one caption row per entry.
type Card struct {
	// KeyCols receive fields 0 and 1, each merged down the whole card.
	KeyCols [2]int
	// CaptionSpan receives field 2 on the first row and the captions below it.
	CaptionSpan [2]int
	// ValueSpan receives field 3 on the first row and the placeholders below it.
	ValueSpan [2]int
	// Captions are the fixed sub-row labels.
	Captions []string
	// Placeholders are the values written into every value cell of the matching sub-row.
	Placeholders []string
}

// Rows returns the number of target rows the card occupies.
func (c *Card) Rows() int {
	return 1 + len(c.Captions)
}

// Layout is the complete description of one target sheet produced by the engine.
type Layout struct {
	// Name is the target sheet name.
	Name string
	// Width is the number of target columns.
	Width int
	// ColumnWidthsPx are the target column widths in pixels.
	ColumnWidthsPx []int
	// Header is the fixed header table written before the first block.
	Header []HeaderCell
	// HeaderRows is the number of rows the header table occupies.
	HeaderRows int
	// StartRow is the first source row scanned.
	StartRow int
	// BlankRowLimit ends the scan after this many consecutive blank rows; 0 disables it.
	BlankRowLimit int
	// TrailingCol is the last source column a date stamp must reach; negative uses the sheet's last data column.
	TrailingCol int
	// DateCaption is the constant text of a date stamp row.
	DateCaption string
	// Plain maps the verbatim columns of a plain record.
	Plain []Span
	// FreeText maps the long free-text column, de-duplicated when merged down in the source.
	FreeText Span
	// Card is the record header template; nil means record headers are skipped.
	Card *Card
	// BaseRowHeight is the height of one text line in points.
	BaseRowHeight float64
}

func (l Layout) baseHeight() float64 {
	if l.BaseRowHeight > 0 {
		return l.BaseRowHeight
	}
	return DefaultBaseRowHeight
}

// NoiseLayout is the noise results map: 23 columns, record cards of five rows.
func NoiseLayout() Layout {
	widths := []int{35, 120}
	for c := 2; c <= 8; c++ {
		widths = append(widths, 40)
	}
	for c := 9; c <= 22; c++ {
		widths = append(widths, 45)
	}

	header := []HeaderCell{
		{Region: region(0, 1, 0, 0), Text: "№ п/п", Vertical: true},
		{Region: region(0, 1, 1, 1), Text: "Точка измерений"},
		{Region: region(0, 1, 2, 8), Text: "Источник шума, показатель"},
		{Region: region(0, 0, 9, 17), Text: "Уровни звукового давления, дБ, в октавных полосах со среднегеометрическими частотами, Гц"},
		{Region: region(0, 1, 18, 18), Text: "Уровень звука, дБА", Vertical: true},
		{Region: region(0, 1, 19, 19), Text: "Эквивалентный уровень звука, дБА", Vertical: true},
		{Region: region(0, 1, 20, 20), Text: "Максимальный уровень звука, дБА", Vertical: true},
		{Region: region(0, 1, 21, 21), Text: "Неопределенность измерений, дБА", Vertical: true},
		{Region: region(0, 1, 22, 22), Text: "Допустимый уровень, дБА", Vertical: true},
	}
	for i, band := range []string{"31,5", "63", "125", "250", "500", "1000", "2000", "4000", "8000"} {
		header = append(header, HeaderCell{Region: region(1, 1, 9+i, 9+i), Text: band})
	}

	return Layout{
		Name:           "Шум",
		Width:          23,
		ColumnWidthsPx: widths,
		Header:         header,
		HeaderRows:     2,
		BlankRowLimit:  DefaultBlankRowLimit,
		TrailingCol:    23,
		DateCaption:    NoiseDateCaption,
		Plain:          []Span{{Source: 0, First: 0, Last: 0}, {Source: 1, First: 1, Last: 1}, {Source: 2, First: 2, Last: 2}},
		FreeText:       Span{Source: 3, First: 3, Last: 22},
		Card: &Card{
			KeyCols:     [2]int{0, 1},
			CaptionSpan: [2]int{2, 8},
			ValueSpan:   [2]int{9, 22},
			Captions: []string{
				"Измеренный уровень, дБА",
				"Поправка на фон, дБА",
				"Фон, дБА",
				"Уровень с учетом поправки, дБА",
			},
			Placeholders: []string{"", "0", "", ""},
		},
		BaseRowHeight: DefaultBaseRowHeight,
	}
}

// MicroclimateLayout is the microclimate results map: 12 columns under a three-row header
// table; the measurement place is merged down over its sub-rows.
func MicroclimateLayout() Layout {
	header := []HeaderCell{
		{Region: region(0, 2, 0, 0), Text: "№ п/п", Vertical: true},
		{Region: region(0, 2, 1, 3), Text: "Место проведения измерений"},
		{Region: region(0, 2, 4, 4), Text: "Высота от пола, м", Vertical: true},
		{Region: region(0, 2, 5, 5), Text: "Категория работ", Vertical: true},
		{Region: region(0, 0, 6, 11), Text: "Результаты измерений"},
		{Region: region(1, 1, 6, 7), Text: "Температура воздуха, °С"},
		{Region: region(1, 1, 8, 9), Text: "Относительная влажность воздуха, %"},
		{Region: region(1, 1, 10, 11), Text: "Скорость движения воздуха, м/с"},
	}
	for c := 6; c <= 11; c += 2 {
		header = append(header,
			HeaderCell{Region: region(2, 2, c, c), Text: "изм."},
			HeaderCell{Region: region(2, 2, c+1, c+1), Text: "доп."},
		)
	}

	plain := []Span{{Source: 0, First: 0, Last: 0}, {Source: 1, First: 4, Last: 4}, {Source: 2, First: 5, Last: 5}}
	for i := 0; i < 6; i++ {
		plain = append(plain, Span{Source: 4 + i, First: 6 + i, Last: 6 + i})
	}

	return Layout{
		Name:           "Микроклимат",
		Width:          12,
		ColumnWidthsPx: []int{35, 90, 90, 90, 45, 45, 60, 60, 60, 60, 60, 60},
		Header:         header,
		HeaderRows:     3,
		BlankRowLimit:  VentilationBlankRowLimit,
		TrailingCol:    -1,
		DateCaption:    "Дата измерений: ____________",
		Plain:          plain,
		FreeText:       Span{Source: 3, First: 1, Last: 3},
		BaseRowHeight:  DefaultBaseRowHeight,
	}
}

// InstrumentLayout is the instrument table sheet.
func InstrumentLayout() Layout {
	return Layout{
		Name:           "Средства измерений",
		Width:          3,
		ColumnWidthsPx: []int{40, 420, 160},
		Header: []HeaderCell{
			{Region: region(0, 0, 0, 0), Text: "№ п/п"},
			{Region: region(0, 0, 1, 1), Text: "Наименование"},
			{Region: region(0, 0, 2, 2), Text: "Заводской номер"},
		},
		HeaderRows:    1,
		BaseRowHeight: DefaultBaseRowHeight,
	}
}

func region(firstRow, lastRow, firstCol, lastCol int) models.MergedRegion {
	return models.MergedRegion{FirstRow: firstRow, LastRow: lastRow, FirstCol: firstCol, LastCol: lastCol}
}
