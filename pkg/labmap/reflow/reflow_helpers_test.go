package reflow

import (
	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/ukaji3/labmap-go/pkg/labmap/styles"
)

type fakeTarget struct {
	cells   map[[2]int]string
	styles  map[[2]int]int
	merges  []models.MergedRegion
	heights map[int]float64
	width   int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		cells:   make(map[[2]int]string),
		styles:  make(map[[2]int]int),
		heights: make(map[int]float64),
		width:   10 * 256,
	}
}

func (f *fakeTarget) SetCell(row, col int, text string, p styles.Preset) error {
	f.cells[[2]int{row, col}] = text
	f.styles[[2]int{row, col}] = p.ID
	return nil
}

func (f *fakeTarget) Merge(r models.MergedRegion, text string, p styles.Preset) error {
	for row := r.FirstRow; row <= r.LastRow; row++ {
		for col := r.FirstCol; col <= r.LastCol; col++ {
			f.cells[[2]int{row, col}] = ""
			f.styles[[2]int{row, col}] = p.ID
		}
	}
	f.cells[[2]int{r.FirstRow, r.FirstCol}] = text
	if r.RowSpan() > 1 || r.ColSpan() > 1 {
		f.merges = append(f.merges, r)
	}
	return nil
}

func (f *fakeTarget) SetRowHeight(row int, pt float64) error {
	f.heights[row] = pt
	return nil
}

func (f *fakeTarget) ColumnWidth(int) int { return f.width }

func (f *fakeTarget) text(row, col int) string { return f.cells[[2]int{row, col}] }

func (f *fakeTarget) hasMerge(firstRow, lastRow, firstCol, lastCol int) bool {
	want := models.MergedRegion{FirstRow: firstRow, LastRow: lastRow, FirstCol: firstCol, LastCol: lastCol}
	for _, m := range f.merges {
		if m == want {
			return true
		}
	}
	return false
}

func testStyles() *styles.Set {
	return &styles.Set{
		Center:   styles.Preset{Name: styles.Center, ID: 1},
		Left:     styles.Preset{Name: styles.Left, ID: 2},
		Header:   styles.Preset{Name: styles.Header, ID: 3},
		Vertical: styles.Preset{Name: styles.Vertical, ID: 4},
		Caption:  styles.Preset{Name: styles.Caption, ID: 5},
		Plain:    styles.Preset{Name: styles.Plain, ID: 6},
		Title:    styles.Preset{Name: styles.Title, ID: 7},
	}
}

// noiseSource builds a noise results sheet:
//
//	row 0      date stamp merged over columns 0-23
//	rows 1-3   record header, column 0 merged down three rows
//	row 4      plain record
//	rows 5-6   plain record with its free text merged down
//	row 7      note (unclassified)
//	rows 8-12  blank
//	row 13     date stamp after the section end
func noiseSource() *grid.Grid {
	rows := make([][]string, 14)
	rows[0] = []string{"Дата, время проведения измерений 05.06.2024"}
	rows[1] = []string{"1", "Точка 1", "Источник А", "Место Б"}
	rows[2] = []string{"", "", "", "", "55"}
	rows[3] = []string{"", "", "", "", "57"}
	rows[4] = []string{"1,5", "ул. Ленина", "дБА", "Короткое примечание"}
	rows[5] = []string{"2", "цех 1", "дБА", "Длинное описание условий измерений"}
	rows[6] = []string{"3", "цех 2", "дБА"}
	rows[7] = []string{"Примечание: измерения выполнены днем"}
	rows[13] = []string{"Дата, время проведения измерений 06.06.2024"}

	return grid.New("Шум", rows, []models.MergedRegion{
		region(0, 0, 0, 23),
		region(1, 3, 0, 0),
		region(5, 6, 3, 3),
		region(13, 13, 0, 23),
	})
}
