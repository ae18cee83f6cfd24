package reflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(NoiseLayout())
	g := noiseSource()

	tests := []struct {
		name     string
		row      int
		kind     models.BlockKind
		rowStart int
		rowEnd   int
		next     int
	}{
		{"date stamp", 0, models.DateStamp, 0, 0, 1},
		{"record header", 1, models.RecordHeader, 1, 3, 4},
		{"inside consumed header", 2, models.Unclassified, 2, 2, 4},
		{"plain row with decimal comma", 4, models.PlainRecord, 4, 4, 5},
		{"plain row with merged free text", 5, models.PlainRecord, 5, 6, 7},
		{"text row", 7, models.Unclassified, 7, 7, 8},
		{"blank row", 9, models.Unclassified, 9, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := c.Classify(g, tt.row, 0)
			assert.Equal(t, tt.kind, b.Kind)
			assert.Equal(t, tt.rowStart, b.RowStart)
			assert.Equal(t, tt.rowEnd, b.RowEnd)
			assert.Equal(t, tt.next, b.Next)
		})
	}
}

func TestClassifyRecordHeaderFields(t *testing.T) {
	rows := make([][]string, 13)
	rows[10] = []string{"1", "Точка 1", "", "Место Б"}
	rows[9] = []string{"", "", "Источник А"}
	g := grid.New("Шум", rows, []models.MergedRegion{
		region(10, 12, 0, 0),
		region(9, 10, 2, 2),
	})

	b := NewClassifier(NoiseLayout()).Classify(g, 10, 0)
	require.Equal(t, models.RecordHeader, b.Kind)
	assert.Equal(t, [4]string{"1", "Точка 1", "Источник А", "Место Б"}, b.Fields)
}

func TestClassifyRejectsOtherShapes(t *testing.T) {
	rows := [][]string{
		{"12"},
		{" 12"},
		{"a"},
		{"b"},
		{"Дата"},
	}
	g := grid.New("s", rows, []models.MergedRegion{
		region(0, 1, 0, 0),
		region(2, 2, 0, 5),
		region(4, 4, 0, 24),
	})
	c := NewClassifier(NoiseLayout())

	assert.Equal(t, models.Unclassified, c.Classify(g, 0, 0).Kind, "two-row column 0 merge")
	assert.Equal(t, models.Unclassified, c.Classify(g, 2, 0).Kind, "date-shaped merge too narrow")
	assert.Equal(t, models.Unclassified, c.Classify(g, 3, 0).Kind, "text in column 0")
	assert.Equal(t, models.DateStamp, c.Classify(g, 4, 0).Kind, "merge past the trailing column")

	stray := grid.New("s", [][]string{{" 12"}}, nil)
	assert.Equal(t, models.Unclassified, c.Classify(stray, 0, 0).Kind, "stray whitespace is not numeric")
}

func TestClassifyTrailingColFromData(t *testing.T) {
	l := MicroclimateLayout()
	rows := [][]string{
		{"Дата измерений 05.06.2024"},
		{"1", "1,0", "IIa", "Кабинет 1", "22", "20-24", "40", "60", "0,1", "0,2"},
	}
	g := grid.New("Микроклимат", rows, []models.MergedRegion{region(0, 0, 0, 9)})

	b := NewClassifier(l).Classify(g, 0, 0)
	assert.Equal(t, models.DateStamp, b.Kind)
	assert.Equal(t, "Дата измерений 05.06.2024", b.Text)
}

func TestBlocks(t *testing.T) {
	c := NewClassifier(NoiseLayout())

	var got []models.LogicalBlock
	for b := range c.Blocks(noiseSource()) {
		got = append(got, b)
	}

	require.Len(t, got, 4)
	assert.Equal(t, models.DateStamp, got[0].Kind)
	assert.Equal(t, models.RecordHeader, got[1].Kind)
	assert.Equal(t, 1, got[1].RowStart)
	assert.Equal(t, models.PlainRecord, got[2].Kind)
	assert.Equal(t, 4, got[2].RowStart)
	assert.Equal(t, models.PlainRecord, got[3].Kind)
	assert.Equal(t, 5, got[3].RowStart)
	assert.Equal(t, 6, got[3].RowEnd)

	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].RowStart, got[i-1].RowEnd, "blocks never overlap")
	}
}

func TestBlocksBlankRowLimit(t *testing.T) {
	l := NoiseLayout()
	l.BlankRowLimit = 0

	var kinds []models.BlockKind
	for b := range NewClassifier(l).Blocks(noiseSource()) {
		kinds = append(kinds, b.Kind)
	}
	assert.Len(t, kinds, 5)
	assert.Equal(t, models.DateStamp, kinds[4])

	l.BlankRowLimit = VentilationBlankRowLimit
	count := 0
	for range NewClassifier(l).Blocks(noiseSource()) {
		count++
	}
	assert.Equal(t, 5, count)
}

func TestBlocksStopsWhenYieldReturnsFalse(t *testing.T) {
	count := 0
	for range NewClassifier(NoiseLayout()).Blocks(noiseSource()) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestBlocksStartRow(t *testing.T) {
	l := NoiseLayout()
	l.StartRow = 4

	var first models.LogicalBlock
	for b := range NewClassifier(l).Blocks(noiseSource()) {
		first = b
		break
	}
	assert.Equal(t, models.PlainRecord, first.Kind)
	assert.Equal(t, 4, first.RowStart)
}
