package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

func TestExtractDates(t *testing.T) {
	got := ExtractDates(
		"Дата, время проведения измерений 05.06.2024 с 10:00",
		"повторно 05.06.2024 и 06.06.24",
		"5 июня 2024, 7  ИЮНЯ  2024",
		"номер 123.456.7890 не дата",
	)
	assert.Equal(t, []string{"05.06.2024", "06.06.24", "5 июня 2024", "7 ИЮНЯ 2024"}, got)
	assert.Empty(t, ExtractDates("без даты"))
}

func TestMergeDates(t *testing.T) {
	got := MergeDates(
		[]string{"05.06.2024", "7 июня 2024"},
		nil,
		[]string{"7 Июня 2024", "06.06.2024"},
	)
	assert.Equal(t, []string{"05.06.2024", "7 июня 2024", "06.06.2024"}, got)
}

func TestFindDatesByPattern(t *testing.T) {
	rows := make([][]string, 6)
	rows[0] = []string{"Дата, время проведения измерений 05.06.2024"}
	rows[2] = []string{"Примечание от 01.01.2020"}
	rows[4] = []string{"Дата, время проведения измерений 06.06.2024"}
	g := grid.New("Шум", rows, []models.MergedRegion{
		{FirstRow: 0, LastRow: 0, FirstCol: 0, LastCol: 23},
		{FirstRow: 2, LastRow: 2, FirstCol: 0, LastCol: 5},
		{FirstRow: 4, LastRow: 5, FirstCol: 0, LastCol: 23},
	})

	assert.Equal(t, []string{"05.06.2024"}, FindDatesByPattern(g, DateStampShape(23)))
	assert.Equal(t, []string{"05.06.2024", "01.01.2020", "06.06.2024"}, FindDatesByPattern(g, nil))
}

func TestDateStampShape(t *testing.T) {
	shape := DateStampShape(23)
	assert.True(t, shape(models.MergedRegion{FirstRow: 3, LastRow: 3, FirstCol: 0, LastCol: 24}))
	assert.False(t, shape(models.MergedRegion{FirstRow: 3, LastRow: 3, FirstCol: 1, LastCol: 23}))
	assert.False(t, shape(models.MergedRegion{FirstRow: 3, LastRow: 3, FirstCol: 0, LastCol: 22}))
	assert.False(t, shape(models.MergedRegion{FirstRow: 3, LastRow: 4, FirstCol: 0, LastCol: 23}))
}

func TestResolveTrailingCol(t *testing.T) {
	g := grid.New("s", [][]string{{"a", "", "", "b"}}, nil)
	assert.Equal(t, 23, ResolveTrailingCol(g, 23))
	assert.Equal(t, 3, ResolveTrailingCol(g, -1))
	assert.Equal(t, 1, ResolveTrailingCol(grid.New("empty", nil, nil), -1))
}
