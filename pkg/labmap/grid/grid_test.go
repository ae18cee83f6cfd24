package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

func region(firstRow, lastRow, firstCol, lastCol int) models.MergedRegion {
	return models.MergedRegion{FirstRow: firstRow, LastRow: lastRow, FirstCol: firstCol, LastCol: lastCol}
}

func TestNewDropsInvalidAndOverlappingRegions(t *testing.T) {
	g := New("s", [][]string{{"a"}}, []models.MergedRegion{
		region(2, 3, 0, 1),
		region(0, 1, 0, 0),
		region(3, 4, 1, 2),
		region(5, 4, 0, 0),
		region(0, 0, 2, 3),
	})

	assert.Equal(t, []models.MergedRegion{
		region(0, 1, 0, 0),
		region(0, 0, 2, 3),
		region(2, 3, 0, 1),
	}, g.Regions())
}

func TestResolvedAndRegionAt(t *testing.T) {
	g := New("s", [][]string{
		{"Точка 1", "x"},
		{"", "y"},
	}, []models.MergedRegion{region(0, 1, 0, 0)})

	assert.Equal(t, "Точка 1", g.Resolved(1, 0))
	assert.Equal(t, "", g.Text(1, 0))
	assert.Equal(t, "y", g.Resolved(1, 1))

	r, ok := g.RegionAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, region(0, 1, 0, 0), r)

	_, ok = g.RegionAt(1, 1)
	assert.False(t, ok)
	assert.Equal(t, "", g.Text(5, 5))
	assert.Equal(t, "", g.Text(-1, 0))
}

func TestRowCountAndRowBlank(t *testing.T) {
	g := New("s", [][]string{
		{"a"},
		{" ", ""},
		{"Длинный текст"},
	}, []models.MergedRegion{region(2, 4, 0, 0)})

	assert.Equal(t, 5, g.RowCount())
	assert.False(t, g.RowBlank(0))
	assert.True(t, g.RowBlank(1))
	assert.False(t, g.RowBlank(3), "row covered by a merged value is not blank")
	assert.False(t, g.RowBlank(4))
	assert.True(t, g.RowBlank(5))
}

func TestRegionAtWholeColumnMerge(t *testing.T) {
	g := New("s", [][]string{{"Примечание", "a"}, {"", "b"}}, []models.MergedRegion{
		region(0, 1048575, 0, 0),
		region(5, 6, 1, 3),
		region(9, 9, 1, 2),
	})

	r, ok := g.RegionAt(500000, 0)
	require.True(t, ok)
	assert.Equal(t, region(0, 1048575, 0, 0), r)
	assert.Equal(t, "Примечание", g.Resolved(1048575, 0))

	r, ok = g.RegionAt(6, 3)
	require.True(t, ok)
	assert.Equal(t, region(5, 6, 1, 3), r)
	_, ok = g.RegionAt(7, 2)
	assert.False(t, ok, "gap between regions in one column")
	_, ok = g.RegionAt(4, 1)
	assert.False(t, ok, "above the first region of a column")
	r, ok = g.RegionAt(9, 2)
	require.True(t, ok)
	assert.Equal(t, region(9, 9, 1, 2), r)
	_, ok = g.RegionAt(0, 1)
	assert.False(t, ok)
	_, ok = g.RegionAt(1048576, 0)
	assert.False(t, ok)
}

func TestNilGrid(t *testing.T) {
	var g *Grid
	assert.Equal(t, 0, g.RowCount())
	assert.Equal(t, "", g.Resolved(0, 0))
	assert.True(t, g.RowBlank(0))
	assert.Nil(t, g.Regions())
	assert.Equal(t, -1, g.LastDataCol())
}

func TestDataBounds(t *testing.T) {
	g := New("s", [][]string{
		nil,
		{"", "a"},
		{"", "", "", "b"},
		{"", "c"},
	}, []models.MergedRegion{region(3, 4, 1, 6), region(0, 0, 0, 9)})

	b, ok := g.DataBounds()
	require.True(t, ok)
	assert.Equal(t, Bounds{MinRow: 1, MaxRow: 4, MinCol: 1, MaxCol: 6}, b)
	assert.Equal(t, 6, g.LastDataCol())

	_, ok = New("empty", [][]string{{" "}}, nil).DataBounds()
	assert.False(t, ok)
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref  string
		want models.MergedRegion
	}{
		{"A1:D10", region(0, 9, 0, 3)},
		{"$B$2:$C$3", region(1, 2, 1, 2)},
		{"'Шум'!A1:X1", region(0, 0, 0, 23)},
		{"C5", region(4, 4, 2, 2)},
		{"D4:B2", region(1, 3, 1, 3)},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.want, got, tt.ref)
	}

	_, err := ParseRange("A1:B2:C3")
	assert.Error(t, err)
	_, err = ParseRange("1A")
	assert.Error(t, err)
}

func TestCellNames(t *testing.T) {
	assert.Equal(t, "A1", CellName(0, 0))
	assert.Equal(t, "X1", CellName(0, 23))
	assert.Equal(t, "", CellName(-1, 0))

	first, last := RangeName(region(2, 6, 3, 22))
	assert.Equal(t, "D3", first)
	assert.Equal(t, "W7", last)
}
