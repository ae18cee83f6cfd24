package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

func TestFindByPrefix(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		regions []models.MergedRegion
		prefix  string
		want    string
	}{
		{
			name:   "remainder in the same cell",
			rows:   [][]string{{"3. Измерения провел, подпись: Иванов И.И."}},
			prefix: "3. Измерения провел, подпись:",
			want:   "Иванов И.И.",
		},
		{
			name:   "adjacent cell fallback",
			rows:   [][]string{{"", "", "4. Наименование объекта:", "Склад №5"}},
			prefix: "4. Наименование объекта:",
			want:   "Склад №5",
		},
		{
			name:   "leading punctuation stripped",
			rows:   [][]string{{"5. Адрес объекта: — , г. Москва "}},
			prefix: "5. Адрес объекта:",
			want:   "г. Москва",
		},
		{
			name:    "fallback skips the label's merged cells",
			rows:    [][]string{{"4. Наименование объекта:", "", "", "Склад №7"}},
			regions: []models.MergedRegion{{FirstRow: 0, LastRow: 0, FirstCol: 0, LastCol: 2}},
			prefix:  "4. Наименование объекта:",
			want:    "Склад №7",
		},
		{
			name:   "first match wins",
			rows:   [][]string{{"x"}, {"1. Наименование заказчика: ООО А"}, {"1. Наименование заказчика: ООО Б"}},
			prefix: "1. Наименование заказчика:",
			want:   "ООО А",
		},
		{
			name:   "label absent",
			rows:   [][]string{{"Прочее"}},
			prefix: "Представитель заказчика:",
			want:   "",
		},
		{
			name:   "label without value",
			rows:   [][]string{{"Представитель заказчика:"}},
			prefix: "Представитель заказчика:",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.New("Титульный", tt.rows, tt.regions)
			assert.Equal(t, tt.want, FindByPrefix(g, tt.prefix))
		})
	}
}

func TestFindByPrefixNilGrid(t *testing.T) {
	assert.Equal(t, "", FindByPrefix(nil, "1. Наименование заказчика:"))
	assert.Equal(t, "", FindByPrefix(grid.New("s", [][]string{{"a"}}, nil), ""))
}

func TestFindInSheets(t *testing.T) {
	grids := []*grid.Grid{
		grid.New("a", [][]string{{"Представитель заказчика:"}}, nil),
		grid.New("b", [][]string{{"Представитель заказчика: Петров П.П."}}, nil),
	}
	assert.Equal(t, "Петров П.П.", FindInSheets(grids, "Представитель заказчика:"))
	assert.Equal(t, "", FindInSheets(nil, "Представитель заказчика:"))
}
