package grid

import (
	"fmt"
	"strings"

	"github.com/unidoc/unioffice/document"
)

// ReadDocxTables opens a Word document and returns each of its body tables as a grid
// named "table N" (1-based). Cell text joins the cell's paragraphs with newlines.
func ReadDocxTables(path string) ([]*Grid, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, err
	}

	var grids []*Grid
	for i, tbl := range doc.Tables() {
		var rows [][]string
		for _, row := range tbl.Rows() {
			var cells []string
			for _, cell := range row.Cells() {
				cells = append(cells, cellText(cell))
			}
			rows = append(rows, cells)
		}
		grids = append(grids, New(fmt.Sprintf("table %d", i+1), rows, nil))
	}
	return grids, nil
}

func cellText(c document.Cell) string {
	var paras []string
	for _, p := range c.Paragraphs() {
		var sb strings.Builder
		for _, r := range p.Runs() {
			sb.WriteString(r.Text())
		}
		paras = append(paras, sb.String())
	}
	return strings.TrimSpace(strings.Join(paras, "\n"))
}
