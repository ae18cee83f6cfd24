package grid

import (
	"fmt"
	"strings"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference like $A$1:$D$10 (or a single cell) into zero-based bounds.
func ParseRange(ref string) (models.MergedRegion, error) {
	ref = strings.ReplaceAll(ref, "$", "")
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.MergedRegion{}, fmt.Errorf("invalid range reference %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.MergedRegion{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.MergedRegion{}, err
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.MergedRegion{
		FirstRow: startRow - 1,
		LastRow:  endRow - 1,
		FirstCol: startCol - 1,
		LastCol:  endCol - 1,
	}, nil
}

// CellName converts zero-based coordinates to an A1 reference.
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return name
}

// RangeName converts a region to an A1:B2 reference pair.
func RangeName(r models.MergedRegion) (string, string) {
	return CellName(r.FirstRow, r.FirstCol), CellName(r.LastRow, r.LastCol)
}
