// Package sheet writes target sheets: column widths, print setup, merged regions with
// borders, and row heights.
package sheet

// widthUnitOffsets are the per-remainder corrections of the pixel to width-unit conversion.
var widthUnitOffsets = [7]int{0, 36, 73, 109, 146, 182, 219}

// WidthUnitsPerChar is the number of native width units in one character of column width.
const WidthUnitsPerChar = 256

// PointsPerPixel converts pixel heights to points at 96 DPI.
const PointsPerPixel = 0.75

// CentimetersPerInch is used for page margins, which are stored in inches.
const CentimetersPerInch = 2.54

// MaxRowHeight is the largest row height a worksheet accepts, in points.
const MaxRowHeight = 409.0

// DefaultColumnWidthPx is the width of a column without an explicit width.
const DefaultColumnWidthPx = 64

// PixelsToWidthUnits converts a pixel width to native column width units:
// (px/7)*256 + offset[px%7].
func PixelsToWidthUnits(px int) int {
	if px <= 0 {
		return 0
	}
	return (px/7)*WidthUnitsPerChar + widthUnitOffsets[px%7]
}

// WidthUnitsToChars converts native width units to the character widths a worksheet stores.
func WidthUnitsToChars(units int) float64 {
	return float64(units) / WidthUnitsPerChar
}

// PixelsToPoints converts a pixel height to points.
func PixelsToPoints(px float64) float64 {
	return px * PointsPerPixel
}

// CentimetersToInches converts a margin in centimeters to inches.
func CentimetersToInches(cm float64) float64 {
	return cm / CentimetersPerInch
}
