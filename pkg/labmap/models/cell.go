// Package models defines the data structures shared by the reflow engine and the exporters.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Cell is a single source cell as the grid adapter exposes it.
type Cell struct {
	// Text is the formatted cell text (formula results already evaluated).
	Text string `json:"text"`
}

// Number parses the cell text as a float after replacing a decimal comma with a dot.
// Surrounding whitespace is not trimmed: " 12" is not a number.
func (c Cell) Number() (float64, bool) {
	return ParseNumber(c.Text)
}

// IsBlank reports whether the cell holds only whitespace.
func (c Cell) IsBlank() bool {
	return strings.TrimSpace(c.Text) == ""
}

// ParseNumber is the numeric test used for plain record detection.
func ParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
