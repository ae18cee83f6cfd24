package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"golang.org/x/text/unicode/norm"
)

// datePattern matches DD.MM.YY, DD.MM.YYYY and "D <month> YYYY" with Russian genitive month names.
var datePattern = regexp.MustCompile(`(?i)\b\d{1,2}\.\d{1,2}\.(?:\d{4}|\d{2})\b|\b\d{1,2}\s+(?:января|февраля|марта|апреля|мая|июня|июля|августа|сентября|октября|ноября|декабря)\s+\d{4}`)

// DateStampShape matches single-row regions starting at column 0 and reaching trailingCol.
func DateStampShape(trailingCol int) func(models.MergedRegion) bool {
	return func(r models.MergedRegion) bool {
		return r.FirstCol == 0 && r.LastCol >= trailingCol && r.FirstRow == r.LastRow
	}
}

// ResolveTrailingCol returns col, or for a negative col the sheet's last data column (at least 1).
func ResolveTrailingCol(g *grid.Grid, col int) int {
	if col >= 0 {
		return col
	}
	if last := g.LastDataCol(); last > 0 {
		return last
	}
	return 1
}

// FindDatesByPattern extracts every date-like substring from the top-left text of merged
// regions that satisfy shape. Results are de-duplicated by normalized text in first-seen order.
func FindDatesByPattern(g *grid.Grid, shape func(models.MergedRegion) bool) []string {
	var texts []string
	for _, r := range g.Regions() {
		if shape != nil && !shape(r) {
			continue
		}
		texts = append(texts, g.Text(r.FirstRow, r.FirstCol))
	}
	return ExtractDates(texts...)
}

// ExtractDates returns the date-like substrings of texts, de-duplicated in first-seen order.
func ExtractDates(texts ...string) []string {
	var d dateSet
	for _, t := range texts {
		for _, m := range datePattern.FindAllString(t, -1) {
			d.add(m)
		}
	}
	return d.list
}

// MergeDates concatenates date lists, dropping repeats of already seen dates.
func MergeDates(lists ...[]string) []string {
	var d dateSet
	for _, l := range lists {
		for _, v := range l {
			d.add(v)
		}
	}
	return d.list
}

type dateSet struct {
	seen map[string]bool
	list []string
}

func (d *dateSet) add(s string) {
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	key := normalizeDate(s)
	if key == "" || d.seen[key] {
		return
	}
	d.seen[key] = true
	d.list = append(d.list, strings.Join(strings.Fields(s), " "))
}

func normalizeDate(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(norm.NFKC.String(s))), " ")
}
