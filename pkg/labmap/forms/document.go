package forms

import (
	"strings"

	"github.com/ukaji3/labmap-go/pkg/labmap/rowheight"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// Page header table column widths in twips. Body tables span the same total width.
const (
	HeaderLeftTwips   = 2268
	HeaderMiddleTwips = 5103
	HeaderRightTwips  = 2268
	BodyWidthTwips    = HeaderLeftTwips + HeaderMiddleTwips + HeaderRightTwips
)

// Blank is rendered in place of a missing value.
const Blank = "________"

const (
	fontFamily = "Times New Roman"
	fontSize   = 11 * measurement.Point
	// linePt is the height of one wrapped line in a table row.
	linePt = 14.0
)

func value(s string) string {
	if strings.TrimSpace(s) == "" {
		return Blank
	}
	return s
}

type pageHeader struct {
	Laboratory string
	Title      string
	Code       string
	Revision   string
}

type cell struct {
	text   string
	width  int
	bold   bool
	center bool
	pages  bool
	merge  wml.ST_Merge
}

// writer appends formatted content to a Word document in reading order.
type writer struct {
	doc *document.Document
}

func newWriter(h pageHeader) *writer {
	doc := document.New()
	sec := doc.BodySection()
	sec.SetPageMargins(
		2*measurement.Centimeter, 1.5*measurement.Centimeter,
		2*measurement.Centimeter, 2*measurement.Centimeter,
		1.25*measurement.Centimeter, 1.25*measurement.Centimeter, 0)

	hdr := doc.AddHeader()
	p := hdr.AddParagraph()
	p.Properties().SetAlignment(wml.ST_JcCenter)
	pageFields(p)
	sec.SetHeader(hdr, wml.ST_HdrFtrDefault)

	w := &writer{doc: doc}
	w.headerTable(h)
	return w
}

// headerTable writes the 3x3 table opening every form: laboratory name merged down the left
// column, title, code and revision in the middle, page fields merged down the right column.
func (w *writer) headerTable(h pageHeader) {
	t := w.table(HeaderLeftTwips, HeaderMiddleTwips, HeaderRightTwips)
	middle := []string{h.Title, "Код: " + value(h.Code), "Редакция: " + value(h.Revision)}
	for i, text := range middle {
		left := cell{width: HeaderLeftTwips, center: true, merge: wml.ST_MergeContinue}
		right := cell{width: HeaderRightTwips, center: true, merge: wml.ST_MergeContinue}
		if i == 0 {
			left.text, left.merge = value(h.Laboratory), wml.ST_MergeRestart
			right.pages, right.merge = true, wml.ST_MergeRestart
		}
		w.row(t, left, cell{text: text, width: HeaderMiddleTwips, bold: i == 0, center: true}, right)
	}
	w.doc.AddParagraph()
}

func (w *writer) table(widths ...int) document.Table {
	total := 0
	for _, v := range widths {
		total += v
	}
	t := w.doc.AddTable()
	tp := t.Properties()
	tp.SetWidth(measurement.Distance(total) * measurement.Twips)
	tp.SetLayout(wml.ST_TblLayoutTypeFixed)
	tp.Borders().SetAll(wml.ST_BorderSingle, color.Auto, measurement.Point/2)
	return t
}

// row appends a table row. A row whose text wraps gets an "at least" height for its line count.
func (w *writer) row(t document.Table, cells ...cell) {
	r := t.AddRow()
	lines := 1
	for _, c := range cells {
		tc := r.AddCell()
		cp := tc.Properties()
		cp.SetWidth(measurement.Distance(c.width) * measurement.Twips)
		cp.SetVerticalAlignment(wml.ST_VerticalJcCenter)
		if c.merge != wml.ST_MergeUnset {
			cp.SetVerticalMerge(c.merge)
		}

		if c.pages {
			p := tc.AddParagraph()
			p.Properties().SetAlignment(wml.ST_JcCenter)
			pageFields(p)
			continue
		}
		for _, line := range strings.Split(c.text, "\n") {
			p := tc.AddParagraph()
			if c.center {
				p.Properties().SetAlignment(wml.ST_JcCenter)
			}
			addRun(p, line, c.bold)
		}
		lines = max(lines, rowheight.EstimateLines(c.text, rowheight.CharsForTwips(c.width)))
	}
	if lines > 1 {
		h := measurement.Distance(rowheight.Height(linePt, lines)) * measurement.Point
		r.Properties().SetHeight(h, wml.ST_HeightRuleAtLeast)
	}
}

// keyValue writes a two-column table of captions and values; blank values render as Blank.
func (w *writer) keyValue(pairs [][2]string) {
	const keyTwips = 3402
	t := w.table(keyTwips, BodyWidthTwips-keyTwips)
	for _, kv := range pairs {
		w.row(t,
			cell{text: kv[0], width: keyTwips, bold: true},
			cell{text: value(kv[1]), width: BodyWidthTwips - keyTwips})
	}
	w.doc.AddParagraph()
}

func (w *writer) heading(text string) {
	p := w.doc.AddParagraph()
	p.Properties().SetAlignment(wml.ST_JcCenter)
	addRun(p, text, true)
}

func (w *writer) para(text string) {
	addRun(w.doc.AddParagraph(), text, false)
}

// field writes "label value" with a bold label.
func (w *writer) field(label, v string) {
	p := w.doc.AddParagraph()
	addRun(p, label+" ", true)
	addRun(p, value(v), false)
}

// signature writes "role: ________ / name /".
func (w *writer) signature(role, name string) {
	w.para(role + ": " + Blank + " / " + value(name) + " /")
}

func (w *writer) pageBreak() {
	w.doc.AddParagraph().AddRun().AddPageBreak()
}

func (w *writer) save(path string) error {
	return w.doc.SaveToFile(path)
}

func addRun(p document.Paragraph, text string, bold bool) {
	r := p.AddRun()
	rp := r.Properties()
	rp.SetFontFamily(fontFamily)
	rp.SetSize(fontSize)
	if bold {
		rp.SetBold(true)
	}
	r.AddText(text)
}

// pageFields writes "Лист PAGE из NUMPAGES".
func pageFields(p document.Paragraph) {
	addRun(p, "Лист ", false)
	p.AddRun().AddField(document.FieldCurrentPage)
	addRun(p, " из ", false)
	p.AddRun().AddField(document.FieldNumberOfPages)
}
