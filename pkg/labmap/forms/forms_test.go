package forms

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

const laboratory = "Испытательная лаборатория «ЭкоКонтроль»"

func sampleRecord() models.FieldRecord {
	return models.FieldRecord{
		CustomerName:         "ООО «Ромашка»",
		CustomerLegalAddress: "г. Казань, ул. Баумана, 1",
		MeasurementDates:     []string{"05.06.2024", "7 июня 2024"},
		ObjectName:           "Склад №5",
		ObjectAddress:        "г. Казань, ул. Центральная, 10",
		Performer:            "Иванов И.И.",
		Instruments: []models.Instrument{
			{Name: "Шумомер-анализатор спектра ЭКОФИЗИКА-110А", SerialNumber: "ЭФ-1234"},
			{Name: "Метеометр МЭС-200А"},
		},
	}
}

func build(t *testing.T, b Builder, rec models.FieldRecord) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), b.Name()+".docx")
	require.NoError(t, b.Build(rec, path))
	return path
}

func TestEveryFormOpensWithPageHeaderTable(t *testing.T) {
	builders, err := Select(nil, laboratory)
	require.NoError(t, err)
	require.Len(t, builders, 5)

	for _, b := range builders {
		t.Run(b.Name(), func(t *testing.T) {
			path := build(t, b, sampleRecord())

			tables, err := grid.ReadDocxTables(path)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(tables), 2)

			h := tables[0]
			assert.Equal(t, 3, h.RowCount())
			assert.Equal(t, laboratory, h.Text(0, 0))
			assert.Equal(t, "", h.Text(1, 0))
			assert.True(t, strings.HasPrefix(h.Text(1, 1), "Код: Ф-ИЛ-0"))
			assert.Equal(t, "Редакция: 1", h.Text(2, 1))
			assert.True(t, strings.HasPrefix(h.Text(0, 2), "Лист"))

			doc, err := document.Open(path)
			require.NoError(t, err)
			assert.Len(t, doc.Headers(), 1)

			rows := doc.Tables()[0].Rows()
			for i, want := range []wml.ST_Merge{wml.ST_MergeRestart, wml.ST_MergeContinue, wml.ST_MergeContinue} {
				tcPr := rows[i].Cells()[0].X().TcPr
				require.NotNil(t, tcPr)
				require.NotNil(t, tcPr.VMerge)
				assert.Equal(t, want, tcPr.VMerge.ValAttr)
			}
		})
	}
}

func TestRegistrationSheet(t *testing.T) {
	rec := sampleRecord()
	path := build(t, RegistrationSheet{Laboratory: laboratory}, rec)

	tables, err := grid.ReadDocxTables(path)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	body := tables[1]
	assert.Equal(t, 8, body.RowCount())
	assert.Equal(t, "ООО «Ромашка»", body.Text(0, 1))
	assert.Equal(t, Blank, body.Text(2, 1), "missing representative")
	assert.Equal(t, "05.06.2024\n7 июня 2024", body.Text(5, 1))
	assert.Equal(t, "Шумомер-анализатор спектра ЭКОФИЗИКА-110А, зав. № ЭФ-1234\nМетеометр МЭС-200А", body.Text(7, 1))
}

func TestIssuanceSheet(t *testing.T) {
	path := build(t, IssuanceSheet{Laboratory: laboratory}, sampleRecord())
	tables, err := grid.ReadDocxTables(path)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	body := tables[1]
	assert.Equal(t, 3, body.RowCount())
	assert.Equal(t, "Заводской номер", body.Text(0, 2))
	assert.Equal(t, "1", body.Text(1, 0))
	assert.Equal(t, "ЭФ-1234", body.Text(1, 2))
	assert.Equal(t, "Метеометр МЭС-200А", body.Text(2, 1))

	empty := build(t, IssuanceSheet{}, models.FieldRecord{})
	tables, err = grid.ReadDocxTables(empty)
	require.NoError(t, err)
	assert.Equal(t, Blank, tables[0].Text(0, 0), "laboratory left blank")
	assert.Equal(t, 1+issuanceBlankRows, tables[1].RowCount())
}

func TestMeasurementPlan(t *testing.T) {
	path := build(t, MeasurementPlan{Laboratory: laboratory}, models.FieldRecord{})
	tables, err := grid.ReadDocxTables(path)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	body := tables[1]
	assert.Equal(t, 1+len(planFactors), body.RowCount())
	assert.Equal(t, "Шум", body.Text(1, 1))
	assert.Equal(t, Blank, body.Text(1, 3))
	assert.Equal(t, Blank, body.Text(2, 4))
}

func TestRequestForm(t *testing.T) {
	path := build(t, RequestForm{Laboratory: laboratory}, sampleRecord())
	tables, err := grid.ReadDocxTables(path)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "05.06.2024, 7 июня 2024", tables[1].Text(6, 1))
}

func TestRequestAnalysisBreaksBeforeSignatures(t *testing.T) {
	path := build(t, RequestAnalysis{Laboratory: laboratory}, sampleRecord())

	doc, err := document.Open(path)
	require.NoError(t, err)

	breakAt, signatureAt := -1, -1
	for i, p := range doc.Paragraphs() {
		var text strings.Builder
		for _, r := range p.Runs() {
			text.WriteString(r.Text())
			for _, ic := range r.X().EG_RunInnerContent {
				if ic.Br != nil && ic.Br.TypeAttr == wml.ST_BrTypePage {
					breakAt = i
				}
			}
		}
		if strings.HasPrefix(text.String(), "Анализ провел:") {
			signatureAt = i
		}
	}
	require.GreaterOrEqual(t, breakAt, 0, "page break written")
	assert.Greater(t, signatureAt, breakAt)

	tables := doc.Tables()
	require.Len(t, tables, 2)
	assert.Len(t, tables[1].Rows(), 1+len(analysisCriteria))
}

func TestSelect(t *testing.T) {
	builders, err := Select([]string{Plan, " " + Issuance}, "")
	require.NoError(t, err)
	require.Len(t, builders, 2)
	assert.Equal(t, Plan, builders[0].Name())
	assert.Equal(t, Issuance, builders[1].Name())

	_, err = Select([]string{"protocol"}, "")
	assert.Error(t, err)

	assert.True(t, Known(Analysis))
	assert.False(t, Known("protocol"))
	assert.Equal(t, []string{Issuance, Registration, Plan, Request, Analysis}, Names())
}

func TestBuildFailsOnUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "form.docx")
	assert.Error(t, RequestForm{}.Build(sampleRecord(), path))
}
