package forms

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

// issuanceBlankRows is the number of empty instrument rows printed when none were found.
const issuanceBlankRows = 3

// IssuanceSheet is the equipment issuance sheet: which instruments the performer took out.
type IssuanceSheet struct {
	Laboratory string
}

// Name implements Builder.
func (IssuanceSheet) Name() string { return Issuance }

// Build implements Builder.
func (b IssuanceSheet) Build(rec models.FieldRecord, path string) error {
	w := newWriter(pageHeader{
		Laboratory: b.Laboratory,
		Title:      "Лист выдачи средств измерений",
		Code:       "Ф-ИЛ-01",
		Revision:   "1",
	})

	w.heading("ЛИСТ ВЫДАЧИ СРЕДСТВ ИЗМЕРЕНИЙ")
	w.field("Объект:", rec.ObjectName)
	w.field("Адрес объекта:", rec.ObjectAddress)
	w.field("Дата, время проведения измерений:", joinDates(rec, ", "))
	w.doc.AddParagraph()

	widths := []int{567, 3969, 1701, 1134, 1134, 1134}
	t := w.table(widths...)
	header := []string{"№ п/п", "Наименование средства измерений", "Заводской номер", "Выдал", "Получил", "Вернул"}
	cells := make([]cell, len(header))
	for i, text := range header {
		cells[i] = cell{text: text, width: widths[i], bold: true, center: true}
	}
	w.row(t, cells...)

	list := rec.Instruments
	if len(list) == 0 {
		list = make([]models.Instrument, issuanceBlankRows)
	}
	for i, inst := range list {
		w.row(t,
			cell{text: strconv.Itoa(i + 1), width: widths[0], center: true},
			cell{text: inst.Name, width: widths[1]},
			cell{text: inst.SerialNumber, width: widths[2], center: true},
			cell{width: widths[3]},
			cell{width: widths[4]},
			cell{width: widths[5]},
		)
	}
	w.doc.AddParagraph()

	w.signature("Выдал", "")
	w.signature("Получил", rec.Performer)

	if err := w.save(path); err != nil {
		return fmt.Errorf("saving issuance sheet: %w", err)
	}
	return nil
}
