package forms

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

// planFactors are the measured factors and their methods, one plan row each.
var planFactors = []struct {
	Factor string
	Method string
}{
	{Factor: "Шум", Method: "ГОСТ ISO 9612-2016"},
	{Factor: "Микроклимат", Method: "ГОСТ 12.1.005-88"},
}

// MeasurementPlan lists the factors to measure at the object with instruments and dates.
type MeasurementPlan struct {
	Laboratory string
}

// Name implements Builder.
func (MeasurementPlan) Name() string { return Plan }

// Build implements Builder.
func (b MeasurementPlan) Build(rec models.FieldRecord, path string) error {
	w := newWriter(pageHeader{
		Laboratory: b.Laboratory,
		Title:      "План проведения измерений",
		Code:       "Ф-ИЛ-03",
		Revision:   "1",
	})

	w.heading("ПЛАН ПРОВЕДЕНИЯ ИЗМЕРЕНИЙ")
	w.field("Заказчик:", rec.CustomerName)
	w.field("Объект:", rec.ObjectName)
	w.field("Адрес объекта:", rec.ObjectAddress)
	w.doc.AddParagraph()

	widths := []int{567, 2268, 2835, 2835, 1134}
	t := w.table(widths...)
	header := []string{"№ п/п", "Фактор", "Методика измерений", "Средства измерений", "Дата"}
	cells := make([]cell, len(header))
	for i, text := range header {
		cells[i] = cell{text: text, width: widths[i], bold: true, center: true}
	}
	w.row(t, cells...)

	instruments := value(instrumentLines(rec.Instruments))
	dates := value(joinDates(rec, "\n"))
	for i, f := range planFactors {
		w.row(t,
			cell{text: strconv.Itoa(i + 1), width: widths[0], center: true},
			cell{text: f.Factor, width: widths[1]},
			cell{text: f.Method, width: widths[2]},
			cell{text: instruments, width: widths[3]},
			cell{text: dates, width: widths[4], center: true},
		)
	}
	w.doc.AddParagraph()

	w.signature("План составил", rec.Performer)

	if err := w.save(path); err != nil {
		return fmt.Errorf("saving measurement plan: %w", err)
	}
	return nil
}
