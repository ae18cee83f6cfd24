package forms

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

var analysisCriteria = []string{
	"Требования заказчика определены и документированы",
	"Лаборатория располагает необходимыми средствами измерений",
	"Методики измерений входят в область аккредитации",
	"Сроки выполнения измерений согласованы с заказчиком",
	"Персонал лаборатории имеет необходимую квалификацию",
}

// RequestAnalysis is the request review sheet. Its signature block always starts a new page.
type RequestAnalysis struct {
	Laboratory string
}

// Name implements Builder.
func (RequestAnalysis) Name() string { return Analysis }

// Build implements Builder.
func (b RequestAnalysis) Build(rec models.FieldRecord, path string) error {
	w := newWriter(pageHeader{
		Laboratory: b.Laboratory,
		Title:      "Лист анализа заявки",
		Code:       "Ф-ИЛ-05",
		Revision:   "1",
	})

	w.heading("ЛИСТ АНАЛИЗА ЗАЯВКИ")
	w.field("Заказчик:", rec.CustomerName)
	w.field("Объект:", rec.ObjectName)
	w.doc.AddParagraph()

	widths := []int{567, 6804, 1134, 1134}
	t := w.table(widths...)
	w.row(t,
		cell{text: "№ п/п", width: widths[0], bold: true, center: true},
		cell{text: "Критерий", width: widths[1], bold: true, center: true},
		cell{text: "Да", width: widths[2], bold: true, center: true},
		cell{text: "Нет", width: widths[3], bold: true, center: true},
	)
	for i, c := range analysisCriteria {
		w.row(t,
			cell{text: strconv.Itoa(i + 1), width: widths[0], center: true},
			cell{text: c, width: widths[1]},
			cell{width: widths[2]},
			cell{width: widths[3]},
		)
	}
	w.doc.AddParagraph()
	w.field("Заключение:", "")

	w.pageBreak()
	w.signature("Анализ провел", rec.Performer)
	w.field("Дата, время проведения измерений:", joinDates(rec, ", "))

	if err := w.save(path); err != nil {
		return fmt.Errorf("saving request analysis: %w", err)
	}
	return nil
}
