package forms

import (
	"fmt"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

// RequestForm is the customer's request for measurements.
type RequestForm struct {
	Laboratory string
}

// Name implements Builder.
func (RequestForm) Name() string { return Request }

// Build implements Builder.
func (b RequestForm) Build(rec models.FieldRecord, path string) error {
	w := newWriter(pageHeader{
		Laboratory: b.Laboratory,
		Title:      "Заявка на проведение измерений",
		Code:       "Ф-ИЛ-04",
		Revision:   "1",
	})

	w.heading("ЗАЯВКА НА ПРОВЕДЕНИЕ ИЗМЕРЕНИЙ")
	w.keyValue([][2]string{
		{"Заказчик", rec.CustomerName},
		{"Юридический адрес", rec.CustomerLegalAddress},
		{"Представитель заказчика", rec.Representative},
		{"Наименование объекта", rec.ObjectName},
		{"Адрес объекта", rec.ObjectAddress},
		{"Виды измерений", "Шум, микроклимат"},
		{"Дата проведения измерений", joinDates(rec, ", ")},
	})
	w.signature("Представитель заказчика", rec.Representative)

	if err := w.save(path); err != nil {
		return fmt.Errorf("saving request form: %w", err)
	}
	return nil
}
