package forms

import (
	"fmt"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

// RegistrationSheet registers the request and the measurement session in the laboratory journal.
type RegistrationSheet struct {
	Laboratory string
}

// Name implements Builder.
func (RegistrationSheet) Name() string { return Registration }

// Build implements Builder.
func (b RegistrationSheet) Build(rec models.FieldRecord, path string) error {
	w := newWriter(pageHeader{
		Laboratory: b.Laboratory,
		Title:      "Лист регистрации",
		Code:       "Ф-ИЛ-02",
		Revision:   "1",
	})

	w.heading("ЛИСТ РЕГИСТРАЦИИ")
	w.keyValue([][2]string{
		{"Наименование заказчика", rec.CustomerName},
		{"Юридический адрес заказчика", rec.CustomerLegalAddress},
		{"Представитель заказчика", rec.Representative},
		{"Наименование объекта", rec.ObjectName},
		{"Адрес объекта", rec.ObjectAddress},
		{"Дата, время проведения измерений", joinDates(rec, "\n")},
		{"Измерения провел", rec.Performer},
		{"Средства измерений", instrumentLines(rec.Instruments)},
	})
	w.field("Регистрационный номер:", "")
	w.field("Дата регистрации:", "")

	if err := w.save(path); err != nil {
		return fmt.Errorf("saving registration sheet: %w", err)
	}
	return nil
}
