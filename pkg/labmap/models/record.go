package models

// Instrument is one measuring instrument listed in the source.
type Instrument struct {
	// Name is the instrument type and model.
	Name string `json:"name"`
	// SerialNumber is the factory number.
	SerialNumber string `json:"serial_number"`
}

// FieldRecord holds the header fields harvested from a source workbook.
// It is built once and consumed read-only by every document builder.
type FieldRecord struct {
	CustomerName         string       `json:"customer_name"`
	CustomerLegalAddress string       `json:"customer_legal_address"`
	MeasurementDates     []string     `json:"measurement_dates,omitempty"`
	Representative       string       `json:"representative"`
	ObjectName           string       `json:"object_name"`
	ObjectAddress        string       `json:"object_address"`
	Performer            string       `json:"performer"`
	Instruments          []Instrument `json:"instruments,omitempty"`
}

// Empty reports whether nothing at all was extracted.
func (r FieldRecord) Empty() bool {
	return r.CustomerName == "" && r.CustomerLegalAddress == "" && len(r.MeasurementDates) == 0 &&
		r.Representative == "" && r.ObjectName == "" && r.ObjectAddress == "" &&
		r.Performer == "" && len(r.Instruments) == 0
}
