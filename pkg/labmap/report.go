package labmap

import (
	"errors"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/ukaji3/labmap-go/pkg/labmap/reflow"
)

// Report lists what one export produced.
type Report struct {
	// Source is the source workbook path.
	Source string `json:"source"`
	// Record holds the extracted header fields.
	Record models.FieldRecord `json:"record"`
	// Sheets holds the reflow counts per map sheet.
	Sheets map[string]reflow.Stats `json:"sheets,omitempty"`
	// Outcomes has one entry per document in build order, the map first.
	Outcomes []models.Outcome `json:"outcomes"`
}

// Outcome returns the outcome of the named document.
func (r *Report) Outcome(document string) (models.Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Document == document {
			return o, true
		}
	}
	return models.Outcome{}, false
}

// MapProduced reports whether the measurement map was written.
func (r *Report) MapProduced() bool {
	o, ok := r.Outcome(MapDocument)
	return ok && o.Status == models.StatusProduced
}

// Err joins the errors of every failed document, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Status == models.StatusFailed && o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}
