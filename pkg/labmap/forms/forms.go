// Package forms builds the Word documents that accompany a measurement map. Every builder
// reads the same field record and writes one .docx file.
package forms

import (
	"fmt"
	"strings"

	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

// Form names, in build order.
const (
	Issuance     = "issuance"
	Registration = "registration"
	Plan         = "plan"
	Request      = "request"
	Analysis     = "analysis"
)

var names = []string{Issuance, Registration, Plan, Request, Analysis}

// Builder writes one form for a field record.
type Builder interface {
	Name() string
	Build(rec models.FieldRecord, path string) error
}

// Names returns every form name in build order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Known reports whether name is a form name.
func Known(name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// New returns the builder for a form name. laboratory is printed in the page header.
func New(name, laboratory string) (Builder, error) {
	switch name {
	case Issuance:
		return IssuanceSheet{Laboratory: laboratory}, nil
	case Registration:
		return RegistrationSheet{Laboratory: laboratory}, nil
	case Plan:
		return MeasurementPlan{Laboratory: laboratory}, nil
	case Request:
		return RequestForm{Laboratory: laboratory}, nil
	case Analysis:
		return RequestAnalysis{Laboratory: laboratory}, nil
	}
	return nil, fmt.Errorf("unknown form %q", name)
}

// Select returns builders for the named forms in the order given; no names selects all.
func Select(selected []string, laboratory string) ([]Builder, error) {
	if len(selected) == 0 {
		selected = names
	}
	builders := make([]Builder, 0, len(selected))
	for _, n := range selected {
		b, err := New(strings.TrimSpace(n), laboratory)
		if err != nil {
			return nil, err
		}
		builders = append(builders, b)
	}
	return builders, nil
}

func joinDates(rec models.FieldRecord, sep string) string {
	return strings.Join(rec.MeasurementDates, sep)
}

func instrumentLines(list []models.Instrument) string {
	lines := make([]string, 0, len(list))
	for _, inst := range list {
		if inst.SerialNumber == "" {
			lines = append(lines, inst.Name)
			continue
		}
		lines = append(lines, inst.Name+", зав. № "+inst.SerialNumber)
	}
	return strings.Join(lines, "\n")
}
