// Package labmap converts laboratory measurement workbooks into a measurement map
// spreadsheet and the Word forms that accompany it.
package labmap

import (
	"github.com/ukaji3/labmap-go/pkg/labmap/config"
	"github.com/ukaji3/labmap-go/pkg/labmap/parser"
	"github.com/ukaji3/labmap-go/pkg/labmap/reflow"
	"go.uber.org/zap"
)

// MapDocument is the outcome name of the measurement map workbook.
const MapDocument = "map"

// MapSuffix is appended to the source base name to form the map file name.
const MapSuffix = "_карта.xlsx"

// Options configures an export.
type Options struct {
	// OutputDir receives every output file. Empty means the source directory.
	OutputDir string
	// Forms lists the forms to build. Nil builds all of them.
	Forms []string
	// InstrumentsDoc is an optional Word equipment list that replaces the instruments found in the workbook.
	InstrumentsDoc string
	// Laboratory is printed in every form header.
	Laboratory string

	// NoiseSheet and MicroclimateSheet name the source result sheets.
	NoiseSheet        string
	MicroclimateSheet string
	// TitleSheet is searched first for header fields. Empty means the first sheet.
	TitleSheet string

	// BlankRowLimit ends the noise scan; zero selects reflow.DefaultBlankRowLimit.
	BlankRowLimit int
	// VentilationBlankRowLimit ends the microclimate scan; zero selects reflow.VentilationBlankRowLimit.
	VentilationBlankRowLimit int
	// NoiseTrailingCol is the last column a noise date stamp reaches; zero selects the layout default.
	NoiseTrailingCol int

	// Labels override the header field labels.
	Labels parser.Labels

	// Logger receives progress and failures. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

// OptionsFromConfig maps loaded configuration onto export options.
func OptionsFromConfig(cfg *config.Config, logger *zap.Logger) Options {
	return Options{
		OutputDir:                cfg.Export.OutputDir,
		Forms:                    cfg.Export.Forms,
		InstrumentsDoc:           cfg.Export.InstrumentsDoc,
		Laboratory:               cfg.Forms.Laboratory,
		NoiseSheet:               cfg.Sheets.Noise,
		MicroclimateSheet:        cfg.Sheets.Microclimate,
		TitleSheet:               cfg.Sheets.Title,
		BlankRowLimit:            cfg.Reflow.BlankRowLimit,
		VentilationBlankRowLimit: cfg.Reflow.VentilationBlankRowLimit,
		NoiseTrailingCol:         cfg.Reflow.NoiseTrailingCol,
		Labels:                   cfg.Labels,
		Logger:                   logger,
	}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.NoiseSheet == "" && o.MicroclimateSheet == "" {
		o.NoiseSheet = reflow.NoiseLayout().Name
		o.MicroclimateSheet = reflow.MicroclimateLayout().Name
	}
	if o.BlankRowLimit <= 0 {
		o.BlankRowLimit = reflow.DefaultBlankRowLimit
	}
	if o.VentilationBlankRowLimit <= 0 {
		o.VentilationBlankRowLimit = reflow.VentilationBlankRowLimit
	}
	if o.NoiseTrailingCol <= 0 {
		o.NoiseTrailingCol = reflow.NoiseLayout().TrailingCol
	}
	return o
}

// resultSheets pairs each configured result sheet with the date stamp shape of its layout.
func (o Options) resultSheets() []parser.ResultSheet {
	var out []parser.ResultSheet
	if o.NoiseSheet != "" {
		out = append(out, parser.ResultSheet{Name: o.NoiseSheet, TrailingCol: o.NoiseTrailingCol})
	}
	if o.MicroclimateSheet != "" {
		out = append(out, parser.ResultSheet{Name: o.MicroclimateSheet, TrailingCol: reflow.MicroclimateLayout().TrailingCol})
	}
	return out
}
