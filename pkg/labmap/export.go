package labmap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/labmap-go/pkg/labmap/forms"
	"github.com/ukaji3/labmap-go/pkg/labmap/grid"
	"github.com/ukaji3/labmap-go/pkg/labmap/logging"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
	"github.com/ukaji3/labmap-go/pkg/labmap/parser"
	"github.com/ukaji3/labmap-go/pkg/labmap/reflow"
	"github.com/ukaji3/labmap-go/pkg/labmap/sheet"
	"github.com/ukaji3/labmap-go/pkg/labmap/styles"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Map sheet titles.
const (
	noiseTitle        = "Результаты измерений шума"
	microclimateTitle = "Результаты измерений параметров микроклимата"
	instrumentsTitle  = "Перечень средств измерений"
)

// Export builds the measurement map and the selected forms for a source workbook.
// Every document is built independently: failures are recorded in the report and never
// stop the remaining documents. The returned error covers invalid options only.
func Export(ctx context.Context, source string, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	builders, err := forms.Select(opts.Forms, opts.Laboratory)
	if err != nil {
		return nil, err
	}

	logger := logging.OrNop(opts.Logger).With(zap.String("source", source))
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(source)
	}
	base := baseName(source)
	report := &Report{Source: source, Sheets: make(map[string]reflow.Stats)}

	wb, srcErr := openSource(source)
	if wb != nil {
		defer wb.Close()
	}
	if srcErr != nil {
		logger.Warn("source not read, building forms from an empty record", zap.Error(srcErr))
	}

	report.Record = parser.ExtractFieldRecord(wb, parser.RecordOptions{
		Labels:       opts.Labels,
		TitleSheet:   opts.TitleSheet,
		ResultSheets: opts.resultSheets(),
	})
	if opts.InstrumentsDoc != "" {
		report.Record.Instruments = instrumentsFromDoc(opts.InstrumentsDoc, report.Record.Instruments, logger)
	}

	record := func(o models.Outcome) {
		report.Outcomes = append(report.Outcomes, o)
		fields := []zap.Field{zap.String("document", o.Document), zap.String("status", string(o.Status))}
		switch o.Status {
		case models.StatusProduced:
			logger.Info("document produced", append(fields, zap.String("path", o.Path))...)
		case models.StatusSkipped:
			logger.Warn("document skipped", append(fields, zap.String("reason", o.Reason))...)
		default:
			logger.Warn("document failed", append(fields, zap.Error(o.Err))...)
		}
	}

	if err := ctx.Err(); err != nil {
		record(canceled(MapDocument, err))
	} else {
		record(buildMap(wb, srcErr, report, filepath.Join(outDir, base+MapSuffix), opts, logger))
	}

	for _, b := range builders {
		if err := ctx.Err(); err != nil {
			record(canceled(b.Name(), err))
			continue
		}
		record(buildForm(b, report.Record, filepath.Join(outDir, base+"_"+b.Name()+".docx")))
	}

	return report, nil
}

func openSource(source string) (*grid.Workbook, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrSourceMissing
	}
	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, source)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	wb, err := grid.Open(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return wb, nil
}

func instrumentsFromDoc(path string, fallback []models.Instrument, logger *zap.Logger) []models.Instrument {
	tables, err := grid.ReadDocxTables(path)
	if err != nil {
		logger.Warn("instrument list not read", zap.String("path", path), zap.Error(fmt.Errorf("%w: %w", ErrUnreadable, err)))
		return fallback
	}
	list := parser.InstrumentsFromTables(tables)
	if len(list) == 0 {
		logger.Warn("instrument list has no instrument table", zap.String("path", path))
		return fallback
	}
	return list
}

func buildMap(wb *grid.Workbook, srcErr error, report *Report, path string, opts Options, logger *zap.Logger) models.Outcome {
	switch {
	case errors.Is(srcErr, ErrSourceMissing):
		return models.Outcome{Document: MapDocument, Status: models.StatusSkipped, Reason: srcErr.Error()}
	case srcErr != nil:
		return failed(MapDocument, "open", srcErr)
	}

	f := excelize.NewFile()
	defer f.Close()

	set, err := styles.NewFactory(f).Set()
	if err != nil {
		return failed(MapDocument, "styles", err)
	}

	noise := reflow.NoiseLayout()
	noise.BlankRowLimit = opts.BlankRowLimit
	noise.TrailingCol = opts.NoiseTrailingCol
	micro := reflow.MicroclimateLayout()
	micro.BlankRowLimit = opts.VentilationBlankRowLimit

	sections := []struct {
		layout reflow.Layout
		source string
		title  string
	}{
		{layout: noise, source: opts.NoiseSheet, title: noiseTitle},
		{layout: micro, source: opts.MicroclimateSheet, title: microclimateTitle},
	}
	for _, sec := range sections {
		target, err := newTarget(f, sec.layout, sec.title, true)
		if err != nil {
			return failed(MapDocument, "reflow", err)
		}
		e := reflow.NewEngine(target, set, sec.layout, logger)
		cur, err := e.WriteTitle(sec.title, models.Cursor{})
		if err == nil {
			cur, err = e.WriteHeader(cur)
		}
		if err != nil {
			return failed(MapDocument, "reflow", err)
		}

		src, err := wb.Sheet(sec.source)
		if err != nil {
			logger.Info("result sheet absent", zap.String("sheet", sec.source))
			continue
		}
		_, stats, err := e.Run(src, cur)
		if err != nil {
			return failed(MapDocument, "reflow", err)
		}
		report.Sheets[sec.layout.Name] = stats
	}

	inst := reflow.InstrumentLayout()
	target, err := newTarget(f, inst, instrumentsTitle, false)
	if err != nil {
		return failed(MapDocument, "reflow", err)
	}
	e := reflow.NewEngine(target, set, inst, logger)
	cur, err := e.WriteTitle(instrumentsTitle, models.Cursor{})
	if err == nil {
		cur, err = e.WriteHeader(cur)
	}
	if err == nil {
		_, err = e.WriteInstruments(report.Record.Instruments, cur)
	}
	if err != nil {
		return failed(MapDocument, "reflow", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return failed(MapDocument, "save", fmt.Errorf("%w: %w", ErrWrite, err))
	}
	if err := f.SaveAs(path); err != nil {
		return failed(MapDocument, "save", fmt.Errorf("%w: %w", ErrWrite, err))
	}
	return models.Outcome{Document: MapDocument, Path: path, Status: models.StatusProduced}
}

func newTarget(f *excelize.File, l reflow.Layout, title string, landscape bool) (*sheet.Sheet, error) {
	return sheet.New(f, l.Name, sheet.Setup{
		ColumnWidthsPx: l.ColumnWidthsPx,
		Landscape:      landscape,
		FitToWidth:     true,
		Margins:        sheet.DefaultMargins(),
		Header:         title,
		Footer:         sheet.DefaultFooter,
	})
}

func buildForm(b forms.Builder, rec models.FieldRecord, path string) models.Outcome {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return failed(b.Name(), "save", fmt.Errorf("%w: %w", ErrWrite, err))
	}
	if err := b.Build(rec, path); err != nil {
		return failed(b.Name(), "build", fmt.Errorf("%w: %w", ErrWrite, err))
	}
	return models.Outcome{Document: b.Name(), Path: path, Status: models.StatusProduced}
}

func failed(document, stage string, err error) models.Outcome {
	return models.Outcome{Document: document, Status: models.StatusFailed, Err: NewBuildError(document, stage, err)}
}

func canceled(document string, err error) models.Outcome {
	return models.Outcome{Document: document, Status: models.StatusSkipped, Reason: err.Error()}
}

// baseName is the source file name without its extension.
func baseName(source string) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "labmap"
	}
	return name
}
