// Package main provides the CLI entry point for labmap.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/labmap-go/pkg/labmap"
	"github.com/ukaji3/labmap-go/pkg/labmap/config"
	"github.com/ukaji3/labmap-go/pkg/labmap/logging"
	"github.com/ukaji3/labmap-go/pkg/labmap/models"
)

var errMapNotProduced = errors.New("measurement map not produced")

type flags struct {
	configPath  string
	outputDir   string
	instruments string
	forms       []string
	logLevel    string
	logFormat   string
	jsonOutput  bool
	pretty      bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fl flags
	rootCmd := &cobra.Command{
		Use:   "labmap [source.xlsx]",
		Short: "Build a measurement map and laboratory forms from a source workbook",
		Long: `labmap reads a laboratory measurement workbook, re-lays its noise and
microclimate results into a measurement map workbook and writes the
accompanying Word forms next to it.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], fl)
		},
	}

	rootCmd.Flags().StringVarP(&fl.outputDir, "output-dir", "o", "", "Output directory (default: source directory)")
	rootCmd.Flags().StringVar(&fl.configPath, "config", "", "Configuration file (yaml)")
	rootCmd.Flags().StringVar(&fl.instruments, "instruments", "", "Word equipment list replacing the workbook instruments")
	rootCmd.Flags().StringSliceVar(&fl.forms, "forms", nil, "Forms to build (default: all)")
	rootCmd.Flags().StringVar(&fl.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&fl.logFormat, "log-format", "", "Log format: json or console")
	rootCmd.Flags().BoolVar(&fl.jsonOutput, "json", false, "Print the report as JSON")
	rootCmd.Flags().BoolVar(&fl.pretty, "pretty", false, "Pretty-print JSON output")
	return rootCmd
}

func run(cmd *cobra.Command, source string, fl flags) error {
	cfg, err := config.Load(fl.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, fl)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, closeLogger, err := logging.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer closeLogger()

	report, err := labmap.Export(cmd.Context(), source, labmap.OptionsFromConfig(cfg, logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if fl.jsonOutput {
		if err := writeJSON(out, report, fl.pretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	} else {
		writeSummary(out, report)
	}

	if !report.MapProduced() {
		return errMapNotProduced
	}
	return nil
}

// applyFlags overrides configuration with the flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config, fl flags) {
	changed := cmd.Flags().Changed
	if changed("output-dir") {
		cfg.Export.OutputDir = fl.outputDir
	}
	if changed("instruments") {
		cfg.Export.InstrumentsDoc = fl.instruments
	}
	if changed("forms") {
		cfg.Export.Forms = fl.forms
	}
	if changed("log-level") {
		cfg.Logger.Level = fl.logLevel
	}
	if changed("log-format") {
		cfg.Logger.Format = fl.logFormat
	}
}

func writeSummary(w io.Writer, report *labmap.Report) {
	for _, o := range report.Outcomes {
		switch o.Status {
		case models.StatusProduced:
			fmt.Fprintf(w, "%-12s %-8s %s\n", o.Document, o.Status, o.Path)
		case models.StatusSkipped:
			fmt.Fprintf(w, "%-12s %-8s %s\n", o.Document, o.Status, o.Reason)
		default:
			fmt.Fprintf(w, "%-12s %-8s %v\n", o.Document, o.Status, o.Err)
		}
	}
}

type outcomeView struct {
	models.Outcome
	Error string `json:"error,omitempty"`
}

type reportView struct {
	*labmap.Report
	Outcomes []outcomeView `json:"outcomes"`
}

func writeJSON(w io.Writer, report *labmap.Report, pretty bool) error {
	view := reportView{Report: report}
	for _, o := range report.Outcomes {
		v := outcomeView{Outcome: o}
		if o.Err != nil {
			v.Error = o.Err.Error()
		}
		view.Outcomes = append(view.Outcomes, v)
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(view, "", "  ")
	} else {
		data, err = json.Marshal(view)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
