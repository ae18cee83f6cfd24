// Package config loads exporter settings from an optional yaml file and LABMAP_ environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/ukaji3/labmap-go/pkg/labmap/forms"
	"github.com/ukaji3/labmap-go/pkg/labmap/logging"
	"github.com/ukaji3/labmap-go/pkg/labmap/parser"
	"github.com/ukaji3/labmap-go/pkg/labmap/reflow"
)

// EnvPrefix prefixes every environment override, e.g. LABMAP_LOGGER_LEVEL.
const EnvPrefix = "LABMAP"

// Config holds all exporter configuration
type Config struct {
	Logger logging.Config `mapstructure:"logger"`
	Export ExportConfig   `mapstructure:"export"`
	Sheets SheetsConfig   `mapstructure:"sheets"`
	Reflow ReflowConfig   `mapstructure:"reflow"`
	Labels parser.Labels  `mapstructure:"labels"`
	Forms  FormsConfig    `mapstructure:"forms"`
}

// ExportConfig selects the outputs.
type ExportConfig struct {
	OutputDir      string   `mapstructure:"output_dir"`
	Forms          []string `mapstructure:"forms"`
	InstrumentsDoc string   `mapstructure:"instruments_doc"`
}

// SheetsConfig names the source sheets.
type SheetsConfig struct {
	Noise        string `mapstructure:"noise"`
	Microclimate string `mapstructure:"microclimate"`
	Title        string `mapstructure:"title"` // empty means the first sheet
}

// ReflowConfig overrides the scan thresholds of the reflow engine.
type ReflowConfig struct {
	BlankRowLimit            int `mapstructure:"blank_row_limit"`
	VentilationBlankRowLimit int `mapstructure:"ventilation_blank_row_limit"`
	NoiseTrailingCol         int `mapstructure:"noise_trailing_col"`
}

// FormsConfig holds values printed on every form.
type FormsConfig struct {
	Laboratory string `mapstructure:"laboratory"`
}

// Load reads configuration from path (skipped when empty) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Export.Forms = splitList(cfg.Export.Forms)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("logger.format", "console")

	v.SetDefault("export.output_dir", "")
	v.SetDefault("export.forms", forms.Names())
	v.SetDefault("export.instruments_doc", "")

	v.SetDefault("sheets.noise", reflow.NoiseLayout().Name)
	v.SetDefault("sheets.microclimate", reflow.MicroclimateLayout().Name)
	v.SetDefault("sheets.title", "")

	v.SetDefault("reflow.blank_row_limit", reflow.DefaultBlankRowLimit)
	v.SetDefault("reflow.ventilation_blank_row_limit", reflow.VentilationBlankRowLimit)
	v.SetDefault("reflow.noise_trailing_col", reflow.NoiseLayout().TrailingCol)

	labels := parser.DefaultLabels()
	v.SetDefault("labels.customer_name", labels.CustomerName)
	v.SetDefault("labels.customer_legal_address", labels.CustomerLegalAddress)
	v.SetDefault("labels.representative", labels.Representative)
	v.SetDefault("labels.performer", labels.Performer)
	v.SetDefault("labels.object_name", labels.ObjectName)
	v.SetDefault("labels.object_address", labels.ObjectAddress)
	v.SetDefault("labels.measurement_dates", labels.MeasurementDates)
	v.SetDefault("labels.instruments", labels.Instruments)

	v.SetDefault("forms.laboratory", "")
}

// splitList accepts both yaml lists and comma-separated values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Reflow.BlankRowLimit < 0 {
		return fmt.Errorf("reflow.blank_row_limit must not be negative")
	}
	if c.Reflow.VentilationBlankRowLimit < 0 {
		return fmt.Errorf("reflow.ventilation_blank_row_limit must not be negative")
	}
	if c.Reflow.NoiseTrailingCol < 0 {
		return fmt.Errorf("reflow.noise_trailing_col must not be negative")
	}
	for _, f := range c.Export.Forms {
		if !forms.Known(f) {
			return fmt.Errorf("export.forms: unknown form %q", f)
		}
	}
	if c.Sheets.Noise == "" && c.Sheets.Microclimate == "" {
		return fmt.Errorf("sheets: at least one result sheet is required")
	}
	return nil
}
