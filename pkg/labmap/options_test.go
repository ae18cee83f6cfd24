package labmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/labmap-go/pkg/labmap/config"
	"github.com/ukaji3/labmap-go/pkg/labmap/parser"
	"github.com/ukaji3/labmap-go/pkg/labmap/reflow"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "Шум", opts.NoiseSheet)
	assert.Equal(t, "Микроклимат", opts.MicroclimateSheet)
	assert.Equal(t, reflow.DefaultBlankRowLimit, opts.BlankRowLimit)
	assert.Equal(t, reflow.VentilationBlankRowLimit, opts.VentilationBlankRowLimit)
	assert.Equal(t, 23, opts.NoiseTrailingCol)
	assert.Equal(t, []parser.ResultSheet{
		{Name: "Шум", TrailingCol: 23},
		{Name: "Микроклимат", TrailingCol: -1},
	}, opts.resultSheets())
}

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("LABMAP_REFLOW_BLANK_ROW_LIMIT", "9")
	t.Setenv("LABMAP_SHEETS_MICROCLIMATE", "Вентиляция")
	cfg, err := config.Load("")
	require.NoError(t, err)

	opts := OptionsFromConfig(cfg, nil)
	assert.Equal(t, 9, opts.BlankRowLimit)
	assert.Equal(t, "Вентиляция", opts.MicroclimateSheet)
	assert.Equal(t, cfg.Export.Forms, opts.Forms)
	assert.Equal(t, cfg.Labels, opts.Labels)
}

func TestBuildError(t *testing.T) {
	err := NewBuildError("plan", "build", ErrWrite)
	assert.Equal(t, `building plan (build): write failed`, err.Error())
	assert.True(t, errors.Is(err, ErrWrite))
}
