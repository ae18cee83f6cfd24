// Package styles builds named cell style presets once per target workbook and hands out
// the same style id for every cell of that kind.
package styles

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Preset names.
const (
	Center   = "center"
	Left     = "left"
	Header   = "header"
	Vertical = "vertical"
	Caption  = "caption"
	Plain    = "plain"
	Title    = "title"
)

// Default font of the measurement map.
const (
	DefaultFontFamily = "Times New Roman"
	DefaultFontSize   = 10.0
)

// Preset is a named style registered in a workbook.
type Preset struct {
	Name string
	ID   int
}

// Factory creates presets on first use and caches them by name.
type Factory struct {
	file   *excelize.File
	family string
	size   float64
	cache  map[string]Preset
	specs  map[string]func() *excelize.Style
}

// NewFactory returns a factory bound to f with the built-in preset definitions.
func NewFactory(f *excelize.File) *Factory {
	fa := &Factory{
		file:   f,
		family: DefaultFontFamily,
		size:   DefaultFontSize,
		cache:  make(map[string]Preset),
		specs:  make(map[string]func() *excelize.Style),
	}
	fa.Register(Center, func() *excelize.Style { return fa.style(false, false, "center", 0, true) })
	fa.Register(Left, func() *excelize.Style { return fa.style(false, false, "left", 0, true) })
	fa.Register(Header, func() *excelize.Style { return fa.style(true, false, "center", 0, true) })
	fa.Register(Vertical, func() *excelize.Style { return fa.style(true, false, "center", 90, true) })
	fa.Register(Caption, func() *excelize.Style { return fa.style(false, true, "left", 0, true) })
	fa.Register(Plain, func() *excelize.Style { return fa.style(false, false, "left", 0, false) })
	fa.Register(Title, func() *excelize.Style {
		s := fa.style(true, false, "center", 0, false)
		s.Font.Size = fa.size + 2
		return s
	})
	return fa
}

// WithFont changes the font used by presets that have not been created yet.
func (fa *Factory) WithFont(family string, size float64) *Factory {
	if family != "" {
		fa.family = family
	}
	if size > 0 {
		fa.size = size
	}
	return fa
}

// Register adds or replaces a preset definition. A preset already created keeps its id.
func (fa *Factory) Register(name string, spec func() *excelize.Style) {
	fa.specs[name] = spec
}

// Get returns the preset, creating it in the workbook on first use.
func (fa *Factory) Get(name string) (Preset, error) {
	if p, ok := fa.cache[name]; ok {
		return p, nil
	}
	spec, ok := fa.specs[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown style preset %q", name)
	}
	id, err := fa.file.NewStyle(spec())
	if err != nil {
		return Preset{}, fmt.Errorf("creating style %q: %w", name, err)
	}
	p := Preset{Name: name, ID: id}
	fa.cache[name] = p
	return p, nil
}

// Count returns the number of presets created so far.
func (fa *Factory) Count() int {
	return len(fa.cache)
}

func (fa *Factory) style(bold, italic bool, horizontal string, rotation int, bordered bool) *excelize.Style {
	s := &excelize.Style{
		Font: &excelize.Font{
			Family: fa.family,
			Size:   fa.size,
			Bold:   bold,
			Italic: italic,
		},
		Alignment: &excelize.Alignment{
			Horizontal:   horizontal,
			Vertical:     "center",
			WrapText:     true,
			TextRotation: rotation,
		},
	}
	if bordered {
		s.Border = thinBorders()
	}
	return s
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

// Set bundles the presets one target sheet uses.
type Set struct {
	Center   Preset
	Left     Preset
	Header   Preset
	Vertical Preset
	Caption  Preset
	Plain    Preset
	Title    Preset
}

// Set creates (or reuses) every built-in preset.
func (fa *Factory) Set() (*Set, error) {
	var s Set
	for _, item := range []struct {
		name string
		dst  *Preset
	}{
		{Center, &s.Center},
		{Left, &s.Left},
		{Header, &s.Header},
		{Vertical, &s.Vertical},
		{Caption, &s.Caption},
		{Plain, &s.Plain},
		{Title, &s.Title},
	} {
		p, err := fa.Get(item.name)
		if err != nil {
			return nil, err
		}
		*item.dst = p
	}
	return &s, nil
}
