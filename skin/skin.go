package skin

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/wavedraw"
)

// Skin is a partial option document. Nil fields are not applied.
type Skin struct {
	FontSize         *float64 `yaml:"font_size"`
	WaveHeight       *int     `yaml:"wave_height"`
	CycleWidth       *int     `yaml:"cycle_width"`
	TransitionOffset *int     `yaml:"transition_offset"`
	Period           *uint16  `yaml:"period"`

	Paddings *Paddings `yaml:"paddings"`
	Spacings *Spacings `yaml:"spacings"`

	// Backgrounds replaces the whole fill palette. When set it must list
	// exactly eight colors.
	Backgrounds []string `yaml:"backgrounds"`
}

// Paddings overlays the figure and schema paddings.
type Paddings struct {
	FigureTop    *float64 `yaml:"figure_top"`
	FigureBottom *float64 `yaml:"figure_bottom"`
	FigureLeft   *float64 `yaml:"figure_left"`
	FigureRight  *float64 `yaml:"figure_right"`

	SchemaTop    *float64 `yaml:"schema_top"`
	SchemaBottom *float64 `yaml:"schema_bottom"`
}

// Spacings overlays the figure spacings.
type Spacings struct {
	TextboxToSchema *float64 `yaml:"textbox_to_schema"`
	LineToLine      *float64 `yaml:"line_to_line"`
}

// Load decodes and validates a skin document. Unknown keys are rejected,
// an empty document loads as the empty skin.
func Load(r io.Reader) (*Skin, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Skin
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &Skin{}, nil
		}
		return nil, fmt.Errorf("skin: %w", err)
	}

	if s.Backgrounds != nil {
		if len(s.Backgrounds) != len(wavedraw.DefaultOptions().Backgrounds) {
			return nil, fmt.Errorf("skin: backgrounds must list %d colors, got %d",
				len(wavedraw.DefaultOptions().Backgrounds), len(s.Backgrounds))
		}
		for i, entry := range s.Backgrounds {
			normalized, err := normalizeColor(entry)
			if err != nil {
				return nil, fmt.Errorf("skin: background %d: invalid color %q: %w", i, entry, err)
			}
			s.Backgrounds[i] = normalized
		}
	}
	return &s, nil
}

// normalizeColor parses a hex color and renders it back in canonical
// lowercase #rrggbb form.
func normalizeColor(entry string) (string, error) {
	c, err := colorful.Hex(strings.TrimSpace(entry))
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Apply overlays the set fields of the skin onto opts.
func (s *Skin) Apply(opts *wavedraw.Options) {
	if s.FontSize != nil {
		opts.FontSize = *s.FontSize
	}
	if s.WaveHeight != nil {
		opts.WaveHeight = *s.WaveHeight
	}
	if s.CycleWidth != nil {
		opts.CycleWidth = *s.CycleWidth
	}
	if s.TransitionOffset != nil {
		opts.TransitionOffset = *s.TransitionOffset
	}
	if s.Period != nil {
		opts.Period = *s.Period
	}

	if p := s.Paddings; p != nil {
		applyFloat(&opts.Paddings.FigureTop, p.FigureTop)
		applyFloat(&opts.Paddings.FigureBottom, p.FigureBottom)
		applyFloat(&opts.Paddings.FigureLeft, p.FigureLeft)
		applyFloat(&opts.Paddings.FigureRight, p.FigureRight)
		applyFloat(&opts.Paddings.SchemaTop, p.SchemaTop)
		applyFloat(&opts.Paddings.SchemaBottom, p.SchemaBottom)
	}
	if sp := s.Spacings; sp != nil {
		applyFloat(&opts.Spacings.TextboxToSchema, sp.TextboxToSchema)
		applyFloat(&opts.Spacings.LineToLine, sp.LineToLine)
	}

	if len(s.Backgrounds) == len(opts.Backgrounds) {
		copy(opts.Backgrounds[:], s.Backgrounds)
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
