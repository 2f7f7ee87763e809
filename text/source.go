package text

import (
	"fmt"
	"os"

	"github.com/gogpu/wavedraw"
)

// Source is a loaded font ready to measure text for figure layout.
// It satisfies [wavedraw.TextMetrics], so it plugs directly into
// [wavedraw.Figure.Assemble]. Source is heavyweight and should be shared
// across the application.
//
// Source is safe for concurrent use.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the Source itself.
	addr *Source

	parsed ParsedFont

	name string
	upem uint16

	config sourceConfig
}

var _ wavedraw.TextMetrics = (*Source)(nil)

// SourceOption configures a Source during creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds optional configuration for Source creation.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source options.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{parserName: defaultParserName}
}

// WithParser selects the font parsing backend by registry name, "ximage"
// or "gotext" for the built-in ones. Unknown names fall back to the
// default backend.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is fully consumed during parsing and can be reused after
// this call.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	s := &Source{
		parsed: parsed,
		name:   parsed.Name(),
		upem:   parsed.UnitsPerEm(),
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewSource(data, opts...)
}

// AdvanceWidth returns r's advance in font units and whether the font has
// a glyph for it.
func (s *Source) AdvanceWidth(r rune) (uint16, bool) {
	s.copyCheck()
	return s.parsed.GlyphAdvance(r)
}

// UnitsPerEm returns the font-unit scale of the reported advances.
func (s *Source) UnitsPerEm() uint16 {
	s.copyCheck()
	return s.upem
}

// FamilyName returns the font family name, or "" when the parsing backend
// cannot resolve one.
func (s *Source) FamilyName() string {
	s.copyCheck()
	return s.name
}

// copyCheck panics if Source was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("text: Source must not be copied by value")
	}
}
