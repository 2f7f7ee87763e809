package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{
		font: f,
		// Querying at ppem = unitsPerEm makes sfnt report advances in
		// plain font units.
		ppem: fixed.I(int(f.UnitsPerEm())),
	}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *sfnt.Font
	ppem fixed.Int26_6
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() uint16 {
	return uint16(f.font.UnitsPerEm())
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
// Each call uses its own sfnt.Buffer, so lookups are safe concurrently.
func (f *ximageParsedFont) GlyphAdvance(r rune) (uint16, bool) {
	var buf sfnt.Buffer

	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}

	advance, err := f.font.GlyphAdvance(&buf, idx, f.ppem, font.HintingNone)
	if err != nil {
		return 0, false
	}

	return uint16(advance.Round()), true
}
