package text

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using go-text/typesetting, the same
// library that backs HarfBuzz-level shaping. It is an opt-in alternative to
// the ximage backend:
//
//	src, err := text.NewSource(data, text.WithParser("gotext"))
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont on a go-text font.Face.
// font.Face is not safe for concurrent use (it caches glyph lookups), so a
// mutex serializes advance queries.
type gotextParsedFont struct {
	mu   sync.Mutex
	face *font.Face
}

// Name implements ParsedFont.Name. This backend does not resolve family
// metadata; the ximage backend does.
func (f *gotextParsedFont) Name() string {
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() uint16 {
	return f.face.Upem()
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(r rune) (uint16, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0, false
	}

	advance := f.face.HorizontalAdvance(gid)
	if advance <= 0 {
		return 0, true
	}
	return uint16(math.Round(float64(advance))), true
}
