package text

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/opentype vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the read side of a parsed font file: just enough surface
// to resolve per-character advances for layout.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() uint16

	// GlyphAdvance returns the advance width of the glyph representing r
	// in font units, and false when the font has no glyph for r.
	GlyphAdvance(r rune) (uint16, bool)
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
var defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
// Register during program initialization; the registry is not locked.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// SetDefaultParser selects the registered parser used when no WithParser
// option is given. An unregistered name is ignored. Like RegisterParser,
// call during program initialization.
func SetDefaultParser(name string) {
	if _, ok := parserRegistry[name]; ok {
		defaultParserName = name
	}
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
