// Package text loads fonts and resolves the per-character advance widths
// figure layout consumes.
//
// A [Source] wraps one parsed font file behind a pluggable parser backend.
// The default backend parses with golang.org/x/image/font/opentype; an
// alternative backend uses github.com/go-text/typesetting. Both report
// advances in font units at the font's units-per-em scale, which the layout
// engine converts to pixels through the configured font size.
//
//	src, err := text.NewSourceFromFile("NotoSansMono-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rendered, err := figure.Assemble(src, nil)
//
// A Source satisfies the wavedraw.TextMetrics interface and is safe for
// concurrent use, so one Source can serve any number of assemblies.
package text
