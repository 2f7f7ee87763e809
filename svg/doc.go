// Package svg serializes assembled figures into standalone SVG documents.
//
// The serializer is a pure consumer of [wavedraw.RenderedFigure]: it reads
// the laid-out lines and emits one translated group per line, with the
// waveform geometry rendered through the relative SVG path mini-language.
// Styling is collected in a single generated stylesheet so the documents
// stay small and editable.
//
//	fig, err := figure.Assemble(nil, nil)
//	if err != nil {
//	    return err
//	}
//	if err := svg.Write(os.Stdout, fig); err != nil {
//	    return err
//	}
//
// [WriteCompressed] produces the same document gzip-compressed, the
// conventional payload of an .svgz file.
package svg
