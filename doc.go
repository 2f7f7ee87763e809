// Package wavedraw assembles digital timing diagrams into vector geometry.
//
// # Overview
//
// wavedraw turns per-signal sequences of timing-cycle states ("high for one
// cycle, then a data box, then a clock pulse") into exact path geometry and
// a sized page layout. The core is a single-pass state machine: it scans a
// line's cycle states, drives a forward and a backward path builder, and
// commits a segment whenever the styling boundary between two states
// requires one. A layout pass then sizes the page from text metrics and
// per-line cycle counts.
//
// # Quick Start
//
//	import "github.com/gogpu/wavedraw"
//
//	// Decode one signal line from its cycle string.
//	cycles, err := wavedraw.ParseCycles("1.0.2.x")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Lay out a figure with the default options and fallback metrics.
//	fig := wavedraw.NewFigure(
//	    wavedraw.Wave{Name: "clk", Cycles: cycles, Data: []string{"A"}},
//	)
//	rendered, err := fig.Assemble(nil, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Hand the rendered figure to a serializer, e.g. svg.Write.
//	_ = rendered.Width()
//
// # Architecture
//
// The library is organized into:
//   - Root: cycle model, path builders, transition engine, layout
//   - text/: font parsing and glyph-advance metrics providers
//   - wavejson/: WaveJSON and JSON5 document decoding
//   - svg/: SVG and SVGZ serialization
//   - skin/: YAML/JSON option overlays
//   - cmd/wavedraw: the render/serve command line tool
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - All core geometry is integer pixel deltas; layout sums are float64
//
// # Determinism
//
// Everything in the core is pure arithmetic over explicit inputs:
// assembling the same states with the same options always produces
// identical command sequences.
package wavedraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
