package svg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/gogpu/wavedraw"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// hatchID names the cross-hatch pattern undefined fills reference.
const hatchID = "wavedraw-hatch"

// Write emits fig as a standalone SVG document. fig must be a figure
// produced by [wavedraw.Figure.Assemble]; the figure is only read, never
// mutated, so one figure may be serialized concurrently.
func Write(w io.Writer, fig *wavedraw.RenderedFigure) error {
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw}
	opts := fig.Options()

	wr.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wr.printf("<svg xmlns=%q width=%q height=%q viewBox=\"0 0 %s %s\">\n",
		svgNamespace, ftoa(fig.Width()), ftoa(fig.Height()),
		ftoa(fig.Width()), ftoa(fig.Height()))

	writeStyle(wr, fig, &opts)
	writeDefs(wr)

	wr.printf("<g transform=\"translate(%s,%s)\">\n",
		ftoa(opts.Paddings.FigureLeft), ftoa(opts.Paddings.FigureTop))
	for i, line := range fig.Lines() {
		writeLine(wr, fig, &opts, i, line)
	}
	wr.printf("</g>\n</svg>\n")

	if wr.err != nil {
		return wr.err
	}
	return bw.Flush()
}

// WriteCompressed emits the document of [Write] gzip-compressed, for .svgz
// output.
func WriteCompressed(w io.Writer, fig *wavedraw.RenderedFigure) error {
	zw := gzip.NewWriter(w)
	if err := Write(zw, fig); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// writer wraps an io.Writer with a sticky error so the emitters can chain
// prints without checking each one.
type writer struct {
	w   io.Writer
	err error
}

func (wr *writer) printf(format string, args ...any) {
	if wr.err != nil {
		return
	}
	_, wr.err = fmt.Fprintf(wr.w, format, args...)
}

func writeStyle(wr *writer, fig *wavedraw.RenderedFigure, opts *wavedraw.Options) {
	wr.printf("<style>\n")
	wr.printf("text { font-family: %s; font-size: %spx; fill: #000000; }\n",
		fig.FontFamily(), ftoa(opts.FontSize))
	wr.printf(".name { text-anchor: end; dominant-baseline: middle; }\n")
	wr.printf(".label { text-anchor: middle; dominant-baseline: middle; }\n")
	wr.printf(".wave { fill: none; stroke: #000000; stroke-width: 1; }\n")
	wr.printf(".fill { stroke: none; }\n")
	// Background rules follow .wave so a combined path takes its fill from
	// the palette class and its stroke from .wave.
	for i, bg := range opts.Backgrounds {
		wr.printf(".b%d { fill: %s; }\n", i, bg)
	}
	wr.printf(".undef { fill: url(#%s); }\n", hatchID)
	wr.printf(".arrow { fill: #000000; stroke: none; }\n")
	wr.printf(".gap { fill: none; stroke: #000000; }\n")
	wr.printf(".gapband { fill: #FFFFFF; stroke: none; }\n")
	wr.printf("</style>\n")
}

func writeDefs(wr *writer) {
	wr.printf("<defs>\n")
	wr.printf("<pattern id=%q width=\"6\" height=\"6\" patternTransform=\"rotate(45)\" patternUnits=\"userSpaceOnUse\">\n", hatchID)
	wr.printf("<rect width=\"6\" height=\"6\" fill=\"#FFFFFF\"/>\n")
	wr.printf("<line x1=\"0\" y1=\"0\" x2=\"0\" y2=\"6\" stroke=\"#000000\" stroke-width=\"1\"/>\n")
	wr.printf("</pattern>\n")
	wr.printf("</defs>\n")
}

func writeLine(wr *writer, fig *wavedraw.RenderedFigure, opts *wavedraw.Options, index int, line wavedraw.RenderedLine) {
	y := opts.Paddings.SchemaTop +
		float64(index)*(opts.Spacings.LineToLine+float64(opts.WaveHeight))
	wr.printf("<g transform=\"translate(0,%s)\">\n", ftoa(y))

	if name := line.Text(); name != "" {
		wr.printf("<text x=%q y=%q class=\"name\">%s</text>\n",
			ftoa(fig.TextboxWidth()), ftoa(float64(opts.WaveHeight)/2), escape(name))
	}

	wr.printf("<g transform=\"translate(%s,0)\">\n",
		ftoa(fig.TextboxWidth()+opts.Spacings.TextboxToSchema))
	for _, seg := range line.Path().Segments() {
		writeSegment(wr, opts, seg)
	}
	wr.printf("</g>\n</g>\n")
}

func writeSegment(wr *writer, opts *wavedraw.Options, seg wavedraw.WavePathSegment) {
	switch class := fillClass(seg.Fill()); {
	case class == "":
		wr.printf("<path class=\"wave\" d=%q/>\n", pathData(seg, shiftMoves))
	case seg.FullyStroked():
		// The outline returns to its start, so one closed path carries both
		// the fill and the stroke.
		wr.printf("<path class=\"wave %s\" d=\"%sz\"/>\n", class, pathData(seg, shiftMoves))
	default:
		// An invisible edge splits the segment in two: the fill draws the
		// complete closed outline, the stroke skips the relocated edge.
		wr.printf("<path class=\"fill %s\" d=\"%sz\"/>\n", class, pathData(seg, shiftDraws))
		wr.printf("<path class=\"wave\" d=%q/>\n", pathData(seg, shiftMoves))
	}

	if label, ok := seg.Label(); ok && label != "" {
		cx := float64(seg.X()) + float64(seg.Width())/2
		wr.printf("<text x=%q y=%q class=\"label\">%s</text>\n",
			ftoa(cx), ftoa(float64(opts.WaveHeight)/2), escape(label))
	}

	for _, marker := range seg.ClockEdgeMarkers() {
		writeEdgeArrow(wr, opts, marker)
	}
	for _, gap := range seg.Gaps() {
		writeGap(wr, opts, gap)
	}
}

// writeEdgeArrow draws the polarity triangle of a marked clock edge,
// centered on the edge at mid height.
func writeEdgeArrow(wr *writer, opts *wavedraw.Options, marker wavedraw.ClockEdgeMarker) {
	mid := float64(opts.WaveHeight) / 2
	x := float64(marker.X)
	if marker.Edge == wavedraw.ClockEdgePositive {
		wr.printf("<path class=\"arrow\" d=\"M%s %s l-4 8 h8 z\"/>\n", ftoa(x), ftoa(mid-5))
	} else {
		wr.printf("<path class=\"arrow\" d=\"M%s %s l-4 -8 h8 z\"/>\n", ftoa(x), ftoa(mid+5))
	}
}

// writeGap draws the break squiggle: a white band between two wavy cut
// lines, centered on the recorded cycle and slightly taller than the wave.
func writeGap(wr *writer, opts *wavedraw.Options, cycle uint32) {
	xc := (float64(cycle) + 0.5) * float64(opts.CycleWidth)
	h := float64(opts.WaveHeight)
	top := -2.0
	bottom := h + 2
	upper := h / 3
	lower := 2 * h / 3

	wr.printf("<path class=\"gapband\" d=\"M%s %s C%s %s,%s %s,%s %s L%s %s C%s %s,%s %s,%s %s Z\"/>\n",
		ftoa(xc-2), ftoa(top),
		ftoa(xc-6), ftoa(upper), ftoa(xc+2), ftoa(lower), ftoa(xc-2), ftoa(bottom),
		ftoa(xc+2), ftoa(bottom),
		ftoa(xc+6), ftoa(lower), ftoa(xc-2), ftoa(upper), ftoa(xc+2), ftoa(top))
	wr.printf("<path class=\"gap\" d=\"M%s %s C%s %s,%s %s,%s %s\"/>\n",
		ftoa(xc-2), ftoa(top),
		ftoa(xc-6), ftoa(upper), ftoa(xc+2), ftoa(lower), ftoa(xc-2), ftoa(bottom))
	wr.printf("<path class=\"gap\" d=\"M%s %s C%s %s,%s %s,%s %s\"/>\n",
		ftoa(xc+2), ftoa(top),
		ftoa(xc-2), ftoa(upper), ftoa(xc+6), ftoa(lower), ftoa(xc+2), ftoa(bottom))
}

// shiftMode selects how an invisible relocation serializes: as a relative
// move for stroke paths, or as a drawn line closing the fill outline.
type shiftMode uint8

const (
	shiftMoves shiftMode = iota
	shiftDraws
)

// pathData renders a segment's command sequence in the relative path
// mini-language, anchored at the segment origin.
func pathData(seg wavedraw.WavePathSegment, mode shiftMode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%d %d", seg.X(), seg.Y())
	for _, cmd := range seg.Commands() {
		switch c := cmd.(type) {
		case wavedraw.HLine:
			fmt.Fprintf(&b, "h%d", c.DX)
		case wavedraw.VLine:
			fmt.Fprintf(&b, "v%d", c.DY)
		case wavedraw.Line:
			fmt.Fprintf(&b, "l%d %d", c.DX, c.DY)
		case wavedraw.Curve:
			fmt.Fprintf(&b, "c%d %d,%d %d,%d %d", c.C1X, c.C1Y, c.C2X, c.C2Y, c.DX, c.DY)
		case wavedraw.VShift:
			if mode == shiftDraws {
				fmt.Fprintf(&b, "v%d", c.DY)
			} else {
				fmt.Fprintf(&b, "m0 %d", c.DY)
			}
		}
	}
	return b.String()
}

// fillClass maps a fill classifier onto its stylesheet class, "" for open
// strokes.
func fillClass(f wavedraw.Fill) string {
	if idx, ok := f.DataIndex(); ok {
		return "b" + strconv.Itoa(idx)
	}
	if f == wavedraw.FillUndefined {
		return "undef"
	}
	return ""
}

// ftoa formats a coordinate with the fewest digits that round-trip.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escape(s string) string {
	return textEscaper.Replace(s)
}
