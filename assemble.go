package wavedraw

import (
	"math"

	"github.com/gogpu/wavedraw/internal/parallel"
)

// TextMetrics measures label text for layout. AdvanceWidth returns a
// character's advance in font units and whether the font has a glyph for
// it; UnitsPerEm is the font-unit scale of those advances; FamilyName is
// the resolved font family, or "" when the provider cannot name one.
//
// Implementations must be safe for concurrent use: assembly may measure
// several lines at once.
type TextMetrics interface {
	AdvanceWidth(r rune) (uint16, bool)
	UnitsPerEm() uint16
	FamilyName() string
}

// Monospace returns the fallback metrics used when no font is available:
// a fixed advance of 600 font units at 1000 units per em and no family
// name, approximating a generic monospace face.
func Monospace() TextMetrics { return monospace{} }

type monospace struct{}

func (monospace) AdvanceWidth(rune) (uint16, bool) { return 600, true }
func (monospace) UnitsPerEm() uint16               { return 1000 }
func (monospace) FamilyName() string               { return "" }

// textWidth measures s at the given font size. A character without a glyph
// logs a warning and measures as zero width, so layout always completes.
func textWidth(s string, m TextMetrics, fontSize float64) float64 {
	total := 0
	for _, r := range s {
		adv, ok := m.AdvanceWidth(r)
		if !ok {
			Logger().Warn("no glyph for character, measuring zero width", "char", string(r))
			continue
		}
		total += int(adv)
	}

	upem := m.UnitsPerEm()
	if upem == 0 {
		upem = 1000
	}
	return float64(total) * fontSize / float64(upem)
}

// RenderedLine is one laid-out signal line of a [RenderedFigure].
type RenderedLine struct {
	text      string
	textWidth float64
	path      AssembledWavePath
}

// Text returns the line's name.
func (l RenderedLine) Text() string { return l.text }

// TextWidth returns the measured width of the name at the figure's font
// size.
func (l RenderedLine) TextWidth() float64 { return l.textWidth }

// Path returns the line's assembled waveform.
func (l RenderedLine) Path() AssembledWavePath { return l.path }

// RenderedFigure is the sized, laid-out figure: the terminal, immutable
// output of assembly, consumed by a serializer.
type RenderedFigure struct {
	options Options

	schemaHeight float64
	textboxWidth float64
	schemaWidth  float64

	fontFamily string

	numCycles uint16

	lines []RenderedLine
}

// Options returns a copy of the options the figure was assembled with.
func (f *RenderedFigure) Options() Options { return f.options }

// FontFamily returns the resolved font family, always ending in the
// generic "monospace" fallback.
func (f *RenderedFigure) FontFamily() string { return f.fontFamily }

// NumCycles returns the resolved cycle count, the maximum over all lines.
func (f *RenderedFigure) NumCycles() uint16 { return f.numCycles }

// Lines returns the laid-out lines in document order.
func (f *RenderedFigure) Lines() []RenderedLine { return f.lines }

// TextboxWidth returns the width of the signal-name column, the widest
// measured name.
func (f *RenderedFigure) TextboxWidth() float64 { return f.textboxWidth }

// SchemaWidth returns the width of the waveform area.
func (f *RenderedFigure) SchemaWidth() float64 { return f.schemaWidth }

// SchemaHeight returns the height of the waveform area including its own
// paddings.
func (f *RenderedFigure) SchemaHeight() float64 { return f.schemaHeight }

// Width returns the total figure width.
func (f *RenderedFigure) Width() float64 {
	return f.options.Paddings.FigureLeft +
		f.options.Paddings.FigureRight +
		f.textboxWidth +
		f.schemaWidth +
		f.options.Spacings.TextboxToSchema
}

// Height returns the total figure height.
func (f *RenderedFigure) Height() float64 {
	return f.options.Paddings.FigureTop + f.options.Paddings.FigureBottom + f.schemaHeight
}

// parallelThreshold is the line count at which assembly switches from the
// serial loop to the worker pool.
const parallelThreshold = 8

// Assemble lays the figure out: it runs the transition engine over every
// line, measures names through metrics and computes the page dimensions.
// metrics may be nil for [Monospace], opts may be nil for
// [DefaultOptions].
//
// Assembly returns the figure fully built or not at all: a line count that
// does not fit 32 bits or a cycle count that does not fit 16 bits fails
// with a [*CapacityError].
func (f *Figure) Assemble(metrics TextMetrics, opts *Options) (*RenderedFigure, error) {
	if metrics == nil {
		metrics = Monospace()
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	waves := f.flatten()
	numLines := len(waves)
	if uint64(numLines) > math.MaxUint32 {
		return nil, &CapacityError{Quantity: "line", Count: numLines, Limit: math.MaxUint32}
	}

	lines := make([]RenderedLine, numLines)
	assembleLine := func(i int) {
		w := waves[i]
		period := w.Period
		if period == 0 {
			period = opts.Period
		}
		lines[i] = RenderedLine{
			text:      w.Name,
			textWidth: textWidth(w.Name, metrics, opts.FontSize),
			path:      NewWavePath(w.Cycles, period).Assemble(w.Data, opts),
		}
	}

	// Lines are independent, so large figures fan out over the worker
	// pool. Each job writes its own index slot, preserving line order.
	if numLines >= parallelThreshold {
		pool := parallel.NewWorkerPool(0)
		work := make([]func(), numLines)
		for i := range waves {
			work[i] = func() { assembleLine(i) }
		}
		pool.ExecuteAll(work)
		pool.Close()
	} else {
		for i := range waves {
			assembleLine(i)
		}
	}

	var maxCycles uint32
	textboxWidth := 0.0
	for _, l := range lines {
		if n := l.path.NumCycles(); n > maxCycles {
			maxCycles = n
		}
		if l.textWidth > textboxWidth {
			textboxWidth = l.textWidth
		}
	}
	if maxCycles > math.MaxUint16 {
		return nil, &CapacityError{Quantity: "cycle", Count: int(maxCycles), Limit: math.MaxUint16}
	}
	numCycles := uint16(maxCycles)

	family := metrics.FamilyName()
	if family == "" {
		family = "monospace"
	} else {
		family += ", monospace"
	}

	schemaWidth := float64(numCycles) * float64(opts.CycleWidth)

	schemaHeight := 0.0
	if numLines > 0 {
		schemaHeight = opts.Paddings.SchemaTop +
			opts.Paddings.SchemaBottom +
			opts.Spacings.LineToLine*float64(numLines-1) +
			float64(opts.WaveHeight)*float64(numLines)
	}

	Logger().Debug("figure assembled",
		"lines", numLines,
		"cycles", numCycles,
		"textbox_width", textboxWidth,
	)

	return &RenderedFigure{
		options: *opts,

		schemaHeight: schemaHeight,
		textboxWidth: textboxWidth,
		schemaWidth:  schemaWidth,

		fontFamily: family,

		numCycles: numCycles,

		lines: lines,
	}, nil
}
