package wavedraw

// WaveLine is one entry of a figure: either a leaf [Wave] or a [Group] of
// nested lines.
type WaveLine interface {
	isWaveLine()
}

// Wave is a leaf signal line.
type Wave struct {
	// Name labels the line in the figure textbox.
	Name string
	// Cycles is the per-cycle state sequence.
	Cycles Cycles
	// Data supplies the labels data boxes consume in order.
	Data []string
	// Period is the sub-cycle count clock states occupy on this line.
	// Zero falls back to the configured default.
	Period uint16
}

func (Wave) isWaveLine() {}

// Group is a labeled collection of nested lines. Assembly flattens groups
// depth first into document order; the label is carried for document
// tooling and does not affect layout.
type Group struct {
	Label string
	Lines []WaveLine
}

func (Group) isWaveLine() {}

// Figure is an ordered list of signal lines, the input of
// [Figure.Assemble].
type Figure struct {
	Lines []WaveLine
}

// NewFigure builds a figure from lines in order.
func NewFigure(lines ...WaveLine) *Figure {
	return &Figure{Lines: lines}
}

// flatten returns the leaf waves in depth-first document order.
func (f *Figure) flatten() []Wave {
	var waves []Wave
	var walk func(lines []WaveLine)
	walk = func(lines []WaveLine) {
		for _, line := range lines {
			switch l := line.(type) {
			case Wave:
				waves = append(waves, l)
			case Group:
				walk(l.Lines)
			}
		}
	}
	walk(f.Lines)
	return waves
}
