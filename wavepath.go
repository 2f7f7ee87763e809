package wavedraw

import "iter"

// WavePath is the drawable form of one signal line: its per-cycle states
// plus the sub-cycle period applied to clock edge states.
type WavePath struct {
	states Cycles
	period uint16
}

// NewWavePath pairs a state sequence with a clock period. A period of zero
// is treated as one.
func NewWavePath(states Cycles, period uint16) WavePath {
	if period == 0 {
		period = 1
	}
	return WavePath{states: states, period: period}
}

// States returns the state sequence.
func (p WavePath) States() Cycles { return p.states }

// Period returns the sub-cycle count a clock edge state occupies.
func (p WavePath) Period() uint16 { return p.period }

// Segments scans the line once and yields its committed segments in drawing
// order. content supplies the labels consumed by data boxes; opts may be nil
// for [DefaultOptions]. The sequence is finite and single-pass; ranging over
// it again runs the engine afresh from the first cycle.
func (p WavePath) Segments(content []string, opts *Options) iter.Seq[SegmentItem] {
	if opts == nil {
		opts = DefaultOptions()
	}
	return func(yield func(SegmentItem) bool) {
		if len(p.states) == 0 {
			return
		}

		t := &tracer{
			period:     p.period,
			boxContent: content,
			opts:       opts,
		}
		t.forward = PathBuilder{fullyStroked: true}
		t.backward = PathBuilder{fullyStroked: true}

		first := p.states[0]
		if first.Family() == FamilyControl {
			// Nothing precedes the line, so an immediate repeat stands in
			// front of an undefined box.
			t.prev = StateUndefined
		} else {
			t.prev = first
		}
		t.begin(first)
		t.draw(first)
		t.cycleIndex += uint32(t.cycleLength(first))

		for _, state := range p.states[1:] {
			seg, committed := t.connector(t.prev, state)
			t.draw(state)

			if committed {
				// Commits happen entering, leaving or between boxes,
				// never into a control state.
				t.prev = state
				item := SegmentItem{EndCycle: t.cycleIndex, Segment: seg}
				t.cycleIndex += uint32(t.cycleLength(state))
				if !yield(item) {
					return
				}
				continue
			}

			if state.Family() != FamilyControl {
				t.prev = state
			}
			t.cycleIndex += uint32(t.cycleLength(state))
		}

		yield(SegmentItem{EndCycle: t.cycleIndex, Segment: t.end(t.prev)})
	}
}

// Assemble scans the line once and materializes the segment sequence
// together with the total cycle count. opts may be nil for
// [DefaultOptions].
func (p WavePath) Assemble(content []string, opts *Options) AssembledWavePath {
	var (
		segments  []WavePathSegment
		numCycles uint32
	)
	for item := range p.Segments(content, opts) {
		segments = append(segments, item.Segment)
		numCycles = item.EndCycle
	}
	return AssembledWavePath{segments: segments, numCycles: numCycles}
}

// tracer walks one line's state sequence and drives the two path builders.
// The builders are plain values owned exclusively by the tracer; emitted
// segments take snapshots of them at each commit.
type tracer struct {
	cycleIndex uint32
	period     uint16

	prev CycleState

	forward  PathBuilder
	backward PathBuilder

	boxIndex   int
	boxContent []string

	clockEdgeMarkers []ClockEdgeMarker
	gaps             []uint32

	opts *Options
}

// levelY returns the y offset a level state rests at.
func levelY(s CycleState, h int) int {
	switch s {
	case StateHigh:
		return 0
	case StateMid:
		return h / 2
	default:
		return h
	}
}

// clockY returns the y offset a clock pulse starts and ends each period at.
func clockY(s CycleState, h int) int {
	if s == StateRisingMarked || s == StateRisingUnmarked {
		return h
	}
	return 0
}

// begin positions the builders for the first state of a line. Levels shift
// the sub-path start to their resting offset, rising pulses to the bottom
// edge, and boxes open the backward outline with an invisible drop and the
// leading inset.
func (t *tracer) begin(state CycleState) {
	tOff := t.opts.TransitionOffset
	h := t.opts.WaveHeight

	switch state {
	case StateHigh:
		t.forward.HorizontalLine(tOff)
	case StateMid:
		t.forward.RestartMoveTo(0, h/2)
		t.forward.HorizontalLine(tOff)
	case StateLow:
		t.forward.RestartMoveTo(0, h)
		t.forward.HorizontalLine(tOff)
	case StateRisingMarked, StateRisingUnmarked:
		t.forward.RestartMoveTo(0, h)
	case StateFallingMarked, StateFallingUnmarked:
		// The pulse starts at the top edge, where the cursor already is.
	default:
		t.forward.HorizontalLine(tOff)
		t.backward.VerticalShift(-h)
		t.backward.HorizontalLine(-tOff)
	}
}

// draw fills the remainder of one cycle's width after any connector.
// Control states resolve to the previously drawn state; StateBreak first
// records a gap at the current cycle index.
func (t *tracer) draw(state CycleState) {
	tOff := t.opts.TransitionOffset
	h := t.opts.WaveHeight
	w := t.opts.CycleWidth
	p := int(t.period)

	if state == StateBreak {
		t.gaps = append(t.gaps, t.cycleIndex)
	}
	if state.Family() == FamilyControl {
		state = t.prev
	}

	switch state.Family() {
	case FamilyLevel:
		t.forward.HorizontalLine(w - 2*tOff)

	case FamilyClock:
		jump := h
		if clockY(state, h) == h {
			jump = -h
		}
		if state == StateRisingMarked || state == StateFallingMarked {
			edge := ClockEdgePositive
			if jump > 0 {
				edge = ClockEdgeNegative
			}
			t.clockEdgeMarkers = append(t.clockEdgeMarkers, ClockEdgeMarker{
				X:    t.forward.currentX,
				Edge: edge,
			})
		}
		t.forward.VerticalLine(jump)
		t.forward.HorizontalLine(w * p / 2)
		t.forward.VerticalLine(-jump)
		t.forward.HorizontalLine(w * p / 2)

	default:
		t.forward.HorizontalLine(w - 2*tOff)
		t.backward.HorizontalLine(2*tOff - w)
	}
}

// connector draws the boundary geometry between two drawn states and
// reports the committed segment when the boundary forces one. prev is
// always a concrete state; next may be a control marker.
func (t *tracer) connector(prev, next CycleState) (WavePathSegment, bool) {
	tOff := t.opts.TransitionOffset
	h := t.opts.WaveHeight

	pf, nf := prev.Family(), next.Family()
	if pf == FamilyControl {
		panic("wavedraw: control state reached a connector unresolved")
	}

	switch {
	case pf == FamilyLevel && (nf == FamilyLevel || nf == FamilyControl):
		dy := 0
		if nf == FamilyLevel {
			dy = levelY(next, h) - levelY(prev, h)
		}
		switch {
		case dy == 0:
			t.forward.HorizontalLine(2 * tOff)
		case dy == h || dy == -h:
			t.forward.Line(2*tOff, dy)
		default:
			// Any crossing that touches the mid level eases in with a
			// cubic instead of a hard diagonal.
			t.forward.Curve(0, dy, tOff, dy, 2*tOff, dy)
		}

	case pf == FamilyLevel && nf == FamilyClock:
		dy := clockY(next, h) - levelY(prev, h)
		if dy == 0 {
			t.forward.HorizontalLine(tOff)
		} else {
			t.forward.Line(tOff, dy)
		}

	case pf == FamilyLevel && nf == FamilyData:
		t.forward.HorizontalLine(tOff)
		seg := t.commitWithoutBackLine()
		t.enterBox(levelY(prev, h))
		return seg, true

	case pf == FamilyData && nf == FamilyData:
		t.forward.Line(tOff, h/2)
		t.backward.Line(-tOff, h/2)
		seg := t.commitWithBackLine(prev.fill())
		t.forward.Line(tOff, -h/2)
		t.backward.Line(-tOff, -h/2)
		return seg, true

	case pf == FamilyData && nf == FamilyControl:
		// Still inside the box: stretch both outlines, no commit.
		t.forward.HorizontalLine(2 * tOff)
		t.backward.HorizontalLine(-2 * tOff)

	case pf == FamilyData && nf == FamilyLevel:
		if next == StateMid {
			t.forward.Curve(0, h/2, tOff, h/2, 2*tOff, h/2)
			t.backward.Curve(-tOff, 0, -2*tOff, 0, -2*tOff, h/2)
			return t.commitWithBackLine(prev.fill()), true
		}
		t.exitBox(levelY(next, h))
		seg := t.commitWithBackLine(prev.fill())
		t.forward.HorizontalLine(tOff)
		return seg, true

	case pf == FamilyData && nf == FamilyClock:
		t.exitBox(clockY(next, h))
		return t.commitWithBackLine(prev.fill()), true

	case pf == FamilyClock && (nf == FamilyClock || nf == FamilyControl):
		if nf == FamilyClock {
			// Same polarity needs nothing: the pulse already ends where
			// the next one starts. Opposite polarity bridges vertically.
			if dy := clockY(next, h) - clockY(prev, h); dy != 0 {
				t.forward.VerticalLine(dy)
			}
		}

	case pf == FamilyClock && nf == FamilyLevel:
		dy := levelY(next, h) - clockY(prev, h)
		if dy == 0 {
			t.forward.HorizontalLine(tOff)
		} else {
			t.forward.Line(tOff, dy)
		}

	case pf == FamilyClock && nf == FamilyData:
		seg := t.commitWithoutBackLine()
		t.enterBox(clockY(prev, h))
		return seg, true
	}

	return WavePathSegment{}, false
}

// enterBox draws the joining edges into a box from a state resting at src:
// the forward builder descends to the box top, the backward builder to the
// box bottom.
func (t *tracer) enterBox(src int) {
	tOff := t.opts.TransitionOffset
	h := t.opts.WaveHeight

	if src == 0 {
		t.forward.HorizontalLine(tOff)
	} else {
		t.forward.Line(tOff, -src)
	}
	if src == h {
		t.backward.HorizontalLine(-tOff)
	} else {
		t.backward.Line(-tOff, src-h)
	}
}

// exitBox draws the closing edges out of a box toward a state resting at
// dst, mirroring enterBox.
func (t *tracer) exitBox(dst int) {
	tOff := t.opts.TransitionOffset
	h := t.opts.WaveHeight

	if dst == 0 {
		t.forward.HorizontalLine(tOff)
	} else {
		t.forward.Line(tOff, dst)
	}
	if dst == h {
		t.backward.HorizontalLine(-tOff)
	} else {
		t.backward.Line(-tOff, h-dst)
	}
}

// end flushes the single closing segment once input is exhausted.
func (t *tracer) end(state CycleState) WavePathSegment {
	tOff := t.opts.TransitionOffset
	h := t.opts.WaveHeight

	switch state.Family() {
	case FamilyLevel:
		t.forward.HorizontalLine(tOff)
		return t.commitWithoutBackLine()
	case FamilyClock:
		return t.commitWithoutBackLine()
	case FamilyData:
		t.forward.HorizontalLine(tOff)
		t.forward.VerticalShift(h)
		t.backward.HorizontalLine(-tOff)
		return t.commitWithBackLine(state.fill())
	default:
		panic("wavedraw: control state reached finalization unresolved")
	}
}

// commitWithBackLine closes the open box outline: it snapshots both
// builders, appends the backward commands in reverse after the forward
// ones, resolves the label for data fills and restarts the builders at the
// forward cursor.
func (t *tracer) commitWithBackLine(fill Fill) WavePathSegment {
	x, y := t.forward.Start()
	endX, endY := t.forward.Current()
	width := endX - x

	fullyStroked := t.forward.FullyStroked() && t.backward.FullyStroked()

	back := t.backward.TakeAndRestartAt(0, 0)
	for i := len(back.Commands) - 1; i >= 0; i-- {
		t.forward.commands = append(t.forward.commands, back.Commands[i])
	}

	var (
		label    string
		hasLabel bool
	)
	if fill.IsData() {
		// The index advances whether or not an entry remains, so an
		// exhausted list leaves every later box unlabeled.
		if t.boxIndex < len(t.boxContent) {
			label = t.boxContent[t.boxIndex]
			hasLabel = true
		}
		t.boxIndex++
	}

	markers := t.clockEdgeMarkers
	gaps := t.gaps
	t.clockEdgeMarkers = nil
	t.gaps = nil

	data := t.forward.TakeAndRestartAt(endX, endY)

	return WavePathSegment{
		x:     x,
		y:     y,
		width: width,

		fill:     fill,
		label:    label,
		hasLabel: hasLabel,

		clockEdgeMarkers: markers,
		gaps:             gaps,

		fullyStroked: fullyStroked,
		commands:     data.Commands,
	}
}

// commitWithoutBackLine snapshots the forward builder alone, for segment
// boundaries where no box outline is open.
func (t *tracer) commitWithoutBackLine() WavePathSegment {
	x, y := t.forward.Start()
	endX, endY := t.forward.Current()
	width := endX - x

	markers := t.clockEdgeMarkers
	gaps := t.gaps
	t.clockEdgeMarkers = nil
	t.gaps = nil

	data := t.forward.TakeAndRestartAt(endX, endY)

	return WavePathSegment{
		x:     x,
		y:     y,
		width: width,

		fill: FillNone,

		clockEdgeMarkers: markers,
		gaps:             gaps,

		fullyStroked: true,
		commands:     data.Commands,
	}
}

// cycleLength returns the number of sub-cycle units a state occupies:
// the configured period for clock edges, one for everything else, and the
// stood-in state's length for control markers.
func (t *tracer) cycleLength(state CycleState) uint16 {
	if state.Family() == FamilyControl {
		state = t.prev
	}
	if state.Family() == FamilyClock {
		return t.period
	}
	return 1
}
