package wavedraw

// Fill classifies the background of a committed segment.
type Fill uint8

const (
	// FillNone means the segment is an open stroke with no background.
	FillNone Fill = iota
	// FillData0 through FillData7 select one of the eight configured
	// palette entries.
	FillData0
	FillData1
	FillData2
	FillData3
	FillData4
	FillData5
	FillData6
	FillData7
	// FillUndefined is the background of an undefined box. It is drawn as
	// a filled outline like a data fill but never consumes a label.
	FillUndefined
)

// IsData reports whether the fill is one of the eight data palette entries.
// Only data fills consume label entries at commit time.
func (f Fill) IsData() bool { return f >= FillData0 && f <= FillData7 }

// DataIndex returns the palette index of a data fill and whether f is one.
func (f Fill) DataIndex() (int, bool) {
	if !f.IsData() {
		return 0, false
	}
	return int(f - FillData0), true
}

// ClockEdge is the polarity of a clock edge marker.
type ClockEdge uint8

const (
	// ClockEdgePositive marks a rising edge.
	ClockEdgePositive ClockEdge = iota
	// ClockEdgeNegative marks a falling edge.
	ClockEdgeNegative
)

// String returns "positive" or "negative".
func (e ClockEdge) String() string {
	if e == ClockEdgeNegative {
		return "negative"
	}
	return "positive"
}

// ClockEdgeMarker records a visible edge indicator: the x position of the
// pulse's first vertical jump and its polarity.
type ClockEdgeMarker struct {
	X    int
	Edge ClockEdge
}

// WavePathSegment is one committed, independently styleable unit of path
// geometry within a signal line: a stretch of levels and clock pulses, or a
// single box outline. Segments are immutable once emitted.
//
// The command sequence starts at (X, Y) and holds the forward commands
// followed, for box segments, by the reversed backward commands, tracing a
// closed outline clockwise then counterclockwise.
type WavePathSegment struct {
	x     int
	y     int
	width int

	fill     Fill
	label    string
	hasLabel bool

	clockEdgeMarkers []ClockEdgeMarker
	gaps             []uint32

	fullyStroked bool
	commands     []PathCommand
}

// X returns the horizontal origin of the segment.
func (s WavePathSegment) X() int { return s.x }

// Y returns the vertical origin of the segment.
func (s WavePathSegment) Y() int { return s.y }

// Width returns the horizontal extent of the forward pass.
func (s WavePathSegment) Width() int { return s.width }

// Fill returns the background classifier, FillNone for open strokes.
func (s WavePathSegment) Fill() Fill { return s.fill }

// Label returns the label consumed from the line's data list, if any.
// Only data box segments carry labels; an exhausted data list leaves later
// boxes without one.
func (s WavePathSegment) Label() (string, bool) { return s.label, s.hasLabel }

// ClockEdgeMarkers returns the edge indicators recorded since the previous
// commit, in drawing order.
func (s WavePathSegment) ClockEdgeMarkers() []ClockEdgeMarker { return s.clockEdgeMarkers }

// Gaps returns the cycle indices at which break markers were recorded since
// the previous commit.
func (s WavePathSegment) Gaps() []uint32 { return s.gaps }

// FullyStroked reports whether every command of the outline is meant to be
// visibly drawn. It is false when an edge was relocated invisibly because
// the paired builder supplies the true visible edge, which happens in the
// first and last box of a line.
func (s WavePathSegment) FullyStroked() bool { return s.fullyStroked }

// Commands returns the merged command sequence.
func (s WavePathSegment) Commands() []PathCommand { return s.commands }

// SegmentItem pairs an emitted segment with the cycle index its geometry
// ends at, the exclusive upper bound of the cycles it covers. The item of
// the final segment carries the line's total cycle count.
type SegmentItem struct {
	EndCycle uint32
	Segment  WavePathSegment
}

// AssembledWavePath is the materialized segment sequence of one signal line
// together with the total cycle count the line spans. It is produced once
// per line by [WavePath.Assemble] and immutable thereafter.
type AssembledWavePath struct {
	segments  []WavePathSegment
	numCycles uint32
}

// Segments returns the ordered segment sequence.
func (p AssembledWavePath) Segments() []WavePathSegment { return p.segments }

// NumCycles returns the total cycle count of the line, the EndCycle of the
// last segment or zero for an empty line.
func (p AssembledWavePath) NumCycles() uint32 { return p.numCycles }
