package wavedraw

// PathCommand is a single relative drawing command in a waveform outline.
// All deltas are integer pixel-grid offsets from the point the previous
// command ended at, so a command sequence is position independent until a
// serializer anchors it.
type PathCommand interface {
	isPathCommand()
}

// HLine draws an axis-aligned horizontal line of length DX.
type HLine struct {
	DX int
}

func (HLine) isPathCommand() {}

// VLine draws an axis-aligned vertical line of length DY.
type VLine struct {
	DY int
}

func (VLine) isPathCommand() {}

// VShift relocates the cursor vertically by DY without drawing.
// A builder that appended a VShift is no longer fully stroked: one edge of
// its outline is supplied invisibly by the paired builder.
type VShift struct {
	DY int
}

func (VShift) isPathCommand() {}

// Line draws a straight line by (DX, DY).
type Line struct {
	DX, DY int
}

func (Line) isPathCommand() {}

// Curve draws a cubic Bezier curve. The two control points and the endpoint
// are all deltas relative to the curve's starting point.
type Curve struct {
	C1X, C1Y int
	C2X, C2Y int
	DX, DY   int
}

func (Curve) isPathCommand() {}

// PathBuilder accumulates relative path commands while tracking the current
// cursor and the start of the open sub-path. The transition engine runs two
// of them per signal line: a forward builder drawn left to right and a
// backward builder accumulated right to left that closes box outlines.
//
// PathBuilder is a closed arithmetic accumulator: no operation can fail.
type PathBuilder struct {
	currentX, currentY int
	startX, startY     int
	fullyStroked       bool
	commands           []PathCommand
}

// NewPathBuilder returns an empty builder anchored at the origin.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{fullyStroked: true}
}

// PathData is the snapshot a builder hands over when a segment commits:
// the sub-path start, the final cursor, whether every command is visible,
// and the accumulated command sequence.
type PathData struct {
	StartX, StartY int
	EndX, EndY     int
	FullyStroked   bool
	Commands       []PathCommand
}

// Current returns the cursor position.
func (b *PathBuilder) Current() (x, y int) { return b.currentX, b.currentY }

// Start returns the position the open sub-path started at.
func (b *PathBuilder) Start() (x, y int) { return b.startX, b.startY }

// FullyStroked reports whether no invisible relocation has been appended
// since the last reset.
func (b *PathBuilder) FullyStroked() bool { return b.fullyStroked }

// Commands returns the accumulated command sequence.
func (b *PathBuilder) Commands() []PathCommand { return b.commands }

// HorizontalLine advances the cursor by dx. When the previous command is a
// horizontal line in the same direction the two merge into one command, so
// a run of equal levels stays a single line.
func (b *PathBuilder) HorizontalLine(dx int) {
	b.currentX += dx

	if n := len(b.commands); n > 0 {
		if last, ok := b.commands[n-1].(HLine); ok && sign(last.DX) == sign(dx) {
			b.commands[n-1] = HLine{DX: last.DX + dx}
			return
		}
	}
	b.commands = append(b.commands, HLine{DX: dx})
}

// VerticalLine advances the cursor by dy with a visible vertical line.
func (b *PathBuilder) VerticalLine(dy int) {
	b.currentY += dy
	b.commands = append(b.commands, VLine{DY: dy})
}

// VerticalShift advances the cursor by dy without drawing and marks the
// builder as not fully stroked until the next reset.
func (b *PathBuilder) VerticalShift(dy int) {
	b.currentY += dy
	b.fullyStroked = false
	b.commands = append(b.commands, VShift{DY: dy})
}

// Line advances the cursor by (dx, dy) with a straight line.
func (b *PathBuilder) Line(dx, dy int) {
	b.currentX += dx
	b.currentY += dy
	b.commands = append(b.commands, Line{DX: dx, DY: dy})
}

// Curve advances the cursor by (dx, dy) with a cubic Bezier curve whose
// control deltas are (c1dx, c1dy) and (c2dx, c2dy).
func (b *PathBuilder) Curve(c1dx, c1dy, c2dx, c2dy, dx, dy int) {
	b.currentX += dx
	b.currentY += dy
	b.commands = append(b.commands, Curve{
		C1X: c1dx, C1Y: c1dy,
		C2X: c2dx, C2Y: c2dy,
		DX: dx, DY: dy,
	})
}

// RestartMoveTo offsets both the cursor and the sub-path start by (dx, dy)
// without leaving a trace. It is meant for the very first cycle of a line,
// before anything has been drawn; any accumulated commands are discarded.
func (b *PathBuilder) RestartMoveTo(dx, dy int) {
	b.currentX += dx
	b.currentY += dy
	b.startX += dx
	b.startY += dy
	if len(b.commands) != 0 {
		b.commands = b.commands[:0]
	}
}

// TakeAndRestartAt returns a snapshot of the accumulated path and resets
// the builder to an empty, fully stroked state anchored at (x, y).
func (b *PathBuilder) TakeAndRestartAt(x, y int) PathData {
	data := PathData{
		StartX: b.startX, StartY: b.startY,
		EndX: b.currentX, EndY: b.currentY,
		FullyStroked: b.fullyStroked,
		Commands:     b.commands,
	}

	b.currentX, b.currentY = x, y
	b.startX, b.startY = x, y
	b.fullyStroked = true
	b.commands = nil

	return data
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
