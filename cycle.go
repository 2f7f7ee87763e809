package wavedraw

// CycleState is the semantic state of a signal line for one timing cycle.
//
// States come in four families (see [Family]): steady levels, data boxes,
// clock edges and the two control markers that stretch whatever state came
// before them. The textual encoding accepted by [ParseCycles] is listed
// next to each constant.
type CycleState uint8

const (
	// StateHigh holds the line at the top level. Symbol '1'.
	StateHigh CycleState = iota
	// StateLow holds the line at the bottom level. Symbol '0'.
	StateLow
	// StateMid holds the line at half height (high impedance). Symbol 'z'.
	StateMid
	// StateBox0 through StateBox7 draw a data box whose fill is chosen by
	// the box index. Symbols '2' through '9'.
	StateBox0
	StateBox1
	StateBox2
	StateBox3
	StateBox4
	StateBox5
	StateBox6
	StateBox7
	// StateUndefined draws a box with the undefined fill and no label.
	// Symbol 'x'.
	StateUndefined
	// StateRisingUnmarked draws a rising clock pulse. Symbol 'p'.
	StateRisingUnmarked
	// StateRisingMarked draws a rising clock pulse and records a positive
	// edge marker. Symbol 'P'.
	StateRisingMarked
	// StateFallingUnmarked draws a falling clock pulse. Symbol 'n'.
	StateFallingUnmarked
	// StateFallingMarked draws a falling clock pulse and records a negative
	// edge marker. Symbol 'N'.
	StateFallingMarked
	// StateRepeat extends the previous drawn state by one more cycle with
	// no visual seam. Symbol '.'.
	StateRepeat
	// StateBreak extends the previous drawn state like StateRepeat and
	// additionally records a gap marker at its cycle index. Symbol '|'.
	StateBreak
)

// Family classifies cycle states for connector geometry and commit policy.
type Family uint8

const (
	// FamilyLevel covers the three steady line levels.
	FamilyLevel Family = iota
	// FamilyData covers the eight data boxes and the undefined box.
	FamilyData
	// FamilyClock covers the four clock edge states.
	FamilyClock
	// FamilyControl covers the repeat and break markers. Control states
	// never reach connector or drawing rules directly: the engine resolves
	// them to the state they stand in for first.
	FamilyControl
)

// Family returns the family the state belongs to.
func (s CycleState) Family() Family {
	switch s {
	case StateHigh, StateLow, StateMid:
		return FamilyLevel
	case StateRisingUnmarked, StateRisingMarked, StateFallingUnmarked, StateFallingMarked:
		return FamilyClock
	case StateRepeat, StateBreak:
		return FamilyControl
	default:
		return FamilyData
	}
}

// IsClock reports whether the state is one of the four clock edge states.
func (s CycleState) IsClock() bool { return s.Family() == FamilyClock }

// fill returns the fill classifier a box state commits with.
// Non-data states have no fill.
func (s CycleState) fill() Fill {
	switch {
	case s >= StateBox0 && s <= StateBox7:
		return FillData0 + Fill(s-StateBox0)
	case s == StateUndefined:
		return FillUndefined
	default:
		return FillNone
	}
}

// String returns the state name, matching the constant without its prefix.
func (s CycleState) String() string {
	switch s {
	case StateHigh:
		return "High"
	case StateLow:
		return "Low"
	case StateMid:
		return "Mid"
	case StateUndefined:
		return "Undefined"
	case StateRisingUnmarked:
		return "RisingUnmarked"
	case StateRisingMarked:
		return "RisingMarked"
	case StateFallingUnmarked:
		return "FallingUnmarked"
	case StateFallingMarked:
		return "FallingMarked"
	case StateRepeat:
		return "Repeat"
	case StateBreak:
		return "Break"
	default:
		return "Box" + string('0'+byte(s-StateBox0))
	}
}

// Cycles is the ordered per-cycle state sequence of one signal line.
// A zero-length sequence is legal: it assembles into zero segments and
// contributes nothing to the schema width.
type Cycles []CycleState

// ParseCycles decodes a cycle string into a state sequence, one symbol per
// cycle:
//
//	1 0 z     high, low, mid level
//	2 .. 9    data box with fill index 0..7
//	x         undefined box
//	p P       rising clock pulse, P with an edge marker
//	n N       falling clock pulse, N with an edge marker
//	.         repeat the previous state for one more cycle
//	|         repeat the previous state and record a gap
//
// Any other symbol fails with a [*DecodeError] carrying the byte position.
// A '.' or '|' before the first concrete symbol fails the same way, since
// there is nothing for it to extend.
func ParseCycles(s string) (Cycles, error) {
	cycles := make(Cycles, 0, len(s))
	for i, r := range s {
		var st CycleState
		switch r {
		case '1':
			st = StateHigh
		case '0':
			st = StateLow
		case 'z':
			st = StateMid
		case 'x':
			st = StateUndefined
		case '2', '3', '4', '5', '6', '7', '8', '9':
			st = StateBox0 + CycleState(r-'2')
		case 'p':
			st = StateRisingUnmarked
		case 'P':
			st = StateRisingMarked
		case 'n':
			st = StateFallingUnmarked
		case 'N':
			st = StateFallingMarked
		case '.', '|':
			if len(cycles) == 0 {
				return nil, &DecodeError{Position: i, Symbol: r}
			}
			if r == '.' {
				st = StateRepeat
			} else {
				st = StateBreak
			}
		default:
			return nil, &DecodeError{Position: i, Symbol: r}
		}
		cycles = append(cycles, st)
	}
	return cycles, nil
}
