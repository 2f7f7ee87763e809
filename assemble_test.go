package wavedraw

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
)

// testMetrics is a fixed-advance TextMetrics with a configurable family and
// glyph set, at 1000 units per em.
type testMetrics struct {
	family   string
	advances map[rune]uint16
}

func (m testMetrics) AdvanceWidth(r rune) (uint16, bool) {
	adv, ok := m.advances[r]
	return adv, ok
}

func (m testMetrics) UnitsPerEm() uint16 { return 1000 }
func (m testMetrics) FamilyName() string { return m.family }

func TestFigureAssemble_Dimensions(t *testing.T) {
	fig := NewFigure(
		Wave{Name: "clk", Cycles: mustCycles(t, "P....")},
		Wave{Name: "data", Cycles: mustCycles(t, "x345x"), Data: []string{"a", "b", "c"}},
	)

	rendered, err := fig.Assemble(nil, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if rendered.NumCycles() != 5 {
		t.Errorf("expected 5 cycles, got %d", rendered.NumCycles())
	}

	// 5 cycles x 48px.
	if got := rendered.SchemaWidth(); got != 240 {
		t.Errorf("expected schema width 240, got %g", got)
	}
	// Two 24px lines, one 16px gap, 8px padding above and below.
	if got := rendered.SchemaHeight(); got != 80 {
		t.Errorf("expected schema height 80, got %g", got)
	}
	// "data" at 600/1000 units per character and font size 10.
	if got := rendered.TextboxWidth(); got != 24 {
		t.Errorf("expected textbox width 24, got %g", got)
	}
	if got := rendered.Width(); got != 8+8+24+240+16 {
		t.Errorf("expected width 296, got %g", got)
	}
	if got := rendered.Height(); got != 8+8+80 {
		t.Errorf("expected height 96, got %g", got)
	}
	if got := rendered.FontFamily(); got != "monospace" {
		t.Errorf("expected monospace fallback, got %q", got)
	}
}

func TestFigureAssemble_CycleWidthScales(t *testing.T) {
	fig := NewFigure(Wave{Name: "s", Cycles: mustCycles(t, "1...")})

	narrow, err := fig.Assemble(nil, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	opts := DefaultOptions()
	opts.CycleWidth *= 2
	wide, err := fig.Assemble(nil, opts)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if wide.SchemaWidth() != 2*narrow.SchemaWidth() {
		t.Errorf("doubling the cycle width should double the schema width, got %g and %g",
			narrow.SchemaWidth(), wide.SchemaWidth())
	}
}

func TestFigureAssemble_GroupsFlatten(t *testing.T) {
	fig := NewFigure(
		Wave{Name: "clk", Cycles: mustCycles(t, "P...")},
		Group{Label: "bus", Lines: []WaveLine{
			Wave{Name: "req", Cycles: mustCycles(t, "0.1.")},
			Group{Label: "inner", Lines: []WaveLine{
				Wave{Name: "ack", Cycles: mustCycles(t, "0..1")},
			}},
		}},
	)

	rendered, err := fig.Assemble(nil, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	var names []string
	for _, line := range rendered.Lines() {
		names = append(names, line.Text())
	}
	want := []string{"clk", "req", "ack"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected lines %v, got %v", want, names)
	}
}

func TestFigureAssemble_EmptyFigure(t *testing.T) {
	rendered, err := NewFigure().Assemble(nil, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(rendered.Lines()) != 0 {
		t.Errorf("expected no lines, got %d", len(rendered.Lines()))
	}
	if rendered.SchemaHeight() != 0 {
		t.Errorf("expected schema height 0, got %g", rendered.SchemaHeight())
	}
	if rendered.NumCycles() != 0 {
		t.Errorf("expected 0 cycles, got %d", rendered.NumCycles())
	}
}

func TestFigureAssemble_FontFamily(t *testing.T) {
	fig := NewFigure(Wave{Name: "s", Cycles: mustCycles(t, "1")})

	metrics := testMetrics{family: "Fira Code", advances: map[rune]uint16{'s': 600}}
	rendered, err := fig.Assemble(metrics, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if got := rendered.FontFamily(); got != "Fira Code, monospace" {
		t.Errorf("expected the generic fallback appended, got %q", got)
	}
}

func TestFigureAssemble_MissingGlyphMeasuresZero(t *testing.T) {
	fig := NewFigure(Wave{Name: "aqa", Cycles: mustCycles(t, "1")})

	metrics := testMetrics{advances: map[rune]uint16{'a': 600}}
	rendered, err := fig.Assemble(metrics, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	// Only the two covered characters contribute.
	if got := rendered.TextboxWidth(); got != 12 {
		t.Errorf("expected textbox width 12, got %g", got)
	}
}

func TestFigureAssemble_LinePeriodOverridesDefault(t *testing.T) {
	opts := DefaultOptions()
	opts.Period = 2

	rendered, err := NewFigure(
		Wave{Name: "fast", Cycles: mustCycles(t, "p"), Period: 1},
		Wave{Name: "slow", Cycles: mustCycles(t, "p")},
	).Assemble(nil, opts)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	lines := rendered.Lines()
	if got := lines[0].Path().NumCycles(); got != 1 {
		t.Errorf("expected the explicit period to win, got %d cycles", got)
	}
	if got := lines[1].Path().NumCycles(); got != 2 {
		t.Errorf("expected the default period to apply, got %d cycles", got)
	}
	if rendered.NumCycles() != 2 {
		t.Errorf("expected the figure to span 2 cycles, got %d", rendered.NumCycles())
	}
}

func TestFigureAssemble_CycleCapacity(t *testing.T) {
	states := make(Cycles, math.MaxUint16+2)
	for i := range states {
		states[i] = StateLow
	}

	_, err := NewFigure(Wave{Name: "wide", Cycles: states}).Assemble(nil, nil)
	if err == nil {
		t.Fatal("expected a capacity error")
	}

	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *CapacityError, got %T", err)
	}
	if capErr.Quantity != "cycle" {
		t.Errorf("expected the cycle capacity to trip, got %q", capErr.Quantity)
	}
	if capErr.Limit != math.MaxUint16 {
		t.Errorf("expected limit %d, got %d", math.MaxUint16, capErr.Limit)
	}
}

func TestFigureAssemble_ParallelMatchesSerial(t *testing.T) {
	// Enough lines to cross the worker pool threshold.
	cycles := mustCycles(t, "10x2.P|1")
	content := []string{"head"}

	var lines []WaveLine
	for i := 0; i < 4*parallelThreshold; i++ {
		lines = append(lines, Wave{Name: fmt.Sprintf("s%d", i), Cycles: cycles, Data: content})
	}

	rendered, err := NewFigure(lines...).Assemble(nil, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(rendered.Lines()) != 4*parallelThreshold {
		t.Fatalf("expected %d lines, got %d", 4*parallelThreshold, len(rendered.Lines()))
	}

	want := NewWavePath(cycles, DefaultOptions().Period).Assemble(content, nil)
	for i, line := range rendered.Lines() {
		if line.Text() != fmt.Sprintf("s%d", i) {
			t.Errorf("line %d: expected name s%d, got %q", i, i, line.Text())
		}
		if !reflect.DeepEqual(line.Path(), want) {
			t.Errorf("line %d: parallel assembly diverged from the serial result", i)
		}
	}
}
