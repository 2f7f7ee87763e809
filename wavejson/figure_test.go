package wavejson

import (
	"math"
	"strings"
	"testing"

	"github.com/gogpu/wavedraw"
)

func TestToFigure(t *testing.T) {
	const input = `{
		"signal": [
			{"name": "clk", "wave": "P...", "period": 2},
			["bus", {"name": "data", "wave": "x345", "data": ["a", "b", "c"]}]
		]
	}`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	figure, err := doc.ToFigure()
	if err != nil {
		t.Fatalf("ToFigure failed: %v", err)
	}

	if len(figure.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(figure.Lines))
	}

	clk, ok := figure.Lines[0].(wavedraw.Wave)
	if !ok {
		t.Fatalf("expected a wave, got %T", figure.Lines[0])
	}
	if clk.Name != "clk" || clk.Period != 2 {
		t.Errorf("unexpected clk wave: %+v", clk)
	}
	if len(clk.Cycles) != 4 {
		t.Errorf("expected 4 cycles, got %d", len(clk.Cycles))
	}

	group, ok := figure.Lines[1].(wavedraw.Group)
	if !ok {
		t.Fatalf("expected a group, got %T", figure.Lines[1])
	}
	if group.Label != "bus" {
		t.Errorf("expected label bus, got %q", group.Label)
	}

	data, ok := group.Lines[0].(wavedraw.Wave)
	if !ok {
		t.Fatalf("expected a nested wave, got %T", group.Lines[0])
	}
	if len(data.Data) != 3 || data.Data[0] != "a" {
		t.Errorf("unexpected data labels: %v", data.Data)
	}
	if data.Period != 0 {
		t.Errorf("an unset period should stay 0 for the options default, got %d", data.Period)
	}
}

func TestToFigure_BadWaveNamesSignal(t *testing.T) {
	const input = `{"signal": [{"name": "broken", "wave": "1q"}]}`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	_, err = doc.ToFigure()
	if err == nil {
		t.Fatal("expected the bad wave string to fail")
	}
	if !strings.Contains(err.Error(), `"broken"`) {
		t.Errorf("expected the error to name the signal, got %v", err)
	}
}

func TestToFigure_NormalizesToNFC(t *testing.T) {
	// "é" written as 'e' plus a combining acute accent.
	const input = "{\"signal\": [{\"name\": \"café\", \"wave\": \"2\", \"data\": [\"résultat\"]}]}"

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	figure, err := doc.ToFigure()
	if err != nil {
		t.Fatalf("ToFigure failed: %v", err)
	}

	wave := figure.Lines[0].(wavedraw.Wave)
	if wave.Name != "café" {
		t.Errorf("expected the name composed to NFC, got %q", wave.Name)
	}
	if wave.Data[0] != "résultat" {
		t.Errorf("expected the label composed to NFC, got %q", wave.Data[0])
	}
}

func TestClampPeriod(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  uint16
	}{
		{"unset", 0, 0},
		{"nan", math.NaN(), 0},
		{"below one", 0.25, 1},
		{"fraction rounds", 2.6, 3},
		{"exact", 8, 8},
		{"huge", 1e9, math.MaxUint16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampPeriod(tt.input); got != tt.want {
				t.Errorf("clampPeriod(%g) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
