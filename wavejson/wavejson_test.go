package wavejson

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse_Document(t *testing.T) {
	const input = `{
		"signal": [
			{"name": "clk", "wave": "P......", "period": 2},
			{"name": "data", "wave": "x.345x.", "data": ["head", "body", "tail"]},
			["bus",
				{"name": "req", "wave": "0.1..0.", "data": "r0 r1"},
				["inner", {"name": "ack", "wave": "1.0...."}]
			]
		]
	}`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(doc.Signal) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(doc.Signal))
	}

	clk := doc.Signal[0].Item
	if clk == nil {
		t.Fatal("expected the first entry to be an item")
	}
	if clk.Name != "clk" || clk.Wave != "P......" || clk.Period != 2 {
		t.Errorf("unexpected clk item: %+v", clk)
	}

	data := doc.Signal[1].Item
	if data == nil {
		t.Fatal("expected the second entry to be an item")
	}
	if want := (SignalData{"head", "body", "tail"}); !reflect.DeepEqual(data.Data, want) {
		t.Errorf("expected data %v, got %v", want, data.Data)
	}

	group := doc.Signal[2].Group
	if group == nil {
		t.Fatal("expected the third entry to be a group")
	}
	if group.Label != "bus" {
		t.Errorf("expected group label bus, got %q", group.Label)
	}
	if len(group.Entries) != 2 {
		t.Fatalf("expected 2 group entries, got %d", len(group.Entries))
	}

	req := group.Entries[0].Item
	if req == nil {
		t.Fatal("expected a nested item")
	}
	// A string splits on whitespace.
	if want := (SignalData{"r0", "r1"}); !reflect.DeepEqual(req.Data, want) {
		t.Errorf("expected data %v, got %v", want, req.Data)
	}

	inner := group.Entries[1].Group
	if inner == nil || inner.Label != "inner" {
		t.Fatalf("expected a nested group labeled inner, got %+v", group.Entries[1])
	}
}

func TestParse_MultiWordGroupLabel(t *testing.T) {
	const input = `{"signal": [["address", "bus", {"name": "a0", "wave": "01"}]]}`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	group := doc.Signal[0].Group
	if group == nil {
		t.Fatal("expected a group")
	}
	if group.Label != "address bus" {
		t.Errorf("expected the leading strings joined, got %q", group.Label)
	}
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	const input = `{"signal": [{"name": "clk", "wave": "p", "phase": 0.5}], "config": {"hscale": 2}}`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unknown keys should be ignored: %v", err)
	}
	if len(doc.Signal) != 1 || doc.Signal[0].Item == nil {
		t.Fatalf("expected one item, got %+v", doc.Signal)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"entry neither object nor array", `{"signal": [42]}`},
		{"label after entries", `{"signal": [[{"name": "a", "wave": "1"}, "late label"]]}`},
		{"data wrong type", `{"signal": [{"name": "a", "wave": "1", "data": 7}]}`},
		{"malformed json", `{"signal": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Parse(%s) should fail", tt.input)
			}
		})
	}
}

func TestParse_NullData(t *testing.T) {
	const input = `{"signal": [{"name": "a", "wave": "2", "data": null}]}`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Signal[0].Item.Data != nil {
		t.Errorf("expected nil data, got %v", doc.Signal[0].Item.Data)
	}
}

func TestParseJSON5(t *testing.T) {
	const input = `{
		// WaveJSON as people actually write it.
		signal: [
			{name: 'clk', wave: 'p...'},
			['bus',
				{name: 'data', wave: 'x345', data: 'a b c'},
			],
		],
	}`

	doc, err := ParseJSON5(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseJSON5 failed: %v", err)
	}

	if len(doc.Signal) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(doc.Signal))
	}
	if item := doc.Signal[0].Item; item == nil || item.Name != "clk" {
		t.Errorf("expected the clk item, got %+v", doc.Signal[0])
	}
	group := doc.Signal[1].Group
	if group == nil || group.Label != "bus" {
		t.Fatalf("expected the bus group, got %+v", doc.Signal[1])
	}
	if want := (SignalData{"a", "b", "c"}); !reflect.DeepEqual(group.Entries[0].Item.Data, want) {
		t.Errorf("expected data %v, got %v", want, group.Entries[0].Item.Data)
	}
}

func TestParseJSON5_RejectsGarbage(t *testing.T) {
	if _, err := ParseJSON5(strings.NewReader("signal ::")); err == nil {
		t.Error("expected a decode error")
	}
}
