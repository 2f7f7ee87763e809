package wavejson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Document is a decoded WaveJSON document.
type Document struct {
	Signal []SignalEntry `json:"signal"`
}

// SignalEntry is one entry of the signal array. Exactly one of Item and
// Group is set after decoding.
type SignalEntry struct {
	Item  *SignalItem
	Group *SignalGroup
}

// SignalItem is a single named waveform.
type SignalItem struct {
	Name   string     `json:"name"`
	Wave   string     `json:"wave"`
	Data   SignalData `json:"data"`
	Period float64    `json:"period"`
}

// SignalGroup is a labeled collection of nested entries.
type SignalGroup struct {
	Label   string
	Entries []SignalEntry
}

// SignalData holds the labels attached to the data cycles of a signal.
// WaveJSON allows either an array of strings or a single string whose
// whitespace-separated fields become the labels.
type SignalData []string

// UnmarshalJSON implements json.Unmarshaler.
func (e *SignalEntry) UnmarshalJSON(b []byte) error {
	switch firstToken(b) {
	case '{':
		e.Item = new(SignalItem)
		return json.Unmarshal(b, e.Item)
	case '[':
		e.Group = new(SignalGroup)
		return json.Unmarshal(b, e.Group)
	default:
		return fmt.Errorf("wavejson: signal entry must be an object or an array, got %s", excerpt(b))
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *SignalGroup) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var labels []string
	for _, el := range raw {
		if firstToken(el) == '"' {
			if len(g.Entries) > 0 {
				return fmt.Errorf("wavejson: group label %s must precede the group entries", excerpt(el))
			}
			var s string
			if err := json.Unmarshal(el, &s); err != nil {
				return err
			}
			labels = append(labels, s)
			continue
		}
		var entry SignalEntry
		if err := json.Unmarshal(el, &entry); err != nil {
			return err
		}
		g.Entries = append(g.Entries, entry)
	}
	g.Label = strings.Join(labels, " ")
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *SignalData) UnmarshalJSON(b []byte) error {
	switch firstToken(b) {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = strings.Fields(s)
		return nil
	case '[':
		var labels []string
		if err := json.Unmarshal(b, &labels); err != nil {
			return err
		}
		*d = labels
		return nil
	case 'n':
		*d = nil
		return nil
	default:
		return fmt.Errorf("wavejson: data must be a string or an array of strings, got %s", excerpt(b))
	}
}

// Parse decodes a strict JSON WaveJSON document.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("wavejson: %w", err)
	}
	return &doc, nil
}

// firstToken returns the first byte of the encoded value, skipping
// insignificant whitespace.
func firstToken(b []byte) byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c
	}
	return 0
}

// excerpt renders the head of an encoded value for error messages.
func excerpt(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) > 24 {
		return string(b[:24]) + "..."
	}
	return string(b)
}
