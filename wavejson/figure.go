package wavejson

import (
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/wavedraw"
)

// ToFigure converts the document into a figure. Signal names, group labels
// and data labels are normalized to NFC so that visually identical
// documents measure and render identically.
func (d *Document) ToFigure() (*wavedraw.Figure, error) {
	lines, err := toLines(d.Signal)
	if err != nil {
		return nil, err
	}
	return wavedraw.NewFigure(lines...), nil
}

func toLines(entries []SignalEntry) ([]wavedraw.WaveLine, error) {
	lines := make([]wavedraw.WaveLine, 0, len(entries))
	for _, entry := range entries {
		switch {
		case entry.Item != nil:
			wave, err := entry.Item.toWave()
			if err != nil {
				return nil, err
			}
			lines = append(lines, wave)
		case entry.Group != nil:
			nested, err := toLines(entry.Group.Entries)
			if err != nil {
				return nil, err
			}
			lines = append(lines, wavedraw.Group{
				Label: norm.NFC.String(entry.Group.Label),
				Lines: nested,
			})
		}
	}
	return lines, nil
}

func (s *SignalItem) toWave() (wavedraw.Wave, error) {
	cycles, err := wavedraw.ParseCycles(s.Wave)
	if err != nil {
		return wavedraw.Wave{}, fmt.Errorf("wavejson: signal %q: %w", s.Name, err)
	}
	data := make([]string, len(s.Data))
	for i, label := range s.Data {
		data[i] = norm.NFC.String(label)
	}
	return wavedraw.Wave{
		Name:   norm.NFC.String(s.Name),
		Cycles: cycles,
		Data:   data,
		Period: clampPeriod(s.Period),
	}, nil
}

// clampPeriod maps the WaveJSON period onto the uint16 range. Zero means
// unset and defers to the figure options.
func clampPeriod(p float64) uint16 {
	switch {
	case math.IsNaN(p) || p == 0:
		return 0
	case p < 1:
		return 1
	case p > math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(math.Round(p))
	}
}
