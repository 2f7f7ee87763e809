package wavejson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/flynn/json5"
)

// ParseJSON5 decodes a WaveJSON document written in JSON5. The document is
// first normalized to strict JSON so that the union decoding of [Parse]
// applies unchanged.
func ParseJSON5(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wavejson: %w", err)
	}
	var generic any
	if err := json5.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("wavejson: %w", err)
	}
	strict, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("wavejson: %w", err)
	}
	return Parse(bytes.NewReader(strict))
}
