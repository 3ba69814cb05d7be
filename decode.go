package dbtartifacts

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// DecodeReader decodes one JSON artifact body from r into a Raw value
// suitable for the Parse functions. Numbers are preserved as json.Number so
// relabelled artifacts serialize back byte-for-value identical to their
// input.
func DecodeReader(r io.Reader) (Raw, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// DecodeBytes decodes a JSON artifact body from b. See DecodeReader.
func DecodeBytes(b []byte) (Raw, error) {
	return DecodeReader(bytes.NewReader(b))
}
