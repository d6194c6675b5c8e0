// Package json decodes JSON input into the loosely-typed value forms the
// checker operates on (map[string]any, []any, json.Number, string, bool, nil).
package json

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// DecodeReader decodes one JSON document from r. Numbers are preserved as
// json.Number so no precision is lost before checking.
func DecodeReader(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeBytes decodes one JSON document from b.
func DecodeBytes(b []byte) (any, error) { return DecodeReader(bytes.NewReader(b)) }
