package ooxml

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// InspectJSON inspects data and marshals the resulting Summary into its
// host-facing JSON shape (see Entry for the field layout). It is the
// boundary form of Inspect for hosts that consume a serialized value
// rather than Go structs; errors are the same as Inspect's.
//
// Markup in Content is emitted verbatim: angle brackets are not
// HTML-escaped, so the wire bytes carry the entry text as-is.
func InspectJSON(data []byte, opts ...Option) ([]byte, error) {
	summary, err := Inspect(data, opts...)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(summary); err != nil {
		return nil, fmt.Errorf("ooxml: encode summary: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
