// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Decode/Encode of Documents in YAML or JSON.

package traceio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation width of encoded YAML.
const yamlIndent = 2

// Decode reads one document from r. Unknown keys are rejected.
func Decode(r io.Reader, f Format) (*Document, error) {
	var w wireDocument
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&w); err != nil {
			return nil, fmt.Errorf("decode yaml: %w: %w", ErrMalformedDocument, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&w); err != nil {
			return nil, fmt.Errorf("decode json: %w: %w", ErrMalformedDocument, err)
		}
	default:
		return nil, fmt.Errorf("decode: %s: %w", f, ErrUnknownFormat)
	}

	return fromWire(&w)
}

// Encode writes d to w.
func Encode(w io.Writer, f Format, d *Document) error {
	wire := toWire(d)
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(wire); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(wire); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	}

	return fmt.Errorf("encode: %s: %w", f, ErrUnknownFormat)
}

// ReadFile decodes the document at path. The format is inferred from the
// extension, falling back to fallback for unknown extensions.
func ReadFile(path string, fallback Format) (*Document, error) {
	f, ok := FormatFromPath(path)
	if !ok {
		f = fallback
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer fh.Close()

	d, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return d, nil
}
