// SPDX-License-Identifier: MIT
//
// File: schema.go
// Role: JSON Schema of the wire document, derived from the wire structs.

package traceio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema returns the JSON Schema that every encoded Document satisfies
// structurally. Semantic invariants (ordering, node range) are not expressible
// in it and are checked by Decode and the concatenation engine.
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[wireDocument](nil)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	s.Title = "tempnet trace document"

	return s, nil
}

// WriteSchema writes the indented JSON Schema to w.
func WriteSchema(w io.Writer) error {
	s, err := Schema()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("schema: encode: %w", err)
	}

	return nil
}
