// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: sentinel errors and the serialisation Format enum.

package traceio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for document decoding and encoding.
var (
	// ErrUnknownFormat indicates an unsupported serialisation format.
	ErrUnknownFormat = errors.New("traceio: unknown format")

	// ErrMalformedDocument indicates a document that does not follow the wire schema.
	ErrMalformedDocument = errors.New("traceio: malformed document")
)

// Format selects the serialisation.
type Format int

const (
	// FormatYAML is YAML 1.2 via gopkg.in/yaml.v3.
	FormatYAML Format = iota

	// FormatJSON is indented JSON.
	FormatJSON
)

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "yaml", "yml" or "json" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath infers the format from a file extension.
// ok is false for an unrecognised extension.
func FormatFromPath(path string) (f Format, ok bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)

	return f, err == nil
}
