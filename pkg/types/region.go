// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// Region is a labeled span of a test document bounded by a start marker
// line and the next end marker line.
type Region struct {
	// Label is the raw text between the parentheses of the start marker.
	Label string `json:"label" yaml:"label"`

	// Name is the normalized label used as the output file stem.
	Name string `json:"name" yaml:"name"`

	// Path is the file the body is written to.
	Path string `json:"path" yaml:"path"`

	// StartLine and EndLine are the 1-based line numbers of the markers.
	StartLine int `json:"start_line" yaml:"start_line"`
	EndLine   int `json:"end_line" yaml:"end_line"`

	// Body holds the raw bytes of the lines strictly between the markers,
	// line terminators included.
	Body []byte `json:"-" yaml:"-"`
}

// Size returns the body length in bytes.
func (r Region) Size() int {
	return len(r.Body)
}

// Digest returns the hex-encoded SHA-256 of the body.
func (r Region) Digest() string {
	sum := sha256.Sum256(r.Body)
	return hex.EncodeToString(sum[:])
}
