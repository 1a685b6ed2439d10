// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Document is a test document held fully in memory as raw lines. Each line
// keeps its original terminator so region bodies can be written back
// byte-for-byte.
type Document struct {
	Path string
	Dir  string

	lines [][]byte
}

// LoadDocument reads the whole file at path and splits it into lines.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	return NewDocument(path, data), nil
}

// NewDocument builds a Document from raw content. A final line without a
// terminator is kept as-is.
func NewDocument(path string, data []byte) *Document {
	var lines [][]byte
	if len(data) > 0 {
		lines = bytes.SplitAfter(data, []byte("\n"))
		if len(lines[len(lines)-1]) == 0 {
			lines = lines[:len(lines)-1]
		}
	}
	return &Document{
		Path:  path,
		Dir:   filepath.Dir(path),
		lines: lines,
	}
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the line at zero-based index i and whether i is in range.
func (d *Document) Line(i int) ([]byte, bool) {
	if i < 0 || i >= len(d.lines) {
		return nil, false
	}
	return d.lines[i], true
}
