// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "fmt"

// MalformedMarkerError reports a start marker line without a usable
// parenthesized label.
type MalformedMarkerError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *MalformedMarkerError) Error() string {
	return fmt.Sprintf("%s:%d: malformed start marker %q: %s", e.Path, e.Line, e.Text, e.Reason)
}

// UnterminatedRegionError reports a region still open at the end of the
// document. Line is the start marker line.
type UnterminatedRegionError struct {
	Path  string
	Line  int
	Label string
}

func (e *UnterminatedRegionError) Error() string {
	return fmt.Sprintf("%s:%d: unterminated region %q: no end marker before end of document", e.Path, e.Line, e.Label)
}

// DuplicateLabelError reports two regions that map to the same output file.
// It is only returned under the error duplicate policy.
type DuplicateLabelError struct {
	Path      string
	Line      int
	FirstLine int
	File      string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("%s:%d: region writes %s, already written by the region at line %d", e.Path, e.Line, e.File, e.FirstLine)
}
