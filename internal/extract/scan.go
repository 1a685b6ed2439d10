// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"io"

	"github.com/pdiddy/testgen/pkg/types"
)

// State is the position of the scanner relative to regions.
type State int

const (
	// StateScanning looks for a start marker; other lines are ignored.
	StateScanning State = iota
	// StateInRegion accumulates body lines until an end marker. Start
	// markers are not recognized in this state.
	StateInRegion
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateInRegion:
		return "in-region"
	default:
		return "unknown"
	}
}

// Scanner walks a Document once, front to back, and yields each closed
// region in order.
type Scanner struct {
	doc        *Document
	startToken []byte
	endToken   []byte

	state  State
	cursor int
	open   types.Region
	body   bytes.Buffer
}

// NewScanner returns a Scanner positioned at the first line of doc.
func NewScanner(doc *Document, startToken, endToken string) *Scanner {
	return &Scanner{
		doc:        doc,
		startToken: []byte(startToken),
		endToken:   []byte(endToken),
	}
}

// State reports the current scanner state.
func (s *Scanner) State() State {
	return s.state
}

// Next advances to the end marker of the next region and returns it with
// Label, Name, StartLine, EndLine and Body set. It returns io.EOF when the
// document ends outside a region, *UnterminatedRegionError when it ends
// inside one, and *MalformedMarkerError for a start line without a label.
func (s *Scanner) Next() (types.Region, error) {
	for s.cursor < s.doc.Len() {
		line, ok := s.doc.Line(s.cursor)
		if !ok {
			break
		}
		lineNo := s.cursor + 1
		s.cursor++

		switch s.state {
		case StateScanning:
			if !bytes.Contains(line, s.startToken) {
				continue
			}
			if err := s.begin(line, lineNo); err != nil {
				return types.Region{}, err
			}
		case StateInRegion:
			if !bytes.Contains(line, s.endToken) {
				s.body.Write(line)
				continue
			}
			return s.finish(lineNo), nil
		}
	}

	if s.state == StateInRegion {
		return types.Region{}, &UnterminatedRegionError{
			Path:  s.doc.Path,
			Line:  s.open.StartLine,
			Label: s.open.Label,
		}
	}
	return types.Region{}, io.EOF
}

func (s *Scanner) begin(line []byte, lineNo int) error {
	label, err := ParseLabel(line)
	var name string
	if err == nil {
		name, err = fileStem(label)
	}
	if err != nil {
		return &MalformedMarkerError{
			Path:   s.doc.Path,
			Line:   lineNo,
			Text:   displayLine(line),
			Reason: err.Error(),
		}
	}

	s.open = types.Region{Label: label, Name: name, StartLine: lineNo}
	s.body.Reset()
	s.state = StateInRegion
	return nil
}

func (s *Scanner) finish(lineNo int) types.Region {
	r := s.open
	r.EndLine = lineNo
	r.Body = bytes.Clone(s.body.Bytes())
	if r.Body == nil {
		r.Body = []byte{}
	}
	s.open = types.Region{}
	s.body.Reset()
	s.state = StateScanning
	return r
}
