// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"errors"
	"strings"
)

var (
	errNoOpenParen  = errors.New("missing '('")
	errNoCloseParen = errors.New("missing ')' after '('")
	errEmptyLabel   = errors.New("empty label")
	errUnsafeLabel  = errors.New("label must name a file inside the output directory")
)

// ParseLabel returns the text strictly between the first '(' and the first
// ')' of a start marker line. A ')' that precedes the first '(' counts as
// missing.
func ParseLabel(line []byte) (string, error) {
	open := bytes.IndexByte(line, '(')
	if open < 0 {
		return "", errNoOpenParen
	}
	end := bytes.IndexByte(line, ')')
	if end < open {
		return "", errNoCloseParen
	}
	label := string(line[open+1 : end])
	if label == "" {
		return "", errEmptyLabel
	}
	return label, nil
}

// Normalize lower-cases label and replaces every space with an underscore.
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

// fileStem normalizes label and rejects names that would escape the
// output directory.
func fileStem(label string) (string, error) {
	name := Normalize(label)
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", errUnsafeLabel
	}
	return name, nil
}

// displayLine trims the line terminator for use in messages.
func displayLine(line []byte) string {
	return string(bytes.TrimRight(line, "\r\n"))
}
