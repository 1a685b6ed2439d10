// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_States(t *testing.T) {
	doc := NewDocument("/tmp/tests.txt", []byte("intro\n#test(One)\na\n#end\n#test(Two)\nb\n"))
	s := NewScanner(doc, "#test", "#end")
	assert.Equal(t, StateScanning, s.State())

	r, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "One", r.Label)
	assert.Equal(t, "one", r.Name)
	assert.Equal(t, 2, r.StartLine)
	assert.Equal(t, 4, r.EndLine)
	assert.Equal(t, []byte("a\n"), r.Body)
	assert.Equal(t, StateScanning, s.State())

	_, err = s.Next()
	var unterminated *UnterminatedRegionError
	require.ErrorAs(t, err, &unterminated)
	assert.Equal(t, 5, unterminated.Line)
	assert.Equal(t, StateInRegion, s.State(), "document ended inside a region")
}

func TestScanner_EOF(t *testing.T) {
	doc := NewDocument("tests.txt", []byte("#test(A)\n#end\n"))
	s := NewScanner(doc, "#test", "#end")

	r, err := s.Next()
	require.NoError(t, err)
	assert.NotNil(t, r.Body)
	assert.Empty(t, r.Body)

	_, err = s.Next()
	assert.ErrorIs(t, err, io.EOF)
	_, err = s.Next()
	assert.ErrorIs(t, err, io.EOF, "scanner stays exhausted")
}

func TestScanner_StartTokenInsideRegion(t *testing.T) {
	doc := NewDocument("tests.txt", []byte("#test(Outer)\n#test(Inner)\nx\n#end\n#end\n"))
	s := NewScanner(doc, "#test", "#end")

	r, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "Outer", r.Label)
	assert.Equal(t, "#test(Inner)\nx\n", string(r.Body))

	// The second #end is outside any region and ignored.
	_, err = s.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestScanner_BodiesAreIndependent(t *testing.T) {
	doc := NewDocument("tests.txt", []byte("#test(A)\nfirst\n#end\n#test(B)\nsecond\n#end\n"))
	s := NewScanner(doc, "#test", "#end")

	a, err := s.Next()
	require.NoError(t, err)
	b, err := s.Next()
	require.NoError(t, err)

	assert.Equal(t, "first\n", string(a.Body))
	assert.Equal(t, "second\n", string(b.Body))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "scanning", StateScanning.String())
	assert.Equal(t, "in-region", StateInRegion.String())
	assert.Equal(t, "unknown", State(7).String())
}
