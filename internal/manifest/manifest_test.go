// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/testgen/pkg/types"
)

func sampleRegions() []types.Region {
	return []types.Region{
		{Label: "Print Literal", Name: "print_literal", Path: "/tmp/print_literal.lox", StartLine: 3, EndLine: 6, Body: []byte("print 1;\n")},
		{Label: "Empty", Name: "empty", Path: "/tmp/empty.lox", StartLine: 8, EndLine: 9, Body: []byte{}},
	}
}

func TestNew(t *testing.T) {
	m := New("/tmp/tests.txt", sampleRegions(), false)

	assert.Equal(t, "/tmp/tests.txt", m.Source)
	assert.False(t, m.GeneratedAt.IsZero())
	require.Len(t, m.Entries, 2)

	first := m.Entries[0]
	assert.Equal(t, "Print Literal", first.Label)
	assert.Equal(t, "/tmp/print_literal.lox", first.File)
	assert.Equal(t, 3, first.StartLine)
	assert.Equal(t, 6, first.EndLine)
	assert.Equal(t, 9, first.Bytes)
	assert.Len(t, first.SHA256, 64)

	// SHA-256 of the empty string.
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", m.Entries[1].SHA256)
	assert.Zero(t, m.Entries[1].Bytes)
}

func TestNew_NoRegions(t *testing.T) {
	m := New("tests.txt", nil, true)
	assert.NotNil(t, m.Entries)
	assert.Empty(t, m.Entries)
	assert.True(t, m.DryRun)
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	want := New("/tmp/tests.txt", sampleRegions(), false)

	require.NoError(t, Write(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source: /tmp/tests.txt")
	assert.Contains(t, string(data), "start_line: 3")

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, want.Source, got.Source)
	assert.Equal(t, want.Entries, got.Entries)
	assert.True(t, want.GeneratedAt.Equal(got.GeneratedAt))
}

func TestWrite_BadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "manifest.yaml"), New("x", nil, false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing manifest")
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("entries: [unclosed"), 0o644))
	_, err = Read(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing manifest")
}
