// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/testgen/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "index", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func region(label, path string, start, end int, body string) types.Region {
	return types.Region{Label: label, Path: path, StartLine: start, EndLine: end, Body: []byte(body)}
}

func TestRecordAndLatest(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	runID, err := s.Record(ctx, "/suite/tests.txt", []types.Region{
		region("B", "/suite/b.lox", 5, 7, "print 2;\n"),
		region("A", "/suite/a.lox", 1, 3, "print 1;\n"),
	})
	require.NoError(t, err)
	assert.Positive(t, runID)

	entries, err := s.Latest(ctx, "/suite/tests.txt")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "A", entries[0].Label, "ordered by start line")
	assert.Equal(t, "/suite/a.lox", entries[0].File)
	assert.Equal(t, 1, entries[0].StartLine)
	assert.Equal(t, 3, entries[0].EndLine)
	assert.Equal(t, 9, entries[0].Bytes)
	assert.Len(t, entries[0].SHA256, 64)
	assert.Equal(t, runID, entries[0].RunID)
	assert.False(t, entries[0].RecordedAt.IsZero())
}

func TestLatest_OnlyMostRecentRun(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	_, err := s.Record(ctx, "tests.txt", []types.Region{region("Old", "old.lox", 1, 2, "")})
	require.NoError(t, err)
	second, err := s.Record(ctx, "tests.txt", []types.Region{region("New", "new.lox", 1, 3, "x\n")})
	require.NoError(t, err)

	entries, err := s.Latest(ctx, "tests.txt")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "New", entries[0].Label)
	assert.Equal(t, second, entries[0].RunID)
}

func TestLatest_AllSources(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	_, err := s.Record(ctx, "b.txt", []types.Region{region("FromB", "b.lox", 1, 2, "")})
	require.NoError(t, err)
	_, err = s.Record(ctx, "a.txt", []types.Region{region("FromA", "a.lox", 1, 2, "")})
	require.NoError(t, err)

	entries, err := s.Latest(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Source)
	assert.Equal(t, "b.txt", entries[1].Source)
}

func TestLatest_UnknownSource(t *testing.T) {
	s := testStore(t)

	entries, err := s.Latest(context.Background(), "missing.txt")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Record(ctx, "tests.txt", []types.Region{region("Kept", "kept.lox", 1, 2, "")})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.Latest(ctx, "tests.txt")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kept", entries[0].Label)
}
