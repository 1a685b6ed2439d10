// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		lines []string
	}{
		{"empty", "", nil},
		{"single unterminated", "abc", []string{"abc"}},
		{"terminated", "a\nb\n", []string{"a\n", "b\n"}},
		{"crlf", "a\r\nb", []string{"a\r\n", "b"}},
		{"blank lines", "\n\n", []string{"\n", "\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument("dir/tests.txt", []byte(tt.data))
			assert.Equal(t, "dir", doc.Dir)
			assert.Equal(t, len(tt.lines), doc.Len())
			for i, want := range tt.lines {
				got, ok := doc.Line(i)
				assert.True(t, ok)
				assert.Equal(t, want, string(got))
			}
		})
	}
}

func TestDocument_LineBounds(t *testing.T) {
	doc := NewDocument("tests.txt", []byte("only\n"))
	assert.Equal(t, ".", doc.Dir)

	_, ok := doc.Line(-1)
	assert.False(t, ok)
	_, ok = doc.Line(1)
	assert.False(t, ok)
}
