// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fb2

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n\r\n ", ""},
		{"already clean", "Second page", "Second page"},
		{"leading and trailing", "  Second   page  ", "Second page"},
		{"newlines inside", "Hello\nWorld\n", "Hello World"},
		{"tabs and carriage returns", "a\t\tb\r\nc", "a b c"},
		{"unicode spaces", "a  b　c", "a b c"},
		{"single word", "\n\nword\n\n", "word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestClean_Properties(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"a",
		"  a  b  ",
		"line one\nline two\n\n\nline three",
		"\t\ttabbed\ttext\t",
		"mixed \r\n endings \r and \n more",
		"Ünïcödé  tëxt with separators",
		strings.Repeat("word   ", 50),
	}

	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean must be idempotent for %q", in)
		assert.NotContains(t, once, "  ", "no double spaces for %q", in)
		assert.Equal(t, strings.TrimSpace(once), once, "no outer whitespace for %q", in)
		assert.NotContains(t, once, "\n", "no newlines for %q", in)
	}
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		want  []string
	}{
		{
			name:  "two paragraphs",
			chunk: "Hello\n\nWorld",
			want:  []string{"Hello", "World"},
		},
		{
			name:  "single paragraph with line breaks",
			chunk: "first line\nsecond line",
			want:  []string{"first line second line"},
		},
		{
			name:  "extra blank lines drop empty candidates",
			chunk: "one\n\n\n\n\ntwo\n\n \n\nthree",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "whitespace only yields nothing",
			chunk: " \n\n \t ",
			want:  nil,
		},
		{
			name:  "crlf blank line is not a separator",
			chunk: "a\r\n\r\nb",
			want:  []string{"a b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitParagraphs(tt.chunk))
		})
	}
}
