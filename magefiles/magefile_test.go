//go:build mage

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountGoLines(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("a.go", "package a\n\n   \nfunc A() {}\n\t\n")
	write("a_test.go", "package a\n\nfunc TestA() {}")
	write("sub/b.go", "package b\n")
	write("_examples/c.go", "package c\nvar x = 1\n")
	write(".hidden/d.go", "package d\n")
	write("notes.md", "not go\n")

	prod, err := countGoLines(root, false)
	require.NoError(t, err)
	assert.Equal(t, 3, prod)

	tests, err := countGoLines(root, true)
	require.NoError(t, err)
	assert.Equal(t, 2, tests)
}
