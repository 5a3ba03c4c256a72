// Package testutil provides testing utilities for wordfind tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteDictionary writes words, one per line, to a temporary dictionary file
// and returns its path. The file is removed when the test completes.
func WriteDictionary(t *testing.T, words ...string) string {
	t.Helper()

	return WriteFile(t, "words.txt", strings.Join(words, "\n")+"\n")
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", name, err)
	}
	return path
}

// IsolateConfig points XDG_CONFIG_HOME at a temporary directory so tests
// never read or write the user's real configuration. It returns the
// directory.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}
