// Package history keeps the prompt history of an interactive session.
//
// Entries are stored oldest first. Adding a line equal to the newest entry
// is a no-op, and once the history is full the oldest entry is dropped.
// A History can be persisted to a plain text file with one entry per line.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultSize is the number of entries kept when no size is configured.
const DefaultSize = 1000

// History is a bounded list of submitted lines with a navigation cursor.
// It is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	entries []string
	max     int
	// cursor indexes entries while navigating; len(entries) means "past the
	// newest entry", i.e. editing a fresh line.
	cursor int
	draft  string
}

// New creates an empty History holding at most size entries. A size of
// zero or less uses DefaultSize.
func New(size int) *History {
	if size <= 0 {
		size = DefaultSize
	}
	return &History{max: size}
}

// Add appends line and resets navigation. Blank lines and repeats of the
// newest entry are ignored.
func (h *History) Add(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.add(line)
	h.cursor = len(h.entries)
	h.draft = ""
}

func (h *History) add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if over := len(h.entries) - h.max; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of the stored entries, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Prev moves one entry back and returns it. current is the text being
// edited; it is remembered when navigation starts so Next can restore it.
// ok is false when there is nothing older.
func (h *History) Prev(current string) (line string, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == 0 || len(h.entries) == 0 {
		return "", false
	}
	if h.cursor >= len(h.entries) {
		h.cursor = len(h.entries)
		h.draft = current
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves one entry forward. Stepping past the newest entry returns the
// draft saved by Prev. ok is false when not navigating.
func (h *History) Next() (line string, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		draft := h.draft
		h.draft = ""
		return draft, true
	}
	return h.entries[h.cursor], true
}

// Load reads entries from path and appends them in order. A missing file is
// not an error.
func (h *History) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { _ = f.Close() }()

	h.mu.Lock()
	defer h.mu.Unlock()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	h.cursor = len(h.entries)
	return nil
}

// Save writes all entries to path, replacing its contents atomically.
func (h *History) Save(path string) error {
	h.mu.Lock()
	var b strings.Builder
	for _, e := range h.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	h.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	return atomicWriteFile(path, []byte(b.String()), 0600)
}

// atomicWriteFile writes data to a temp file in the same directory and
// renames it over path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".history-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
