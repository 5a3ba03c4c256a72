package history

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		lines []string
		want  []string
	}{
		{
			name:  "keeps order",
			size:  10,
			lines: []string{"c*t", "=3", "0:ca"},
			want:  []string{"c*t", "=3", "0:ca"},
		},
		{
			name:  "skips blank",
			size:  10,
			lines: []string{"", "  ", "c*t"},
			want:  []string{"c*t"},
		},
		{
			name:  "trims",
			size:  10,
			lines: []string{"  c*t \n"},
			want:  []string{"c*t"},
		},
		{
			name:  "collapses consecutive duplicates",
			size:  10,
			lines: []string{"c*t", "c*t", "=3", "c*t"},
			want:  []string{"c*t", "=3", "c*t"},
		},
		{
			name:  "drops oldest when full",
			size:  2,
			lines: []string{"a", "b", "c"},
			want:  []string{"b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.size)
			for _, l := range tt.lines {
				h.Add(l)
			}
			if got := h.Entries(); !slices.Equal(got, tt.want) {
				t.Errorf("Entries() = %v, want %v", got, tt.want)
			}
			if h.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", h.Len(), len(tt.want))
			}
		})
	}
}

func TestNew_DefaultSize(t *testing.T) {
	if h := New(0); h.max != DefaultSize {
		t.Errorf("max = %d, want %d", h.max, DefaultSize)
	}
}

func TestNavigation(t *testing.T) {
	h := New(10)
	for _, l := range []string{"one", "two", "three"} {
		h.Add(l)
	}

	if _, ok := h.Next(); ok {
		t.Error("Next before Prev should report nothing")
	}

	steps := []struct {
		prev bool
		want string
		ok   bool
	}{
		{prev: true, want: "three", ok: true},
		{prev: true, want: "two", ok: true},
		{prev: true, want: "one", ok: true},
		{prev: true, want: "", ok: false},
		{prev: false, want: "two", ok: true},
		{prev: false, want: "three", ok: true},
		{prev: false, want: "draft", ok: true},
		{prev: false, want: "", ok: false},
	}

	for i, s := range steps {
		var (
			got string
			ok  bool
		)
		if s.prev {
			got, ok = h.Prev("draft")
		} else {
			got, ok = h.Next()
		}
		if got != s.want || ok != s.ok {
			t.Fatalf("step %d: got (%q, %v), want (%q, %v)", i, got, ok, s.want, s.ok)
		}
	}
}

func TestNavigation_AddResets(t *testing.T) {
	h := New(10)
	h.Add("one")
	h.Add("two")

	if got, _ := h.Prev(""); got != "two" {
		t.Fatalf("Prev = %q, want two", got)
	}
	h.Add("three")
	if got, _ := h.Prev(""); got != "three" {
		t.Errorf("Prev after Add = %q, want three", got)
	}
}

func TestNavigation_Empty(t *testing.T) {
	h := New(10)
	if _, ok := h.Prev("x"); ok {
		t.Error("Prev on empty history should report nothing")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "history")

	h := New(10)
	for _, l := range []string{"c*t", "=3", "%0 >2"} {
		h.Add(l)
	}
	if err := h.Save(path); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("history file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want 600", perm)
	}

	loaded := New(2)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if got := loaded.Entries(); !slices.Equal(got, []string{"=3", "%0 >2"}) {
		t.Errorf("Entries() = %v, want last two", got)
	}
	if got, _ := loaded.Prev(""); got != "%0 >2" {
		t.Errorf("Prev after Load = %q", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	h := New(10)
	if err := h.Load(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("Load of missing file error = %v", err)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")

	h := New(10)
	h.Add("c*t")
	for range 3 {
		if err := h.Save(path); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only history", names)
	}
}
