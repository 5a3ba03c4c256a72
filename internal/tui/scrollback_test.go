package tui

import "testing"

func TestScrollback_Window(t *testing.T) {
	s := newScrollback(0)
	for _, w := range []string{"a", "b", "c", "d", "e"} {
		s.add(entryResult, w)
	}

	tests := []struct {
		n, offset int
		want      string
	}{
		{n: 2, offset: 0, want: "de"},
		{n: 2, offset: 1, want: "cd"},
		{n: 10, offset: 0, want: "abcde"},
		{n: 3, offset: 4, want: "a"},
		{n: 3, offset: 9, want: ""},
		{n: 0, offset: 0, want: ""},
	}

	for _, tt := range tests {
		got := ""
		for _, e := range s.window(tt.n, tt.offset) {
			got += e.text
		}
		if got != tt.want {
			t.Errorf("window(%d, %d) = %q, want %q", tt.n, tt.offset, got, tt.want)
		}
	}
}

func TestScrollback_Trim(t *testing.T) {
	s := newScrollback(3)
	for i := range 10 {
		s.add(entryResult, string(rune('a'+i)))
	}
	s.trim()

	if s.len() != 3 {
		t.Fatalf("len = %d, want 3", s.len())
	}
	if s.dropped != 7 {
		t.Errorf("dropped = %d, want 7", s.dropped)
	}
	if s.lines[0].text != "h" {
		t.Errorf("oldest kept = %q, want h", s.lines[0].text)
	}

	s.clear()
	if s.len() != 0 || s.dropped != 0 {
		t.Error("clear did not reset the buffer")
	}
}

func TestScrollback_Unbounded(t *testing.T) {
	s := newScrollback(0)
	for range 100 {
		s.add(entryBlank, "")
	}
	s.trim()
	if s.len() != 100 {
		t.Errorf("len = %d, want 100", s.len())
	}
}
