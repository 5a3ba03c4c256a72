package tui

// entryKind selects how a scrollback line is styled.
type entryKind int

const (
	entryBlank entryKind = iota
	entryEcho
	entryResult
	entryCount
	entryError
)

type entry struct {
	kind entryKind
	text string
}

// scrollback is the bounded output history of the TUI. Once more than max
// lines are held the oldest are dropped; max <= 0 keeps everything.
type scrollback struct {
	lines   []entry
	max     int
	dropped int
}

func newScrollback(limit int) *scrollback {
	return &scrollback{max: limit}
}

func (s *scrollback) add(kind entryKind, text string) {
	s.lines = append(s.lines, entry{kind: kind, text: text})
	// Compact in batches so a large result set is not copied per line.
	if s.max > 0 && len(s.lines) >= 2*s.max {
		s.trim()
	}
}

// trim drops lines beyond max, oldest first.
func (s *scrollback) trim() {
	if s.max <= 0 || len(s.lines) <= s.max {
		return
	}
	over := len(s.lines) - s.max
	s.dropped += over
	s.lines = append(s.lines[:0], s.lines[over:]...)
}

func (s *scrollback) clear() {
	s.lines = nil
	s.dropped = 0
}

func (s *scrollback) len() int {
	return len(s.lines)
}

// window returns up to n lines ending offset lines above the newest one.
func (s *scrollback) window(n, offset int) []entry {
	if n <= 0 {
		return nil
	}
	end := len(s.lines) - offset
	if end < 0 {
		end = 0
	}
	start := max(end-n, 0)
	return s.lines[start:end]
}
