package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/nelsbrock/wordfind/internal/word"
)

// Wildcard is the match-literal character that stands for any one letter.
const Wildcard = '*'

// matchSpec holds the required multiplicity of each letter plus the number
// of wildcard slots.
type matchSpec struct {
	required  map[rune]int
	total     int // sum of required
	wildcards int
}

// ParseMatch builds a match filter from text. The text is lower-cased, every
// '*' adds a wildcard slot and every other rune adds one required slot for
// itself. ParseMatch accepts any input, including the empty string.
func ParseMatch(text string) *Filter {
	spec := matchSpec{required: make(map[rune]int)}
	for _, r := range strings.ToLower(text) {
		if r == Wildcard {
			spec.wildcards++
			continue
		}
		spec.required[r]++
		spec.total++
	}
	return &Filter{kind: KindMatch, match: spec}
}

// Required returns the required multiplicity of r.
func (f *Filter) Required(r rune) int {
	return f.match.required[r]
}

// Wildcards returns the number of wildcard slots of a match filter.
func (f *Filter) Wildcards() int {
	return f.match.wildcards
}

// check assigns every rune of w to a remaining required slot for that rune,
// or failing that to a wildcard slot. The word fails as soon as a rune fits
// neither, and also fails if any wildcard slot is left unused.
func (m matchSpec) check(w word.Word) bool {
	n := w.Len()
	if n < m.wildcards || n > m.total+m.wildcards {
		return false
	}

	remaining := maps.Clone(m.required)
	wild := m.wildcards
	for r := range w.Runes() {
		if remaining[r] > 0 {
			remaining[r]--
			continue
		}
		if wild > 0 {
			wild--
			continue
		}
		return false
	}
	return wild == 0
}

func (m matchSpec) String() string {
	letters := slices.Sorted(maps.Keys(m.required))

	var sb strings.Builder
	for _, r := range letters {
		for range m.required[r] {
			sb.WriteRune(r)
		}
	}
	for range m.wildcards {
		sb.WriteRune(Wildcard)
	}
	return sb.String()
}
