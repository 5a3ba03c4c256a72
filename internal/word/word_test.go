package word

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	wferrors "github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/testutil"
)

func collect(c Corpus) []string {
	var out []string
	for w := range c.All() {
		out = append(out, w.String())
	}
	return out
}

func TestNew(t *testing.T) {
	w := New("Ärger")

	if w.String() != "ärger" {
		t.Errorf("String() = %q, want %q", w.String(), "ärger")
	}
	// Length counts runes, not bytes
	if w.Len() != 5 {
		t.Errorf("Len() = %d, want 5", w.Len())
	}
	if w.At(0) != 'ä' {
		t.Errorf("At(0) = %q, want %q", w.At(0), 'ä')
	}
	if got := slices.Collect(w.Runes()); string(got) != "ärger" {
		t.Errorf("Runes() = %q, want %q", string(got), "ärger")
	}
}

func TestNewCorpus(t *testing.T) {
	c := NewCorpus("Cat", "cot", "DOG")

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if got, want := collect(c), []string{"cat", "cot", "dog"}; !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestCorpus_AllStopsEarly(t *testing.T) {
	c := NewCorpus("a", "b", "c")

	var seen []string
	for w := range c.All() {
		seen = append(seen, w.String())
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("seen = %v, want [a b]", seen)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unix line endings",
			input: "cat\ncot\ndog\n",
			want:  []string{"cat", "cot", "dog"},
		},
		{
			name:  "windows line endings",
			input: "cat\r\ncot\r\n",
			want:  []string{"cat", "cot"},
		},
		{
			name:  "no trailing newline",
			input: "cat\ndog",
			want:  []string{"cat", "dog"},
		},
		{
			name:  "lowercases entries",
			input: "Paris\nNASA\n",
			want:  []string{"paris", "nasa"},
		},
		{
			name:  "keeps blank lines in order",
			input: "cat\n\ndog\r\n\r\nemu\n",
			want:  []string{"cat", "", "dog", "", "emu"},
		},
		{
			name:  "keeps inner and trailing spaces",
			input: "ice cream \n\tx\n",
			want:  []string{"ice cream ", "\tx"},
		},
		{
			name:  "carriage return without newline at end",
			input: "cat\r\ndog\r",
			want:  []string{"cat", "dog"},
		},
		{
			name:  "keeps duplicates in order",
			input: "b\na\nb\n",
			want:  []string{"b", "a", "b"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := collect(c); !slices.Equal(got, tt.want) {
				t.Errorf("Load() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("reads dictionary", func(t *testing.T) {
		path := testutil.WriteDictionary(t, "cat", "cot", "dog", "catalog")

		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if c.Len() != 4 {
			t.Errorf("Len() = %d, want 4", c.Len())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.txt")

		_, err := LoadFile(path)
		if err == nil {
			t.Fatal("LoadFile() error = nil, want error")
		}
		if !errors.Is(err, wferrors.ErrDictionaryLoad) {
			t.Errorf("errors.Is(err, ErrDictionaryLoad) = false, err = %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("errors.Is(err, fs.ErrNotExist) = false, err = %v", err)
		}

		var loadErr *wferrors.LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("error type = %T, want *errors.LoadError", err)
		}
		if loadErr.Path != path {
			t.Errorf("LoadError.Path = %q, want %q", loadErr.Path, path)
		}
	})

	t.Run("line too long", func(t *testing.T) {
		path := testutil.WriteFile(t, "long.txt", strings.Repeat("a", maxLineBytes+1)+"\n")

		_, err := LoadFile(path)
		var loadErr *wferrors.LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("error = %v, want *errors.LoadError", err)
		}
		if loadErr.Path != path {
			t.Errorf("LoadError.Path = %q, want %q", loadErr.Path, path)
		}
	})
}
