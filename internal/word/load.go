package word

import (
	"bufio"
	"io"
	"os"

	"github.com/nelsbrock/wordfind/internal/errors"
)

// maxLineBytes bounds a single dictionary line.
const maxLineBytes = 1024 * 1024

// Load reads one word per line from r. Only the line ending ("\n" or
// "\r\n") is stripped and entries are lower-cased. Every line becomes an
// entry, so a blank line is an empty word. Entries are kept in input order
// and are not deduplicated.
func Load(r io.Reader) (Corpus, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var words []Word
	for scanner.Scan() {
		words = append(words, New(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return Corpus{}, errors.NewLoadError("", err)
	}

	return Corpus{words: words}, nil
}

// LoadFile opens path and loads it with Load. Any failure is returned as a
// single *errors.LoadError naming the path.
func LoadFile(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return Corpus{}, errors.NewLoadError(path, err)
	}
	defer f.Close()

	corpus, err := Load(f)
	if err != nil {
		var loadErr *errors.LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return Corpus{}, err
	}
	return corpus, nil
}
