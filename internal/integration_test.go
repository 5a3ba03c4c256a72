// Package internal contains integration tests that verify the packages work
// together: a dictionary loaded from disk, a session carrying the previous
// command, and the line shell printing results.
package internal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nelsbrock/wordfind/internal/history"
	"github.com/nelsbrock/wordfind/internal/logging"
	"github.com/nelsbrock/wordfind/internal/repl"
	"github.com/nelsbrock/wordfind/internal/session"
	"github.com/nelsbrock/wordfind/internal/testutil"
	"github.com/nelsbrock/wordfind/internal/word"
)

// TestDictionaryToShell runs a scripted session over a dictionary file,
// including CRLF line endings, mixed case and a blank line.
func TestDictionaryToShell(t *testing.T) {
	path := testutil.WriteFile(t, "words.txt",
		"Darling\r\nduring\r\n\r\nsing\r\nrolling\r\nring\r\nCatalog\r\n")

	corpus, err := word.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	// The blank line is kept as an empty word, which no command below matches.
	if corpus.Len() != 7 {
		t.Fatalf("corpus has %d words, want 7", corpus.Len())
	}

	var logBuf bytes.Buffer
	logger := logging.NewWriterLogger(&logBuf, logging.LevelDebug)
	sess := session.New(corpus, logger)
	hist := history.New(10)

	var out, errOut bytes.Buffer
	script := strings.Join([]string{
		"4:ing",
		">=7 %0",
		"%% %% 0:d",
		"%2",
		"%% %%",
		"%0 =4",
	}, "\n")

	r := repl.New(sess, strings.NewReader(script), &out, &errOut, repl.Options{
		History: hist,
		Logger:  logger,
	})
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantOut := "darling\nrolling\n\n" + // 4:ing
		"darling\nrolling\n\n" + // >=7 4:ing
		"darling\n\n" + // >=7 4:ing 0:d
		"darling\nduring\n\n" + // 0:d
		"\n" // 0:d =4
	if out.String() != wantOut {
		t.Errorf("stdout =\n%q\nwant\n%q", out.String(), wantOut)
	}

	// The previous command of "%% %%" is "%2", which has a single filter.
	wantErr := "Error: token 2: back-reference \"%%\": index 1 out of range (previous command has 1 filter)\n\n"
	if got := errOut.String(); got != wantErr {
		t.Errorf("stderr = %q, want %q", got, wantErr)
	}

	if hist.Len() != 6 {
		t.Errorf("history has %d entries, want 6", hist.Len())
	}

	logs := logBuf.String()
	tests := []struct {
		msg  string
		want int
	}{
		{`"msg":"command parsed"`, 5},
		{`"msg":"query finished"`, 5},
		{`"msg":"parse rejected"`, 1},
	}
	for _, tt := range tests {
		if n := strings.Count(logs, tt.msg); n != tt.want {
			t.Errorf("%s logged %d times, want %d", tt.msg, n, tt.want)
		}
	}
}
