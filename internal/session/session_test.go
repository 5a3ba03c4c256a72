package session

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/logging"
	"github.com/nelsbrock/wordfind/internal/word"
)

func collect(t *testing.T, q *Query) []string {
	t.Helper()
	var out []string
	for w := range q.Words() {
		out = append(out, w.String())
	}
	return out
}

func TestSubmit_CommitsOnSuccess(t *testing.T) {
	s := New(word.NewCorpus("cat", "cot", "dog", "catalog"), nil)

	if s.Previous() != nil {
		t.Fatal("new session should have no previous command")
	}

	q, err := s.Submit("0:ca =3")
	if err != nil {
		t.Fatalf("Submit error = %v", err)
	}
	if got := collect(t, q); !slices.Equal(got, []string{"cat"}) {
		t.Errorf("results = %v, want [cat]", got)
	}
	if s.Previous() != q.Command() {
		t.Error("Previous() should be the submitted command")
	}
}

func TestSubmit_ErrorKeepsPrevious(t *testing.T) {
	s := New(word.NewCorpus("cat"), nil)

	first, err := s.Submit("c*t")
	if err != nil {
		t.Fatalf("Submit error = %v", err)
	}

	tests := []struct {
		line string
		want error
	}{
		{line: "%5", want: errors.ErrBackrefOutOfRange},
		{line: "=x", want: errors.ErrUnclassifiedToken},
		{line: "%x", want: errors.ErrBackrefMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			q, err := s.Submit(tt.line)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Submit(%q) error = %v, want %v", tt.line, err, tt.want)
			}
			if q != nil {
				t.Error("failed Submit returned a query")
			}
			if s.Previous() != first.Command() {
				t.Error("failed Submit replaced the previous command")
			}
		})
	}

	// History is still usable after the failures.
	q, err := s.Submit("%0 =3")
	if err != nil {
		t.Fatalf("Submit after errors: %v", err)
	}
	if q.Command().Filter(0) != first.Command().Filter(0) {
		t.Error("back-reference did not reuse the original filter")
	}
}

func TestSubmit_NoHistory(t *testing.T) {
	s := New(word.NewCorpus("cat"), nil)
	if _, err := s.Submit("%0"); !errors.Is(err, errors.ErrNoHistory) {
		t.Errorf("error = %v, want ErrNoHistory", err)
	}
}

func TestReset(t *testing.T) {
	s := New(word.NewCorpus("cat"), nil)
	if _, err := s.Submit("c*t"); err != nil {
		t.Fatal(err)
	}
	s.Reset()
	if s.Previous() != nil {
		t.Error("Reset did not clear the previous command")
	}
	if _, err := s.Submit("%0"); !errors.Is(err, errors.ErrNoHistory) {
		t.Errorf("error after Reset = %v, want ErrNoHistory", err)
	}
}

func TestQuery_WordsLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelDebug)
	s := New(word.NewCorpus("ant", "bee", "cat"), logger)

	q, err := s.Submit("=3")
	if err != nil {
		t.Fatal(err)
	}
	for range q.Words() {
		break
	}

	var finished map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if entry["msg"] == "query finished" {
			finished = entry
		}
	}
	if finished == nil {
		t.Fatalf("no query finished entry in log:\n%s", buf.String())
	}
	if finished["matches"] != float64(1) {
		t.Errorf("matches = %v, want 1", finished["matches"])
	}
	if finished["stopped_early"] != true {
		t.Errorf("stopped_early = %v, want true", finished["stopped_early"])
	}
}

func TestSubmit_LogsRejection(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelDebug)
	s := New(word.NewCorpus("cat"), logger)

	if _, err := s.Submit("c*t %0"); err == nil {
		t.Fatal("Submit() without history should fail")
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	want := map[string]any{
		"msg":      "parse rejected",
		"level":    "WARN",
		"severity": "warning",
		"position": float64(1),
		"token":    "%0",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
}

func TestQuery_WordsRestartable(t *testing.T) {
	s := New(word.NewCorpus("ant", "bee", "cat"), nil)
	q, err := s.Submit("")
	if err != nil {
		t.Fatal(err)
	}
	first := collect(t, q)
	second := collect(t, q)
	if !slices.Equal(first, second) || len(first) != 3 {
		t.Errorf("first = %v, second = %v", first, second)
	}
}

func TestSubmit_Concurrent(t *testing.T) {
	s := New(word.NewCorpus("cat", "cot"), nil)
	if _, err := s.Submit("c*t"); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if _, err := s.Submit("%0"); err != nil {
					t.Errorf("Submit error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if s.Previous().Len() != 1 {
		t.Errorf("Previous().Len() = %d, want 1", s.Previous().Len())
	}
}
