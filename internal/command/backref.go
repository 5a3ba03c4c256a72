package command

import (
	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/filter"
)

// resolveBackref resolves a %-token at position pos against prev and returns
// prev's filter instance. The index is validated before history is consulted,
// so a malformed token is reported as such even on the first line.
func resolveBackref(token string, pos int, prev *Command) (*filter.Filter, error) {
	index, ok := backrefIndex(token[1:], pos)
	if !ok {
		return nil, errors.NewBackrefError(token, pos, errors.ErrBackrefMalformed)
	}
	if prev == nil {
		return nil, errors.NewBackrefError(token, pos, errors.ErrNoHistory).WithIndex(index, 0)
	}
	if index >= prev.Len() {
		return nil, errors.NewBackrefError(token, pos, errors.ErrBackrefOutOfRange).WithIndex(index, prev.Len())
	}
	return prev.filters[index], nil
}

// backrefIndex decodes the text after '%': another '%' means the token's own
// position, otherwise it must be a run of ASCII digits.
func backrefIndex(rest string, pos int) (int, bool) {
	if rest == string(BackrefPrefix) {
		return pos, true
	}
	if rest == "" {
		return 0, false
	}
	index := 0
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		// Anything this large is out of range for any real command.
		if index > 1<<20 {
			return index, true
		}
		index = index*10 + int(c-'0')
	}
	return index, true
}
