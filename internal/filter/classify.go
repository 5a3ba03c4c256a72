package filter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nelsbrock/wordfind/internal/errors"
)

// ReservedChars are the grammar characters a match literal may not start
// with. A token led by one of them was meant as a sequence, length or history
// token, so it is rejected instead of silently becoming a match filter.
// Elsewhere in a token they are ordinary letters.
const ReservedChars = ":<>=%"

// Classify parses a bare token into a filter, trying the kinds in priority
// order: sequence, then length, then match. If no kind accepts the token the
// returned error is an *errors.ClassifyError listing each kind's reason.
func Classify(token string) (*Filter, error) {
	f, seqErr := parseSequence(token)
	if seqErr == nil {
		return f, nil
	}

	f, lenErr := parseLength(token)
	if lenErr == nil {
		return f, nil
	}

	if r, _ := utf8.DecodeRuneInString(token); strings.ContainsRune(ReservedChars, r) {
		matchErr := errors.NewFilterError(KindMatch.String(), token,
			fmt.Sprintf("reserved character %q", r), errors.ErrReservedCharacter)
		return nil, errors.NewClassifyError(token, seqErr, lenErr, matchErr)
	}

	return ParseMatch(token), nil
}
