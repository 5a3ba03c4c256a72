package filter

import (
	"fmt"
	"strconv"

	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/word"
)

// Operator is the comparison used by a length filter.
type Operator int

const (
	// OpEq matches words of exactly the target length.
	OpEq Operator = iota
	// OpLt matches words shorter than the target.
	OpLt
	// OpLe matches words no longer than the target.
	OpLe
	// OpGt matches words longer than the target.
	OpGt
	// OpGe matches words at least as long as the target.
	OpGe
)

// String returns the operator's grammar symbol.
func (o Operator) String() string {
	switch o {
	case OpEq:
		return "="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Compare applies the operator to n and target.
func (o Operator) Compare(n, target int) bool {
	switch o {
	case OpEq:
		return n == target
	case OpLt:
		return n < target
	case OpLe:
		return n <= target
	case OpGt:
		return n > target
	case OpGe:
		return n >= target
	default:
		return false
	}
}

type lengthSpec struct {
	op     Operator
	target int
}

// ParseLength parses a length filter such as "=5", "<3" or ">=10". The
// operator is read from the first one or two characters and the remainder
// must be a non-empty run of ASCII digits.
func ParseLength(text string) (*Filter, error) {
	f, ferr := parseLength(text)
	if ferr != nil {
		return nil, ferr
	}
	return f, nil
}

func parseLength(text string) (*Filter, *errors.FilterError) {
	if text == "" {
		return nil, lengthError(text, "empty filter")
	}

	var op Operator
	width := 1
	switch text[0] {
	case '=':
		op = OpEq
	case '<':
		op = OpLt
		if len(text) > 1 && text[1] == '=' {
			op, width = OpLe, 2
		}
	case '>':
		op = OpGt
		if len(text) > 1 && text[1] == '=' {
			op, width = OpGe, 2
		}
	default:
		return nil, lengthError(text, "missing comparison operator (=, <, <=, >, >=)")
	}

	rest := text[width:]
	if rest == "" {
		return nil, lengthError(text, fmt.Sprintf("missing length after %q", op.String()))
	}
	target, err := parseCount(rest)
	if err != nil {
		return nil, lengthError(text, fmt.Sprintf("invalid length %q: %v", rest, err))
	}

	return &Filter{kind: KindLength, length: lengthSpec{op: op, target: target}}, nil
}

// Operator returns the comparison of a length filter.
func (f *Filter) Operator() Operator {
	return f.length.op
}

// Target returns the target length of a length filter.
func (f *Filter) Target() int {
	return f.length.target
}

func (l lengthSpec) check(w word.Word) bool {
	return l.op.Compare(w.Len(), l.target)
}

func (l lengthSpec) String() string {
	return l.op.String() + strconv.Itoa(l.target)
}

func lengthError(text, reason string) *errors.FilterError {
	return errors.NewFilterError(KindLength.String(), text, reason, errors.ErrInvalidLength)
}

// parseCount parses a non-negative decimal integer made only of ASCII digits.
// Signs and whitespace are rejected.
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.New("not a non-negative integer")
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("out of range")
	}
	return n, nil
}
