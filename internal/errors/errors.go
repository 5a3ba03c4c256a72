// Package errors provides centralized error definitions and error handling utilities
// for wordfind. It defines the sentinel errors of the filter language, structured
// error types carrying the offending token and position, and classification helpers
// used by the front ends to decide whether an error is shown or fatal.
//
// # Error Types
//
// Parse-time errors are recoverable and reported to the user:
//   - FilterError: a single filter kind rejected its input text
//   - ClassifyError: a token was rejected by every filter kind
//   - BackrefError: a %-reference could not be resolved against history
//   - ParseError: positional wrapper returned by command parsing
//
// Load-time errors are fatal to the process:
//   - LoadError: the dictionary could not be opened or read
//
// # Usage
//
// Checking errors:
//
//	// Check for specific sentinel errors
//	if errors.Is(err, errors.ErrBackrefOutOfRange) { ... }
//
//	// Check for error types
//	var parseErr *errors.ParseError
//	if errors.As(err, &parseErr) { ... }
//
//	// Use classification helpers
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors the user caused and can correct.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that stop the process.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Filter-related sentinel errors
var (
	// ErrInvalidLength indicates that text is not a valid length filter.
	ErrInvalidLength = New("invalid length filter")
	// ErrInvalidSequence indicates that text is not a valid sequence filter.
	ErrInvalidSequence = New("invalid sequence filter")
	// ErrReservedCharacter indicates that a match literal contains grammar punctuation.
	ErrReservedCharacter = New("reserved character in match filter")
	// ErrUnclassifiedToken indicates that no filter kind accepted a token.
	ErrUnclassifiedToken = New("unrecognized filter")
)

// Back-reference sentinel errors
var (
	// ErrNoHistory indicates a back-reference was used before any command succeeded.
	ErrNoHistory = New("no previous command")
	// ErrBackrefOutOfRange indicates a back-reference index past the previous command's filters.
	ErrBackrefOutOfRange = New("back-reference index out of range")
	// ErrBackrefMalformed indicates a back-reference whose index is neither % nor digits.
	ErrBackrefMalformed = New("malformed back-reference")
)

// Corpus sentinel errors
var (
	// ErrDictionaryLoad indicates the dictionary file could not be loaded.
	ErrDictionaryLoad = New("dictionary load failed")
	// ErrNoDictionary indicates no dictionary path was supplied.
	ErrNoDictionary = New("no dictionary given")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// WordfindError is the base interface for all wordfind errors.
type WordfindError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is meant to be shown
	// at the prompt rather than aborting the process.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is shown at the prompt.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Filter Errors
// -----------------------------------------------------------------------------

// FilterError reports why one filter kind rejected its input text.
//
// Example:
//
//	err := errors.NewFilterError("length", "<", "missing length after operator", errors.ErrInvalidLength)
//	fmt.Println(err) // `length filter "<": missing length after operator`
type FilterError struct {
	baseError
	Kind  string
	Input string
}

// NewFilterError creates a new FilterError. The cause is usually one of the
// filter sentinels and is matched by errors.Is but not repeated in the message.
func NewFilterError(kind, input, message string, cause error) *FilterError {
	return &FilterError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
		Kind:  kind,
		Input: input,
	}
}

// Reason returns the rejection reason without the kind and input prefix.
func (e *FilterError) Reason() string {
	return e.message
}

// Error returns the formatted error message.
func (e *FilterError) Error() string {
	return fmt.Sprintf("%s filter %q: %s", e.Kind, e.Input, e.message)
}

// ClassifyError reports a token that every filter kind rejected. Rejections
// holds one entry per candidate in the order they were tried.
type ClassifyError struct {
	baseError
	Token      string
	Rejections []*FilterError
}

// NewClassifyError creates a new ClassifyError.
func NewClassifyError(token string, rejections ...*FilterError) *ClassifyError {
	return &ClassifyError{
		baseError: baseError{
			message:    "unrecognized filter",
			cause:      ErrUnclassifiedToken,
			severity:   SeverityWarning,
			userFacing: true,
		},
		Token:      token,
		Rejections: rejections,
	}
}

// Error returns the formatted error message.
func (e *ClassifyError) Error() string {
	reasons := make([]string, 0, len(e.Rejections))
	for _, r := range e.Rejections {
		reasons = append(reasons, fmt.Sprintf("%s: %s", r.Kind, r.message))
	}
	return fmt.Sprintf("%s %q (%s)", e.message, e.Token, strings.Join(reasons, "; "))
}

// Is checks if this error matches the target.
func (e *ClassifyError) Is(target error) bool {
	if e.baseError.Is(target) {
		return true
	}
	for _, r := range e.Rejections {
		if errors.Is(r, target) {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Back-reference Errors
// -----------------------------------------------------------------------------

// BackrefError reports a %-token that could not be resolved against the
// previous command. Index is -1 when the token was malformed.
type BackrefError struct {
	baseError
	Token     string
	Position  int
	Index     int
	Available int
}

// NewBackrefError creates a new BackrefError wrapping one of ErrNoHistory,
// ErrBackrefOutOfRange or ErrBackrefMalformed.
func NewBackrefError(token string, position int, cause error) *BackrefError {
	return &BackrefError{
		baseError: baseError{
			message:    "back-reference",
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
		Token:    token,
		Position: position,
		Index:    -1,
	}
}

// WithIndex records the resolved index and the previous command's length.
func (e *BackrefError) WithIndex(index, available int) *BackrefError {
	e.Index = index
	e.Available = available
	return e
}

// Error returns the formatted error message.
func (e *BackrefError) Error() string {
	switch {
	case errors.Is(e.cause, ErrBackrefOutOfRange):
		return fmt.Sprintf("%s %q: index %d out of range (previous command has %d %s)",
			e.message, e.Token, e.Index, e.Available, plural(e.Available, "filter", "filters"))
	case errors.Is(e.cause, ErrBackrefMalformed):
		return fmt.Sprintf("%s %q: index must be %% or a non-negative integer", e.message, e.Token)
	default:
		return fmt.Sprintf("%s %q: %v", e.message, e.Token, e.cause)
	}
}

// -----------------------------------------------------------------------------
// Command Errors
// -----------------------------------------------------------------------------

// ParseError is returned by command parsing. It records which token of the
// line failed and wraps the token-level error.
type ParseError struct {
	baseError
	Line     string
	Position int
	Token    string
}

// NewParseError creates a new ParseError for the token at position.
func NewParseError(line string, position int, token string, cause error) *ParseError {
	severity := SeverityWarning
	var we WordfindError
	if As(cause, &we) {
		severity = we.Severity()
	}
	return &ParseError{
		baseError: baseError{
			message:    "parse error",
			cause:      cause,
			severity:   severity,
			userFacing: true,
		},
		Line:     line,
		Position: position,
		Token:    token,
	}
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d: %v", e.Position+1, e.cause)
}

// -----------------------------------------------------------------------------
// Corpus Errors
// -----------------------------------------------------------------------------

// LoadError reports a dictionary that could not be loaded. It matches
// ErrDictionaryLoad as well as the underlying I/O error.
type LoadError struct {
	baseError
	Path string
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, cause error) *LoadError {
	return &LoadError{
		baseError: baseError{
			message:    "error reading dictionary file",
			cause:      cause,
			severity:   SeverityCritical,
			userFacing: false,
		},
		Path: path,
	}
}

// Error returns the formatted error message.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return fmt.Sprintf("%s %s: %v", e.message, e.Path, e.cause)
}

// Is checks if this error matches the target.
func (e *LoadError) Is(target error) bool {
	if target == ErrDictionaryLoad {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error is a recoverable error that the
// front end prints at the prompt before reading the next line.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    fmt.Fprintf(stderr, "Error: %v\n\n", err)
//	    continue
//	}
//	return err
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var we WordfindError
	if As(err, &we) {
		return we.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement WordfindError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var we WordfindError
	if As(err, &we) {
		return we.Severity()
	}
	return SeverityError
}

// IsParseError returns true if the error came from parsing a command line.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return As(err, &parseErr)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to write history")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
