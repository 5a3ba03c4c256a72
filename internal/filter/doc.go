// Package filter implements the predicates of the wordfind query language.
//
// A [Filter] is a closed sum of three kinds, selected by [Kind]:
//
//   - [KindMatch]: the word must be buildable from a multiset of letters,
//     where each "*" in the literal stands for exactly one extra letter
//   - [KindLength]: the word's length compared against a target with one of
//     =, <, <=, >, >=
//   - [KindSequence]: a literal run of letters at a fixed zero-based offset
//
// Filters are immutable once parsed and safe to share between commands and
// goroutines.
//
// # Grammar
//
//	seq_filter   := [DIGITS] ":" CHARS
//	len_filter   := ("=" | "<" | ">" | "<=" | ">=") DIGITS
//	match_filter := CHARS            ; "*" is a wildcard
//
// # Classification
//
// [Classify] turns a bare token into a filter by trying the kinds in a fixed
// priority order: sequence, then length, then match. A token that looks like
// grammar punctuation but fits no kind is rejected with an
// *errors.ClassifyError listing each candidate's reason:
//
//	f, err := filter.Classify("2:ing")   // sequence filter
//	f, err = filter.Classify("<=5")      // length filter
//	f, err = filter.Classify("c*t")      // match filter
//	_, err = filter.Classify("<")        // error: every kind rejected it
package filter
