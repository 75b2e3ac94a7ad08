package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FailureReason classifies why a line could not be read as a guess.
type FailureReason int

const (
	ReasonEmpty FailureReason = iota
	ReasonNotNumber
	ReasonOutOfRange
)

func (r FailureReason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonNotNumber:
		return "not_a_number"
	case ReasonOutOfRange:
		return "out_of_range"
	}
	return "unknown"
}

// ParseFailure is returned by Parse for any line that is not a valid guess.
// It is always recoverable: the caller discards the line and asks again.
type ParseFailure struct {
	Raw    string
	Reason FailureReason
}

func (e *ParseFailure) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "empty guess"
	case ReasonOutOfRange:
		return fmt.Sprintf("%q is out of range", strings.TrimSpace(e.Raw))
	}
	return fmt.Sprintf("%q is not a number", strings.TrimSpace(e.Raw))
}

// Parse converts one raw input line into a guess.
//
// Surrounding whitespace and line terminators are trimmed. What remains must
// be a base-10 integer with at most one leading sign. Any other input yields
// a *ParseFailure carrying the original text.
func Parse(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ParseFailure{Raw: raw, Reason: ReasonEmpty}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseFailure{Raw: raw, Reason: ReasonOutOfRange}
		}
		return 0, &ParseFailure{Raw: raw, Reason: ReasonNotNumber}
	}
	return n, nil
}
