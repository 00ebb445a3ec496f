package input

import "fmt"

// RejectionKind classifies why a line was not accepted.
type RejectionKind int

const (
	// ParseFailure means the line is not a number or date.
	ParseFailure RejectionKind = iota + 1
	// RangeViolation means a number fell outside its bounds.
	RangeViolation
	// DisallowedValue means a character outside the allowed set, or a
	// string on the exclusion list.
	DisallowedValue
	// EmptyInput means an empty line where a character was expected.
	EmptyInput
)

func (k RejectionKind) String() string {
	switch k {
	case ParseFailure:
		return "parse_failure"
	case RangeViolation:
		return "range_violation"
	case DisallowedValue:
		return "disallowed_value"
	case EmptyInput:
		return "empty_input"
	default:
		return "unknown"
	}
}

// Rejection is the error a validation step returns for a line it refuses.
// Message is the text shown to the user before re-prompting.
type Rejection struct {
	Kind    RejectionKind
	Input   string
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %q", r.Kind, r.Input)
}

func reject(kind RejectionKind, line, msg string) *Rejection {
	return &Rejection{Kind: kind, Input: line, Message: msg}
}
