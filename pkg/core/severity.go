package core

import "strings"

// =============================================================================
// ResultType
// =============================================================================

// ResultType indicates the kind of a critique finding.
type ResultType int

// Result types in the order they are declared by the critique stages.
const (
	// ResultError indicates a problem that prevents the sheet from being used as-is.
	ResultError ResultType = iota
	// ResultWarning indicates a potential issue that should be reviewed.
	ResultWarning
	// ResultInfo indicates informational feedback.
	ResultInfo
	// ResultSuccess indicates a check that passed.
	ResultSuccess
)

// String returns the string representation of the result type.
func (t ResultType) String() string {
	switch t {
	case ResultError:
		return "error"
	case ResultWarning:
		return "warning"
	case ResultInfo:
		return "info"
	case ResultSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ParseResultType converts a string to a ResultType value.
// Returns the type and true if valid, or ResultInfo and false if invalid.
func ParseResultType(s string) (ResultType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return ResultError, true
	case "warning":
		return ResultWarning, true
	case "info":
		return ResultInfo, true
	case "success":
		return ResultSuccess, true
	default:
		return ResultInfo, false
	}
}

// MarshalText encodes the result type as its lower-case name.
func (t ResultType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a lower-case result type name.
func (t *ResultType) UnmarshalText(b []byte) error {
	v, ok := ParseResultType(string(b))
	if !ok {
		return &UnknownResultTypeError{Value: string(b)}
	}
	*t = v
	return nil
}

// UnknownResultTypeError is returned when decoding an unrecognised result type.
type UnknownResultTypeError struct {
	Value string
}

func (e *UnknownResultTypeError) Error() string {
	return "unknown result type: " + e.Value
}
