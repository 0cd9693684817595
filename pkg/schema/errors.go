package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every schema failure.
var ErrValidation = errors.New("schema validation failed")

// Check names the constraint a value failed.
type Check string

const (
	CheckPresent  Check = "column_present"
	CheckNullable Check = "not_nullable"
	CheckType     Check = "dtype"
	CheckEnum     Check = "isin"
	CheckPattern  Check = "str_matches"
	CheckLength   Check = "str_length"
	CheckUnique   Check = "unique"
)

// Error is a single constraint violation. Row is the zero-based data row, or
// -1 for column level failures.
type Error struct {
	Schema  string
	Column  string
	Row     int
	Check   Check
	Value   any
	Message string
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Row >= 0 {
		fmt.Fprintf(&sb, "column '%s' row %d: ", e.Column, e.Row)
	} else {
		fmt.Fprintf(&sb, "column '%s': ", e.Column)
	}
	sb.WriteString(e.Message)
	if e.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", e.Value)
	}
	return sb.String()
}

// Is reports whether target is ErrValidation.
func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

// Errors collects every violation found in one validation pass.
type Errors []*Error

func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return ErrValidation.Error()
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d schema errors: %s", len(e), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	out := make([]error, len(e))
	for i, err := range e {
		out[i] = err
	}
	return out
}

// Is reports whether target is ErrValidation.
func (e Errors) Is(target error) bool {
	return target == ErrValidation
}

func lengthRange(minLen, maxLen int) string {
	switch {
	case maxLen == 0:
		return fmt.Sprintf("at least %d characters", minLen)
	case minLen == 0:
		return fmt.Sprintf("at most %d characters", maxLen)
	default:
		return fmt.Sprintf("%d-%d characters", minLen, maxLen)
	}
}
