package core

import "fmt"

// TestResult is a single finding produced by a critique stage.
// Values are immutable once created; stages only ever append new ones.
type TestResult struct {
	Type    ResultType `json:"type" yaml:"type"`
	Message string     `json:"message" yaml:"message"`
}

// String renders the result as "type: message".
func (r TestResult) String() string {
	return fmt.Sprintf("%s: %s", r.Type, r.Message)
}

// Error creates an error result.
func Error(format string, args ...any) TestResult {
	return TestResult{Type: ResultError, Message: fmt.Sprintf(format, args...)}
}

// Warning creates a warning result.
func Warning(format string, args ...any) TestResult {
	return TestResult{Type: ResultWarning, Message: fmt.Sprintf(format, args...)}
}

// Info creates an info result.
func Info(format string, args ...any) TestResult {
	return TestResult{Type: ResultInfo, Message: fmt.Sprintf(format, args...)}
}

// Success creates a success result.
func Success(format string, args ...any) TestResult {
	return TestResult{Type: ResultSuccess, Message: fmt.Sprintf(format, args...)}
}

// Count returns how many results have the given type.
func Count(results []TestResult, t ResultType) int {
	n := 0
	for _, r := range results {
		if r.Type == t {
			n++
		}
	}
	return n
}

// HasType reports whether any result has the given type.
func HasType(results []TestResult, t ResultType) bool {
	for _, r := range results {
		if r.Type == t {
			return true
		}
	}
	return false
}

// Filter returns the results at or above the given threshold.
// Error is the most severe type, Success the least.
func Filter(results []TestResult, threshold ResultType) []TestResult {
	var out []TestResult
	for _, r := range results {
		if r.Type <= threshold {
			out = append(out, r)
		}
	}
	return out
}
