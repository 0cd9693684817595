package critic

import (
	"fmt"
	"runtime/debug"
	"slices"

	"github.com/idp-tools/codebook/pkg/codebook"
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/fuzzy"
	"github.com/idp-tools/codebook/pkg/table"
)

// HasRequiredSheets reports whether every required sheet name is present,
// comparing names trimmed and lower-cased. Extra sheets are allowed.
func HasRequiredSheets(names []string) bool {
	normalized := make([]string, len(names))
	for i, n := range names {
		normalized[i] = fuzzy.Normalize(n)
	}
	for _, want := range codebook.SheetNames() {
		if !slices.Contains(normalized, want) {
			return false
		}
	}
	return true
}

// CritiqueSheets checks that the workbook has the three codebook sheets.
func (c *Critic) CritiqueSheets(wb Workbook, results []core.TestResult) []core.TestResult {
	if !HasRequiredSheets(wb.SheetNames()) {
		c.logger.Debug("required sheets missing", "sheets", wb.SheetNames())
		return append(results, core.Error(
			"The file must have at least three sheets named 'codebook', 'metadata information', and 'additional information'."))
	}
	return append(results, core.Success(
		"The file has three sheets named 'codebook', 'metadata information', and 'additional information'."))
}

// parseFailure is the finding reported when a sheet cannot be turned into
// clean data.
func parseFailure(sheetName string, reason any) core.TestResult {
	return core.Error("Couldn't parse '%s' sheet: %v", sheetName, reason)
}

// guard runs a stage and converts an error or a panic into a parse failure
// with nil data.
func (c *Critic) guard(sheetName string, results []core.TestResult,
	stage func([]core.TestResult) ([]core.TestResult, *table.Table, error),
) (out []core.TestResult, data *table.Table) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("stage panicked", "sheet", sheetName, "panic", r, "stack", string(debug.Stack()))
			out, data = append(results, parseFailure(sheetName, r)), nil
		}
	}()

	out, data, err := stage(results)
	if err != nil {
		c.logger.Debug("stage failed", "sheet", sheetName, "error", err)
		return append(out, parseFailure(sheetName, err)), nil
	}
	return out, data
}

// errorsSince counts the errors appended after position start.
func errorsSince(results []core.TestResult, start int) int {
	if start > len(results) {
		return 0
	}
	return core.Count(results[start:], core.ResultError)
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
