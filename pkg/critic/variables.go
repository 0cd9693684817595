package critic

import (
	"errors"
	"slices"
	"strings"

	"github.com/idp-tools/codebook/pkg/codebook"
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/sheet"
	"github.com/idp-tools/codebook/pkg/table"
)

// ErrNoTitleRow is returned when none of the scanned rows holds a
// recognizable column title.
var ErrNoTitleRow = errors.New("no row with column titles found")

// Variables critiques a raw codebook sheet and returns its cleaned table,
// keyed by the canonical column titles. The table is returned even when
// findings were reported; it is nil only when the sheet could not be parsed.
func (c *Critic) Variables(raw *table.Table, results []core.TestResult) ([]core.TestResult, *table.Table) {
	results, data, _ := c.variables(raw, results)
	return results, data
}

// variables also reports whether a finding rules out record conversion.
func (c *Critic) variables(raw *table.Table, results []core.TestResult) ([]core.TestResult, *table.Table, bool) {
	var blocked bool
	results, data := c.guard(codebook.SheetVariables, results,
		func(results []core.TestResult) ([]core.TestResult, *table.Table, error) {
			results, data, blocking, err := c.critiqueVariables(raw, results)
			blocked = blocking > 0
			return results, data, err
		})
	return results, data, blocked
}

func (c *Critic) critiqueVariables(raw *table.Table, results []core.TestResult) ([]core.TestResult, *table.Table, int, error) {
	titles := codebook.VariableColumns()

	titleRow, found := sheet.LocateTitleRow(raw, c.titleRows, titles, c.matcher)
	c.logger.Debug("located title row", "row", titleRow, "found", found)
	if !found || titleRow != c.expectedTitleRow {
		results = append(results, core.Error(
			"Column titles in the codebook sheet should be on the %s row", ordinal(c.expectedTitleRow+1)))
	}
	if !found {
		return results, nil, 0, ErrNoTitleRow
	}

	if unknown := sheet.UnrecognizedTitles(raw, titleRow, titles, c.matcher); len(unknown) > 0 {
		results = append(results, core.Warning(
			"Unrecognized column titles in the codebook sheet: %s", quoteList(unknown)))
	}

	data := sheet.NormalizeHeaders(raw, titleRow, titles, c.matcher)

	// Every error from here on leaves the table unfit for conversion.
	start := len(results)

	missing := sheet.MissingColumns(data, titles)
	for _, col := range missing {
		if col == codebook.OptionalVariableColumn {
			results = append(results, core.Warning(
				"Please add '%s' column in '%s' sheet.", col, codebook.SheetVariables))
			continue
		}
		results = append(results, core.Error("Couldn't find '%s' in '%s' sheet.", col, codebook.SheetVariables))
	}
	if len(missing) == 0 {
		results = append(results, core.Success("All the required columns are present."))
	}

	if data.HasColumn(codebook.ColVariableType) {
		if invalid := invalidVariableTypes(data.Column(codebook.ColVariableType)); len(invalid) > 0 {
			results = append(results, core.Error("Invalid variable type: %s.", quoteList(invalid)))
		} else {
			results = append(results, core.Success("All variable types are valid."))
		}
		normalizeVariableTypes(data)
	}

	if hasEmpty(data, codebook.ColVariableName) {
		results = append(results, core.Error(
			"Variable name cannot be empty. One of the rows in '%s' column contains an empty value.",
			codebook.ColVariableName))
	}
	if hasEmpty(data, codebook.ColDescription) {
		results = append(results, core.Error(
			"Variable description cannot be empty. One of the rows in '%s' column contains an empty value.",
			codebook.ColDescription))
	}

	return results, data, errorsSince(results, start), nil
}

// invalidVariableTypes returns the distinct non-empty type cells outside the
// accepted vocabulary, trimmed, in the order they first appear.
func invalidVariableTypes(cells []any) []string {
	valid := codebook.VariableTypes()
	var out []string
	for _, cell := range cells {
		s, ok := table.Text(cell)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if slices.Contains(valid, strings.ToLower(s)) || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// normalizeVariableTypes lower-cases valid type cells and replaces synonyms
// with the type they are stored as. Invalid cells are left as written.
func normalizeVariableTypes(data *table.Table) {
	valid := codebook.VariableTypes()
	for i := range data.Rows {
		label := table.Label(data.Value(i, codebook.ColVariableType))
		if !slices.Contains(valid, label) {
			continue
		}
		if to, ok := codebook.TypeSynonyms[label]; ok {
			label = to
		}
		data.Set(i, codebook.ColVariableType, label)
	}
}

func hasEmpty(data *table.Table, column string) bool {
	if !data.HasColumn(column) {
		return false
	}
	return slices.ContainsFunc(data.Column(column), table.IsNull)
}

func quoteList(items []string) string {
	return "'" + strings.Join(items, "', '") + "'"
}
