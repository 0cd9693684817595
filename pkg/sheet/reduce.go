package sheet

import (
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/fuzzy"
	"github.com/idp-tools/codebook/pkg/table"
)

// FieldValues holds every value cell whose label matched a field.
type FieldValues struct {
	Field  string
	Values []any
}

// Reduce collects, for each field in order, the second-column values of the
// rows whose label matches that field. String values are trimmed.
func Reduce(t *table.Table, fields []string, m *fuzzy.Matcher) []FieldValues {
	labels := Labels(t)
	out := make([]FieldValues, len(fields))
	for i, field := range fields {
		fv := FieldValues{Field: field}
		candidates := []string{field}
		for ri, label := range labels {
			if m.Matches(label, candidates) {
				fv.Values = append(fv.Values, table.TrimCell(t.Cell(ri, 1)))
			}
		}
		out[i] = fv
	}
	return out
}

// Policy decides how a field with zero or several values is resolved.
type Policy struct {
	// FirstWins keeps the first of several values instead of the last.
	FirstWins bool
	// Missing is the severity reported for a field without a value.
	Missing core.ResultType
}

var (
	// MetadataPolicy reports missing values as errors and keeps the first
	// of repeated values.
	MetadataPolicy = Policy{FirstWins: true, Missing: core.ResultError}

	// AdditionalInfoPolicy reports missing values as info and keeps the last
	// of repeated values.
	AdditionalInfoPolicy = Policy{FirstWins: false, Missing: core.ResultInfo}
)

// Columns of the table returned by Resolve.
const (
	KeyColumn   = "key"
	ValueColumn = "value"
)

// Resolve reduces every field to a single value and appends one result per
// field that was not resolved cleanly. The returned table has a key and a
// value column with one row per field; unresolved values are nil.
func (p Policy) Resolve(fields []FieldValues, results []core.TestResult) (*table.Table, []core.TestResult) {
	out := table.New([]string{KeyColumn, ValueColumn})
	for _, fv := range fields {
		var value any
		switch {
		case len(fv.Values) > 1:
			results = append(results, core.Warning("Multiple values found for '%s' field.", fv.Field))
			if p.FirstWins {
				value = fv.Values[0]
			} else {
				value = fv.Values[len(fv.Values)-1]
			}
		case len(fv.Values) == 0 || table.IsNull(fv.Values[0]):
			results = append(results, core.TestResult{
				Type:    p.Missing,
				Message: "'" + fv.Field + "' field has no associated value.",
			})
		default:
			value = fv.Values[0]
		}
		if table.IsNull(value) {
			value = nil
		}
		out.Append([]any{fv.Field, value})
	}
	return out, results
}

// Pivot turns a key/value table into a single row keyed by field name.
func Pivot(kv *table.Table) *table.Table {
	keys := kv.Column(KeyColumn)
	values := kv.Column(ValueColumn)
	columns := make([]string, len(keys))
	for i, k := range keys {
		columns[i], _ = table.Text(k)
	}
	return table.New(columns, values)
}
