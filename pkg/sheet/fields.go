package sheet

import (
	"errors"
	"fmt"
	"slices"

	"github.com/idp-tools/codebook/pkg/fuzzy"
	"github.com/idp-tools/codebook/pkg/table"
)

// ErrShape is returned when a key-value sheet does not have two columns.
var ErrShape = errors.New("key-value sheet must have exactly two columns")

// KeyValue prepares a raw key-value sheet. Trailing empty columns are
// dropped; a sheet wider than two columns fails with ErrShape. A sheet with
// only a label column is read as having no values, since workbook readers
// drop a value column that is entirely empty.
func KeyValue(t *table.Table) (*table.Table, error) {
	kv := t.Clone()
	if kv == nil {
		kv = table.New(nil)
	}
	kv.TrimTrailingColumns()
	if kv.Width() > 2 {
		return nil, fmt.Errorf("%w: found %d", ErrShape, kv.Width())
	}
	out := table.New(table.Positional(2))
	for _, r := range kv.Rows {
		out.Append(r)
	}
	return out, nil
}

// SkipSheetTitle drops the first row when its label is one of the sheet
// names and its value cell is empty. Exported workbooks carry such a title
// row above the fields.
func SkipSheetTitle(t *table.Table, sheetNames []string) *table.Table {
	if t.Len() == 0 {
		return t
	}
	if slices.Contains(sheetNames, table.Label(t.Cell(0, 0))) && table.IsNull(t.Cell(0, 1)) {
		return t.Slice(1)
	}
	return t
}

// Labels returns the lower-cased, trimmed first-column labels of a
// key-value table.
func Labels(t *table.Table) []string {
	out := make([]string, t.Len())
	for i := range t.Rows {
		out[i] = table.Label(t.Cell(i, 0))
	}
	return out
}

// FieldPresence records whether a required field was found among the labels.
type FieldPresence struct {
	Field   string
	Present bool
}

// CheckFields matches each required field against the full label list. The
// result has one entry per field, in the order given.
func CheckFields(labels []string, required []string, m *fuzzy.Matcher) []FieldPresence {
	out := make([]FieldPresence, len(required))
	for i, field := range required {
		out[i] = FieldPresence{Field: field, Present: m.Matches(field, labels)}
	}
	return out
}

// Absent returns the fields that were not found.
func Absent(presence []FieldPresence) []string {
	var out []string
	for _, p := range presence {
		if !p.Present {
			out = append(out, p.Field)
		}
	}
	return out
}
