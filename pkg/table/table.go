// Package table provides the small column-oriented grid every critique stage
// works on.
//
// A Table is a header plus rows of loosely typed cells. Cells read from a
// workbook are strings; cells produced by the schema validator carry their
// coerced Go type (string, int, bool, float64). A nil cell is null, and a
// string made only of whitespace is treated as null by IsNull.
package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Table is an ordered set of named columns and the rows beneath them.
// Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]any
}

// New creates a table with the given header. Rows are padded or truncated to
// the header width.
func New(columns []string, rows ...[]any) *Table {
	t := &Table{Columns: append([]string(nil), columns...)}
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

// FromRows builds a raw sheet table. Columns are named by position ("0",
// "1", ...) and the width is the longest row.
func FromRows(rows [][]any) *Table {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	return New(Positional(width), rows...)
}

// Positional returns the column names "0".."n-1".
func Positional(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	return cols
}

// Append adds a row, padding with nil or truncating to the table width.
func (t *Table) Append(row []any) {
	r := make([]any, len(t.Columns))
	copy(r, row)
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Width returns the number of columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// ColumnIndex returns the position of the first column with the given name,
// or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns a copy of the named column's cells, or nil when absent.
func (t *Table) Column(name string) []any {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]any, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out
}

// Cell returns the cell at row and column position, or nil when out of range.
func (t *Table) Cell(row, col int) any {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Columns) {
		return nil
	}
	return t.Rows[row][col]
}

// Value returns the cell of the named column in the given row.
func (t *Table) Value(row int, column string) any {
	return t.Cell(row, t.ColumnIndex(column))
}

// Set replaces the cell of the named column in the given row.
func (t *Table) Set(row int, column string, v any) {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return
	}
	t.Rows[row][idx] = v
}

// Clone returns a deep copy of the header and rows. Cell values are copied
// by value.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]any, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = append([]any(nil), r...)
	}
	return out
}

// Slice returns the rows from index from onward with the same header.
func (t *Table) Slice(from int) *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	for i := max(from, 0); i < len(t.Rows); i++ {
		out.Rows = append(out.Rows, append([]any(nil), t.Rows[i]...))
	}
	return out
}

// Rename renames columns in place. Names absent from the mapping are kept.
func (t *Table) Rename(mapping map[string]string) {
	for i, c := range t.Columns {
		if to, ok := mapping[c]; ok {
			t.Columns[i] = to
		}
	}
}

// Drop removes every column with the given name.
func (t *Table) Drop(name string) {
	keep := make([]int, 0, len(t.Columns))
	for i, c := range t.Columns {
		if c != name {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(t.Columns) {
		return
	}
	t.project(keep)
}

// TrimTrailingColumns drops trailing columns whose header and cells are all
// null. Spreadsheet readers often report formatted but empty columns.
func (t *Table) TrimTrailingColumns() {
	width := len(t.Columns)
	for width > 0 {
		idx := width - 1
		if !isPositional(t.Columns[idx], idx) && strings.TrimSpace(t.Columns[idx]) != "" {
			break
		}
		empty := true
		for _, r := range t.Rows {
			if !IsNull(r[idx]) {
				empty = false
				break
			}
		}
		if !empty {
			break
		}
		width--
	}
	if width == len(t.Columns) {
		return
	}
	keep := make([]int, width)
	for i := range keep {
		keep[i] = i
	}
	t.project(keep)
}

func (t *Table) project(keep []int) {
	cols := make([]string, len(keep))
	for i, k := range keep {
		cols[i] = t.Columns[k]
	}
	for ri, r := range t.Rows {
		nr := make([]any, len(keep))
		for i, k := range keep {
			nr[i] = r[k]
		}
		t.Rows[ri] = nr
	}
	t.Columns = cols
}

func isPositional(name string, idx int) bool {
	return name == strconv.Itoa(idx)
}

// Records returns each row as a map keyed by column name.
func (t *Table) Records() []map[string]any {
	out := make([]map[string]any, len(t.Rows))
	for i, r := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for ci, c := range t.Columns {
			rec[c] = r[ci]
		}
		out[i] = rec
	}
	return out
}

// IsNull reports whether a cell holds no value: nil, a blank string or NaN.
func IsNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// Text renders a cell as a string. The second result is false for null
// cells.
func Text(v any) (string, bool) {
	if IsNull(v) {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}

// Label renders a cell lower-cased and trimmed, the form used for matching
// labels and titles. Null cells yield "".
func Label(v any) string {
	s, _ := Text(v)
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimCell trims surrounding whitespace from string cells and leaves every
// other value untouched.
func TrimCell(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}
