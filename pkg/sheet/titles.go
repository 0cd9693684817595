package sheet

import (
	"github.com/idp-tools/codebook/pkg/fuzzy"
	"github.com/idp-tools/codebook/pkg/table"
)

// DefaultTitleRows are the rows scanned for the column title row.
var DefaultTitleRows = []int{0, 1, 2}

// ExpectedTitleRow is where the column titles of a variable sheet belong.
const ExpectedTitleRow = 1

// LocateTitleRow returns the candidate row with the most cells matching a
// canonical title. A later row replaces the current best only with a strictly
// higher count, so ties keep the earliest row. Rows outside the table are
// skipped. The second result is false when no candidate row has a match.
func LocateTitleRow(t *table.Table, rows []int, titles []string, m *fuzzy.Matcher) (int, bool) {
	best, bestCount := -1, 0
	for _, idx := range rows {
		if idx < 0 || idx >= t.Len() {
			continue
		}
		count := 0
		for _, cell := range t.Rows[idx] {
			if label := table.Label(cell); label != "" && m.Matches(label, titles) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = idx, count
		}
	}
	return best, best >= 0
}

// UnrecognizedTitles returns the non-empty cells of the title row that match
// no canonical title, lower-cased and trimmed, without duplicates and in
// column order.
func UnrecognizedTitles(t *table.Table, titleRow int, titles []string, m *fuzzy.Matcher) []string {
	if titleRow < 0 || titleRow >= t.Len() {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, cell := range t.Rows[titleRow] {
		label := table.Label(cell)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		if !m.Matches(label, titles) {
			out = append(out, label)
		}
	}
	return out
}

// NormalizeHeaders uses the title row as header, resolving each title to its
// canonical name or keeping it as is. It returns the rows strictly below the
// title row with every string cell trimmed.
func NormalizeHeaders(t *table.Table, titleRow int, titles []string, m *fuzzy.Matcher) *table.Table {
	columns := make([]string, t.Width())
	if titleRow >= 0 && titleRow < t.Len() {
		for i, cell := range t.Rows[titleRow] {
			columns[i] = m.MatchOrSelf(table.Label(cell), titles)
		}
	}

	out := table.New(columns)
	for i := titleRow + 1; i < t.Len(); i++ {
		row := make([]any, len(columns))
		for ci, cell := range t.Rows[i] {
			row[ci] = table.TrimCell(cell)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// MissingColumns returns the canonical titles that are not a column of t,
// in canonical order.
func MissingColumns(t *table.Table, titles []string) []string {
	var out []string
	for _, title := range titles {
		if !t.HasColumn(title) {
			out = append(out, title)
		}
	}
	return out
}
