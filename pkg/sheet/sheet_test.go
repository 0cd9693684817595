package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/fuzzy"
	"github.com/idp-tools/codebook/pkg/sheet"
	"github.com/idp-tools/codebook/pkg/table"
)

var titles = []string{"variable name", "variable description", "variable type", "formula"}

func rawVariables(titleRow int) *table.Table {
	rows := [][]any{{"Dataset Variables & Formulas Used"}}
	for len(rows) < titleRow {
		rows = append(rows, []any{nil})
	}
	rows = append(rows,
		[]any{" Variable Name", "Variable Description ", "VARIABLE TYPE", "Formula", "Notes"},
		[]any{" pop ", "Population", "Numeric", nil, "x"},
		[]any{"area", " Area ", "numeric", "a*b", nil},
	)
	return table.FromRows(rows)
}

func TestLocateTitleRow(t *testing.T) {
	m := fuzzy.New()
	tests := []struct {
		name     string
		titleRow int
	}{
		{"expected row", 1},
		{"third row", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawVariables(tt.titleRow)
			got, ok := sheet.LocateTitleRow(raw, sheet.DefaultTitleRows, titles, m)
			require.True(t, ok)
			assert.Equal(t, tt.titleRow, got)

			again, ok := sheet.LocateTitleRow(raw, sheet.DefaultTitleRows, titles, m)
			require.True(t, ok)
			assert.Equal(t, got, again, "locating the title row is idempotent")
		})
	}
}

func TestLocateTitleRow_TieKeepsFirst(t *testing.T) {
	raw := table.FromRows([][]any{
		{"variable name", "x"},
		{"formula", "y"},
		{"variable type", "variable name"},
	})
	got, ok := sheet.LocateTitleRow(raw, sheet.DefaultTitleRows, titles, fuzzy.New())
	require.True(t, ok)
	assert.Equal(t, 2, got)

	raw = table.FromRows([][]any{{"variable name"}, {"formula"}})
	got, ok = sheet.LocateTitleRow(raw, sheet.DefaultTitleRows, titles, fuzzy.New())
	require.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestLocateTitleRow_NotFound(t *testing.T) {
	raw := table.FromRows([][]any{{"a", "b"}, {1, 2}})
	_, ok := sheet.LocateTitleRow(raw, sheet.DefaultTitleRows, titles, fuzzy.New())
	assert.False(t, ok)
}

func TestUnrecognizedTitles(t *testing.T) {
	raw := rawVariables(1)
	raw.Rows[1] = append(raw.Rows[1][:4:4], "Formula")
	got := sheet.UnrecognizedTitles(raw, 1, titles, fuzzy.New())
	assert.Empty(t, got)

	raw = rawVariables(1)
	got = sheet.UnrecognizedTitles(raw, 1, titles, fuzzy.New())
	assert.Equal(t, []string{"notes"}, got)
}

func TestNormalizeHeaders(t *testing.T) {
	raw := rawVariables(2)
	got := sheet.NormalizeHeaders(raw, 2, titles, fuzzy.New())

	assert.Equal(t, []string{"variable name", "variable description", "variable type", "formula", "notes"}, got.Columns)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "pop", got.Value(0, "variable name"))
	assert.Equal(t, "Area", got.Value(1, "variable description"))
	assert.Nil(t, got.Value(0, "formula"))

	assert.Empty(t, sheet.MissingColumns(got, titles))
	assert.Equal(t, []string{"unit reference"}, sheet.MissingColumns(got, append(titles, "unit reference")))
}

func TestKeyValue(t *testing.T) {
	kv, err := sheet.KeyValue(table.FromRows([][]any{
		{"domain", "Health", nil},
		{"tags"},
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, kv.Width())
	assert.Equal(t, []any{"tags", nil}, kv.Rows[1])

	_, err = sheet.KeyValue(table.FromRows([][]any{{"domain", "Health", "extra"}}))
	assert.ErrorIs(t, err, sheet.ErrShape)
}

func TestKeyValue_LabelsOnly(t *testing.T) {
	// a value column with no cells at all is trimmed by the reader
	kv, err := sheet.KeyValue(table.FromRows([][]any{{"domain"}, {"tags"}}))
	require.NoError(t, err)
	assert.Equal(t, 2, kv.Width())
	assert.Equal(t, []string{"domain", "tags"}, sheet.Labels(kv))
	assert.Nil(t, kv.Cell(0, 1))
	assert.Nil(t, kv.Cell(1, 1))
}

func TestSkipSheetTitle(t *testing.T) {
	names := []string{"codebook", "metadata information", "additional information"}

	withTitle := table.FromRows([][]any{
		{"Additional Information", nil},
		{"Years Covered", "2010-2020"},
	})
	assert.Equal(t, 1, sheet.SkipSheetTitle(withTitle, names).Len())

	// a field named like a sheet keeps its row when it has a value
	field := table.FromRows([][]any{
		{"Additional Information", "some notes"},
	})
	assert.Equal(t, 1, sheet.SkipSheetTitle(field, names).Len())
}

func TestCheckFields(t *testing.T) {
	labels := []string{"domain", "dataset nme", "tags"}
	got := sheet.CheckFields(labels, []string{"domain", "dataset name", "frequency"}, fuzzy.New())

	assert.Equal(t, []sheet.FieldPresence{
		{Field: "domain", Present: true},
		{Field: "dataset name", Present: true},
		{Field: "frequency", Present: false},
	}, got)
	assert.Equal(t, []string{"frequency"}, sheet.Absent(got))
}

func TestReduceAndResolve(t *testing.T) {
	kv := table.FromRows([][]any{
		{"Domain", " Health "},
		{"Tags", "a"},
		{"tags", "b"},
		{"Frequency", "  "},
	})
	fields := []string{"domain", "tags", "frequency", "resource"}
	reduced := sheet.Reduce(kv, fields, fuzzy.New())

	require.Len(t, reduced, 4)
	assert.Equal(t, []any{"Health"}, reduced[0].Values)
	assert.Equal(t, []any{"a", "b"}, reduced[1].Values)
	assert.Empty(t, reduced[3].Values)

	tests := []struct {
		name      string
		policy    sheet.Policy
		wantTags  any
		wantLevel core.ResultType
	}{
		{"metadata keeps first", sheet.MetadataPolicy, "a", core.ResultError},
		{"additional information keeps last", sheet.AdditionalInfoPolicy, "b", core.ResultInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, results := tt.policy.Resolve(reduced, nil)

			assert.Equal(t, "Health", resolved.Value(0, sheet.ValueColumn))
			assert.Equal(t, tt.wantTags, resolved.Value(1, sheet.ValueColumn))
			assert.Nil(t, resolved.Value(2, sheet.ValueColumn))
			assert.Nil(t, resolved.Value(3, sheet.ValueColumn))

			assert.Equal(t, []core.TestResult{
				core.Warning("Multiple values found for 'tags' field."),
				{Type: tt.wantLevel, Message: "'frequency' field has no associated value."},
				{Type: tt.wantLevel, Message: "'resource' field has no associated value."},
			}, results)
		})
	}
}

func TestPivot(t *testing.T) {
	kv := table.New([]string{sheet.KeyColumn, sheet.ValueColumn},
		[]any{"domain", "Health"},
		[]any{"tags", nil},
	)
	row := sheet.Pivot(kv)
	assert.Equal(t, []string{"domain", "tags"}, row.Columns)
	assert.Equal(t, [][]any{{"Health", nil}}, row.Rows)
}
