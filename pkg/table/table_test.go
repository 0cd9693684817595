package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	tbl := FromRows([][]any{
		{"a", "b"},
		{"c"},
		{"d", "e", "f"},
	})

	assert.Equal(t, []string{"0", "1", "2"}, tbl.Columns)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, []any{"c", nil, nil}, tbl.Rows[1])
	assert.Equal(t, "f", tbl.Cell(2, 2))
	assert.Nil(t, tbl.Cell(5, 0))
}

func TestTable_ColumnAccess(t *testing.T) {
	tbl := New([]string{"name", "type"},
		[]any{"a", "text"},
		[]any{"b", "numeric"},
	)

	assert.True(t, tbl.HasColumn("type"))
	assert.False(t, tbl.HasColumn("unit"))
	assert.Equal(t, []any{"text", "numeric"}, tbl.Column("type"))
	assert.Nil(t, tbl.Column("unit"))

	tbl.Set(1, "type", "date")
	assert.Equal(t, "date", tbl.Value(1, "type"))
}

func TestTable_CloneIsIndependent(t *testing.T) {
	tbl := New([]string{"a"}, []any{"x"})
	clone := tbl.Clone()
	clone.Rows[0][0] = "y"
	clone.Columns[0] = "b"

	assert.Equal(t, "x", tbl.Rows[0][0])
	assert.Equal(t, "a", tbl.Columns[0])
}

func TestTable_RenameDropSlice(t *testing.T) {
	tbl := New([]string{"variable name", "unit reference", "formula"},
		[]any{"title", nil, nil},
		[]any{"pop", "", "a+b"},
	)

	tbl.Rename(map[string]string{"variable name": "name"})
	tbl.Drop("unit reference")
	body := tbl.Slice(1)

	assert.Equal(t, []string{"name", "formula"}, body.Columns)
	assert.Equal(t, [][]any{{"pop", "a+b"}}, body.Rows)
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_TrimTrailingColumns(t *testing.T) {
	tbl := FromRows([][]any{
		{"domain", "Health", nil, " "},
		{"tags", "x", nil, nil},
	})
	tbl.TrimTrailingColumns()

	assert.Equal(t, []string{"0", "1"}, tbl.Columns)
	assert.Equal(t, []any{"tags", "x"}, tbl.Rows[1])
}

func TestTable_Records(t *testing.T) {
	tbl := New([]string{"k", "v"}, []any{"a", 1})
	assert.Equal(t, []map[string]any{{"k": "a", "v": 1}}, tbl.Records())
}

func TestIsNull(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"empty", "", true},
		{"blank", "  \t", true},
		{"nan", math.NaN(), true},
		{"text", "x", false},
		{"zero", 0, false},
		{"false", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNull(tt.v))
		})
	}
}

func TestText(t *testing.T) {
	s, ok := Text(12.0)
	assert.True(t, ok)
	assert.Equal(t, "12", s)

	s, ok = Text(true)
	assert.True(t, ok)
	assert.Equal(t, "true", s)

	_, ok = Text(" ")
	assert.False(t, ok)

	assert.Equal(t, "variable name", Label("  Variable Name "))
	assert.Equal(t, "", Label(nil))
	assert.Equal(t, "x", TrimCell(" x "))
	assert.Equal(t, 3, TrimCell(3))
}
