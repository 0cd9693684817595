package schema_test

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idp-tools/codebook/pkg/schema"
	"github.com/idp-tools/codebook/pkg/table"
)

var people = schema.Schema{
	Name:    "people",
	Version: "v1",
	Columns: []schema.Column{
		{Name: "name", Type: schema.TypeString, Unique: true, Pattern: regexp.MustCompile(`^[a-z_]+$`), MinLength: 1, MaxLength: 8},
		{Name: "kind", Type: schema.TypeString, Enum: []string{"a", "b"}},
		{Name: "age", Type: schema.TypeInt, Nullable: true},
		{Name: "active", Type: schema.TypeBool, Nullable: true, Default: false, TrueTokens: []string{"on"}, FalseTokens: []string{"off"}},
		{Name: "hidden", Type: schema.TypeBool, Nullable: true, Optional: true, Default: false},
	},
}

func TestValidate_CoercesAndFilters(t *testing.T) {
	in := table.New([]string{"extra", "active", "age", "kind", "name"},
		[]any{"x", "Yes", "42", "a", "alice"},
		[]any{"y", "off", 7.0, "b", "bob"},
		[]any{"z", nil, "", "a", "carol"},
		[]any{"w", true, 3, "b", "dave"},
	)

	out, err := people.Validate(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "kind", "age", "active", "hidden"}, out.Columns)
	assert.Equal(t, [][]any{
		{"alice", "a", 42, true, false},
		{"bob", "b", 7, false, false},
		{"carol", "a", nil, false, false},
		{"dave", "b", 3, true, false},
	}, out.Rows)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		columns   []string
		row       []any
		wantCheck schema.Check
	}{
		{"missing column", []string{"name", "kind", "active"}, []any{"alice", "a", nil}, schema.CheckPresent},
		{"null in required", []string{"name", "kind", "age", "active"}, []any{"alice", " ", nil, nil}, schema.CheckNullable},
		{"enum", []string{"name", "kind", "age", "active"}, []any{"alice", "c", nil, nil}, schema.CheckEnum},
		{"pattern", []string{"name", "kind", "age", "active"}, []any{"Has Space", "a", nil, nil}, schema.CheckPattern},
		{"length", []string{"name", "kind", "age", "active"}, []any{"abcdefghij", "a", nil, nil}, schema.CheckLength},
		{"int type", []string{"name", "kind", "age", "active"}, []any{"alice", "a", "4.5", nil}, schema.CheckType},
		{"bool type", []string{"name", "kind", "age", "active"}, []any{"alice", "a", nil, "maybe"}, schema.CheckType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := people.Validate(table.New(tt.columns, tt.row))
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, schema.ErrValidation)

			var errs schema.Errors
			require.True(t, errors.As(err, &errs))
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantCheck, errs[0].Check)
			assert.Equal(t, "people", errs[0].Schema)
		})
	}
}

func TestValidate_Unique(t *testing.T) {
	in := table.New([]string{"name", "kind", "age", "active"},
		[]any{"alice", "a", nil, nil},
		[]any{"alice", "b", nil, nil},
	)
	_, err := people.Validate(in)
	require.Error(t, err)

	var verr *schema.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, schema.CheckUnique, verr.Check)
	assert.Equal(t, 1, verr.Row)
	assert.Contains(t, err.Error(), "duplicate of row 0")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	in := table.New([]string{"name", "kind"},
		[]any{"Alice", "z"},
	)
	_, err := people.Validate(in)

	var errs schema.Errors
	require.True(t, errors.As(err, &errs))
	// name pattern, kind enum, missing age, missing active
	assert.Len(t, errs, 4)
	assert.Contains(t, err.Error(), "4 schema errors")
}

func TestSchema_Helpers(t *testing.T) {
	assert.Equal(t, []string{"name", "kind", "age", "active"}, people.Required())

	col, ok := people.Column("name")
	require.True(t, ok)
	assert.Equal(t, "required, unique, 1-8 characters, matches ^[a-z_]+$", col.Constraints())

	_, ok = people.Column("nope")
	assert.False(t, ok)
}

func TestColumn_Coerce(t *testing.T) {
	intCol := schema.Column{Type: schema.TypeInt}
	v, err := intCol.Coerce("12.0")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	floatCol := schema.Column{Type: schema.TypeFloat}
	v, err = floatCol.Coerce("1.5")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, v, 0.0001)

	strCol := schema.Column{Type: schema.TypeString}
	v, err = strCol.Coerce(2.0)
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestColumn_CoerceIntRange(t *testing.T) {
	intCol := schema.Column{Type: schema.TypeInt}

	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{name: "large exact float", in: float64(1 << 53), want: 1 << 53},
		{name: "negative float string", in: "-42.0", want: -42},
		{name: "exponent string too large", in: "1e20", wantErr: true},
		{name: "exponent string too small", in: "-1e20", wantErr: true},
		{name: "float too large", in: 1e20, wantErr: true},
		{name: "first float past max int", in: -float64(math.MinInt), wantErr: true},
		{name: "infinity", in: math.Inf(1), wantErr: true},
		{name: "not a number", in: math.NaN(), wantErr: true},
		{name: "fraction", in: "2.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := intCol.Coerce(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "as an integer")
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestColumn_ConstraintsShowPattern(t *testing.T) {
	col, ok := people.Column("name")
	require.True(t, ok)
	assert.Contains(t, col.Constraints(), "matches ^[a-z_]+$")
}
