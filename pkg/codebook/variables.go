package codebook

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/idp-tools/codebook/pkg/table"
)

// CastVariables converts a variable sheet keyed by its titles into a table
// keyed by record field names. The input is validated against VariablesV0
// and the output against VariablesV1.
func CastVariables(v0 *table.Table) (*table.Table, error) {
	valid, err := VariablesV0.Validate(v0)
	if err != nil {
		return nil, err
	}
	valid.Drop(ColUnitReference)
	valid.Rename(variableRenames)
	return VariablesV1.Validate(valid)
}

// VariablesFromTable builds variables from a table keyed by field names.
// Data types are stored upper-case.
func VariablesFromTable(v1 *table.Table) ([]Variable, error) {
	valid, err := VariablesV1.Validate(v1)
	if err != nil {
		return nil, err
	}

	vars := make([]Variable, 0, valid.Len())
	for i, rec := range valid.Records() {
		if s, ok := rec["data_type"].(string); ok {
			rec["data_type"] = strings.ToUpper(s)
		}
		var v Variable
		if err := mapstructure.Decode(rec, &v); err != nil {
			return nil, fmt.Errorf("decode variable row %d: %w", i, err)
		}
		if err := v.Validate(); err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// VariablesToTable is the inverse of VariablesFromTable.
func VariablesToTable(vars []Variable) *table.Table {
	t := table.New(VariablesV1.ColumnNames())
	for _, v := range vars {
		t.Append([]any{
			v.Name,
			v.Description,
			strings.ToLower(string(v.DataType)),
			v.MeasurementUnit,
			v.Formula,
			v.Category,
			v.UnitConversion,
			v.DependentVariable,
			v.IsDerived,
			v.UnitVaries,
			v.VisualExclude,
		})
	}
	return t
}

// VariablesToSheet lays variables out the way a codebook sheet is written:
// a title row, a row of column titles and one row per variable.
func VariablesToSheet(vars []Variable) *table.Table {
	columns := VariableColumns()
	title := cases.Title(language.English)

	titles := make([]any, len(columns))
	for i, c := range columns {
		titles[i] = title.String(c)
	}
	rows := [][]any{{VariablesTitle}, titles}

	for _, v := range vars {
		rows = append(rows, []any{
			v.Name,
			v.Description,
			string(v.DataType),
			cell(v.MeasurementUnit),
			choose(v.UnitVaries, "Changing Unit", "Constant Unit"),
			cell(v.Formula),
			nil,
			cell(v.Category),
			cell(v.UnitConversion),
			choose(v.IsDerived, "Derived", "Original"),
			cell(v.DependentVariable),
			v.VisualExclude,
		})
	}
	return table.FromRows(rows)
}

// cell writes empty strings as empty cells.
func cell(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func choose(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
