package codebook

import (
	"regexp"
	"strings"

	"github.com/idp-tools/codebook/pkg/schema"
)

// MaxNameLength is the longest variable name a sheet or record may carry.
const MaxNameLength = 64

var variableNamePattern = regexp.MustCompile(`^[^A-Z!@#$%^&*()+\-=\[\]{};':"\\|,.<>\/?]+$`)

var (
	unitVariesTrue  = []string{"changing unit", "changing"}
	unitVariesFalse = []string{"constant unit", "constant"}
	isDerivedTrue   = []string{"derived"}
	isDerivedFalse  = []string{"original"}
)

// upperVariableTypes accepts both spellings of each type.
var upperVariableTypes = func() []string {
	out := VariableTypes()
	for _, t := range VariableTypes() {
		out = append(out, strings.ToUpper(t))
	}
	return out
}()

func optionalText(name string) schema.Column {
	return schema.Column{Name: name, Type: schema.TypeString, Nullable: true, Default: ""}
}

func nameColumn(name string) schema.Column {
	return schema.Column{
		Name:        name,
		Type:        schema.TypeString,
		Unique:      true,
		MinLength:   1,
		MaxLength:   MaxNameLength,
		Pattern:     variableNamePattern,
		Description: "lower-case identifier, unique within the codebook",
	}
}

// VariablesV0 validates a variable sheet with its human readable titles.
var VariablesV0 = schema.Schema{
	Name:    "codebook",
	Version: "v0",
	Columns: []schema.Column{
		nameColumn(ColVariableName),
		{Name: ColDescription, Type: schema.TypeString},
		{Name: ColVariableType, Type: schema.TypeString, Enum: upperVariableTypes},
		optionalText(ColUnit),
		optionalText(ColUnitVaries),
		optionalText(ColFormula),
		optionalText(ColUnitReference),
		optionalText(ColParentVariable),
		optionalText(ColUnitConversion),
		optionalText(ColOriginalDerived),
		optionalText(ColVariableParent),
		{Name: ColVisualExclude, Type: schema.TypeBool, Nullable: true, Optional: true, Default: false},
	},
}

// VariablesV1 validates variables keyed by record field names.
var VariablesV1 = schema.Schema{
	Name:    "variables",
	Version: "v1",
	Columns: []schema.Column{
		nameColumn("name"),
		{Name: "description", Type: schema.TypeString},
		{Name: "data_type", Type: schema.TypeString, Enum: VariableTypes()},
		optionalText("measurement_unit"),
		optionalText("formula"),
		optionalText("category"),
		optionalText("unit_conversion"),
		optionalText("dependent_variable"),
		{
			Name: "is_derived", Type: schema.TypeBool, Nullable: true, Default: false,
			TrueTokens: isDerivedTrue, FalseTokens: isDerivedFalse,
		},
		{
			Name: "unit_varies", Type: schema.TypeBool, Nullable: true, Default: false,
			TrueTokens: unitVariesTrue, FalseTokens: unitVariesFalse,
		},
		{Name: "visual_exclude", Type: schema.TypeBool, Nullable: true, Optional: true, Default: false},
	},
}

// MetadataV0 validates the pivoted metadata sheet.
var MetadataV0 = schema.Schema{
	Name:    "metadata",
	Version: "v0",
	Columns: []schema.Column{
		{Name: "domain", Type: schema.TypeString, Description: "comma separated list"},
		{Name: "dataset name", Type: schema.TypeString},
		{Name: "granularity level", Type: schema.TypeString},
		{Name: "frequency", Type: schema.TypeString},
		{Name: "source name", Type: schema.TypeString},
		optionalText("source link"),
		{Name: "data retrieval date", Type: schema.TypeString},
		optionalText("data last updated"),
		optionalText("data extraction page"),
		optionalText("about"),
		optionalText("methodology"),
		{Name: "resource", Type: schema.TypeString},
		optionalText("data insights"),
		{Name: "tags", Type: schema.TypeString, Description: "comma separated list"},
		withDescription(optionalText("similar datasets"), "comma separated list"),
	},
}

// AdditionalInfoV0 validates the pivoted additional information sheet.
var AdditionalInfoV0 = schema.Schema{
	Name:    "additional information",
	Version: "v0",
	Columns: []schema.Column{
		{Name: FieldYearsCovered, Type: schema.TypeString, Nullable: true},
		{Name: FieldStates, Type: schema.TypeInt, Nullable: true},
		{Name: FieldNotes, Type: schema.TypeString, Nullable: true},
		{Name: FieldDistricts, Type: schema.TypeInt, Nullable: true},
		{Name: FieldTehsils, Type: schema.TypeInt, Nullable: true},
		{Name: FieldGPs, Type: schema.TypeInt, Nullable: true},
		{Name: FieldVillages, Type: schema.TypeInt, Nullable: true},
		{Name: FieldIndicators, Type: schema.TypeInt},
	},
}

func withDescription(c schema.Column, desc string) schema.Column {
	c.Description = desc
	return c
}
