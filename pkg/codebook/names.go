package codebook

// Sheet names of a codebook workbook, lower-cased.
const (
	SheetVariables      = "codebook"
	SheetMetadata       = "metadata information"
	SheetAdditionalInfo = "additional information"
)

// SheetNames returns the required sheets in workbook order.
func SheetNames() []string {
	return []string{SheetVariables, SheetMetadata, SheetAdditionalInfo}
}

// Title rows written above the data of each exported sheet.
const (
	VariablesTitle      = "Dataset Variables & Formulas Used"
	MetadataTitle       = "Metadata Information"
	AdditionalInfoTitle = "Additional Information"
)

// Column titles of the variable sheet.
const (
	ColVariableName    = "variable name"
	ColDescription     = "variable description"
	ColVariableType    = "variable type"
	ColUnit            = "unit of measurement"
	ColUnitVaries      = "constant unit / changing unit"
	ColFormula         = "formula"
	ColUnitReference   = "unit reference"
	ColParentVariable  = "parent variable"
	ColUnitConversion  = "unit conversion"
	ColOriginalDerived = "original / derived"
	ColVariableParent  = "variable parent"
	ColVisualExclude   = "visual exclude"
)

// VariableColumns returns the canonical variable sheet titles in order.
// The last one, visual exclude, is optional.
func VariableColumns() []string {
	return []string{
		ColVariableName, ColDescription, ColVariableType, ColUnit,
		ColUnitVaries, ColFormula, ColUnitReference, ColParentVariable,
		ColUnitConversion, ColOriginalDerived, ColVariableParent, ColVisualExclude,
	}
}

// OptionalVariableColumn may be missing from a variable sheet.
const OptionalVariableColumn = ColVisualExclude

// variableRenames maps sheet titles to record field names. Unit reference
// has no field.
var variableRenames = map[string]string{
	ColVariableName:    "name",
	ColDescription:     "description",
	ColVariableType:    "data_type",
	ColUnit:            "measurement_unit",
	ColUnitVaries:      "unit_varies",
	ColFormula:         "formula",
	ColParentVariable:  "category",
	ColUnitConversion:  "unit_conversion",
	ColOriginalDerived: "is_derived",
	ColVariableParent:  "dependent_variable",
	ColVisualExclude:   "visual_exclude",
}

// VariableTypes are the accepted values of the variable type column.
func VariableTypes() []string {
	return []string{"text", "numeric", "date", "region", "categorical", "boolean", "timestamp"}
}

// TypeSynonyms maps variable types that are stored as another type.
var TypeSynonyms = map[string]string{
	"categorical": "text",
	"region":      "text",
}

// Metadata field labels in sheet order.
func MetadataFields() []string {
	return []string{
		"domain", "dataset name", "granularity level", "frequency",
		"source name", "source link", "data retrieval date",
		"data last updated", "data extraction page", "about", "methodology",
		"resource", "data insights", "tags", "similar datasets",
	}
}

// Additional information field labels in sheet order.
const (
	FieldYearsCovered = "years covered"
	FieldStates       = "number of state(s) / union territories"
	FieldNotes        = "additional information"
	FieldDistricts    = "number of district(s)"
	FieldTehsils      = "number of tehsil(s)"
	FieldGPs          = "number of gp"
	FieldVillages     = "number of villages"
	FieldIndicators   = "number of indicators"
)

// AdditionalInfoFields returns the additional information labels in order.
func AdditionalInfoFields() []string {
	return []string{
		FieldYearsCovered, FieldStates, FieldNotes, FieldDistricts,
		FieldTehsils, FieldGPs, FieldVillages, FieldIndicators,
	}
}

var additionalInfoRenames = map[string]string{
	FieldYearsCovered: "years_covered",
	FieldStates:       "no_of_states",
	FieldNotes:        "notes",
	FieldDistricts:    "no_of_districts",
	FieldTehsils:      "no_of_tehsils",
	FieldGPs:          "no_of_gps",
	FieldVillages:     "no_of_villages",
	FieldIndicators:   "no_of_indicators",
}
