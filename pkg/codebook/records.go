package codebook

import "fmt"

// DataType is the storage type of a variable.
type DataType string

const (
	Numeric     DataType = "NUMERIC"
	Boolean     DataType = "BOOLEAN"
	Text        DataType = "TEXT"
	Date        DataType = "DATE"
	Timestamp   DataType = "TIMESTAMP"
	Categorical DataType = "CATEGORICAL"
)

// Variable is one row of the variable sheet.
type Variable struct {
	// Name is a database friendly identifier.
	Name        string   `json:"name" yaml:"name" mapstructure:"name" validate:"required,varname,max=64"`
	Description string   `json:"description" yaml:"description" mapstructure:"description" validate:"required"`
	DataType    DataType `json:"data_type" yaml:"data_type" mapstructure:"data_type" validate:"oneof=NUMERIC BOOLEAN TEXT DATE TIMESTAMP CATEGORICAL"`

	MeasurementUnit string `json:"measurement_unit" yaml:"measurement_unit" mapstructure:"measurement_unit"`
	Formula         string `json:"formula" yaml:"formula" mapstructure:"formula"`
	UnitConversion  string `json:"unit_conversion" yaml:"unit_conversion" mapstructure:"unit_conversion"`

	// Category groups variables under a parent variable.
	Category string `json:"category" yaml:"category" mapstructure:"category"`

	// DependentVariable names a variable that uses this one.
	DependentVariable string `json:"dependent_variable" yaml:"dependent_variable" mapstructure:"dependent_variable"`

	IsDerived     bool `json:"is_derived" yaml:"is_derived" mapstructure:"is_derived"`
	UnitVaries    bool `json:"unit_varies" yaml:"unit_varies" mapstructure:"unit_varies"`
	VisualExclude bool `json:"visual_exclude" yaml:"visual_exclude" mapstructure:"visual_exclude"`
}

// Validate checks the name charset and length, the description and the
// data type.
func (v Variable) Validate() error {
	return check(fmt.Sprintf("variable %q", v.Name), v)
}

// ResourceMetadata describes the dataset a codebook belongs to.
type ResourceMetadata struct {
	Domains            []string `json:"domains" yaml:"domains" mapstructure:"domains"`
	DatasetName        string   `json:"dataset_name" yaml:"dataset_name" mapstructure:"dataset_name" validate:"required"`
	GranularityLevel   string   `json:"granularity_level" yaml:"granularity_level" mapstructure:"granularity_level" validate:"required"`
	Frequency          string   `json:"frequency" yaml:"frequency" mapstructure:"frequency" validate:"required"`
	SourceName         string   `json:"source_name" yaml:"source_name" mapstructure:"source_name" validate:"required"`
	SourceLink         string   `json:"source_link" yaml:"source_link" mapstructure:"source_link"`
	DataRetrievalDate  string   `json:"data_retrieval_date" yaml:"data_retrieval_date" mapstructure:"data_retrieval_date" validate:"required"`
	DataLastUpdated    string   `json:"data_last_updated" yaml:"data_last_updated" mapstructure:"data_last_updated"`
	DataExtractionPage string   `json:"data_extraction_page" yaml:"data_extraction_page" mapstructure:"data_extraction_page"`
	About              string   `json:"about" yaml:"about" mapstructure:"about"`
	Methodology        string   `json:"methodology" yaml:"methodology" mapstructure:"methodology"`
	Resource           string   `json:"resource" yaml:"resource" mapstructure:"resource" validate:"required"`
	DataInsights       string   `json:"data_insights" yaml:"data_insights" mapstructure:"data_insights"`
	Tags               []string `json:"tags" yaml:"tags" mapstructure:"tags"`
	SimilarDatasets    []string `json:"similar_datasets" yaml:"similar_datasets" mapstructure:"similar_datasets"`
}

// Validate checks that the required metadata is present.
func (m ResourceMetadata) Validate() error {
	return check("metadata", m)
}

// AdditionalInformation holds coverage figures of a dataset. Nil means the
// figure is unknown.
type AdditionalInformation struct {
	YearsCovered   *string `json:"years_covered" yaml:"years_covered" mapstructure:"years_covered"`
	Notes          *string `json:"notes" yaml:"notes" mapstructure:"notes"`
	NoOfStates     *int    `json:"no_of_states" yaml:"no_of_states" mapstructure:"no_of_states" validate:"omitempty,min=0"`
	NoOfDistricts  *int    `json:"no_of_districts" yaml:"no_of_districts" mapstructure:"no_of_districts" validate:"omitempty,min=0"`
	NoOfTehsils    *int    `json:"no_of_tehsils" yaml:"no_of_tehsils" mapstructure:"no_of_tehsils" validate:"omitempty,min=0"`
	NoOfVillages   *int    `json:"no_of_villages" yaml:"no_of_villages" mapstructure:"no_of_villages" validate:"omitempty,min=0"`
	NoOfGPs        *int    `json:"no_of_gps" yaml:"no_of_gps" mapstructure:"no_of_gps" validate:"omitempty,min=0"`
	NoOfIndicators *int    `json:"no_of_indicators" yaml:"no_of_indicators" mapstructure:"no_of_indicators" validate:"required,min=0"`
}

// Validate checks that the indicator count is present.
func (a AdditionalInformation) Validate() error {
	return check("additional information", a)
}

// Codebook is the full record set of one workbook.
type Codebook struct {
	Variables             []Variable            `json:"variables" yaml:"variables" validate:"unique=Name,dive"`
	Metadata              ResourceMetadata      `json:"metadata" yaml:"metadata"`
	AdditionalInformation AdditionalInformation `json:"additional_information" yaml:"additional_information"`
}

// Validate checks every record and the uniqueness of variable names.
func (c *Codebook) Validate() error {
	return check("codebook", c)
}
