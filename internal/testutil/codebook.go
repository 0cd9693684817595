package testutil

import "github.com/idp-tools/codebook/pkg/codebook"

func ptr[T any](v T) *T { return &v }

// SampleCodebook returns a valid codebook whose data types all survive a
// workbook round trip.
func SampleCodebook() *codebook.Codebook {
	return &codebook.Codebook{
		Variables: []codebook.Variable{
			{
				Name:            "state_name",
				Description:     "Name of the state",
				DataType:        codebook.Text,
				IsDerived:       false,
				UnitVaries:      false,
				MeasurementUnit: "",
			},
			{
				Name:            "population",
				Description:     "Total population",
				DataType:        codebook.Numeric,
				MeasurementUnit: "persons",
				Category:        "demography",
			},
			{
				Name:              "population_share",
				Description:       "Share of national population",
				DataType:          codebook.Numeric,
				MeasurementUnit:   "percent",
				Formula:           "population / total_population * 100",
				UnitConversion:    "x100",
				DependentVariable: "population",
				IsDerived:         true,
				UnitVaries:        true,
				VisualExclude:     true,
			},
		},
		Metadata: codebook.ResourceMetadata{
			Domains:            []string{"Health", "Economy"},
			DatasetName:        "State Population",
			GranularityLevel:   "State",
			Frequency:          "Yearly",
			SourceName:         "Census",
			SourceLink:         "https://example.org/census",
			DataRetrievalDate:  "2023-04-01",
			DataLastUpdated:    "",
			DataExtractionPage: "https://example.org/census/tables",
			About:              "Population by state",
			Methodology:        "Decennial census",
			Resource:           "state_population",
			DataInsights:       "",
			Tags:               []string{"population", "census"},
			SimilarDatasets:    []string{},
		},
		AdditionalInformation: codebook.AdditionalInformation{
			YearsCovered:   ptr("2001-2011"),
			NoOfStates:     ptr(36),
			NoOfDistricts:  ptr(640),
			NoOfIndicators: ptr(3),
		},
	}
}

// VariableRows is a hand written codebook sheet with its title row at
// titleRow.
func VariableRows(titleRow int) [][]any {
	rows := [][]any{{"Dataset Variables & Formulas Used"}}
	for len(rows) < titleRow {
		rows = append(rows, []any{})
	}
	return append(rows,
		[]any{"Variable Name", "Variable Description", "Variable Type", "Unit of Measurement",
			"Constant Unit / Changing Unit", "Formula", "Unit Reference", "Parent Variable",
			"Unit Conversion", "Original / Derived", "Variable Parent", "Visual Exclude"},
		[]any{"state_name", "Name of the state", "Text", nil, "Constant Unit", nil, nil, nil, nil, "Original", nil, "FALSE"},
		[]any{"district_count", " Number of districts ", "Numeric", "count", "Constant Unit", nil, nil, "geography", nil, "Original", nil, "FALSE"},
		[]any{"zone", "Zone of the state", "Categorical", nil, "Constant Unit", nil, nil, nil, nil, "Original", nil, "TRUE"},
	)
}

// MetadataRows is a hand written metadata information sheet.
func MetadataRows() [][]any {
	return [][]any{
		{"Metadata Information", nil},
		{"Domain", "Health, Economy"},
		{"Dataset Name", "State Population"},
		{"Granularity Level", "State"},
		{"Frequency", "Yearly"},
		{"Source Name", "Census"},
		{"Source Link", "https://example.org/census"},
		{"Data Retrieval Date", "2023-04-01"},
		{"Data Last Updated", nil},
		{"Data Extraction Page", "https://example.org/census/tables"},
		{"About", "Population by state"},
		{"Methodology", "Decennial census"},
		{"Resource", "state_population"},
		{"Data Insights", "Growth is uneven"},
		{"Tags", "population, census"},
		{"Similar Datasets", "district_population"},
	}
}

// AdditionalInfoRows is a hand written additional information sheet.
func AdditionalInfoRows() [][]any {
	return [][]any{
		{"Additional Information", nil},
		{"Years Covered", "2001-2011"},
		{"Number of State(s) / Union Territories", "36"},
		{"Additional Information", "Census years only"},
		{"Number of District(s)", "640"},
		{"Number of Tehsil(s)", nil},
		{"Number of GP", nil},
		{"Number of Villages", nil},
		{"Number of Indicators", "3"},
	}
}
