package codebook

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/idp-tools/codebook/pkg/table"
)

// AdditionalInformationFromTable builds the additional information record
// from a pivoted sheet whose columns are the field labels.
func AdditionalInformationFromTable(row *table.Table) (AdditionalInformation, error) {
	rec, err := singleRecord(&AdditionalInfoV0, row)
	if err != nil {
		return AdditionalInformation{}, err
	}

	fields := make(map[string]any, len(rec))
	for label, v := range rec {
		fields[additionalInfoRenames[label]] = v
	}

	var a AdditionalInformation
	if err := mapstructure.Decode(fields, &a); err != nil {
		return AdditionalInformation{}, fmt.Errorf("decode additional information: %w", err)
	}
	if err := a.Validate(); err != nil {
		return AdditionalInformation{}, err
	}
	return a, nil
}

// AdditionalInformationToSheet lays additional information out as a titled
// key-value sheet.
func AdditionalInformationToSheet(a AdditionalInformation) *table.Table {
	values := []any{
		deref(a.YearsCovered),
		deref(a.NoOfStates),
		deref(a.Notes),
		deref(a.NoOfDistricts),
		deref(a.NoOfTehsils),
		deref(a.NoOfGPs),
		deref(a.NoOfVillages),
		deref(a.NoOfIndicators),
	}
	return keyValueSheet(AdditionalInfoTitle, AdditionalInfoFields(), values)
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
