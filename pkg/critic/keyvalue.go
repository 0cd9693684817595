package critic

import (
	"slices"

	"github.com/idp-tools/codebook/pkg/codebook"
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/sheet"
	"github.com/idp-tools/codebook/pkg/table"
)

// keyValueSheet describes one of the two label/value sheets.
type keyValueSheet struct {
	name   string
	label  string
	fields []string
	policy sheet.Policy
}

var (
	metadataSheet = keyValueSheet{
		name:   codebook.SheetMetadata,
		label:  "Metadata",
		fields: codebook.MetadataFields(),
		policy: sheet.MetadataPolicy,
	}
	additionalInfoSheet = keyValueSheet{
		name:   codebook.SheetAdditionalInfo,
		label:  "Additional information",
		fields: codebook.AdditionalInfoFields(),
		policy: sheet.AdditionalInfoPolicy,
	}
)

// Metadata critiques a raw metadata information sheet. The returned table
// has a key and a value column with one row per field found; repeated
// fields keep their first value.
func (c *Critic) Metadata(raw *table.Table, results []core.TestResult) ([]core.TestResult, *table.Table) {
	results, data, _ := c.keyValue(metadataSheet, raw, results)
	return results, data
}

// AdditionalInformation critiques a raw additional information sheet.
// Repeated fields keep their last value and fields without a value are
// reported as info.
func (c *Critic) AdditionalInformation(raw *table.Table, results []core.TestResult) ([]core.TestResult, *table.Table) {
	results, data, _ := c.keyValue(additionalInfoSheet, raw, results)
	return results, data
}

func (c *Critic) keyValue(s keyValueSheet, raw *table.Table, results []core.TestResult) ([]core.TestResult, *table.Table, bool) {
	var blocked bool
	results, data := c.guard(s.name, results,
		func(results []core.TestResult) ([]core.TestResult, *table.Table, error) {
			results, data, ok := c.critiqueKeyValue(s, raw, results)
			blocked = !ok
			return results, data, nil
		})
	return results, data, blocked
}

// critiqueKeyValue returns false when the sheet is not fit for conversion.
func (c *Critic) critiqueKeyValue(s keyValueSheet, raw *table.Table, results []core.TestResult) ([]core.TestResult, *table.Table, bool) {
	kv, err := sheet.KeyValue(raw)
	if err != nil {
		c.logger.Debug("key-value shape check failed", "sheet", s.name, "error", err)
		return append(results, core.Error(
			"%s sheet should contain only two columns where the first column contains the field names and the second column contains their corresponding values.",
			s.label)), nil, false
	}
	kv = sheet.SkipSheetTitle(kv, codebook.SheetNames())

	presence := sheet.CheckFields(sheet.Labels(kv), s.fields, c.matcher)
	absent := sheet.Absent(presence)
	for _, field := range absent {
		results = append(results, core.Error("Couldn't find '%s' field.", field))
	}
	if len(absent) == 0 {
		results = append(results, core.Success("All the required fields are present."))
	}

	present := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		if !slices.Contains(absent, field) {
			present = append(present, field)
		}
	}

	data, results := s.policy.Resolve(sheet.Reduce(kv, present, c.matcher), results)
	c.logger.Debug("reduced key-value sheet", "sheet", s.name, "fields", data.Len(), "absent", len(absent))
	return results, data, len(absent) == 0
}
