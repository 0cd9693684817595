package critic

import (
	"github.com/idp-tools/codebook/pkg/codebook"
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/sheet"
	"github.com/idp-tools/codebook/pkg/table"
)

// ConvertVariables builds variable records from a cleaned codebook sheet.
// On failure it appends a parse error and returns nil.
func (c *Critic) ConvertVariables(data *table.Table, results []core.TestResult) ([]core.TestResult, []codebook.Variable) {
	return convert(c, codebook.SheetVariables, data, results, func(t *table.Table) ([]codebook.Variable, error) {
		v1, err := codebook.CastVariables(t)
		if err != nil {
			return nil, err
		}
		return codebook.VariablesFromTable(v1)
	})
}

// ConvertMetadata builds the metadata record from a cleaned key/value
// metadata table.
func (c *Critic) ConvertMetadata(data *table.Table, results []core.TestResult) ([]core.TestResult, *codebook.ResourceMetadata) {
	results, m := convert(c, codebook.SheetMetadata, data, results, func(t *table.Table) (*codebook.ResourceMetadata, error) {
		m, err := codebook.MetadataFromTable(sheet.Pivot(t))
		if err != nil {
			return nil, err
		}
		return &m, nil
	})
	return results, m
}

// ConvertAdditionalInformation builds the additional information record
// from a cleaned key/value table.
func (c *Critic) ConvertAdditionalInformation(data *table.Table, results []core.TestResult) ([]core.TestResult, *codebook.AdditionalInformation) {
	return convert(c, codebook.SheetAdditionalInfo, data, results, func(t *table.Table) (*codebook.AdditionalInformation, error) {
		a, err := codebook.AdditionalInformationFromTable(sheet.Pivot(t))
		if err != nil {
			return nil, err
		}
		return &a, nil
	})
}

func convert[T any](c *Critic, sheetName string, data *table.Table, results []core.TestResult,
	build func(*table.Table) (T, error),
) (out []core.TestResult, record T) {
	var zero T
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("conversion panicked", "sheet", sheetName, "panic", r)
			out, record = append(results, parseFailure(sheetName, r)), zero
		}
	}()

	if data == nil {
		return results, zero
	}
	record, err := build(data)
	if err != nil {
		c.logger.Debug("conversion failed", "sheet", sheetName, "error", err)
		return append(results, parseFailure(sheetName, err)), zero
	}
	return results, record
}

// skipConversion is reported when findings already rule out conversion.
func skipConversion(sheetName string) core.TestResult {
	return core.Info("'%s' sheet was not converted to records because of the errors above.", sheetName)
}
