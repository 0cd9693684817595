package critic

import (
	"github.com/google/uuid"

	"github.com/idp-tools/codebook/pkg/codebook"
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/table"
)

// SheetReport holds the findings and cleaned data of one sheet.
type SheetReport struct {
	Sheet   string            `json:"sheet"`
	Results []core.TestResult `json:"results"`
	// Data is nil when the sheet could not be parsed.
	Data *table.Table `json:"-"`
}

// Report is the outcome of one critique.
type Report struct {
	ID        uuid.UUID         `json:"id"`
	Structure []core.TestResult `json:"structure"`
	Sheets    []SheetReport     `json:"sheets,omitempty"`
	// Codebook is set only when all three sheets converted to records.
	Codebook *codebook.Codebook `json:"codebook,omitempty"`
}

// Results returns every finding in the order the checks ran.
func (r *Report) Results() []core.TestResult {
	out := append([]core.TestResult(nil), r.Structure...)
	for _, s := range r.Sheets {
		out = append(out, s.Results...)
	}
	return out
}

// HasErrors reports whether any check produced an error.
func (r *Report) HasErrors() bool {
	return core.HasType(r.Results(), core.ResultError)
}

// Sheet returns the report of the named sheet.
func (r *Report) Sheet(name string) (SheetReport, bool) {
	for _, s := range r.Sheets {
		if s.Sheet == name {
			return s, true
		}
	}
	return SheetReport{}, false
}
