package critic

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/idp-tools/codebook/pkg/codebook"
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/table"
)

// sheetOutcome is what one sheet stage leaves behind for the report.
type sheetOutcome struct {
	report    SheetReport
	converted bool
}

// Critique checks a whole workbook. When a required sheet is missing the
// report holds only that finding. Otherwise every sheet is critiqued and
// converted independently, and the codebook is assembled when all three
// conversions succeed. Context cancellation stops before the sheet stages.
func (c *Critic) Critique(ctx context.Context, wb Workbook) (*Report, error) {
	start := time.Now()
	report := &Report{ID: uuid.New()}
	logger := c.logger.With("report", report.ID.String())

	report.Structure = c.CritiqueSheets(wb, nil)
	if core.HasType(report.Structure, core.ResultError) {
		logger.Debug("critique halted at sheet check")
		return report, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		variables  []codebook.Variable
		metadata   *codebook.ResourceMetadata
		additional *codebook.AdditionalInformation
		outcomes   [3]sheetOutcome
	)
	stages := [3]func(){
		func() { outcomes[0], variables = c.variablesStage(wb) },
		func() { outcomes[1], metadata = c.metadataStage(wb) },
		func() { outcomes[2], additional = c.additionalInfoStage(wb) },
	}

	if c.parallel {
		var g errgroup.Group
		for _, stage := range stages {
			g.Go(func() error {
				stage()
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, stage := range stages {
			stage()
		}
	}

	converted := true
	for _, o := range outcomes {
		report.Sheets = append(report.Sheets, o.report)
		converted = converted && o.converted
	}
	if converted {
		report.Codebook = &codebook.Codebook{
			Variables:             variables,
			Metadata:              *metadata,
			AdditionalInformation: *additional,
		}
	}

	logger.Debug("critique finished",
		"duration", time.Since(start),
		"results", len(report.Results()),
		"codebook", report.Codebook != nil)
	return report, nil
}

// readSheet loads a sheet; a read failure becomes the sheet's only finding.
func readSheet(wb Workbook, name string) (*table.Table, []core.TestResult) {
	raw, err := wb.Sheet(name)
	if err != nil {
		return nil, []core.TestResult{parseFailure(name, err)}
	}
	return raw, nil
}

func (c *Critic) variablesStage(wb Workbook) (sheetOutcome, []codebook.Variable) {
	out := sheetOutcome{report: SheetReport{Sheet: codebook.SheetVariables}}
	raw, results := readSheet(wb, codebook.SheetVariables)
	if raw == nil {
		out.report.Results = results
		return out, nil
	}

	results, data, blocked := c.variables(raw, results)
	var vars []codebook.Variable
	switch {
	case data == nil:
	case blocked:
		results = append(results, skipConversion(codebook.SheetVariables))
	default:
		results, vars = c.ConvertVariables(data, results)
		if vars == nil {
			data = nil
		} else {
			out.converted = true
		}
	}
	out.report.Results, out.report.Data = results, data
	return out, vars
}

func (c *Critic) metadataStage(wb Workbook) (sheetOutcome, *codebook.ResourceMetadata) {
	out := sheetOutcome{report: SheetReport{Sheet: codebook.SheetMetadata}}
	raw, results := readSheet(wb, codebook.SheetMetadata)
	if raw == nil {
		out.report.Results = results
		return out, nil
	}

	results, data, blocked := c.keyValue(metadataSheet, raw, results)
	var m *codebook.ResourceMetadata
	switch {
	case data == nil:
	case blocked:
		results = append(results, skipConversion(codebook.SheetMetadata))
	default:
		if results, m = c.ConvertMetadata(data, results); m == nil {
			data = nil
		} else {
			out.converted = true
		}
	}
	out.report.Results, out.report.Data = results, data
	return out, m
}

func (c *Critic) additionalInfoStage(wb Workbook) (sheetOutcome, *codebook.AdditionalInformation) {
	out := sheetOutcome{report: SheetReport{Sheet: codebook.SheetAdditionalInfo}}
	raw, results := readSheet(wb, codebook.SheetAdditionalInfo)
	if raw == nil {
		out.report.Results = results
		return out, nil
	}

	results, data, blocked := c.keyValue(additionalInfoSheet, raw, results)
	var a *codebook.AdditionalInformation
	switch {
	case data == nil:
	case blocked:
		results = append(results, skipConversion(codebook.SheetAdditionalInfo))
	default:
		if results, a = c.ConvertAdditionalInformation(data, results); a == nil {
			data = nil
		} else {
			out.converted = true
		}
	}
	out.report.Results, out.report.Data = results, data
	return out, a
}
