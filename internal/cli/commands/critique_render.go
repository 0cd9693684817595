package commands

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/idp-tools/codebook/internal/cli/output"
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/critic"
	"github.com/idp-tools/codebook/pkg/table"
)

// renderReport writes the report section by section in the order the
// checks ran.
func renderReport(r *output.Renderer, report *critic.Report, showData bool) {
	r.Header(2, "Structure")
	renderResults(r, report.Structure)

	for _, s := range report.Sheets {
		r.Header(2, sectionTitle(s.Sheet))
		renderResults(r, s.Results)
		if showData && s.Data != nil {
			if r.EffectiveMode() == output.ModeMarkdown {
				r.Println("")
			}
			r.Table(s.Data.Columns, tableRows(s.Data))
		}
	}

	renderSummary(r, report)
}

func sectionTitle(sheet string) string {
	return cases.Title(language.English).String(sheet) + " Sheet"
}

func renderResults(r *output.Renderer, results []core.TestResult) {
	for _, res := range results {
		renderResult(r, res)
	}
	if r.EffectiveMode() == output.ModeMarkdown && len(results) > 0 {
		r.Println("")
	}
}

func renderResult(r *output.Renderer, res core.TestResult) {
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Printf("- **%s**: %s\n", resultLabel(res.Type), res.Message)
		return
	}

	st := r.Styles()
	switch res.Type {
	case core.ResultError:
		r.Println(st.Error.Render(output.SymbolError + " " + res.Message))
	case core.ResultWarning:
		r.Println(st.Warning.Render(output.SymbolWarning + " " + res.Message))
	case core.ResultInfo:
		r.Println(st.Info.Render(output.SymbolInfo + " " + res.Message))
	default:
		r.Println(st.Success.Render(output.SymbolSuccess + " " + res.Message))
	}
}

func resultLabel(t core.ResultType) string {
	switch t {
	case core.ResultError:
		return "ERROR"
	case core.ResultWarning:
		return "WARNING"
	case core.ResultInfo:
		return "INFO"
	default:
		return "SUCCESS"
	}
}

func renderSummary(r *output.Renderer, report *critic.Report) {
	all := report.Results()
	errs := core.Count(all, core.ResultError)
	warns := core.Count(all, core.ResultWarning)
	summary := fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Summary", summary))
		if report.Codebook != nil {
			r.Println(output.FormatKeyValue("Codebook", "built"))
		}
		return
	}

	r.Println("")
	switch {
	case errs > 0:
		r.Println(r.Styles().Error.Render(summary))
	case warns > 0:
		r.Warning(summary)
	default:
		r.Success(summary)
	}
	if report.Codebook != nil {
		r.Muted(fmt.Sprintf("Codebook built with %d variable(s)", len(report.Codebook.Variables)))
	}
}

// tableRows renders every cell as text, null cells as empty strings.
func tableRows(t *table.Table) [][]string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		for j, c := range row {
			rows[i][j], _ = table.Text(c)
		}
	}
	return rows
}
