package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/idp-tools/codebook/internal/cli/output"
	"github.com/idp-tools/codebook/pkg/codebook"
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/critic"
	"github.com/idp-tools/codebook/pkg/workbook"
	"github.com/spf13/cobra"
)

// ErrCritiqueFailed is returned when findings reach the --fail-on threshold.
var ErrCritiqueFailed = errors.New("critique failed")

// CritiqueOptions holds options for the critique command.
type CritiqueOptions struct {
	Path     string // Workbook to critique
	ShowData bool   // Print the cleaned sheet tables
	JSONOut  string // Write the codebook document here when it was built
	FailOn   string // error, warning or never
}

// NewCritiqueCommand creates the critique command.
func NewCritiqueCommand() *cobra.Command {
	opts := &CritiqueOptions{}
	cmd := &cobra.Command{
		Use:   "critique <file.xlsx>",
		Short: "Check a codebook workbook and report findings",
		Long: `Check the structure and content of a codebook workbook.

The workbook must contain the sheets "codebook", "metadata information" and
"additional information". Each sheet is checked in turn and its findings are
reported in order: errors, warnings, informational notes and passed checks.
When every sheet converts cleanly the typed codebook can be written as JSON.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable report`,
		Example: `  # Critique a workbook
  codebook critique survey.xlsx

  # Show the cleaned tables as well
  codebook critique survey.xlsx --show-data

  # Save the codebook document when the workbook is clean
  codebook critique survey.xlsx --json-out survey.json

  # Fail on warnings too (for CI)
  codebook critique survey.xlsx --fail-on warning`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return runCritique(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ShowData, "show-data", false, "Print the cleaned sheet tables")
	cmd.Flags().StringVar(&opts.JSONOut, "json-out", "", "Write the codebook JSON document to this path")
	cmd.Flags().StringVar(&opts.FailOn, "fail-on", "", "Exit non-zero on: error, warning, never (default from config)")

	_ = cmd.RegisterFlagCompletionFunc("fail-on", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runCritique(cmd *cobra.Command, opts *CritiqueOptions) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	failOn := cc.Cfg.FailOn
	if opts.FailOn != "" {
		failOn = opts.FailOn
	}
	threshold, fail, err := parseFailOn(failOn)
	if err != nil {
		return err
	}

	report, err := critiqueFile(cmd.Context(), cc, opts.Path)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(report); err != nil {
			return err
		}
	} else {
		renderReport(r, report, opts.ShowData)
	}

	if opts.JSONOut != "" {
		if err := writeDocument(opts.JSONOut, report.Codebook); err != nil {
			return err
		}
		if r.EffectiveMode() != output.ModeJSON {
			r.Success(fmt.Sprintf("Wrote %s", opts.JSONOut))
		}
	}

	if !fail {
		return nil
	}
	if found := core.Filter(report.Results(), threshold); len(found) > 0 {
		return fmt.Errorf("%w: %d finding(s) at or above %s", ErrCritiqueFailed, len(found), threshold)
	}
	return nil
}

// critiqueFile opens and critiques one workbook, with a spinner on a
// terminal.
func critiqueFile(ctx context.Context, cc *CommandContext, path string) (*critic.Report, error) {
	c, err := cc.Critic()
	if err != nil {
		return nil, err
	}

	var sp *output.Spinner
	if cc.Renderer.IsTTY() && cc.Renderer.EffectiveMode() == output.ModeText {
		sp = cc.Renderer.NewSpinner(fmt.Sprintf("Critiquing %s...", path))
		sp.Start()
	}

	wb, err := workbook.Open(path)
	if err != nil {
		if sp != nil {
			sp.Fail("Could not open workbook")
		}
		return nil, err
	}

	cc.Logger.Debug("critiquing workbook", "path", path, "sheets", wb.SheetNames())
	report, err := c.Critique(ctx, wb)
	if sp != nil {
		if err != nil {
			sp.Fail("Critique interrupted")
		} else {
			sp.Stop()
		}
	}
	return report, err
}

// parseFailOn maps a --fail-on value to the least severe result type that
// fails the command.
func parseFailOn(s string) (core.ResultType, bool, error) {
	switch s {
	case "error":
		return core.ResultError, true, nil
	case "warning":
		return core.ResultWarning, true, nil
	case "never":
		return core.ResultError, false, nil
	default:
		return core.ResultError, false, fmt.Errorf("invalid --fail-on value %q (expected error, warning or never)", s)
	}
}

func writeDocument(path string, cb *codebook.Codebook) error {
	if cb == nil {
		return errors.New("codebook was not built; fix the errors above before writing JSON")
	}
	return writeCodebook(path, formatJSON, cb)
}
