package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idp-tools/codebook/pkg/codebook"
	"github.com/idp-tools/codebook/pkg/core"
	"github.com/idp-tools/codebook/pkg/workbook"
	"github.com/spf13/cobra"
)

// Document formats recognized by file extension.
const (
	formatXLSX = "xlsx"
	formatJSON = "json"
	formatYAML = "yaml"
)

// ErrUnknownFormat is returned for file extensions convert cannot handle.
var ErrUnknownFormat = errors.New("unknown file format")

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a codebook between workbook, JSON and YAML",
		Long: `Convert a codebook between formats, chosen by file extension.

A workbook (.xlsx) is critiqued first and converted only when every sheet
parses. JSON and YAML documents are validated on read and can be written
back as a workbook with the standard sheet layout.`,
		Example: `  # Workbook to JSON
  codebook convert survey.xlsx survey.json

  # YAML back to a workbook
  codebook convert survey.yaml survey.xlsx`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1])
		},
	}
}

func runConvert(cmd *cobra.Command, in, out string) error {
	cc := NewCommandContext(cmd)

	inFormat, err := formatOf(in)
	if err != nil {
		return err
	}
	outFormat, err := formatOf(out)
	if err != nil {
		return err
	}

	var cb *codebook.Codebook
	switch inFormat {
	case formatXLSX:
		report, err := critiqueFile(cmd.Context(), cc, in)
		if err != nil {
			return err
		}
		if report.Codebook == nil {
			for _, res := range core.Filter(report.Results(), core.ResultError) {
				cc.Renderer.Error(res.Message)
			}
			return fmt.Errorf("%s could not be converted: %w", in, ErrCritiqueFailed)
		}
		cb = report.Codebook
	default:
		cb, err = readDocument(in, inFormat)
		if err != nil {
			return err
		}
	}

	cc.Logger.Debug("converting codebook", "from", inFormat, "to", outFormat, "variables", len(cb.Variables))
	if err := writeCodebook(out, outFormat, cb); err != nil {
		return err
	}
	cc.Renderer.Success(fmt.Sprintf("Wrote %s", out))
	return nil
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return formatXLSX, nil
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s (expected .xlsx, .json, .yaml or .yml)", ErrUnknownFormat, path)
	}
}

func readDocument(path, format string) (*codebook.Codebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if format == formatYAML {
		return codebook.DecodeYAML(f)
	}
	return codebook.DecodeJSON(f)
}

func writeCodebook(path, format string, cb *codebook.Codebook) error {
	if format == formatXLSX {
		return workbook.WriteFile(path, cb)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if format == formatYAML {
		err = codebook.EncodeYAML(f, cb)
	} else {
		err = codebook.EncodeJSON(f, cb)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
