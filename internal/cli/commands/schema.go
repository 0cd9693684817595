package commands

import (
	"fmt"
	"strings"

	"github.com/idp-tools/codebook/internal/cli/output"
	"github.com/idp-tools/codebook/pkg/codebook"
	"github.com/idp-tools/codebook/pkg/schema"
	"github.com/spf13/cobra"
)

// schemaTargets maps the schema command arguments to their schemas.
var schemaTargets = []struct {
	name   string
	title  string
	schema *schema.Schema
}{
	{"variables", "Codebook Sheet Columns", &codebook.VariablesV0},
	{"fields", "Variable Record Fields", &codebook.VariablesV1},
	{"metadata", "Metadata Information Fields", &codebook.MetadataV0},
	{"additional", "Additional Information Fields", &codebook.AdditionalInfoV0},
}

// columnView is the JSON form of one schema column.
type columnView struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Optional    bool     `json:"optional,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Constraints string   `json:"constraints,omitempty"`
	Description string   `json:"description,omitempty"`
}

type schemaView struct {
	Name    string       `json:"name"`
	Version string       `json:"version"`
	Columns []columnView `json:"columns"`
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	names := make([]string, len(schemaTargets))
	for i, t := range schemaTargets {
		names[i] = t.name
	}

	return &cobra.Command{
		Use:   "schema [" + strings.Join(names, "|") + "]",
		Short: "Show the expected sheet columns and fields",
		Long: `Show the canonical columns of the codebook sheet and the fields of the
metadata and additional information sheets, with the checks applied to
each. Without an argument every schema is shown.`,
		Example: `  # All schemas
  codebook schema

  # Only the metadata fields, as JSON
  codebook schema metadata -o json`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) > 0 {
				which = args[0]
			}
			return runSchema(cmd, which)
		},
	}
}

func runSchema(cmd *cobra.Command, which string) error {
	r := NewCommandContext(cmd).Renderer

	var views []schemaView
	for _, t := range schemaTargets {
		if which != "" && t.name != which {
			continue
		}
		if r.EffectiveMode() == output.ModeJSON {
			views = append(views, viewOf(t.schema))
			continue
		}
		r.Header(2, fmt.Sprintf("%s (%s %s)", t.title, t.schema.Name, t.schema.Version))
		r.Table([]string{"Column", "Type", "Constraints", "Description"}, columnRows(t.schema))
		r.Println("")
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(views)
	}
	return nil
}

func columnRows(s *schema.Schema) [][]string {
	rows := make([][]string, len(s.Columns))
	for i, c := range s.Columns {
		rows[i] = []string{c.Name, string(c.Type), c.Constraints(), c.Description}
	}
	return rows
}

func viewOf(s *schema.Schema) schemaView {
	v := schemaView{Name: s.Name, Version: s.Version}
	for _, c := range s.Columns {
		v.Columns = append(v.Columns, columnView{
			Name:        c.Name,
			Type:        string(c.Type),
			Required:    !c.Nullable,
			Optional:    c.Optional,
			Enum:        c.Enum,
			Constraints: c.Constraints(),
			Description: c.Description,
		})
	}
	return v
}
