package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/idp-tools/codebook/pkg/workbook"
	"github.com/spf13/cobra"
)

// NewTemplateCommand creates the template command.
func NewTemplateCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "template <out.xlsx>",
		Short: "Write an empty codebook workbook",
		Long: `Write a workbook with the three codebook sheets, their title rows and
column titles, ready to be filled in.`,
		Example: `  codebook template new-survey.xlsx`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(cmd, args[0], force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func runTemplate(cmd *cobra.Command, path string, force bool) error {
	cc := NewCommandContext(cmd)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	buf, err := workbook.Template()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	cc.Renderer.Success(fmt.Sprintf("Wrote template %s", path))
	return nil
}
