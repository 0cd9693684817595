package commands

import (
	"log/slog"

	"github.com/idp-tools/codebook/internal/cli/config"
	"github.com/idp-tools/codebook/internal/cli/output"
	"github.com/idp-tools/codebook/pkg/critic"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext reads the config and logger stored by the root command
// and builds a renderer on the command's writers.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// Critic builds a critic from the loaded configuration.
func (c *CommandContext) Critic() (*critic.Critic, error) {
	opts, err := c.Cfg.CriticOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, critic.WithLogger(c.Logger))
	return critic.New(opts...), nil
}
