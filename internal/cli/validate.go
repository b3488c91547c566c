package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"quiz-presenter/internal/config"
)

// NewValidateCmd checks the config and loads the configured quiz once.
func NewValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the config and question source",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), *configPath, cmd.OutOrStdout())
		},
	}
}

func runValidate(ctx context.Context, configPath string, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	session, err := loadSession(ctx, cfg)
	if err != nil {
		return err
	}
	model := session.Model()
	fmt.Fprintf(out, "quiz %s (%s): %d questions\n", cfg.Quiz.ID, cfg.Quiz.Source, model.Total())
	if model.Total() == 0 {
		fmt.Fprintln(out, "warning: no questions loaded")
	}
	return nil
}
