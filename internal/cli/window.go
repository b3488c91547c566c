package cli

import (
	"context"

	"github.com/spf13/cobra"

	"quiz-presenter/internal/app"
	"quiz-presenter/internal/config"
)

// WindowRunner shows a loaded session in a desktop window until it closes.
// The graphics stack lives behind it so this package builds without a display.
type WindowRunner func(session *app.Session, cfg config.Config, debug bool) error

// NewWindowCmd runs the quiz in a desktop window.
func NewWindowCmd(configPath *string, debug *bool, run WindowRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Play the quiz in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), *configPath, *debug, run)
		},
	}
}

func runWindow(ctx context.Context, configPath string, debugFlag bool, run WindowRunner) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	debugOn := debugFlag || cfg.Log.Debug
	if debugOn {
		if logFile := setupLogging(cfg.Log.Dir, true); logFile != nil {
			defer logFile.Close()
		}
	}

	session, err := loadSession(ctx, cfg)
	if err != nil {
		return err
	}
	return run(session, cfg, debugOn)
}
