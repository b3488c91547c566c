package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"quiz-presenter/internal/config"
	"quiz-presenter/internal/surface/terminal"
)

// NewPlayCmd runs the quiz full-screen in the terminal.
func NewPlayCmd(configPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, *debug)
		},
	}
}

func runPlay(ctx context.Context, configPath string, debugFlag bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// tcell owns the terminal, so logs go to a file or nowhere.
	if logFile := setupLogging(cfg.Log.Dir, debugFlag || cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := loadSession(ctx, cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	return terminal.New(screen, session, terminal.Options{
		CellWidth:  cfg.Terminal.CellWidth,
		CellHeight: cfg.Terminal.CellHeight,
		FPS:        cfg.Terminal.FPS,
	}).Run(ctx)
}
