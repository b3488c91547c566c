package cli

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

// Execute runs the CLI. The window command is offered only when runWindow is
// set.
func Execute(runWindow WindowRunner) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
	return newRootCmd(runWindow).Execute()
}

func newRootCmd(runWindow WindowRunner) *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:          "quiz-presenter",
		Short:        "Interactive multiple-choice quiz for the terminal, a window or the browser",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs")
	cmd.AddCommand(NewPlayCmd(&configPath, &debug))
	if runWindow != nil {
		cmd.AddCommand(NewWindowCmd(&configPath, &debug, runWindow))
	}
	cmd.AddCommand(NewServeCmd(&configPath))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewValidateCmd(&configPath))
	return cmd
}
