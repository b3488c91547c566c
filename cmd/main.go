package main

import (
	"os"

	"quiz-presenter/internal/app"
	"quiz-presenter/internal/cli"
	"quiz-presenter/internal/config"
	"quiz-presenter/internal/surface/window"
)

func main() {
	if err := cli.Execute(runWindow); err != nil {
		os.Exit(1)
	}
}

func runWindow(session *app.Session, cfg config.Config, debug bool) error {
	return window.Run(session, window.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		Debug:  debug,
	})
}
