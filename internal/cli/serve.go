package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"quiz-presenter/internal/config"
	"quiz-presenter/internal/infra/memory"
	rediscache "quiz-presenter/internal/infra/redis"
	transport "quiz-presenter/internal/transport/http"
)

// NewServeCmd serves the quiz to browsers over a websocket canvas.
func NewServeCmd(configPath *string) *cobra.Command {
	envPort := os.Getenv("PORT")
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quiz to browsers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, port)
		},
	}
	cmd.Flags().StringVar(&port, "port", envPort, "port to listen on (overrides server.port)")
	return cmd
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Log.Debug {
		if logFile := setupLogging(cfg.Log.Dir, true); logFile != nil {
			defer logFile.Close()
		}
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	b, err := openBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	var sessions transport.SessionRegistry = memory.NewSessionStore()
	if b.redis != nil {
		sessions = rediscache.NewSessionStore(b.redis, config.Duration(cfg.Redis.TTL, 10*time.Minute))
	}
	quizzes := b.quizRepository(cfg)
	canvas := transport.NewCanvasHandler(quizzes, sessions, transport.Options{
		DefaultQuizID: cfg.Quiz.ID,
		Settings:      sessionSettings(cfg),
		FPS:           cfg.Server.FPS,
	})

	server := &http.Server{
		Addr:        ":" + finalPort,
		Handler:     transport.NewRouter(canvas),
		ReadTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("serving quiz %s on :%s", cfg.Quiz.ID, finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	// SIGHUP drops the cached question set so new connections load fresh rows.
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	defer signal.Stop(reload)

wait:
	for {
		select {
		case <-reload:
			if err := quizzes.Invalidate(ctx, cfg.Quiz.ID); err != nil {
				log.Printf("reload quiz %s: %v", cfg.Quiz.ID, err)
				continue
			}
			log.Printf("quiz %s will reload on the next connection", cfg.Quiz.ID)
		case <-stop:
			log.Println("shutting down server...")
			break wait
		case <-ctx.Done():
			log.Println("context canceled, shutting down server...")
			break wait
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
