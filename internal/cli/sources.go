package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"quiz-presenter/internal/app"
	"quiz-presenter/internal/config"
	"quiz-presenter/internal/domain"
	"quiz-presenter/internal/infra/csvfile"
	"quiz-presenter/internal/infra/memory"
	pgloader "quiz-presenter/internal/infra/postgres"
	rediscache "quiz-presenter/internal/infra/redis"
	"quiz-presenter/internal/layout"
	transport "quiz-presenter/internal/transport/http"
)

// backends holds the shared clients opened for a command.
type backends struct {
	redis *redis.Client
	pool  *pgxpool.Pool
}

func openBackends(ctx context.Context, cfg config.Config) (*backends, error) {
	b := &backends{}
	if cfg.Redis.Addr != "" {
		b.redis = newRedisClient(cfg)
	}
	if cfg.Quiz.Source == config.SourcePostgres {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		b.pool = pool
	}
	return b, nil
}

func newRedisClient(cfg config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func (b *backends) Close() {
	if b.pool != nil {
		b.pool.Close()
	}
	if b.redis != nil {
		_ = b.redis.Close()
	}
}

// quizCache is a question-set repository whose cached entries can be dropped.
type quizCache interface {
	transport.QuizRepository
	Invalidate(ctx context.Context, quizID string) error
}

// quizRepository picks the loader for quiz.source and fronts it with the
// Redis cache when Redis is configured, or the in-process cache otherwise.
func (b *backends) quizRepository(cfg config.Config) quizCache {
	var loader memory.QuizLoader
	switch cfg.Quiz.Source {
	case config.SourceCSV:
		loader = csvfile.NewLoader(cfg.Quiz.Dir)
	case config.SourcePostgres:
		loader = pgloader.NewQuizLoader(b.pool)
	default:
		loader = memory.NewStaticQuizLoader(map[string]domain.Quiz{
			cfg.Quiz.ID: memory.SampleQuiz(cfg.Quiz.ID),
		})
	}

	ttl := config.Duration(cfg.Quiz.CacheTTL, 10*time.Minute)
	if b.redis != nil {
		return rediscache.NewQuizRepository(b.redis, loader, ttl)
	}
	return memory.NewQuizRepository(loader, ttl)
}

func sessionSettings(cfg config.Config) app.Settings {
	return app.Settings{
		AdvanceDelay: config.Duration(cfg.Quiz.AdvanceDelay, app.DefaultAdvanceDelay),
		Layout: layout.Engine{
			ReferenceWidth:  cfg.Layout.ReferenceWidth,
			ReferenceHeight: cfg.Layout.ReferenceHeight,
		},
	}
}

// loadSession loads the configured quiz and wraps it in a fresh session.
func loadSession(ctx context.Context, cfg config.Config) (*app.Session, error) {
	b, err := openBackends(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	quiz, err := b.quizRepository(cfg).GetQuiz(ctx, cfg.Quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("load quiz %s: %w", cfg.Quiz.ID, err)
	}
	return app.NewSession(quiz, sessionSettings(cfg)), nil
}
