package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Question sources.
const (
	SourceStatic   = "static"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	Quiz struct {
		Source       string `yaml:"source"`
		ID           string `yaml:"id"`
		Dir          string `yaml:"dir"`
		AdvanceDelay string `yaml:"advance_delay"`
		CacheTTL     string `yaml:"cache_ttl"`
	} `yaml:"quiz"`
	Layout struct {
		ReferenceWidth  float64 `yaml:"reference_width"`
		ReferenceHeight float64 `yaml:"reference_height"`
	} `yaml:"layout"`
	Terminal struct {
		CellWidth  float64 `yaml:"cell_width"`
		CellHeight float64 `yaml:"cell_height"`
		FPS        int     `yaml:"fps"`
	} `yaml:"terminal"`
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Server struct {
		Port string `yaml:"port"`
		FPS  int    `yaml:"fps"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Log struct {
		Debug bool   `yaml:"debug"`
		Dir   string `yaml:"dir"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Quiz.Source = SourceStatic
	cfg.Quiz.ID = "questions"
	cfg.Quiz.Dir = "."
	cfg.Quiz.AdvanceDelay = "500ms"
	cfg.Quiz.CacheTTL = "10m"
	cfg.Layout.ReferenceWidth = 800
	cfg.Layout.ReferenceHeight = 600
	cfg.Terminal.CellWidth = 10
	cfg.Terminal.CellHeight = 20
	cfg.Terminal.FPS = 60
	cfg.Window.Width = 800
	cfg.Window.Height = 600
	cfg.Window.Title = "Quiz"
	cfg.Server.Port = "8080"
	cfg.Server.FPS = 30
	cfg.Log.Dir = "logs"
	return cfg
}

// Load reads YAML config from path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch c.Quiz.Source {
	case SourceStatic, SourceCSV:
	case SourcePostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("quiz.source postgres requires postgres.url")
		}
	default:
		return fmt.Errorf("unknown quiz.source %q", c.Quiz.Source)
	}
	if c.Quiz.ID == "" {
		return fmt.Errorf("quiz.id cannot be empty")
	}
	if c.Layout.ReferenceWidth <= 0 || c.Layout.ReferenceHeight <= 0 {
		return fmt.Errorf("layout reference size must be > 0")
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be > 0")
	}
	if c.Terminal.FPS <= 0 {
		return fmt.Errorf("terminal.fps must be > 0")
	}
	if c.Server.FPS <= 0 {
		return fmt.Errorf("server.fps must be > 0")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be > 0")
	}
	if c.Redis.TTL != "" {
		if d, err := time.ParseDuration(c.Redis.TTL); err != nil || d <= 0 {
			return fmt.Errorf("redis.ttl must be a positive duration, got %q", c.Redis.TTL)
		}
	}
	return nil
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
