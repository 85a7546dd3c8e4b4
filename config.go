package letterjam

import (
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"
)

// Config holds the store's environment configuration.
type Config struct {
	MaxRooms int    `env:"LETTERJAM_MAX_ROOMS,default=256"`
	LogLevel string `env:"LETTERJAM_LOG_LEVEL,default=info"`
}

// ConfigFromEnv reads Config from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the console logger used by the store.
func NewLogger(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
