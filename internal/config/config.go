// Package config loads game settings from the environment.
//
// Values come from process env (optionally seeded from a .env file by the
// caller) and may then be overridden by command line flags. Validate must
// pass before a session is created.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/robalobadob/numguess/internal/journal"
)

// ErrInvalidRange reports a lower bound above the upper bound.
var ErrInvalidRange = errors.New("config: low bound is greater than high bound")

// ErrPersistentJournal rejects a journal DSN that would outlive the process.
var ErrPersistentJournal = errors.New("config: journal must stay in memory")

// Config is the full option set for one run.
type Config struct {
	Low  int64 `env:"GUESS_LOW" envDefault:"1"`
	High int64 `env:"GUESS_HIGH" envDefault:"100"`

	// Seed selects a reproducible target sequence; 0 means crypto random.
	Seed      int64  `env:"GUESS_SEED" envDefault:"0"`
	Daily     bool   `env:"GUESS_DAILY" envDefault:"false"`
	DailySalt string `env:"GUESS_DAILY_SALT" envDefault:"local_dev_salt"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	JournalBackend string `env:"JOURNAL_BACKEND" envDefault:"memory"`
	JournalDSN     string `env:"JOURNAL_DSN" envDefault:":memory:"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the game cannot start with.
func (c Config) Validate() error {
	if c.Low > c.High {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, c.Low, c.High)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	switch c.JournalBackend {
	case journal.BackendMemory, journal.BackendSQLite:
	default:
		return fmt.Errorf("config: unknown journal backend %q", c.JournalBackend)
	}
	if c.JournalDSN != "" && c.JournalDSN != journal.DefaultDSN {
		return fmt.Errorf("%w: %q", ErrPersistentJournal, c.JournalDSN)
	}
	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}
