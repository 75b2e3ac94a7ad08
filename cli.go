// cli.go
//
// Command line wiring for numguess.
// Responsibilities:
//   - Load config from env, then apply flag overrides.
//   - Refuse to start on invalid config (exit 2) before any session exists.
//   - Configure zerolog on stderr so game text on stdout stays clean.
//   - Pick the target provider and journal backend, run one session,
//     and map its outcome to the exit code (0 won, 1 aborted).

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/journal"
	"github.com/robalobadob/numguess/internal/play"
	"github.com/robalobadob/numguess/internal/target"
)

const exitConfig = 2

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := 0
	cfg, loadErr := config.Load()

	cmd := &cobra.Command{
		Use:           "numguess",
		Short:         "Guess the hidden number",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if loadErr != nil {
				return loadErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			var err error
			code, err = run(cmd.Context(), cfg, stdin, stdout, stderr)
			return err
		},
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.Int64Var(&cfg.Low, "low", cfg.Low, "lowest possible number (env GUESS_LOW)")
	f.Int64Var(&cfg.High, "high", cfg.High, "highest possible number (env GUESS_HIGH)")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for a reproducible target, 0 for random (env GUESS_SEED)")
	f.BoolVar(&cfg.Daily, "daily", cfg.Daily, "play the number of the day (env GUESS_DAILY)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level on stderr (env LOG_LEVEL)")
	f.StringVar(&cfg.JournalBackend, "journal", cfg.JournalBackend, "journal backend: memory or sqlite (env JOURNAL_BACKEND)")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("numguess")
		return exitConfig
	}
	return code
}

// run plays one session with a validated config.
func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(cfg.Level()).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = logger

	j, err := journal.Open(cfg.JournalBackend, cfg.JournalDSN)
	if err != nil {
		return exitConfig, err
	}
	defer func() {
		if err := j.Close(); err != nil {
			logger.Warn().Err(err).Msg("close journal")
		}
	}()

	c, err := play.New(play.Options{
		Provider: provider(cfg),
		Low:      cfg.Low,
		High:     cfg.High,
		In:       stdin,
		Out:      stdout,
		Journal:  j,
		Logger:   &logger,
	})
	if err != nil {
		return exitConfig, err
	}

	res, err := c.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Str("session", res.SessionID).Msg("session ended on input error")
	}
	return res.Outcome.ExitCode(), nil
}

// provider selects the target source: daily, seeded, or crypto random.
func provider(cfg config.Config) target.Provider {
	switch {
	case cfg.Daily:
		return target.NewDaily(cfg.DailySalt, nil)
	case cfg.Seed != 0:
		return target.NewSeeded(cfg.Seed)
	}
	return target.NewRandom()
}
