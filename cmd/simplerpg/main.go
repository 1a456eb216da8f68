// Package main is the entry point for simplerpg.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/simplerpg/internal/config"
	"github.com/samdwyer/simplerpg/internal/game"
	"github.com/samdwyer/simplerpg/internal/logging"
	"github.com/samdwyer/simplerpg/internal/telemetry"
	"github.com/samdwyer/simplerpg/internal/ui"
)

func main() {
	os.Exit(run())
}

// run plays one session and returns the process exit code. Both quitting and
// being defeated exit 0; only setup failures exit non-zero.
func run() int {
	// A missing .env is fine; settings may come from the environment directly
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	logOut, closeLog, err := logOutput(cfg)
	if err != nil {
		log.Printf("logging: %v", err)
		return 1
	}
	defer closeLog()

	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: logOut,
	})
	if envErr != nil {
		logger.WithError(envErr).Debug(".env file not loaded")
	}

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			EndpointURL: cfg.TelemetryURL,
			APIKey:      cfg.HoneycombAPIKey,
			Dataset:     cfg.HoneycombDataset,
		})
		if err != nil {
			// Continue without telemetry.
			logger.WithError(err).Warn("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.WithError(err).Warn("telemetry shutdown failed")
				}
			}()
		}
	}

	term, err := newTerminal(cfg)
	if err != nil {
		logger.WithError(err).Error("terminal setup failed")
		log.Printf("terminal: %v", err)
		return 1
	}

	g := game.New(term, game.Config{
		Seed:     cfg.Seed,
		Populate: cfg.Populate,
	}, logger)

	reason, err := g.Run(ctx)
	if cerr := term.Close(); cerr != nil {
		logger.WithError(cerr).Warn("terminal close failed")
	}
	if err != nil {
		logger.WithError(err).Error("session failed")
		log.Printf("game: %v", err)
		return 1
	}

	logger.WithField("reason", reason.String()).Info("exiting")
	return 0
}

// newTerminal builds the terminal selected by SIMPLERPG_UI.
func newTerminal(cfg config.Config) (ui.Terminal, error) {
	switch cfg.UI {
	case config.UIScreen:
		return ui.NewScreenTerminal()
	case config.UILine:
		return ui.NewLineTerminal(os.Stdin, os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown ui %q", cfg.UI)
	}
}

// logOutput picks where log entries go. The screen UI owns the terminal, so
// without a log file its logs are discarded.
func logOutput(cfg config.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {
			if err := f.Close(); err != nil {
				log.Printf("close log file: %v", err)
			}
		}, nil
	}
	if cfg.UI == config.UIScreen {
		return nil, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
