package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"example.com/baseball/internal/config"
	"example.com/baseball/internal/console"
	"example.com/baseball/internal/game"
	"example.com/baseball/internal/random"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	session *game.Session
}

type Options struct {
	In  io.Reader // player input, usually os.Stdin
	Out io.Writer // game output, usually os.Stdout
}

func New(cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("app: input and output are required")
	}

	// --- Console ---
	in := console.NewInput(opts.In, opts.Out)
	out := console.NewOutput(opts.Out)

	// --- Game ---
	session, err := game.NewSession(
		game.Config{MaxDraws: cfg.Game.MaxDraws},
		game.Deps{
			Random:  random.New(cfg.Random.Seed),
			Guesses: in,
			Replay:  in,
			Output:  out,
		},
		log.With("component", "session"),
	)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &App{cfg: cfg, log: log, session: session}, nil
}

// Run plays until the player quits or ctx is cancelled. A cancelled ctx is
// not an error; the blocked read is left behind for the process to drop.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("game starting", "env", a.cfg.Env)

	done := make(chan error, 1)
	go func() {
		done <- a.session.Run()
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		a.log.Info("game finished")
		return nil
	case <-ctx.Done():
		a.log.Info("game interrupted")
		return nil
	}
}

// NewLogger builds the process logger from config.
func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(cfg.Log.Level))

	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
