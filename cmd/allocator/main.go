package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"allocator/internal/config"
	"allocator/internal/engine"
	"allocator/internal/session"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, config.Diagnostic(err))
		return 1
	}

	// stdout carries trade reports only; logs go to stderr.
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	// Setup the engine and the session feeding it.
	eng := engine.New(
		cfg.MaxPosition,
		engine.WithFillMode(cfg.FillMode),
		engine.WithCrossingMode(cfg.Crossing),
	)
	sess := session.New(eng, os.Stdin, os.Stdout)

	// The tomb dies when the session returns or when a signal cancels the
	// context. A session blocked on a read is abandoned in the latter case.
	t, ctx := tomb.WithContext(ctx)
	t.Go(func() error {
		return sess.Run(ctx)
	})
	<-t.Dying()

	if err := t.Err(); err != nil {
		log.Error().Err(err).Msg("allocator stopped")
		return 1
	}
	return 0
}
