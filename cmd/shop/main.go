package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inkwell/internal/catalog"
	"inkwell/internal/session"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	tomb "gopkg.in/tomb.v2"
)

func main() {
	limit := pflag.IntP("limit", "l", session.DefaultLimit, "Number of add actions allowed before the order closes")
	logLevel := pflag.String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	pflag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --log-level %q\n", *logLevel)
		pflag.Usage()
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	// Prompts own stdout, logs go to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	sess, err := session.New(
		catalog.Default(),
		session.NewScannerReader(os.Stdin),
		os.Stdout,
		session.Config{Limit: *limit},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		pflag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	t, ctx := tomb.WithContext(ctx)
	t.Go(func() error {
		return sess.Run(ctx)
	})

	// Dying fires when the session returns or a signal arrives. Run sits in a
	// blocking stdin read almost all of the time and cannot be woken, so an
	// interrupt abandons the session: no summary is printed.
	<-t.Dying()
	switch err := t.Err(); err {
	case nil:
	case context.Canceled:
		log.Warn().Msg("interrupted")
	default:
		log.Error().Err(err).Msg("session failed")
		stop()
		os.Exit(1)
	}
}
