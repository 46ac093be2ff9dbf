package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/inarow/internal/config"
	"github.com/rocketscienceinc/inarow/internal/usecase"
	"github.com/rocketscienceinc/inarow/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	return run(context.Background(), logger, conf, sigs, os.Stdin, os.Stdout)
}

// run - the terminal and the signal watcher share one group. Whichever ends first cancels the other.
func run(ctx context.Context, logger *slog.Logger, conf *config.Config, sigs <-chan os.Signal, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	newSession := func() (terminal.Session, error) {
		session, err := usecase.NewSession(logger, conf.Players, conf.Board.Size)
		if err != nil {
			return nil, err
		}

		return session, nil
	}

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}

		return nil
	})

	errg.Go(func() error {
		defer cancel()

		log.Info("Starting terminal", "boardSize", conf.Board.Size, "players", len(conf.Players))

		console := terminal.New(logger, newSession, in, out)
		if err := console.Run(ctx); err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}

		return nil
	})

	if err := errg.Wait(); err != nil {
		return err
	}

	log.Info("Application finished")

	return nil
}
