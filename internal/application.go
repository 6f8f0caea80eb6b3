package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/ultimate-tictactoe/transport/console"
)

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameManager := usecase.NewGameManager(logger, tictactoe.NewSession())
	log.Info("Starting game", "session_id", gameManager.ID())

	server := console.New(logger, gameManager, !conf.Console.KeepScrollback)
	if err := server.Start(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Game over")

	return nil
}
