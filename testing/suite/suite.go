package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Logs receives everything written through Logger as JSON lines.
	Logs *bytes.Buffer

	Session *tictactoe.Session
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Logs:    logs,
		Session: tictactoe.NewSession(),
	}
}
