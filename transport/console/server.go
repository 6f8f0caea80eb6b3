package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/render"
)

const clearScreen = "\x1B[2J\x1B[1;1H"

var (
	errQuit  = errors.New("player quit")
	errRetry = errors.New("turn must be retried")
)

type uGame interface {
	MakeTurn(board, cell int) (entity.Outcome, error)

	CurrentPlayer() entity.Player
	CanPlayAnywhere() bool
	ForcedBoard() (int, bool)

	Cell(board, cell int) entity.Mark
	BoardOutcome(board int) entity.Outcome
}

// Server runs one game over a line-oriented terminal. A Server is good for a single Start call.
type Server struct {
	logger      *slog.Logger
	uGame       uGame
	clearScreen bool

	out      io.Writer
	writeErr error

	lines   <-chan string
	scanErr error
}

func New(logger *slog.Logger, uGame uGame, clearScreen bool) *Server {
	return &Server{
		logger:      logger.With("component", "console"),
		uGame:       uGame,
		clearScreen: clearScreen,
	}
}

// Start - plays turns until the game is decided, the player quits, input ends or ctx is canceled.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	that.out = out
	that.scan(ctx, in)

	that.printBoard()

	for {
		if that.writeErr != nil {
			return fmt.Errorf("failed to write to console: %w", that.writeErr)
		}

		finished, err := that.playTurn(ctx)
		switch {
		case errors.Is(err, errRetry):
			continue
		case errors.Is(err, errQuit):
			log.Info("player quit")
			return nil
		case errors.Is(err, io.EOF):
			log.Info("input closed")
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.Info("console stopped", "reason", err)
			return nil
		case err != nil:
			return err
		}

		if finished {
			if that.writeErr != nil {
				return fmt.Errorf("failed to write to console: %w", that.writeErr)
			}

			return nil
		}
	}
}

// playTurn asks for one move and applies it. It reports true once the game is decided.
func (that *Server) playTurn(ctx context.Context) (bool, error) {
	letter := that.uGame.CurrentPlayer().String()

	var board int
	if that.uGame.CanPlayAnywhere() {
		that.printf("[%s] You can put your tile on any board\n", letter)

		index, err := that.readIndex(ctx, fmt.Sprintf("[%s] Big board index: ", letter))
		if err != nil {
			return false, err
		}
		board = index
	} else {
		// forced board is always set once free choice is gone
		board, _ = that.uGame.ForcedBoard()
		that.printf("[%s] You have to put your tile on board #%d\n", letter, board)
	}

	cell, err := that.readIndex(ctx, fmt.Sprintf("[%s] Small board index: ", letter))
	if err != nil {
		return false, err
	}

	outcome, err := that.uGame.MakeTurn(board, cell)
	if err != nil {
		that.printf("[!] %s\n", describeMoveError(err))
		return false, errRetry
	}

	if that.clearScreen {
		that.printf("%s", clearScreen)
	}
	that.printBoard()

	if !outcome.IsDecided() {
		return false, nil
	}

	that.printf("%s\n", describeOutcome(outcome))

	return true, nil
}

func (that *Server) printBoard() {
	that.printf("%s", render.Board(that.uGame))
}

// printf writes to the console, remembering only the first failure.
func (that *Server) printf(format string, args ...any) {
	if that.writeErr != nil {
		return
	}

	_, that.writeErr = fmt.Fprintf(that.out, format, args...)
}

// scan feeds input lines to readLine until input ends or ctx is canceled.
func (that *Server) scan(ctx context.Context, in io.Reader) {
	lines := make(chan string)
	that.lines = lines

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		that.scanErr = scanner.Err()
	}()
}

func (that *Server) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if ok {
			return line, nil
		}

		if that.scanErr != nil {
			return "", fmt.Errorf("failed to read input: %w", that.scanErr)
		}

		return "", io.EOF
	}
}
