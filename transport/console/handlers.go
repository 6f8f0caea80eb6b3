package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// readIndex prompts for a single digit. Malformed input is reported and turned into errRetry.
func (that *Server) readIndex(ctx context.Context, prompt string) (int, error) {
	that.printf("%s", prompt)

	line, err := that.readLine(ctx)
	if err != nil {
		return 0, err
	}

	input := strings.TrimSpace(line)

	switch strings.ToLower(input) {
	case "q", "quit":
		return 0, errQuit
	}

	if len(input) != 1 {
		that.printf("[!] Input one character\n")
		return 0, errRetry
	}

	index, err := strconv.Atoi(input)
	if err != nil {
		that.printf("[!] Input a number\n")
		return 0, errRetry
	}

	return index, nil
}

func describeMoveError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrAlreadyFilled):
		return "That tile was already taken"
	case errors.Is(err, apperror.ErrWrongBoard):
		return "You can not make a move at that board as you weren't sent there"
	case errors.Is(err, apperror.ErrBoardAlreadyFinished):
		return "You can not make a move at that board as it has been completed"
	case errors.Is(err, apperror.ErrInvalidIndex):
		return "Index must be between 0 and 8"
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is already over"
	default:
		return err.Error()
	}
}

func describeOutcome(outcome entity.Outcome) string {
	if winner, ok := outcome.Winner(); ok {
		return fmt.Sprintf("[#] Game won by %s", winner)
	}

	return "[#] Game tied"
}
