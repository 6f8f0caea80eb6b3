package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// SuperBoard is the outer 3x3 grid of sub-boards. The zero value is a fresh board
// on which any sub-board may be played.
type SuperBoard struct {
	boards [BoardSize]SubBoard

	// owned[p] has bit i set when player p won sub-board i. Drawn boards are in neither.
	owned   [2]uint16
	decided int

	forced    int
	hasForced bool

	outcome entity.Outcome
}

// CanPlayAnywhere reports whether the next move may go to any undecided sub-board.
func (that *SuperBoard) CanPlayAnywhere() bool {
	return !that.hasForced || that.boards[that.forced].IsDecided()
}

// ForcedBoard returns the sub-board designated by the previous move. It is only
// binding while CanPlayAnywhere is false.
func (that *SuperBoard) ForcedBoard() (int, bool) {
	if !that.hasForced {
		return 0, false
	}

	return that.forced, true
}

// MakeMove places player's mark on cell of sub-board board and returns the outer outcome.
// On error nothing changes and the current outcome is returned. Like PlaceMark it panics
// if player is neither X nor O.
func (that *SuperBoard) MakeMove(board, cell int, player entity.Player) (entity.Outcome, error) {
	if !player.IsValid() {
		panic(fmt.Sprintf("tictactoe: invalid player %d", player))
	}

	if !validIndex(board) {
		return that.outcome, fmt.Errorf("%w: board %d", apperror.ErrInvalidIndex, board)
	}

	if !validIndex(cell) {
		return that.outcome, fmt.Errorf("%w: cell %d", apperror.ErrInvalidIndex, cell)
	}

	anywhere := that.CanPlayAnywhere()

	if !anywhere && board != that.forced {
		return that.outcome, fmt.Errorf("%w: expected board %d, got %d", apperror.ErrWrongBoard, that.forced, board)
	}

	if anywhere && that.boards[board].IsDecided() {
		return that.outcome, fmt.Errorf("%w: board %d", apperror.ErrBoardAlreadyFinished, board)
	}

	boardOutcome, err := that.boards[board].PlaceMark(cell, player)
	if err != nil {
		return that.outcome, err
	}

	// the target was undecided before the move, so a decided outcome is a fresh transition
	if boardOutcome.IsDecided() {
		that.decided++

		if winner, ok := boardOutcome.Winner(); ok {
			that.owned[maskIndex(winner)] |= 1 << board
		}
	}

	that.forced, that.hasForced = cell, true

	if !that.outcome.IsDecided() {
		that.outcome = resolve(player, that.owned[maskIndex(player)], that.decided)
	}

	return that.outcome, nil
}

func (that *SuperBoard) Outcome() entity.Outcome {
	return that.outcome
}

func (that *SuperBoard) DecidedCount() int {
	return that.decided
}

// Cell returns the mark on cell of sub-board board. Out of range indices read as empty.
func (that *SuperBoard) Cell(board, cell int) entity.Mark {
	if !validIndex(board) {
		return entity.MarkEmpty
	}

	return that.boards[board].Mark(cell)
}

// BoardOutcome returns the outcome of sub-board board. Out of range indices read as ongoing.
func (that *SuperBoard) BoardOutcome(board int) entity.Outcome {
	if !validIndex(board) {
		return entity.OutcomeOngoing
	}

	return that.boards[board].Outcome()
}

func (that *SuperBoard) FilledCount(board int) int {
	if !validIndex(board) {
		return 0
	}

	return that.boards[board].FilledCount()
}
