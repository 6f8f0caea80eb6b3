package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// SubBoard is a single 3x3 board. Cells are stored as one occupancy mask per player.
// The zero value is an empty, ongoing board.
type SubBoard struct {
	marks   [2]uint16
	filled  int
	outcome entity.Outcome
}

// PlaceMark puts the player's mark on cell and returns the board outcome after the move.
// On error nothing changes and the current outcome is returned. It panics if player is
// neither X nor O.
func (that *SubBoard) PlaceMark(cell int, player entity.Player) (entity.Outcome, error) {
	if !player.IsValid() {
		panic(fmt.Sprintf("tictactoe: invalid player %d", player))
	}

	if !validIndex(cell) {
		return that.outcome, fmt.Errorf("%w: cell %d", apperror.ErrInvalidIndex, cell)
	}

	if that.IsDecided() {
		return that.outcome, apperror.ErrBoardAlreadyFinished
	}

	bit := uint16(1) << cell
	if (that.marks[0]|that.marks[1])&bit != 0 {
		return that.outcome, apperror.ErrAlreadyFilled
	}

	idx := maskIndex(player)
	that.marks[idx] |= bit
	that.filled++

	that.outcome = resolve(player, that.marks[idx], that.filled)

	return that.outcome, nil
}

func (that *SubBoard) Outcome() entity.Outcome {
	return that.outcome
}

func (that *SubBoard) IsDecided() bool {
	return that.outcome.IsDecided()
}

func (that *SubBoard) FilledCount() int {
	return that.filled
}

// Mark returns the mark on cell, or MarkEmpty for an out of range cell.
func (that *SubBoard) Mark(cell int) entity.Mark {
	if !validIndex(cell) {
		return entity.MarkEmpty
	}

	bit := uint16(1) << cell

	switch {
	case that.marks[maskIndex(entity.PlayerX)]&bit != 0:
		return entity.MarkX
	case that.marks[maskIndex(entity.PlayerO)]&bit != 0:
		return entity.MarkO
	default:
		return entity.MarkEmpty
	}
}
