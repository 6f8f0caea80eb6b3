package tictactoe

import (
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// Session is one game: a super-board plus whose turn it is.
type Session struct {
	board SuperBoard
	next  entity.Player
	moves int
}

// NewSession - creates a fresh game with X to move.
func NewSession() *Session {
	return &Session{
		next: entity.PlayerX,
	}
}

// MakeMove plays for the current player. The turn passes to the opponent only when the move is accepted.
func (that *Session) MakeMove(board, cell int) (entity.Outcome, error) {
	if that.IsFinished() {
		return that.board.Outcome(), apperror.ErrGameFinished
	}

	outcome, err := that.board.MakeMove(board, cell, that.next)
	if err != nil {
		return outcome, err
	}

	that.moves++
	that.next = that.next.Opponent()

	return outcome, nil
}

func (that *Session) CurrentPlayer() entity.Player {
	return that.next
}

func (that *Session) CanPlayAnywhere() bool {
	return that.board.CanPlayAnywhere()
}

func (that *Session) ForcedBoard() (int, bool) {
	return that.board.ForcedBoard()
}

func (that *Session) Outcome() entity.Outcome {
	return that.board.Outcome()
}

func (that *Session) IsFinished() bool {
	return that.board.Outcome().IsDecided()
}

// MoveCount is the number of accepted moves so far.
func (that *Session) MoveCount() int {
	return that.moves
}

func (that *Session) Cell(board, cell int) entity.Mark {
	return that.board.Cell(board, cell)
}

func (that *Session) BoardOutcome(board int) entity.Outcome {
	return that.board.BoardOutcome(board)
}

func (that *Session) FilledCount(board int) int {
	return that.board.FilledCount(board)
}
