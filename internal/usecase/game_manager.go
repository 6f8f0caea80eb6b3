package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

type gameSession interface {
	MakeMove(board, cell int) (entity.Outcome, error)

	CurrentPlayer() entity.Player
	CanPlayAnywhere() bool
	ForcedBoard() (int, bool)
	MoveCount() int

	Cell(board, cell int) entity.Mark
	BoardOutcome(board int) entity.Outcome
}

// GameManager drives a single game session and records what happens to it.
type GameManager struct {
	logger  *slog.Logger
	id      string
	session gameSession
}

func NewGameManager(logger *slog.Logger, session gameSession) *GameManager {
	id := uuid.NewString()

	return &GameManager{
		logger:  logger.With("component", "game_manager", "session_id", id),
		id:      id,
		session: session,
	}
}

func (that *GameManager) ID() string {
	return that.id
}

// MakeTurn plays the current player's move. Errors keep the apperror sentinel in their chain.
func (that *GameManager) MakeTurn(board, cell int) (entity.Outcome, error) {
	log := that.logger.With("method", "MakeTurn")

	player := that.session.CurrentPlayer()

	outcome, err := that.session.MakeMove(board, cell)
	if err != nil {
		log.Info("move rejected", "player", player.String(), "board", board, "cell", cell, "error", err)

		return outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("move accepted",
		"player", player.String(),
		"board", board,
		"cell", cell,
		"board_outcome", that.session.BoardOutcome(board).String(),
		"move", that.session.MoveCount(),
	)

	if outcome.IsDecided() {
		log.Info("game finished", "outcome", outcome.String(), "moves", that.session.MoveCount())
	}

	return outcome, nil
}

func (that *GameManager) CurrentPlayer() entity.Player {
	return that.session.CurrentPlayer()
}

func (that *GameManager) CanPlayAnywhere() bool {
	return that.session.CanPlayAnywhere()
}

func (that *GameManager) ForcedBoard() (int, bool) {
	return that.session.ForcedBoard()
}

func (that *GameManager) Cell(board, cell int) entity.Mark {
	return that.session.Cell(board, cell)
}

func (that *GameManager) BoardOutcome(board int) entity.Outcome {
	return that.session.BoardOutcome(board)
}
