package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placement struct {
	cell   int
	player entity.Player
}

// fill plays every placement in order and fails the test on the first error.
func fill(t *testing.T, board *SubBoard, placements ...placement) entity.Outcome {
	t.Helper()

	var outcome entity.Outcome
	for _, p := range placements {
		var err error
		outcome, err = board.PlaceMark(p.cell, p.player)
		require.NoError(t, err, "cell %d", p.cell)
	}

	return outcome
}

func TestSubBoard_PlaceMark(t *testing.T) {
	t.Run("Places a mark on an empty board", func(t *testing.T) {
		// Given: a fresh sub-board
		var board SubBoard

		// When: X places a mark in the centre
		outcome, err := board.PlaceMark(4, entity.PlayerX)

		// Then: the mark is recorded and the board is still ongoing
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeOngoing, outcome)
		assert.Equal(t, entity.MarkX, board.Mark(4))
		assert.Equal(t, 1, board.FilledCount())
		assert.False(t, board.IsDecided())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a sub-board with X in cell 0
		var board SubBoard
		fill(t, &board, placement{0, entity.PlayerX})
		before := board

		// When: O tries the same cell
		_, err := board.PlaceMark(0, entity.PlayerO)

		// Then: ErrAlreadyFilled is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrAlreadyFilled)
		assert.Equal(t, before, board)
		assert.Equal(t, 1, board.FilledCount())
	})

	t.Run("Error on invalid cell", func(t *testing.T) {
		var board SubBoard

		for _, cell := range []int{-1, 9, 20} {
			_, err := board.PlaceMark(cell, entity.PlayerX)
			require.ErrorIs(t, err, apperror.ErrInvalidIndex)
		}

		assert.Equal(t, SubBoard{}, board)
	})

	t.Run("Panics on a player that is neither X nor O", func(t *testing.T) {
		var board SubBoard

		assert.PanicsWithValue(t, "tictactoe: invalid player 0", func() {
			_, _ = board.PlaceMark(0, entity.Player(0))
		})
		assert.Equal(t, SubBoard{}, board)
	})

	t.Run("Row wins", func(t *testing.T) {
		// Given: X holds cells 0 and 1, O holds 3 and 4
		var board SubBoard
		fill(t, &board,
			placement{0, entity.PlayerX},
			placement{3, entity.PlayerO},
			placement{1, entity.PlayerX},
			placement{4, entity.PlayerO},
		)

		// When: X completes the top row
		outcome, err := board.PlaceMark(2, entity.PlayerX)

		// Then: the board is won by X
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWonByX, outcome)
		assert.Equal(t, entity.OutcomeWonByX, board.Outcome())
		assert.True(t, board.IsDecided())
	})

	t.Run("Column and diagonal wins for O", func(t *testing.T) {
		var column SubBoard
		outcome := fill(t, &column,
			placement{1, entity.PlayerO},
			placement{4, entity.PlayerO},
			placement{7, entity.PlayerO},
		)
		assert.Equal(t, entity.OutcomeWonByO, outcome)

		var diagonal SubBoard
		outcome = fill(t, &diagonal,
			placement{2, entity.PlayerO},
			placement{4, entity.PlayerO},
			placement{6, entity.PlayerO},
		)
		assert.Equal(t, entity.OutcomeWonByO, outcome)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: X O X / X O O / O X X filled in an order that never completes a line
		var board SubBoard

		// When: the last cell is filled
		outcome := fill(t, &board,
			placement{0, entity.PlayerX},
			placement{1, entity.PlayerO},
			placement{2, entity.PlayerX},
			placement{4, entity.PlayerO},
			placement{3, entity.PlayerX},
			placement{5, entity.PlayerO},
			placement{7, entity.PlayerX},
			placement{6, entity.PlayerO},
			placement{8, entity.PlayerX},
		)

		// Then: the board is drawn
		assert.Equal(t, entity.OutcomeDrawn, outcome)
		assert.Equal(t, BoardSize, board.FilledCount())
	})

	t.Run("Line on the last free cell is a win, not a draw", func(t *testing.T) {
		// Given: X O X / O X O / O X _
		var board SubBoard
		fill(t, &board,
			placement{0, entity.PlayerX},
			placement{1, entity.PlayerO},
			placement{2, entity.PlayerX},
			placement{3, entity.PlayerO},
			placement{4, entity.PlayerX},
			placement{5, entity.PlayerO},
			placement{7, entity.PlayerX},
			placement{6, entity.PlayerO},
		)

		// When: X fills cell 8, completing the 0-4-8 diagonal
		outcome, err := board.PlaceMark(8, entity.PlayerX)

		// Then: X wins
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWonByX, outcome)
		assert.Equal(t, BoardSize, board.FilledCount())
	})

	t.Run("Decided board never reopens", func(t *testing.T) {
		// Given: a board won by X
		var board SubBoard
		fill(t, &board,
			placement{0, entity.PlayerX},
			placement{1, entity.PlayerX},
			placement{2, entity.PlayerX},
		)
		before := board

		// When: O tries to place on a free cell
		outcome, err := board.PlaceMark(5, entity.PlayerO)

		// Then: the move is refused and the board stays won by X
		require.ErrorIs(t, err, apperror.ErrBoardAlreadyFinished)
		assert.Equal(t, entity.OutcomeWonByX, outcome)
		assert.Equal(t, before, board)
	})
}

func TestSubBoard_Mark(t *testing.T) {
	var board SubBoard
	fill(t, &board,
		placement{0, entity.PlayerX},
		placement{8, entity.PlayerO},
	)

	assert.Equal(t, entity.MarkX, board.Mark(0))
	assert.Equal(t, entity.MarkO, board.Mark(8))
	assert.Equal(t, entity.MarkEmpty, board.Mark(4))
	assert.Equal(t, entity.MarkEmpty, board.Mark(9))
	assert.Equal(t, entity.MarkEmpty, board.Mark(-1))
}

func TestHasLine(t *testing.T) {
	t.Run("Every line wins", func(t *testing.T) {
		for _, line := range winLines {
			assert.True(t, hasLine(line), "%09b", line)
		}
	})

	t.Run("Line inside a larger mask wins", func(t *testing.T) {
		assert.True(t, hasLine(0b000_111_011))
	})

	t.Run("No line", func(t *testing.T) {
		assert.False(t, hasLine(0))
		assert.False(t, hasLine(0b011_100_101))
	})
}
