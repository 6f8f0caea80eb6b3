package tictactoe

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// BoardSize is both the number of cells on a sub-board and the number of sub-boards.
const BoardSize = 9

// winLines holds rows, columns and diagonals as bitboards, bit i being cell i.
var winLines = [...]uint16{
	0b000_000_111, 0b000_111_000, 0b111_000_000,
	0b001_001_001, 0b010_010_010, 0b100_100_100,
	0b100_010_001, 0b001_010_100,
}

func hasLine(mask uint16) bool {
	for _, line := range winLines {
		if mask&line == line {
			return true
		}
	}

	return false
}

// resolve classifies a 3x3 grid right after mover took a square. Only the mover can
// have completed a line, and a completed line wins even when it fills the last square.
func resolve(mover entity.Player, moverMask uint16, taken int) entity.Outcome {
	if hasLine(moverMask) {
		return entity.WonBy(mover)
	}

	if taken == BoardSize {
		return entity.OutcomeDrawn
	}

	return entity.OutcomeOngoing
}

func validIndex(index int) bool {
	return index >= 0 && index < BoardSize
}

// maskIndex maps a valid player to its slot in a per-player mask pair.
func maskIndex(player entity.Player) int {
	return int(player) - 1
}
