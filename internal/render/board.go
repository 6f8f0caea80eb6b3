package render

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

const (
	rowSeparator  = "---+---+---║---+---+---║---+---+---"
	bandSeparator = "═══════════╬═══════════╬═══════════"
	boardJoin     = "║"
)

// stamps replace the cells of a decided sub-board.
var stamps = map[entity.Outcome][3]string{
	entity.OutcomeWonByX: {
		` \ |   | / `,
		`   | X |   `,
		` / |   | \ `,
	},
	entity.OutcomeWonByO: {
		` / | - | \ `,
		` | |   | | `,
		` \ | - | / `,
	},
	entity.OutcomeDrawn: {
		` \ | - | / `,
		` | | # | | `,
		` / | - | \ `,
	},
}

type boardView interface {
	Cell(board, cell int) entity.Mark
	BoardOutcome(board int) entity.Outcome
}

// Board draws the whole super-board, one sub-board row per line, ending with a newline.
func Board(view boardView) string {
	var builder strings.Builder

	for band := 0; band < 3; band++ {
		if band > 0 {
			builder.WriteString(bandSeparator)
			builder.WriteByte('\n')
		}

		for row := 0; row < 3; row++ {
			if row > 0 {
				builder.WriteString(rowSeparator)
				builder.WriteByte('\n')
			}

			for col := 0; col < 3; col++ {
				if col > 0 {
					builder.WriteString(boardJoin)
				}
				builder.WriteString(subBoardRow(view, band*3+col, row))
			}
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

func subBoardRow(view boardView, board, row int) string {
	if stamp, ok := stamps[view.BoardOutcome(board)]; ok {
		return stamp[row]
	}

	return fmt.Sprintf(" %s | %s | %s ",
		view.Cell(board, 3*row),
		view.Cell(board, 3*row+1),
		view.Cell(board, 3*row+2),
	)
}
