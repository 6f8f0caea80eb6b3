package entity

// Outcome classifies a board. The zero value is OutcomeOngoing, so a zero board is a fresh board.
type Outcome uint8

const (
	OutcomeOngoing Outcome = iota
	OutcomeWonByX
	OutcomeWonByO
	OutcomeDrawn
)

// WonBy returns the outcome of player completing a line.
func WonBy(player Player) Outcome {
	switch player {
	case PlayerX:
		return OutcomeWonByX
	case PlayerO:
		return OutcomeWonByO
	default:
		return OutcomeOngoing
	}
}

func (that Outcome) IsDecided() bool {
	return that != OutcomeOngoing
}

// Winner reports the player that won, if any. A draw has no winner.
func (that Outcome) Winner() (Player, bool) {
	switch that {
	case OutcomeWonByX:
		return PlayerX, true
	case OutcomeWonByO:
		return PlayerO, true
	default:
		return 0, false
	}
}

func (that Outcome) String() string {
	switch that {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeWonByX:
		return "won_by_x"
	case OutcomeWonByO:
		return "won_by_o"
	case OutcomeDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}
