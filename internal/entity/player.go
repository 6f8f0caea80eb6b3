package entity

// Mark is the content of a single cell.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Player is one of the two sides. Its numeric value matches the mark it places.
type Player uint8

const (
	PlayerX Player = Player(MarkX)
	PlayerO Player = Player(MarkO)
)

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Player) Mark() Mark {
	return Mark(that)
}

// Opponent returns the other side. An invalid player is returned unchanged.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return that
	}
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "?"
	}
}
