package battleship

// DeckState tracks the condition of one cell of a ship's footprint.
type DeckState uint8

const (
	DeckStateAlive DeckState = iota
	DeckStateHit
	DeckStateSunk
)

// Advance moves the state one step forward. Sunk is terminal,
// advancing it yields Sunk again.
func (d DeckState) Advance() DeckState {
	if d >= DeckStateSunk {
		return DeckStateSunk
	}
	return d + 1
}

func (d DeckState) String() string {
	switch d {
	case DeckStateAlive:
		return "alive"
	case DeckStateHit:
		return "hit"
	case DeckStateSunk:
		return "sunk"
	default:
		return "unknown"
	}
}
