package battleship

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

// Ship owns a contiguous straight-line run of deck cells and their
// individual hit states. It never leaves the board once placed; a
// drowned ship stays in the model with every deck in Sunk state.
type Ship struct {
	start     Coordinates
	end       Coordinates
	cells     []Coordinates
	decks     map[Coordinates]DeckState
	isDrowned bool
}

// NewShip walks the segment from start to end along the single axis
// the endpoints differ on. Endpoints may come in either order; they
// are normalized so start always holds the smaller coordinate.
// Endpoints differing on both axes, or lying off the grid, are
// rejected here rather than left for fleet validation to stumble on.
func NewShip(start, end Coordinates) (*Ship, error) {
	if start.Row != end.Row && start.Col != end.Col {
		return nil, cerr.ErrShipGeometry(start.Row, start.Col, end.Row, end.Col)
	}
	if !start.InBounds() || !end.InBounds() {
		return nil, cerr.ErrShipGeometry(start.Row, start.Col, end.Row, end.Col)
	}

	if end.Row < start.Row || end.Col < start.Col {
		start, end = end, start
	}

	cells := walkSegment(start, end)
	decks := make(map[Coordinates]DeckState, len(cells))
	for _, cell := range cells {
		decks[cell] = DeckStateAlive
	}

	return &Ship{
		start: start,
		end:   end,
		cells: cells,
		decks: decks,
	}, nil
}

func walkSegment(start, end Coordinates) []Coordinates {
	if start.Row == end.Row {
		cells := make([]Coordinates, 0, end.Col-start.Col+1)
		for col := start.Col; col <= end.Col; col++ {
			cells = append(cells, NewCoordinates(start.Row, col))
		}
		return cells
	}

	cells := make([]Coordinates, 0, end.Row-start.Row+1)
	for row := start.Row; row <= end.Row; row++ {
		cells = append(cells, NewCoordinates(row, start.Col))
	}
	return cells
}

func (sh *Ship) Size() int {
	return len(sh.cells)
}

// OccupiedCells returns the ship's footprint in walk order.
func (sh *Ship) OccupiedCells() []Coordinates {
	cells := make([]Coordinates, len(sh.cells))
	copy(cells, sh.cells)
	return cells
}

// AdjacentCells returns every in-grid cell within one step of the
// ship's bounding box, diagonals included, minus the footprint itself.
func (sh *Ship) AdjacentCells() []Coordinates {
	cells := make([]Coordinates, 0, 3*(sh.Size()+2))
	for row := sh.start.Row - 1; row <= sh.end.Row+1; row++ {
		for col := sh.start.Col - 1; col <= sh.end.Col+1; col++ {
			cell := NewCoordinates(row, col)
			if _, prs := sh.decks[cell]; prs {
				continue
			}
			if !cell.InBounds() {
				continue
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

// Fire advances the deck at the given cell by one state. The caller
// confirms membership first; unknown cells are ignored. Once the
// ship is drowned this is a no-op. When every deck reads Hit, all
// decks advance once more to Sunk and the drowned flag is set.
func (sh *Ship) Fire(cell Coordinates) {
	if sh.isDrowned {
		return
	}

	state, prs := sh.decks[cell]
	if !prs {
		return
	}
	sh.decks[cell] = state.Advance()

	for _, deckState := range sh.decks {
		if deckState != DeckStateHit {
			return
		}
	}

	sh.isDrowned = true
	for deckCell, deckState := range sh.decks {
		sh.decks[deckCell] = deckState.Advance()
	}
}

func (sh *Ship) IsDrowned() bool {
	return sh.isDrowned
}

func (sh *Ship) DeckStateAt(cell Coordinates) (DeckState, bool) {
	state, prs := sh.decks[cell]
	return state, prs
}

func (sh *Ship) Start() Coordinates {
	return sh.start
}

func (sh *Ship) End() Coordinates {
	return sh.end
}
