package battleship

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

const FleetSize = 10

// requiredFleet maps ship size to how many ships of that size a
// valid fleet must carry. 20 occupied cells in total.
var requiredFleet = map[int]int{1: 4, 2: 3, 3: 2, 4: 1}

type ShotResult uint8

const (
	ShotResultMiss ShotResult = iota
	ShotResultHit
	ShotResultSunk
)

func (sr ShotResult) String() string {
	switch sr {
	case ShotResultHit:
		return "Hit!"
	case ShotResultSunk:
		return "Sunk!"
	default:
		return "Miss!"
	}
}

const defaultTitleWord = "РЕСПУБЛІКА"

// Board owns the full fleet and maps every occupied cell to the ship
// holding it. Construction is all-or-nothing: the index is built
// from the full spec list first, then validated in a fixed order
// (overlap, total count, composition, adjacency). A board that came
// out of NewBoard without an error is valid for its whole lifetime;
// firing never re-validates and never fails.
//
// Board is not synchronized. Concurrent shooters must serialize
// access, e.g. through BattleshipBoardManager.
type Board struct {
	titleWord string
	fields    map[Coordinates]*Ship
	ships     []*Ship
}

type BoardOption func(*Board)

// WithTitleWord sets the column header label of the rendered field.
// Anything other than exactly ten runes makes renderers fall back
// to digit markers.
func WithTitleWord(titleWord string) BoardOption {
	return func(b *Board) {
		b.titleWord = titleWord
	}
}

func NewBoard(specs []ShipSpec, opts ...BoardOption) (*Board, error) {
	b := &Board{
		titleWord: defaultTitleWord,
		fields:    make(map[Coordinates]*Ship, FleetSize*2),
		ships:     make([]*Ship, 0, FleetSize),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, spec := range specs {
		ship, err := NewShip(spec.Start, spec.End)
		if err != nil {
			return nil, err
		}

		for _, cell := range ship.OccupiedCells() {
			if _, prs := b.fields[cell]; prs {
				return nil, cerr.ErrShipOverlap(cell.Row, cell.Col)
			}
			b.fields[cell] = ship
		}
		b.ships = append(b.ships, ship)
	}

	if err := b.validateFleet(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) validateFleet() error {
	if len(b.ships) != FleetSize {
		return cerr.ErrFleetSize(FleetSize, len(b.ships))
	}

	if err := b.validateFleetComposition(); err != nil {
		return err
	}

	return b.validateShipPlacement()
}

func (b *Board) validateFleetComposition() error {
	deckCounts := make(map[int]int, len(requiredFleet))
	for _, ship := range b.ships {
		deckCounts[ship.Size()]++
	}

	// checked smallest size first so the reported violation is
	// deterministic
	for size := 1; size <= 4; size++ {
		if deckCounts[size] != requiredFleet[size] {
			return cerr.ErrFleetComposition(size, requiredFleet[size], deckCounts[size])
		}
	}
	return nil
}

func (b *Board) validateShipPlacement() error {
	for _, ship := range b.ships {
		for _, cell := range ship.AdjacentCells() {
			if _, prs := b.fields[cell]; prs {
				start := ship.Start()
				return cerr.ErrShipAdjacency(cell.Row, cell.Col, start.Row, start.Col, ship.Size())
			}
		}
	}
	return nil
}

// Fire resolves one shot. A coordinate outside the index, on or off
// the grid, is a miss. Otherwise the owning ship takes the shot and
// the result is Sunk if the ship is now drowned, Hit if not. Firing
// a drowned ship's cell keeps answering Sunk.
func (b *Board) Fire(location Coordinates) ShotResult {
	ship, prs := b.fields[location]
	if !prs {
		return ShotResultMiss
	}

	ship.Fire(location)
	if ship.IsDrowned() {
		return ShotResultSunk
	}
	return ShotResultHit
}

func (b *Board) HasShipAt(location Coordinates) bool {
	_, prs := b.fields[location]
	return prs
}

func (b *Board) DeckStateAt(location Coordinates) (DeckState, bool) {
	ship, prs := b.fields[location]
	if !prs {
		return DeckStateAlive, false
	}
	return ship.DeckStateAt(location)
}

// Ships returns the fleet in placement order.
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) TitleWord() string {
	return b.titleWord
}
