package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

// validFleet returns a layout satisfying every placement rule:
// one 4-deck, two 3-deck, three 2-deck, four 1-deck, none touching.
func validFleet() []ShipSpec {
	return []ShipSpec{
		{Start: NewCoordinates(2, 0), End: NewCoordinates(2, 3)},
		{Start: NewCoordinates(4, 5), End: NewCoordinates(4, 6)},
		{Start: NewCoordinates(3, 8), End: NewCoordinates(3, 9)},
		{Start: NewCoordinates(6, 0), End: NewCoordinates(8, 0)},
		{Start: NewCoordinates(6, 4), End: NewCoordinates(6, 6)},
		{Start: NewCoordinates(6, 8), End: NewCoordinates(6, 9)},
		{Start: NewCoordinates(9, 9), End: NewCoordinates(9, 9)},
		{Start: NewCoordinates(9, 5), End: NewCoordinates(9, 5)},
		{Start: NewCoordinates(9, 3), End: NewCoordinates(9, 3)},
		{Start: NewCoordinates(9, 7), End: NewCoordinates(9, 7)},
	}
}

func mustNewBoard(t *testing.T, specs []ShipSpec, opts ...BoardOption) *Board {
	t.Helper()

	board, err := NewBoard(specs, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return board
}

func TestNewBoardValidFleet(t *testing.T) {
	board := mustNewBoard(t, validFleet())

	ships := board.Ships()
	if len(ships) != FleetSize {
		t.Fatalf("expected %d ships, got %d", FleetSize, len(ships))
	}

	uniqueCells := make(map[Coordinates]bool)
	for _, ship := range ships {
		for _, cell := range ship.OccupiedCells() {
			if uniqueCells[cell] {
				t.Fatalf("cell %v owned by two ships", cell)
			}
			uniqueCells[cell] = true
		}
	}
	if len(uniqueCells) != 20 {
		t.Fatalf("expected 20 unique occupied cells, got %d", len(uniqueCells))
	}

	for cell := range uniqueCells {
		if !board.HasShipAt(cell) {
			t.Fatalf("board index missing occupied cell %v", cell)
		}
	}
}

func TestNewBoardFleetSizeError(t *testing.T) {
	nineShips := validFleet()[:9]

	_, err := NewBoard(nineShips)

	var sizeErr *cerr.FleetSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected FleetSizeError, got %v", err)
	}
	if sizeErr.Want != FleetSize || sizeErr.Got != 9 {
		t.Fatalf("expected want=%d got=9, error was %+v", FleetSize, sizeErr)
	}
}

func TestNewBoardFleetCompositionError(t *testing.T) {
	// stretch the 3-deck ship at (6,0) into a second 4-deck one
	specs := validFleet()
	specs[3] = ShipSpec{Start: NewCoordinates(6, 0), End: NewCoordinates(9, 0)}

	_, err := NewBoard(specs)

	var compErr *cerr.FleetCompositionError
	if !errors.As(err, &compErr) {
		t.Fatalf("expected FleetCompositionError, got %v", err)
	}
	if compErr.Size != 3 || compErr.Want != 2 || compErr.Got != 1 {
		t.Fatalf("expected missing 3-deck ship reported, error was %+v", compErr)
	}
}

func TestNewBoardShipAdjacencyError(t *testing.T) {
	// move a single-deck ship right next to the one at (9,5)
	specs := validFleet()
	specs[8] = ShipSpec{Start: NewCoordinates(9, 4), End: NewCoordinates(9, 4)}

	_, err := NewBoard(specs)

	var adjErr *cerr.ShipAdjacencyError
	if !errors.As(err, &adjErr) {
		t.Fatalf("expected ShipAdjacencyError, got %v", err)
	}
	if adjErr.Row != 9 || adjErr.Col != 4 {
		t.Fatalf("expected offending cell (9,4), error was %+v", adjErr)
	}
	if adjErr.ShipRow != 9 || adjErr.ShipCol != 5 {
		t.Fatalf("expected ship at (9,5) reported, error was %+v", adjErr)
	}
}

func TestNewBoardShipOverlapError(t *testing.T) {
	// two specs claiming cell (9,9)
	specs := validFleet()
	specs[9] = ShipSpec{Start: NewCoordinates(9, 9), End: NewCoordinates(9, 9)}

	_, err := NewBoard(specs)

	var overlapErr *cerr.ShipOverlapError
	if !errors.As(err, &overlapErr) {
		t.Fatalf("expected ShipOverlapError, got %v", err)
	}
	if overlapErr.Row != 9 || overlapErr.Col != 9 {
		t.Fatalf("expected overlap at (9,9), error was %+v", overlapErr)
	}
}

func TestNewBoardShipGeometryError(t *testing.T) {
	specs := validFleet()
	specs[0] = ShipSpec{Start: NewCoordinates(2, 0), End: NewCoordinates(5, 3)}

	_, err := NewBoard(specs)

	var geomErr *cerr.ShipGeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("expected ShipGeometryError, got %v", err)
	}
}

func TestBoardFireSequence(t *testing.T) {
	board := mustNewBoard(t, validFleet())

	shots := []struct {
		location Coordinates
		want     ShotResult
	}{
		{NewCoordinates(0, 0), ShotResultMiss},
		{NewCoordinates(2, 0), ShotResultHit},
		{NewCoordinates(2, 1), ShotResultHit},
		{NewCoordinates(2, 2), ShotResultHit},
		{NewCoordinates(2, 3), ShotResultSunk},
	}

	for _, shot := range shots {
		if got := board.Fire(shot.location); got != shot.want {
			t.Fatalf("fire %v: expected %s, got %s", shot.location, shot.want, got)
		}
	}

	for col := 0; col <= 3; col++ {
		state, prs := board.DeckStateAt(NewCoordinates(2, col))
		if !prs {
			t.Fatalf("cell (2,%d) must still be indexed after sinking", col)
		}
		if state != DeckStateSunk {
			t.Fatalf("cell (2,%d) of sunk ship must read sunk, got %s", col, state)
		}
	}
}

func TestBoardFireMissNeverFails(t *testing.T) {
	board := mustNewBoard(t, validFleet())

	misses := []Coordinates{
		NewCoordinates(0, 0),
		NewCoordinates(5, 5),
		NewCoordinates(-1, -1),
		NewCoordinates(10, 10),
		NewCoordinates(255, 3),
	}

	for _, location := range misses {
		if got := board.Fire(location); got != ShotResultMiss {
			t.Fatalf("fire %v: expected miss, got %s", location, got)
		}
		// a second shot at the same empty cell stays a miss
		if got := board.Fire(location); got != ShotResultMiss {
			t.Fatalf("repeat fire %v: expected miss, got %s", location, got)
		}
	}
}

func TestBoardFireSunkIdempotent(t *testing.T) {
	board := mustNewBoard(t, validFleet())

	if got := board.Fire(NewCoordinates(9, 9)); got != ShotResultSunk {
		t.Fatalf("expected single-deck ship to sink at once, got %s", got)
	}

	for i := 0; i < 3; i++ {
		if got := board.Fire(NewCoordinates(9, 9)); got != ShotResultSunk {
			t.Fatalf("repeat fire on sunk ship: expected sunk, got %s", got)
		}
	}

	if state, _ := board.DeckStateAt(NewCoordinates(9, 9)); state != DeckStateSunk {
		t.Fatalf("deck of sunk ship must stay sunk, got %s", state)
	}
}

func TestBoardFirePartialHit(t *testing.T) {
	board := mustNewBoard(t, validFleet())

	if got := board.Fire(NewCoordinates(4, 5)); got != ShotResultHit {
		t.Fatalf("expected hit on 2-deck ship, got %s", got)
	}

	ship := board.Ships()[1]
	if ship.IsDrowned() {
		t.Fatal("2-deck ship must not drown after one hit")
	}
	if state, _ := board.DeckStateAt(NewCoordinates(4, 6)); state != DeckStateAlive {
		t.Fatalf("unhit deck must stay alive, got %s", state)
	}
}

func TestBoardQueries(t *testing.T) {
	board := mustNewBoard(t, validFleet())

	if board.HasShipAt(NewCoordinates(0, 0)) {
		t.Fatal("empty cell must not report a ship")
	}
	if _, prs := board.DeckStateAt(NewCoordinates(0, 0)); prs {
		t.Fatal("empty cell must not report a deck state")
	}
	if !board.HasShipAt(NewCoordinates(7, 0)) {
		t.Fatal("mid-ship cell must report a ship")
	}
}

func TestBoardTitleWord(t *testing.T) {
	board := mustNewBoard(t, validFleet())
	if board.TitleWord() != "РЕСПУБЛІКА" {
		t.Fatalf("unexpected default title word: %s", board.TitleWord())
	}

	board = mustNewBoard(t, validFleet(), WithTitleWord("BATTLESHIP"))
	if board.TitleWord() != "BATTLESHIP" {
		t.Fatalf("unexpected title word: %s", board.TitleWord())
	}
}
