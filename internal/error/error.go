package error

import "fmt"

// Fleet validation errors are typed so callers can tell the rules
// apart with errors.As; the ErrXxx helpers keep call sites short.

type ShipGeometryError struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

func (e *ShipGeometryError) Error() string {
	return fmt.Sprintf(
		"ship must be a single cell or a straight axis-aligned segment inside the grid\tstart: (%d,%d)\tend: (%d,%d)",
		e.StartRow, e.StartCol, e.EndRow, e.EndCol,
	)
}

func ErrShipGeometry(startRow, startCol, endRow, endCol int) error {
	return &ShipGeometryError{StartRow: startRow, StartCol: startCol, EndRow: endRow, EndCol: endCol}
}

type ShipOverlapError struct {
	Row int
	Col int
}

func (e *ShipOverlapError) Error() string {
	return fmt.Sprintf("two ships occupy the same cell\trow: %d\tcol: %d", e.Row, e.Col)
}

func ErrShipOverlap(row, col int) error {
	return &ShipOverlapError{Row: row, Col: col}
}

type FleetSizeError struct {
	Want int
	Got  int
}

func (e *FleetSizeError) Error() string {
	return fmt.Sprintf("field must have %d ships, got %d", e.Want, e.Got)
}

func ErrFleetSize(want, got int) error {
	return &FleetSizeError{Want: want, Got: got}
}

type FleetCompositionError struct {
	Size int
	Want int
	Got  int
}

func (e *FleetCompositionError) Error() string {
	return fmt.Sprintf("field must have %d %d-deck ships, got %d", e.Want, e.Size, e.Got)
}

func ErrFleetComposition(size, want, got int) error {
	return &FleetCompositionError{Size: size, Want: want, Got: got}
}

type ShipAdjacencyError struct {
	Row      int
	Col      int
	ShipRow  int
	ShipCol  int
	ShipSize int
}

func (e *ShipAdjacencyError) Error() string {
	return fmt.Sprintf(
		"occupied cell (%d,%d) too close to %d-deck ship at (%d,%d)",
		e.Row, e.Col, e.ShipSize, e.ShipRow, e.ShipCol,
	)
}

func ErrShipAdjacency(row, col, shipRow, shipCol, shipSize int) error {
	return &ShipAdjacencyError{Row: row, Col: col, ShipRow: shipRow, ShipCol: shipCol, ShipSize: shipSize}
}

func ErrBoardNotExists(boardUuid string) error {
	return fmt.Errorf("board with this uuid does not exist, uuid: %s", boardUuid)
}
