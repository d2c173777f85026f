package battleship

const (
	GridSize        = 10
	ValidLowerBound = 0
	ValidUpperBound = GridSize - 1
)

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

func (c Coordinates) InBounds() bool {
	return c.Row >= ValidLowerBound && c.Row <= ValidUpperBound &&
		c.Col >= ValidLowerBound && c.Col <= ValidUpperBound
}

// ShipSpec is one entry of the fleet layout supplied by the caller.
// Start and end mark the two tips of a straight ship segment; a
// single-deck ship repeats the same cell in both.
type ShipSpec struct {
	Start Coordinates `json:"start"`
	End   Coordinates `json:"end"`
}
