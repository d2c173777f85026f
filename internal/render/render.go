// Package render draws a board as text. It is a pure formatting
// layer over the board's query surface and holds no game state.
package render

import (
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

const (
	glyphEmpty = " ~ "
	glyphAlive = " ■ "
	glyphHit   = " □ "
	glyphSunk  = " x "
)

// Field renders the column header followed by ten rows of cell
// glyphs, each row prefixed with its index.
func Field(b *mb.Board) string {
	var sb strings.Builder
	sb.WriteString(headerRow(b.TitleWord()))

	for row := 0; row < mb.GridSize; row++ {
		sb.WriteString(strconv.Itoa(row))
		sb.WriteString(" ")
		for col := 0; col < mb.GridSize; col++ {
			sb.WriteString(glyphAt(b, mb.NewCoordinates(row, col)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// headerRow builds the column marker line. A title word of exactly
// ten runes labels the columns one rune each; anything else falls
// back to the digits 0-9.
func headerRow(titleWord string) string {
	markers := make([]string, 0, mb.GridSize)

	runes := []rune(titleWord)
	if len(runes) == mb.GridSize {
		for _, r := range runes {
			markers = append(markers, string(r)+" ")
		}
	} else {
		for i := 0; i < mb.GridSize; i++ {
			markers = append(markers, strconv.Itoa(i)+" ")
		}
	}

	return "   " + strings.Join(markers, " ") + "\n"
}

func glyphAt(b *mb.Board, cell mb.Coordinates) string {
	state, prs := b.DeckStateAt(cell)
	if !prs {
		return glyphEmpty
	}

	switch state {
	case mb.DeckStateHit:
		return glyphHit
	case mb.DeckStateSunk:
		return glyphSunk
	default:
		return glyphAlive
	}
}
