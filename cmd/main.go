package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saeidalz13/battleship-board/internal/render"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

// defaultFleet is the demo layout: one 4-deck, two 3-deck, three
// 2-deck and four 1-deck ships, none touching.
func defaultFleet() []mb.ShipSpec {
	return []mb.ShipSpec{
		{Start: mb.NewCoordinates(2, 0), End: mb.NewCoordinates(2, 3)},
		{Start: mb.NewCoordinates(4, 5), End: mb.NewCoordinates(4, 6)},
		{Start: mb.NewCoordinates(3, 8), End: mb.NewCoordinates(3, 9)},
		{Start: mb.NewCoordinates(6, 0), End: mb.NewCoordinates(8, 0)},
		{Start: mb.NewCoordinates(6, 4), End: mb.NewCoordinates(6, 6)},
		{Start: mb.NewCoordinates(6, 8), End: mb.NewCoordinates(6, 9)},
		{Start: mb.NewCoordinates(9, 9), End: mb.NewCoordinates(9, 9)},
		{Start: mb.NewCoordinates(9, 5), End: mb.NewCoordinates(9, 5)},
		{Start: mb.NewCoordinates(9, 3), End: mb.NewCoordinates(9, 3)},
		{Start: mb.NewCoordinates(9, 7), End: mb.NewCoordinates(9, 7)},
	}
}

func loadFleetFile(path string) ([]mb.ShipSpec, error) {
	fleetBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var specs []mb.ShipSpec
	if err := json.Unmarshal(fleetBytes, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if os.Getenv("STAGE") != "prod" {
		// .env is optional for the demo
		_ = godotenv.Load(".env")
	}

	specs := defaultFleet()
	if fleetFile := os.Getenv("FLEET_FILE"); fleetFile != "" {
		loaded, err := loadFleetFile(fleetFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", fleetFile).Msg("failed to load fleet file")
		}
		specs = loaded
	}

	var opts []mb.BoardOption
	if titleWord := os.Getenv("BOARD_TITLE"); titleWord != "" {
		opts = append(opts, mb.WithTitleWord(titleWord))
	}

	manager := mb.NewBattleshipBoardManager()
	boardUuid, board, err := manager.CreateBoard(specs, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("fleet rejected")
	}

	shots := []mb.Coordinates{
		mb.NewCoordinates(0, 0),
		mb.NewCoordinates(2, 0),
		mb.NewCoordinates(2, 1),
		mb.NewCoordinates(2, 2),
		mb.NewCoordinates(2, 3),
		mb.NewCoordinates(9, 9),
		mb.NewCoordinates(6, 4),
	}

	for _, shot := range shots {
		result, err := manager.Fire(boardUuid, shot)
		if err != nil {
			log.Fatal().Err(err).Msg("shot failed")
		}
		fmt.Printf("(%d,%d): %s\n", shot.Row, shot.Col, result)
	}

	fmt.Println()
	fmt.Print(render.Field(board))

	manager.TerminateBoard(boardUuid)
}
