package battleship

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type BoardManager interface {
	CreateBoard(specs []ShipSpec, opts ...BoardOption) (string, *Board, error)
	FetchBoard(boardUuid string) (*Board, error)
	Fire(boardUuid string, location Coordinates) (ShotResult, error)
	TerminateBoard(boardUuid string)
}

type boardEntry struct {
	board *Board
	mu    sync.Mutex
}

// BattleshipBoardManager keeps the live boards of a hosting
// application keyed by a short uuid and serializes the shots each
// board takes.
type BattleshipBoardManager struct {
	boards map[string]*boardEntry
	mu     sync.RWMutex
}

var _ BoardManager = (*BattleshipBoardManager)(nil)

func NewBattleshipBoardManager() *BattleshipBoardManager {
	return &BattleshipBoardManager{
		boards: make(map[string]*boardEntry, 10),
	}
}

func (bbm *BattleshipBoardManager) CreateBoard(specs []ShipSpec, opts ...BoardOption) (string, *Board, error) {
	board, err := NewBoard(specs, opts...)
	if err != nil {
		return "", nil, err
	}

	boardUuid := uuid.NewString()[:6]

	bbm.mu.Lock()
	bbm.boards[boardUuid] = &boardEntry{board: board}
	bbm.mu.Unlock()

	log.Info().Str("board", boardUuid).Msg("board created")
	return boardUuid, board, nil
}

func (bbm *BattleshipBoardManager) FetchBoard(boardUuid string) (*Board, error) {
	entry, err := bbm.fetchEntry(boardUuid)
	if err != nil {
		return nil, err
	}
	return entry.board, nil
}

// Fire applies one shot under the board's own lock. Board itself is
// not synchronized, so concurrent shooters must come through here.
func (bbm *BattleshipBoardManager) Fire(boardUuid string, location Coordinates) (ShotResult, error) {
	entry, err := bbm.fetchEntry(boardUuid)
	if err != nil {
		return ShotResultMiss, err
	}

	entry.mu.Lock()
	result := entry.board.Fire(location)
	entry.mu.Unlock()
	return result, nil
}

func (bbm *BattleshipBoardManager) TerminateBoard(boardUuid string) {
	bbm.mu.Lock()
	delete(bbm.boards, boardUuid)
	bbm.mu.Unlock()

	log.Info().Str("board", boardUuid).Msg("board terminated")
}

func (bbm *BattleshipBoardManager) fetchEntry(boardUuid string) (*boardEntry, error) {
	bbm.mu.RLock()
	entry, prs := bbm.boards[boardUuid]
	bbm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrBoardNotExists(boardUuid)
	}
	return entry, nil
}
