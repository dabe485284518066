package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const EmptyCell = ""

var ErrCorruptedGame = errors.New("corrupted game record")

// Game - the persisted snapshot of a tictactoe.Game. Board is row-major, EmptyCell marks a free tile.
type Game struct {
	ID        string           `json:"id"`
	Size      int              `json:"size"`
	Board     []string         `json:"board"`
	Turn      string           `json:"turn"`
	Status    tictactoe.Status `json:"status"`
	Winner    string           `json:"winner,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func NewGame(id string, game *tictactoe.Game) *Game {
	now := time.Now().UTC()

	record := &Game{
		ID:        id,
		CreatedAt: now,
	}
	record.Update(game)
	record.UpdatedAt = now

	return record
}

// Update - copies the current state of the engine game into the record.
func (that *Game) Update(game *tictactoe.Game) {
	board := game.Board()

	cells := make([]string, 0, board.Size()*board.Size())
	for _, tile := range board.Tiles() {
		cells = append(cells, tile.Mark().String())
	}

	outcome := game.Outcome()

	that.Size = board.Size()
	that.Board = cells
	that.Turn = game.Turn().String()
	that.Status = outcome.Status
	that.Winner = outcome.Winner.String()
	that.UpdatedAt = time.Now().UTC()
}

// Restore - rebuilds the engine game from the record.
func (that *Game) Restore() (*tictactoe.Game, error) {
	if that.Size <= 0 || that.Size > len(that.Board) || len(that.Board) != that.Size*that.Size {
		return nil, fmt.Errorf("%w: %d cells for size %d", ErrCorruptedGame, len(that.Board), that.Size)
	}

	board, err := tictactoe.NewBoard(that.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedGame, err)
	}

	for i, cell := range that.Board {
		if cell == EmptyCell {
			continue
		}

		mark, err := tictactoe.ParseMark(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %d: %w", ErrCorruptedGame, i, err)
		}

		if err = board.SetTileMark(mark, tictactoe.NewCoordinate(i%that.Size, i/that.Size)); err != nil {
			return nil, fmt.Errorf("%w: cell %d: %w", ErrCorruptedGame, i, err)
		}
	}

	turn, err := tictactoe.ParseMark(that.Turn)
	if err != nil {
		return nil, fmt.Errorf("%w: turn: %w", ErrCorruptedGame, err)
	}

	game, err := tictactoe.RestoreGame(board, turn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedGame, err)
	}

	return game, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == tictactoe.StatusWon || that.Status == tictactoe.StatusDraw
}
