package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Tile - a single board cell. Its mark can be set exactly once.
type Tile struct {
	position Coordinate
	mark     Mark
}

func NewTile(position Coordinate) *Tile {
	return &Tile{
		position: position,
		mark:     Empty,
	}
}

func (that *Tile) Position() Coordinate {
	return that.position
}

func (that *Tile) Mark() Mark {
	return that.mark
}

// SetMark - places a playable mark on an empty tile.
func (that *Tile) SetMark(mark Mark) error {
	if !mark.IsPlayable() {
		return ErrInvalidMark
	}

	if that.mark != Empty {
		return fmt.Errorf("%w: %s holds %s", apperror.ErrCellOccupied, that.position, that.mark)
	}

	that.mark = mark

	return nil
}

func (that *Tile) isEmpty() bool {
	return that.mark == Empty
}
