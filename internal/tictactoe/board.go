package tictactoe

import "fmt"

const DefaultSize = 3

// Board - a fixed-size square grid of tiles stored row-major (index y*size+x).
type Board struct {
	size  int
	tiles []*Tile
}

func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	tiles := make([]*Tile, 0, size*size)
	for y := range size {
		for x := range size {
			tiles = append(tiles, NewTile(NewCoordinate(x, y)))
		}
	}

	return &Board{
		size:  size,
		tiles: tiles,
	}, nil
}

// NewDefaultBoard - returns an empty 3x3 board.
func NewDefaultBoard() *Board {
	board, _ := NewBoard(DefaultSize)

	return board
}

func (that *Board) Size() int {
	return that.size
}

// Tiles - returns every tile in row-major order.
func (that *Board) Tiles() []*Tile {
	tiles := make([]*Tile, len(that.tiles))
	copy(tiles, that.tiles)

	return tiles
}

func (that *Board) Tile(coordinate Coordinate) (*Tile, error) {
	if !coordinate.IsWithinBounds(that.size) {
		return nil, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, coordinate, that.size, that.size)
	}

	return that.tiles[coordinate.Y*that.size+coordinate.X], nil
}

func (that *Board) SetTileMark(mark Mark, coordinate Coordinate) error {
	tile, err := that.Tile(coordinate)
	if err != nil {
		return err
	}

	return tile.SetMark(mark)
}

func (that *Board) IsFull() bool {
	for _, tile := range that.tiles {
		if tile.isEmpty() {
			return false
		}
	}

	return true
}

func (that *Board) IsEmpty() bool {
	for _, tile := range that.tiles {
		if !tile.isEmpty() {
			return false
		}
	}

	return true
}

// Row - tiles with the given y, ordered by x.
func (that *Board) Row(y int) ([]*Tile, error) {
	row := make([]*Tile, 0, that.size)
	for x := range that.size {
		tile, err := that.Tile(NewCoordinate(x, y))
		if err != nil {
			return nil, err
		}
		row = append(row, tile)
	}

	return row, nil
}

// Column - tiles with the given x, ordered by y.
func (that *Board) Column(x int) ([]*Tile, error) {
	column := make([]*Tile, 0, that.size)
	for y := range that.size {
		tile, err := that.Tile(NewCoordinate(x, y))
		if err != nil {
			return nil, err
		}
		column = append(column, tile)
	}

	return column, nil
}

// PositiveDiagonal - tiles at (i, i).
func (that *Board) PositiveDiagonal() []*Tile {
	diagonal := make([]*Tile, 0, that.size)
	for i := range that.size {
		diagonal = append(diagonal, that.tiles[i*that.size+i])
	}

	return diagonal
}

// NegativeDiagonal - tiles at (i, size-1-i).
func (that *Board) NegativeDiagonal() []*Tile {
	diagonal := make([]*Tile, 0, that.size)
	for i := range that.size {
		diagonal = append(diagonal, that.tiles[(that.size-1-i)*that.size+i])
	}

	return diagonal
}

// Winner - scans every line and returns the mark that completes one, or Empty.
func (that *Board) Winner() Mark {
	lines := make([][]*Tile, 0, 2*that.size+2)
	for i := range that.size {
		lines = append(lines, that.tiles[i*that.size:(i+1)*that.size])

		column := make([]*Tile, 0, that.size)
		for y := range that.size {
			column = append(column, that.tiles[y*that.size+i])
		}
		lines = append(lines, column)
	}
	lines = append(lines, that.PositiveDiagonal(), that.NegativeDiagonal())

	for _, line := range lines {
		if mark := lineOwner(line); mark != Empty {
			return mark
		}
	}

	return Empty
}

// lineOwner - the mark held by every tile of the line, or Empty.
func lineOwner(line []*Tile) Mark {
	if len(line) == 0 {
		return Empty
	}

	first := line[0].Mark()
	if first == Empty {
		return Empty
	}

	for _, tile := range line[1:] {
		if tile.Mark() != first {
			return Empty
		}
	}

	return first
}
