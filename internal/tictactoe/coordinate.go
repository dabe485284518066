package tictactoe

import "fmt"

// Coordinate - a position on the board. Bounds are checked against a board size at the point of use.
type Coordinate struct {
	X int
	Y int
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

func (that Coordinate) IsWithinBounds(size int) bool {
	return 0 <= that.X && that.X < size && 0 <= that.Y && that.Y < size
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", that.X, that.Y)
}
