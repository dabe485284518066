package tictactoe

import (
	"fmt"
	"strings"
)

// Mark - the symbol occupying a tile. The zero value is Empty.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

const (
	symbolX = "X"
	symbolO = "O"
)

// ParseMark - converts a player symbol ("X" or "O", any case) into a playable Mark.
func ParseMark(symbol string) (Mark, error) {
	switch strings.ToUpper(symbol) {
	case symbolX:
		return X, nil
	case symbolO:
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
}

func (that Mark) String() string {
	switch that {
	case X:
		return symbolX
	case O:
		return symbolO
	default:
		return ""
	}
}

func (that Mark) IsPlayable() bool {
	return that == X || that == O
}

// Opponent - returns the other playable mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}
