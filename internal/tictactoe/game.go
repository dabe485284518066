package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

var (
	ErrInvalidSymbol    = errors.New("invalid symbol, choose 'X' or 'O'")
	ErrInvalidMark      = errors.New("mark must be either 'X' or 'O'")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrInvalidBoardSize = errors.New("board size must be positive")
	ErrInvalidTurn      = errors.New("turn must be either 'X' or 'O'")
)

// Game - the rules engine. It owns a board and the current turn.
// A Game is not safe for concurrent use.
type Game struct {
	board   *Board
	turn    Mark
	outcome Outcome
}

// NewGame - creates a game on the given board, or on a fresh 3x3 board when board is nil. X moves first.
func NewGame(board *Board) *Game {
	if board == nil {
		board = NewDefaultBoard()
	}

	return &Game{
		board:   board,
		turn:    X,
		outcome: ongoing(),
	}
}

// RestoreGame - rebuilds a game from a board and the mark whose turn it is.
// The outcome is recomputed from the board.
func RestoreGame(board *Board, turn Mark) (*Game, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: nil board", ErrInvalidBoardSize)
	}

	if !turn.IsPlayable() {
		return nil, ErrInvalidTurn
	}

	game := &Game{
		board:   board,
		turn:    turn,
		outcome: ongoing(),
	}

	switch winner := board.Winner(); {
	case winner != Empty:
		game.outcome = won(winner)
	case board.IsFull():
		game.outcome = draw()
	}

	return game, nil
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) Turn() Mark {
	return that.turn
}

func (that *Game) Outcome() Outcome {
	return that.outcome
}

// Play - places the current player's mark at (x, y) and reports the resulting outcome.
// On error neither the board nor the turn changes.
func (that *Game) Play(symbol string, x, y int) (Outcome, error) {
	if that.outcome.IsFinished() {
		return that.outcome, apperror.ErrGameFinished
	}

	mark, err := ParseMark(symbol)
	if err != nil {
		return that.outcome, err
	}

	if mark != that.turn {
		return that.outcome, fmt.Errorf("%w: %s moves next", apperror.ErrNotYourTurn, that.turn)
	}

	coordinate := NewCoordinate(x, y)
	if err = that.board.SetTileMark(that.turn, coordinate); err != nil {
		return that.outcome, fmt.Errorf("invalid move: %w", err)
	}

	hasWinner, err := that.checkWinner(coordinate)
	if err != nil {
		return that.outcome, fmt.Errorf("failed to check winner: %w", err)
	}

	switch {
	case hasWinner:
		that.outcome = won(that.turn)
	case that.board.IsFull():
		that.outcome = draw()
	default:
		that.turn = that.turn.Opponent()
	}

	return that.outcome, nil
}

// checkWinner - checks the row and column through the move, and both diagonals.
func (that *Game) checkWinner(coordinate Coordinate) (bool, error) {
	row, err := that.board.Row(coordinate.Y)
	if err != nil {
		return false, err
	}

	column, err := that.board.Column(coordinate.X)
	if err != nil {
		return false, err
	}

	for _, line := range [][]*Tile{row, column, that.board.PositiveDiagonal(), that.board.NegativeDiagonal()} {
		if lineOwner(line) != Empty {
			return true, nil
		}
	}

	return false, nil
}
