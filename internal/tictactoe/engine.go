// Package tictactoe holds the 3x3 game state machine. It has no I/O and no
// internal locking; callers serialise access to an Engine.
package tictactoe

import (
	"errors"
	"fmt"
)

const BoardSize = 9

var (
	ErrGameOver        = errors.New("game is already finished")
	ErrInvalidPosition = errors.New("invalid cell index")
	ErrCellOccupied    = errors.New("cell is already occupied")
)

type Engine struct {
	board Board
	turn  Mark
}

// New - returns an engine with an empty board and X to move.
func New() *Engine {
	return &Engine{turn: PlayerX}
}

// ApplyMove - places the current player's mark on position and passes the turn.
// A rejected move leaves the engine untouched.
func (that *Engine) ApplyMove(position int) error {
	if that.Status().IsTerminal() {
		return ErrGameOver
	}

	if position < 0 || position >= len(that.board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidPosition, position)
	}

	if that.board[position] != Empty {
		return fmt.Errorf("%w: cell %d", ErrCellOccupied, position)
	}

	that.board[position] = that.turn
	that.turn = that.turn.Opponent()

	return nil
}

// Status - derives the result from the board.
func (that *Engine) Status() Result {
	return DetermineResult(that.board)
}

// StatusText - returns the status line for the current position.
func (that *Engine) StatusText() string {
	return Describe(that.Status(), that.turn)
}

// Reset - empties the board and gives the move back to X.
func (that *Engine) Reset() {
	*that = Engine{turn: PlayerX}
}

// Board - returns a copy of the cells.
func (that *Engine) Board() Board {
	return that.board
}

func (that *Engine) Turn() Mark {
	return that.turn
}
