package tictactoe

import (
	"errors"
	"fmt"
)

var ErrCorruptSnapshot = errors.New("corrupt game snapshot")

// Snapshot is the plain state of an engine, for hosts that keep a live game between requests.
type Snapshot struct {
	Board Board `json:"board"`
	Turn  Mark  `json:"turn"`
}

func (that *Engine) Snapshot() Snapshot {
	return Snapshot{Board: that.board, Turn: that.turn}
}

// Restore - rebuilds an engine from a snapshot, rejecting any state that
// legal play from an empty board could not have produced.
func Restore(snapshot Snapshot) (*Engine, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	return &Engine{board: snapshot.Board, turn: snapshot.Turn}, nil
}

// Validate - checks the snapshot against the board invariants.
func (s Snapshot) Validate() error {
	for i, cell := range s.Board {
		if !cell.Valid() {
			return fmt.Errorf("%w: cell %d holds %q", ErrCorruptSnapshot, i, cell)
		}
	}

	countX, countO := s.Board.Count(PlayerX), s.Board.Count(PlayerO)
	if countX != countO && countX != countO+1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", ErrCorruptSnapshot, countX, countO)
	}

	expectedTurn := PlayerX
	if countX > countO {
		expectedTurn = PlayerO
	}

	if s.Turn != expectedTurn {
		return fmt.Errorf("%w: turn %q, expected %q", ErrCorruptSnapshot, s.Turn, expectedTurn)
	}

	found := winners(s.Board)
	switch {
	case len(found) > 1:
		return fmt.Errorf("%w: both players own a line", ErrCorruptSnapshot)
	case len(found) == 1 && found[0] == PlayerX && countX != countO+1:
		return fmt.Errorf("%w: O moved after X won", ErrCorruptSnapshot)
	case len(found) == 1 && found[0] == PlayerO && countX != countO:
		return fmt.Errorf("%w: X moved after O won", ErrCorruptSnapshot)
	}

	return nil
}
