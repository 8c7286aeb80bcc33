package tictactoe

// Mark is the content of a single cell, and also names the player who owns it.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Opponent - returns the player who moves after m.
func (m Mark) Opponent() Mark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// IsPlayer - reports whether m is X or O.
func (m Mark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// Valid - reports whether m may appear on a board.
func (m Mark) Valid() bool {
	return m == Empty || m.IsPlayer()
}

// Board is the 3x3 grid stored row-major: 0,1,2 top row; 3,4,5 middle; 6,7,8 bottom.
type Board [BoardSize]Mark

// Count - returns how many cells hold mark.
func (b Board) Count(mark Mark) int {
	count := 0
	for _, cell := range b {
		if cell == mark {
			count++
		}
	}
	return count
}

// IsFull - reports whether no cell is empty.
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}
	return true
}
