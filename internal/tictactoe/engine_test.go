package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play - applies moves in order, failing the test on the first rejection.
func play(t *testing.T, engine *Engine, moves ...int) {
	t.Helper()

	for i, position := range moves {
		require.NoError(t, engine.ApplyMove(position), "move %d (cell %d)", i, position)
	}
}

func TestNew(t *testing.T) {
	// When: a new engine is created
	engine := New()

	// Then: the board is empty, X moves first and the game is in progress
	require.Equal(t, Board{}, engine.Board())
	assert.Equal(t, PlayerX, engine.Turn())
	assert.Equal(t, Result{Outcome: InProgress}, engine.Status())
	assert.Equal(t, "Next player: X", engine.StatusText())
}

func TestEngine_ApplyMove(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: a new engine
		engine := New()

		// When: X plays cell 0
		err := engine.ApplyMove(0)
		require.NoError(t, err)

		// Then: the cell holds X and the turn passes to O
		expectedBoard := Board{PlayerX, Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty}
		require.Equal(t, expectedBoard, engine.Board())
		assert.Equal(t, PlayerO, engine.Turn())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X holds cell 0 and it is O's turn
		engine := New()
		play(t, engine, 0)

		// When: O tries the same cell
		err := engine.ApplyMove(0)

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, PlayerX, engine.Board()[0])
		assert.Equal(t, PlayerO, engine.Turn())
		assert.Equal(t, 1, engine.Board().Count(PlayerX))
		assert.Equal(t, 0, engine.Board().Count(PlayerO))
	})

	t.Run("Invalid cell", func(t *testing.T) {
		// Given: a new engine
		engine := New()

		// When: cell 9 is played
		err := engine.ApplyMove(9)

		// Then: ErrInvalidPosition is returned and the board stays empty
		require.ErrorIs(t, err, ErrInvalidPosition)
		assert.Equal(t, Board{}, engine.Board())
		assert.Equal(t, PlayerX, engine.Turn())
	})

	t.Run("Invalid negative cell", func(t *testing.T) {
		// Given: a new engine
		engine := New()

		// When: a negative index is played
		err := engine.ApplyMove(-1)

		// Then: ErrInvalidPosition is returned
		require.ErrorIs(t, err, ErrInvalidPosition)
		assert.Equal(t, Board{}, engine.Board())
	})

	t.Run("Move after win", func(t *testing.T) {
		// Given: X has completed the top row
		engine := New()
		play(t, engine, 0, 3, 1, 4, 2)
		board := engine.Board()
		turn := engine.Turn()

		// When: O tries to move
		err := engine.ApplyMove(5)

		// Then: ErrGameOver is returned and nothing changes
		require.ErrorIs(t, err, ErrGameOver)
		assert.Equal(t, board, engine.Board())
		assert.Equal(t, turn, engine.Turn())
	})

	t.Run("Game over is checked before the cell", func(t *testing.T) {
		// Given: a finished game
		engine := New()
		play(t, engine, 0, 3, 1, 4, 2)

		// When: an out of range or occupied cell is played
		errOutOfRange := engine.ApplyMove(42)
		errOccupied := engine.ApplyMove(0)

		// Then: both report the game as over
		require.ErrorIs(t, errOutOfRange, ErrGameOver)
		require.ErrorIs(t, errOccupied, ErrGameOver)
	})

	t.Run("Range is checked before occupancy", func(t *testing.T) {
		// Given: an engine with a move on the board
		engine := New()
		play(t, engine, 4)

		// When: an out of range cell is played
		err := engine.ApplyMove(BoardSize)

		// Then: ErrInvalidPosition is returned, not ErrCellOccupied
		require.ErrorIs(t, err, ErrInvalidPosition)
		require.NotErrorIs(t, err, ErrCellOccupied)
	})
}

func TestEngine_Scenarios(t *testing.T) {
	t.Run("X wins on the main diagonal", func(t *testing.T) {
		// Given: a new engine
		engine := New()

		// When: X 0, O 1, X 4, O 2, X 8 are played
		play(t, engine, 0, 1, 4, 2, 8)

		// Then: X wins
		assert.Equal(t, Result{Outcome: Win, Winner: PlayerX}, engine.Status())
		assert.Equal(t, "Winner: X", engine.StatusText())
	})

	t.Run("Draw with every cell occupied", func(t *testing.T) {
		// Given: a new engine
		engine := New()

		// When: a sequence that never completes a line fills the board
		play(t, engine, 0, 4, 8, 1, 7, 6, 2, 5, 3)

		// Then: the game is drawn and no cell is empty
		assert.Equal(t, Result{Outcome: Draw}, engine.Status())
		assert.True(t, engine.Board().IsFull())
		assert.Equal(t, "It's a draw!", engine.StatusText())

		// And: further moves are rejected
		require.ErrorIs(t, engine.ApplyMove(0), ErrGameOver)
	})

	t.Run("Top row ends the game before the board fills", func(t *testing.T) {
		// Given: X 0, O 4, X 1, O 3 have been played
		engine := New()
		play(t, engine, 0, 4, 1, 3)

		// When: X plays 2
		require.NoError(t, engine.ApplyMove(2))

		// Then: X owns the top row and the rest of the sequence is refused
		assert.Equal(t, Result{Outcome: Win, Winner: PlayerX}, engine.Status())
		for _, position := range []int{6, 5, 7, 8} {
			require.ErrorIs(t, engine.ApplyMove(position), ErrGameOver)
		}
		assert.Equal(t, 5, BoardSize-engine.Board().Count(Empty))
	})

	t.Run("O wins", func(t *testing.T) {
		// Given: a new engine
		engine := New()

		// When: O completes the middle column
		play(t, engine, 0, 1, 2, 4, 3, 7)

		// Then: O wins
		assert.Equal(t, Result{Outcome: Win, Winner: PlayerO}, engine.Status())
	})
}

func TestEngine_Status(t *testing.T) {
	t.Run("Repeated calls agree", func(t *testing.T) {
		// Given: a game in progress
		engine := New()
		play(t, engine, 4, 0)

		// When: the status is read twice
		first, second := engine.Status(), engine.Status()

		// Then: both reads match and nothing moved
		assert.Equal(t, first, second)
		assert.Equal(t, PlayerX, engine.Turn())
	})
}

func TestEngine_Reset(t *testing.T) {
	// Given: a finished game
	engine := New()
	play(t, engine, 0, 1, 4, 2, 8)

	// When: the engine is reset
	engine.Reset()

	// Then: the engine is back in its initial state
	assert.Equal(t, Board{}, engine.Board())
	assert.Equal(t, PlayerX, engine.Turn())
	assert.Equal(t, Result{Outcome: InProgress}, engine.Status())
	require.NoError(t, engine.ApplyMove(0))
}

func TestEngine_Board(t *testing.T) {
	// Given: an engine with one move
	engine := New()
	play(t, engine, 0)

	// When: the returned board is modified
	board := engine.Board()
	board[1] = PlayerO

	// Then: the engine is unaffected
	assert.Equal(t, Empty, engine.Board()[1])
}

func TestEngine_RandomPlayKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 200; game++ {
		engine := New()

		for !engine.Status().IsTerminal() {
			before := engine.Board()

			// any index, including out of range ones, is thrown at the engine
			position := rng.Intn(BoardSize+4) - 2
			err := engine.ApplyMove(position)

			after := engine.Board()
			if err != nil {
				require.Equal(t, before, after)
				continue
			}

			for i := range before {
				if before[i] != Empty {
					require.Equal(t, before[i], after[i], "cell %d overwritten", i)
				}
			}

			countX, countO := after.Count(PlayerX), after.Count(PlayerO)
			require.Contains(t, []int{0, 1}, countX-countO)
			require.NoError(t, engine.Snapshot().Validate())
		}

		final := engine.Board()
		for position := 0; position < BoardSize; position++ {
			require.ErrorIs(t, engine.ApplyMove(position), ErrGameOver)
		}
		require.Equal(t, final, engine.Board())
	}
}
