package tictactoe

import "fmt"

type Outcome int

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the status of a game. Winner is set only when Outcome is Win.
type Result struct {
	Outcome Outcome
	Winner  Mark
}

// IsTerminal - reports whether no further move is accepted.
func (r Result) IsTerminal() bool {
	return r.Outcome == Win || r.Outcome == Draw
}

func (r Result) String() string {
	switch r.Outcome {
	case Win:
		return fmt.Sprintf("Winner: %s", r.Winner)
	case Draw:
		return "It's a draw!"
	default:
		return "In progress"
	}
}

// Describe - returns the status line shown to players: the result once the
// game is over, otherwise who moves next.
func Describe(result Result, turn Mark) string {
	if result.IsTerminal() {
		return result.String()
	}
	return fmt.Sprintf("Next player: %s", turn)
}

// WinCombos are scanned in this order; the first complete line decides the winner.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// DetermineResult - computes the result of a board. It depends on nothing but the board.
func DetermineResult(board Board) Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return Result{Outcome: Win, Winner: a}
		}
	}

	// the game continues until all the cells are full
	if !board.IsFull() {
		return Result{Outcome: InProgress}
	}

	return Result{Outcome: Draw}
}

// winners - returns every player owning at least one complete line.
func winners(board Board) []Mark {
	var found []Mark
	for _, mark := range []Mark{PlayerX, PlayerO} {
		for _, combo := range WinCombos {
			if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
				found = append(found, mark)
				break
			}
		}
	}
	return found
}
