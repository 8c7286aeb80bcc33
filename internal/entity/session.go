package entity

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Session is one live game kept by a host between requests.
type Session struct {
	ID        string             `json:"id"`
	Game      tictactoe.Snapshot `json:"game"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func NewSession(id string, engine *tictactoe.Engine, now time.Time) *Session {
	return &Session{
		ID:        id,
		Game:      engine.Snapshot(),
		UpdatedAt: now,
	}
}

// Engine - rebuilds the game engine for this session.
func (that *Session) Engine() (*tictactoe.Engine, error) {
	return tictactoe.Restore(that.Game)
}

// Result - derives the status from the stored board.
func (that *Session) Result() tictactoe.Result {
	return tictactoe.DetermineResult(that.Game.Board)
}

func (that *Session) StatusText() string {
	return tictactoe.Describe(that.Result(), that.Game.Turn)
}

func (that *Session) IsFinished() bool {
	return that.Result().IsTerminal()
}
