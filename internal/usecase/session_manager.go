package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// SessionManager drives engines on behalf of hosts that keep several games
// alive at once. Calls are serialised: the engine itself is not safe for
// concurrent use.
type SessionManager struct {
	logger *slog.Logger

	mu          sync.Mutex
	sessionRepo sessionRepo

	newID func() string
	now   func() time.Time
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo) *SessionManager {
	return &SessionManager{
		logger:      logger.With("component", "session_manager"),
		sessionRepo: sessionRepo,
		newID:       pkg.GenerateSessionID,
		now:         time.Now,
	}
}

// NewSession - starts a game with an empty board and X to move.
func (that *SessionManager) NewSession(ctx context.Context) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session := entity.NewSession(that.newID(), tictactoe.New(), that.now())

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "sessionID", session.ID)

	return session, nil
}

func (that *SessionManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.getSessionByID(ctx, id)
}

// MakeMove - plays position for whoever's turn it is. A move the engine
// rejects is returned wrapped and nothing is saved.
func (that *SessionManager) MakeMove(ctx context.Context, id string, position int) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "MakeMove", "sessionID", id)

	session, engine, err := that.loadEngine(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = engine.ApplyMove(position); err != nil {
		log.Debug("move rejected", "position", position, "error", err)
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	session.Game = engine.Snapshot()
	session.UpdatedAt = that.now()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if result := session.Result(); result.IsTerminal() {
		log.Info("game finished", "result", result.Outcome.String(), "winner", string(result.Winner))
	}

	return session, nil
}

// ResetSession - returns the session's game to its initial state.
func (that *SessionManager) ResetSession(ctx context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, engine, err := that.loadEngine(ctx, id)
	if err != nil {
		return nil, err
	}

	engine.Reset()
	session.Game = engine.Snapshot()
	session.UpdatedAt = that.now()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	that.logger.Info("session reset", "sessionID", id)

	return session, nil
}

func (that *SessionManager) EndSession(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if id == "" {
		return apperror.ErrEmptySessionID
	}

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", id)

	return nil
}

func (that *SessionManager) loadEngine(ctx context.Context, id string) (*entity.Session, *tictactoe.Engine, error) {
	session, err := that.getSessionByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	engine, err := session.Engine()
	if err != nil {
		that.logger.Error("stored session is corrupt", "sessionID", id, "error", err)
		return nil, nil, fmt.Errorf("failed to restore game: %w", err)
	}

	return session, engine, nil
}

func (that *SessionManager) getSessionByID(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return nil, apperror.ErrEmptySessionID
	}

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}
