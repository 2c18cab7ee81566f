package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gridplay/tictactoe-engine/internal/engine"
	"github.com/gridplay/tictactoe-engine/internal/entity"
	"github.com/gridplay/tictactoe-engine/internal/pkg"
	"github.com/gridplay/tictactoe-engine/internal/repository"
)

type sessionRepo interface {
	Save(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// SessionManager glues the engine to the snapshot store. Every call restores
// a private engine from the stored snapshot, so the manager holds no game
// state of its own between calls.
type SessionManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo) *SessionManager {
	return &SessionManager{
		logger: logger,

		sessionRepo: sessionRepo,
	}
}

// GetOrCreateSession resumes the stored session, or starts a fresh game when
// the id is empty or unknown. A client that passes its old id after the TTL
// expired keeps the id and gets a fresh game.
func (that *SessionManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return that.createSession(ctx, pkg.GenerateSessionID())
	}

	session, err := that.sessionRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return that.createSession(ctx, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// GetSession returns the stored session without creating one.
func (that *SessionManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// ApplyMove applies one move to the session's game and persists the new
// snapshot. On a rejected move nothing is written and the current session is
// returned alongside the error.
func (that *SessionManager) ApplyMove(ctx context.Context, sessionID string, cell int) (*entity.Session, engine.MoveResult, error) {
	log := that.logger.With("method", "ApplyMove")

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, engine.MoveResult{}, fmt.Errorf("failed to get session: %w", err)
	}

	eng := engine.New()
	if err = eng.Restore(session.State); err != nil {
		// a corrupted stored snapshot degrades to a fresh game
		log.Warn("stored snapshot is invalid, starting fresh", "sessionID", sessionID, "error", err)
	}

	result, err := eng.ApplyMove(cell)
	if err != nil {
		return session, engine.MoveResult{}, fmt.Errorf("failed to make move: %w", err)
	}

	session.State = eng.Snapshot()
	if err = that.sessionRepo.Save(ctx, session); err != nil {
		return nil, engine.MoveResult{}, fmt.Errorf("failed to save session: %w", err)
	}

	return session, result, nil
}

// Reset replaces the session's game with a fresh one under the same id.
func (that *SessionManager) Reset(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.State = engine.New().Snapshot()

	if err = that.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// EndSession drops the stored snapshot.
func (that *SessionManager) EndSession(ctx context.Context, sessionID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (that *SessionManager) createSession(ctx context.Context, id string) (*entity.Session, error) {
	session := entity.NewSession(id)

	if err := that.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}
