package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridplay/tictactoe-engine/internal/engine"
	"github.com/gridplay/tictactoe-engine/internal/entity"
	"github.com/gridplay/tictactoe-engine/testing/suite"
)

func TestSessionRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, time.Minute)

	// Given: a fresh session
	session := entity.NewSession("123")

	// When: Save is called
	err := sessionRepo.Save(ctx, session)

	// Then: no error should be returned, and the entry carries a TTL
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "session:123").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, time.Minute)

		// Given: a stored session with a move applied
		eng := engine.New()
		_, err := eng.ApplyMove(4)
		require.NoError(t, err)

		session := entity.NewSession("123")
		session.State = eng.Snapshot()

		err = sessionRepo.Save(ctx, session)
		require.NoError(t, err)

		// When: GetByID is called with the existing ID
		retrievedSession, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the retrieved session should match the saved session
		require.NoError(t, err)
		require.Equal(t, session.ID, retrievedSession.ID)
		require.Equal(t, session.State, retrievedSession.State)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, time.Minute)

		// When: GetByID is called with a non-existent ID
		retrievedSession, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.Empty(t, retrievedSession.ID)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, time.Minute)

	// Given: a stored session
	session := entity.NewSession("123")
	err := sessionRepo.Save(ctx, session)
	require.NoError(t, err)

	// When: DeleteByID is called with the existing ID
	err = sessionRepo.DeleteByID(ctx, session.ID)

	// Then: no error should be returned and the session is gone
	require.NoError(t, err)

	_, err = sessionRepo.GetByID(ctx, session.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)
}
