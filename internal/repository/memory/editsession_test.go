package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/editsession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id string) *editsession.Session {
	now := time.Now()
	return &editsession.Session{
		ID:          id,
		EmployeeID:  "emp-1",
		Steps:       editsession.FixedSteps(),
		CurrentStep: editsession.StepPersonal,
		CreatedAt:   now,
		LastTouched: now,
	}
}

func TestStore_CreateAndUpdate(t *testing.T) {
	store := NewEditSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("s1")))
	assert.ErrorIs(t, store.Create(ctx, newSession("s1")), editsession.ErrSessionExists)

	err := store.Update(ctx, "s1", func(s *editsession.Session) error {
		s.CurrentStep = editsession.StepEmergency
		return nil
	})
	require.NoError(t, err)

	var step editsession.FormStep
	require.NoError(t, store.Update(ctx, "s1", func(s *editsession.Session) error {
		step = s.CurrentStep
		return nil
	}))
	assert.Equal(t, editsession.StepEmergency, step)
}

func TestStore_UpdateMissing(t *testing.T) {
	store := NewEditSessionStore()
	err := store.Update(context.Background(), "missing", func(s *editsession.Session) error {
		return nil
	})
	assert.ErrorIs(t, err, editsession.ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := NewEditSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("s1")))
	require.NoError(t, store.Delete(ctx, "s1"))
	assert.ErrorIs(t, store.Delete(ctx, "s1"), editsession.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestStore_UpdateTouchesSession(t *testing.T) {
	store := NewEditSessionStore()
	ctx := context.Background()

	sess := newSession("s1")
	sess.LastTouched = time.Now().Add(-time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	require.NoError(t, store.Update(ctx, "s1", func(s *editsession.Session) error {
		return nil
	}))

	// A touched session survives a sweep with a cutoff in the recent past.
	dropped, err := store.DeleteStale(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 1, store.Len())
}

func TestStore_DeleteStale(t *testing.T) {
	store := NewEditSessionStore()
	ctx := context.Background()

	stale := newSession("stale")
	stale.LastTouched = time.Now().Add(-2 * time.Hour)
	fresh := newSession("fresh")

	require.NoError(t, store.Create(ctx, stale))
	require.NoError(t, store.Create(ctx, fresh))

	dropped, err := store.DeleteStale(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 1, store.Len())

	err = store.Update(ctx, "fresh", func(s *editsession.Session) error { return nil })
	assert.NoError(t, err)
	err = store.Update(ctx, "stale", func(s *editsession.Session) error { return nil })
	assert.ErrorIs(t, err, editsession.ErrSessionNotFound)
}
