package service_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lodziarka/GOD-X/internal/model"
	"github.com/Lodziarka/GOD-X/internal/service"
	"github.com/Lodziarka/GOD-X/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	blobs, err := store.OpenSQLite(filepath.Join(t.TempDir(), "godx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = blobs.Close() })

	st, err := store.Open(blobs)
	require.NoError(t, err)
	return st
}

func startSession(t *testing.T, st *store.Store, exerciseIDs ...string) *model.WorkoutSession {
	t.Helper()
	plan, err := service.CreatePlan(st, "Push", exerciseIDs)
	require.NoError(t, err)
	session, err := service.StartWorkout(st, plan.ID)
	require.NoError(t, err)
	return session
}
