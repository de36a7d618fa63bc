package service_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lodziarka/GOD-X/internal/service"
	"github.com/Lodziarka/GOD-X/internal/store"
)

func TestStartWorkoutInstantiatesPlanSlots(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	// The same exercise twice means two separate slots.
	session := startSession(t, st, "bench-press", "bench-press", "squat")
	require.Len(t, session.Exercises, 3)
	assert.Equal(t, "bench-press", session.Exercises[0].ExerciseID)
	assert.Equal(t, "bench-press", session.Exercises[1].ExerciseID)
	assert.Equal(t, "squat", session.Exercises[2].ExerciseID)
	assert.NotEqual(t, session.Exercises[0].ID, session.Exercises[1].ID)

	for _, ex := range session.Exercises {
		require.Len(t, ex.Sets, 1)
		assert.Zero(t, ex.Sets[0].WeightKg)
		assert.Zero(t, ex.Sets[0].Reps)
	}
	assert.Equal(t, "Push", session.Name)
	assert.Empty(t, st.Sessions(), "active session must stay outside history")
}

func TestStartWorkoutValidation(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	_, err := service.StartWorkout(st, "no-such-plan")
	require.ErrorIs(t, err, service.ErrValidation)

	startSession(t, st, "squat")
	plan, err := service.CreatePlan(st, "Pull", []string{"deadlift"})
	require.NoError(t, err)
	_, err = service.StartWorkout(st, plan.ID)
	require.ErrorIs(t, err, service.ErrValidation, "second session while one is active")
}

func TestSetMutationAndIndexChecks(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	startSession(t, st, "bench-press")

	require.NoError(t, service.SetWeight(st, 0, 0, 80))
	require.NoError(t, service.SetReps(st, 0, 0, 5))
	session := st.Active()
	assert.Equal(t, 80.0, session.Exercises[0].Sets[0].WeightKg)
	assert.Equal(t, 5, session.Exercises[0].Sets[0].Reps)

	require.ErrorIs(t, service.SetWeight(st, 1, 0, 80), service.ErrIndex)
	require.ErrorIs(t, service.SetReps(st, 0, 1, 5), service.ErrIndex)
	require.ErrorIs(t, service.SetWeight(st, -1, 0, 80), service.ErrIndex)
	require.ErrorIs(t, service.AddSet(st, 3), service.ErrIndex)
	require.ErrorIs(t, service.RemoveSet(st, 0, 9), service.ErrIndex)

	require.ErrorIs(t, service.SetWeight(st, 0, 0, -5), service.ErrValidation)
	require.ErrorIs(t, service.SetReps(st, 0, 0, -1), service.ErrValidation)
}

func TestEveryExerciseKeepsAtLeastOneSet(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	startSession(t, st, "squat")

	// Removing the only set is a no-op, not an error.
	require.NoError(t, service.RemoveSet(st, 0, 0))
	assert.Len(t, st.Active().Exercises[0].Sets, 1)

	require.NoError(t, service.AddSet(st, 0))
	require.NoError(t, service.AddSet(st, 0))
	assert.Len(t, st.Active().Exercises[0].Sets, 3)

	require.NoError(t, service.RemoveSet(st, 0, 1))
	assert.Len(t, st.Active().Exercises[0].Sets, 2)
	require.NoError(t, service.RemoveSet(st, 0, 1))
	require.NoError(t, service.RemoveSet(st, 0, 0))
	assert.Len(t, st.Active().Exercises[0].Sets, 1)
}

func TestFinishCreatesRecordAndComputesVolume(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	session := startSession(t, st, "bench-press")

	require.NoError(t, service.SetWeight(st, 0, 0, 80))
	require.NoError(t, service.SetReps(st, 0, 0, 5))
	require.NoError(t, service.AddSet(st, 0))
	require.NoError(t, service.SetWeight(st, 0, 1, 85))
	require.NoError(t, service.SetReps(st, 0, 1, 3))

	summary, err := service.FinishWorkout(st)
	require.NoError(t, err)

	assert.Equal(t, 655.0, summary.TotalVolumeKg)
	assert.Equal(t, []string{"bench-press"}, summary.NewRecordExerciseIDs)
	assert.Equal(t, session.ID, summary.Session.ID)

	require.Len(t, st.Records(), 1)
	assert.Equal(t, 85.0, st.Records()[0].WeightKg)

	assert.Nil(t, st.Active())
	require.Len(t, st.Sessions(), 1)
	assert.Equal(t, session.ID, st.Sessions()[0].ID)
}

func TestFinishNeverLowersARecord(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	startSession(t, st, "bench-press")
	require.NoError(t, service.SetWeight(st, 0, 0, 90))
	require.NoError(t, service.SetReps(st, 0, 0, 1))
	_, err := service.FinishWorkout(st)
	require.NoError(t, err)

	startSession(t, st, "bench-press")
	require.NoError(t, service.SetWeight(st, 0, 0, 85))
	require.NoError(t, service.SetReps(st, 0, 0, 5))
	summary, err := service.FinishWorkout(st)
	require.NoError(t, err)

	assert.Empty(t, summary.NewRecordExerciseIDs)
	require.Len(t, st.Records(), 1)
	assert.Equal(t, 90.0, st.Records()[0].WeightKg)
}

func TestRecordsStayUniquePerExercise(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	// Duplicate slots in one session still yield a single record at
	// the session's best weight.
	startSession(t, st, "squat", "squat")
	require.NoError(t, service.SetWeight(st, 0, 0, 100))
	require.NoError(t, service.SetWeight(st, 1, 0, 110))
	summary, err := service.FinishWorkout(st)
	require.NoError(t, err)

	assert.Equal(t, []string{"squat"}, summary.NewRecordExerciseIDs)
	require.Len(t, st.Records(), 1)
	assert.Equal(t, 110.0, st.Records()[0].WeightKg)

	startSession(t, st, "squat")
	require.NoError(t, service.SetWeight(st, 0, 0, 120))
	_, err = service.FinishWorkout(st)
	require.NoError(t, err)
	require.Len(t, st.Records(), 1)
	assert.Equal(t, 120.0, st.Records()[0].WeightKg)
}

func TestUnperformedExerciseChangesNothing(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	startSession(t, st, "deadlift")

	// All sets left at zero: reps without weight is still unperformed.
	require.NoError(t, service.SetReps(st, 0, 0, 10))
	summary, err := service.FinishWorkout(st)
	require.NoError(t, err)

	assert.Empty(t, summary.NewRecordExerciseIDs)
	assert.Empty(t, st.Records())
	assert.Equal(t, 0.0, summary.TotalVolumeKg)
	assert.Len(t, st.Sessions(), 1)
}

func TestCancelDiscardsActiveSession(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	startSession(t, st, "squat")
	require.NoError(t, service.SetWeight(st, 0, 0, 100))

	require.NoError(t, service.CancelWorkout(st))
	assert.Nil(t, st.Active())
	assert.Empty(t, st.Sessions())
	assert.Empty(t, st.Records())

	require.ErrorIs(t, service.CancelWorkout(st), service.ErrValidation)
	_, err := service.FinishWorkout(st)
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestDeletingPlanKeepsSessionHistory(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	plan, err := service.CreatePlan(st, "Legs", []string{"squat"})
	require.NoError(t, err)
	_, err = service.StartWorkout(st, plan.ID)
	require.NoError(t, err)
	require.NoError(t, service.SetWeight(st, 0, 0, 60))
	_, err = service.FinishWorkout(st)
	require.NoError(t, err)

	require.NoError(t, service.DeletePlan(st, plan.ID))
	require.Len(t, st.Sessions(), 1)
	assert.Equal(t, plan.ID, st.Sessions()[0].PlanID)
	assert.Equal(t, "Legs", st.Sessions()[0].Name, "name was copied at start time")
}

func TestFinishWorkoutFailedPersistKeepsSessionActive(t *testing.T) {
	t.Parallel()
	blobs, err := store.OpenSQLite(filepath.Join(t.TempDir(), "godx.db"))
	require.NoError(t, err)
	st, err := store.Open(blobs)
	require.NoError(t, err)

	startSession(t, st, "bench-press")
	require.NoError(t, service.SetWeight(st, 0, 0, 80))
	require.NoError(t, service.SetReps(st, 0, 0, 5))

	// A failed write must not land the workout in a half-finished
	// state: the session stays active and can be finished again.
	require.NoError(t, blobs.Close())
	_, err = service.FinishWorkout(st)
	require.Error(t, err)
	assert.NotNil(t, st.Active())
	assert.Empty(t, st.Sessions())
	assert.Empty(t, st.Records())
}
