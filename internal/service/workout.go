package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Lodziarka/GOD-X/internal/model"
	"github.com/Lodziarka/GOD-X/internal/store"
)

// Summary is the side value a finished workout produces: the completed
// session, the exercises whose personal record was set or broken, and
// the total work done (sum of weight*reps over every set).
type Summary struct {
	Session              model.WorkoutSession `json:"session"`
	NewRecordExerciseIDs []string             `json:"new_record_exercise_ids"`
	TotalVolumeKg        float64              `json:"total_volume_kg"`
}

// StartWorkout instantiates a session from a plan: one slot per plan
// entry, order and duplicates preserved, each opened with a single
// empty set. The session stays outside the history list until it is
// finished.
func StartWorkout(st *store.Store, planID string) (*model.WorkoutSession, error) {
	if st.Active() != nil {
		return nil, fmt.Errorf("a workout is already in progress: %w", ErrValidation)
	}
	plan, ok := findPlan(st.Plans(), planID)
	if !ok {
		return nil, fmt.Errorf("plan %q does not exist: %w", planID, ErrValidation)
	}
	if len(plan.Exercises) == 0 {
		return nil, fmt.Errorf("plan has no exercises: %w", ErrValidation)
	}

	session := model.WorkoutSession{
		ID:        uuid.NewString(),
		PlanID:    plan.ID,
		Name:      plan.Name,
		Date:      time.Now(),
		Exercises: make([]model.WorkoutExercise, 0, len(plan.Exercises)),
	}
	for _, exerciseID := range plan.Exercises {
		session.Exercises = append(session.Exercises, model.WorkoutExercise{
			ID:         uuid.NewString(),
			ExerciseID: exerciseID,
			Sets:       []model.SetLog{{}},
		})
	}
	if err := st.SetActive(&session); err != nil {
		return nil, err
	}
	return st.Active(), nil
}

// SetWeight writes the weight of one set of the active session.
func SetWeight(st *store.Store, exerciseIndex, setIndex int, weightKg float64) error {
	if weightKg < 0 {
		return fmt.Errorf("weight must be >= 0: %w", ErrValidation)
	}
	set, err := locateSet(st, exerciseIndex, setIndex)
	if err != nil {
		return err
	}
	set.WeightKg = weightKg
	return st.SaveActive()
}

// SetReps writes the rep count of one set of the active session.
func SetReps(st *store.Store, exerciseIndex, setIndex, reps int) error {
	if reps < 0 {
		return fmt.Errorf("reps must be >= 0: %w", ErrValidation)
	}
	set, err := locateSet(st, exerciseIndex, setIndex)
	if err != nil {
		return err
	}
	set.Reps = reps
	return st.SaveActive()
}

// AddSet appends an empty set to the addressed exercise.
func AddSet(st *store.Store, exerciseIndex int) error {
	session, err := activeSession(st)
	if err != nil {
		return err
	}
	if exerciseIndex < 0 || exerciseIndex >= len(session.Exercises) {
		return fmt.Errorf("exercise index %d: %w", exerciseIndex, ErrIndex)
	}
	session.Exercises[exerciseIndex].Sets = append(session.Exercises[exerciseIndex].Sets, model.SetLog{})
	return st.SaveActive()
}

// RemoveSet deletes the addressed set unless it is the exercise's only
// one; every exercise keeps at least one set, so removing the last set
// is a no-op rather than an error.
func RemoveSet(st *store.Store, exerciseIndex, setIndex int) error {
	session, err := activeSession(st)
	if err != nil {
		return err
	}
	if exerciseIndex < 0 || exerciseIndex >= len(session.Exercises) {
		return fmt.Errorf("exercise index %d: %w", exerciseIndex, ErrIndex)
	}
	sets := session.Exercises[exerciseIndex].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return fmt.Errorf("set index %d: %w", setIndex, ErrIndex)
	}
	if len(sets) == 1 {
		return nil
	}
	session.Exercises[exerciseIndex].Sets = append(sets[:setIndex], sets[setIndex+1:]...)
	return st.SaveActive()
}

// CancelWorkout discards the active session without touching history
// or records.
func CancelWorkout(st *store.Store) error {
	if _, err := activeSession(st); err != nil {
		return err
	}
	return st.SetActive(nil)
}

// FinishWorkout closes the active session: it derives record updates
// from the best weight per exercise, replaces the record collection in
// one step, appends the session to history and returns the summary.
// An exercise whose best weight is zero was not performed and changes
// nothing.
func FinishWorkout(st *store.Store) (Summary, error) {
	session, err := activeSession(st)
	if err != nil {
		return Summary{}, err
	}

	now := time.Now()
	updated := append([]model.PersonalRecord(nil), st.Records()...)
	newRecordIDs := make([]string, 0)
	var volume float64

	for _, ex := range session.Exercises {
		var maxWeight float64
		for _, set := range ex.Sets {
			volume += set.WeightKg * float64(set.Reps)
			if set.WeightKg > maxWeight {
				maxWeight = set.WeightKg
			}
		}
		if maxWeight <= 0 {
			continue
		}

		idx := findRecord(updated, ex.ExerciseID)
		switch {
		case idx < 0:
			updated = append(updated, model.PersonalRecord{ExerciseID: ex.ExerciseID, WeightKg: maxWeight, Date: now})
		case maxWeight > updated[idx].WeightKg:
			updated[idx] = model.PersonalRecord{ExerciseID: ex.ExerciseID, WeightKg: maxWeight, Date: now}
		default:
			continue
		}
		if !containsString(newRecordIDs, ex.ExerciseID) {
			newRecordIDs = append(newRecordIDs, ex.ExerciseID)
		}
	}

	finished := *session
	// Records persist before the session moves to history: a failure
	// past this point leaves the session active, and running Finish
	// again re-derives the same records without duplicating them.
	if err := st.ReplaceRecords(updated); err != nil {
		return Summary{}, err
	}
	if err := st.AppendSession(finished); err != nil {
		return Summary{}, err
	}
	if err := st.SetActive(nil); err != nil {
		return Summary{}, err
	}
	return Summary{Session: finished, NewRecordExerciseIDs: newRecordIDs, TotalVolumeKg: volume}, nil
}

func activeSession(st *store.Store) (*model.WorkoutSession, error) {
	session := st.Active()
	if session == nil {
		return nil, fmt.Errorf("no workout in progress: %w", ErrValidation)
	}
	return session, nil
}

func locateSet(st *store.Store, exerciseIndex, setIndex int) (*model.SetLog, error) {
	session, err := activeSession(st)
	if err != nil {
		return nil, err
	}
	if exerciseIndex < 0 || exerciseIndex >= len(session.Exercises) {
		return nil, fmt.Errorf("exercise index %d: %w", exerciseIndex, ErrIndex)
	}
	sets := session.Exercises[exerciseIndex].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return nil, fmt.Errorf("set index %d: %w", setIndex, ErrIndex)
	}
	return &sets[setIndex], nil
}

func findPlan(plans []model.WorkoutPlan, id string) (model.WorkoutPlan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return model.WorkoutPlan{}, false
}

func findRecord(records []model.PersonalRecord, exerciseID string) int {
	for i, r := range records {
		if r.ExerciseID == exerciseID {
			return i
		}
	}
	return -1
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
