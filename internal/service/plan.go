package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Lodziarka/GOD-X/internal/model"
	"github.com/Lodziarka/GOD-X/internal/store"
)

// CreatePlan validates and appends a workout plan. Exercise ids keep
// the caller's order and may repeat; a plan can hold the same exercise
// twice as two separate slots.
func CreatePlan(st *store.Store, name string, exerciseIDs []string) (model.WorkoutPlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.WorkoutPlan{}, fmt.Errorf("plan name is required: %w", ErrValidation)
	}
	if len(exerciseIDs) == 0 {
		return model.WorkoutPlan{}, fmt.Errorf("plan needs at least one exercise: %w", ErrValidation)
	}

	plan := model.WorkoutPlan{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: append([]string(nil), exerciseIDs...),
		CreatedAt: time.Now(),
	}
	if err := st.SetPlans(append(st.Plans(), plan)); err != nil {
		return model.WorkoutPlan{}, err
	}
	return plan, nil
}

// DeletePlan removes a plan by id; unknown ids are a successful no-op.
// Sessions that referenced the plan keep their copy of its name and
// stay valid.
func DeletePlan(st *store.Store, id string) error {
	plans := st.Plans()
	kept := make([]model.WorkoutPlan, 0, len(plans))
	for _, p := range plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(plans) {
		return nil
	}
	return st.SetPlans(kept)
}
