package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Lodziarka/GOD-X/internal/model"
	"github.com/Lodziarka/GOD-X/internal/store"
)

// DayTotals is a pure projection over the meal list; it is recomputed
// on every query and never stored.
type DayTotals struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// TotalsForDay sums the meals whose timestamp falls on the same local
// calendar day as the given moment. Storage order is irrelevant.
func TotalsForDay(meals []model.Meal, day time.Time) DayTotals {
	var totals DayTotals
	for _, m := range meals {
		if !sameLocalDay(m.LoggedAt, day) {
			continue
		}
		totals.Calories += m.Calories
		totals.ProteinG += m.ProteinG
		totals.CarbsG += m.CarbsG
		totals.FatG += m.FatG
	}
	return totals
}

// MealsForDay returns the meals logged on the same local calendar day
// as the given moment, in storage order.
func MealsForDay(meals []model.Meal, day time.Time) []model.Meal {
	out := make([]model.Meal, 0, len(meals))
	for _, m := range meals {
		if sameLocalDay(m.LoggedAt, day) {
			out = append(out, m)
		}
	}
	return out
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// AdjustedCalorieTarget raises the daily target by the calories the
// device feed reports as burned.
func AdjustedCalorieTarget(user model.User, health model.HealthSnapshot) int {
	return user.TargetCalories + int(math.Round(health.ActiveCalories))
}

// RemainingCalories never goes negative; eating past the target shows
// zero remaining, not a debt.
func RemainingCalories(user model.User, health model.HealthSnapshot, totals DayTotals) int {
	remaining := AdjustedCalorieTarget(user, health) - totals.Calories
	if remaining < 0 {
		return 0
	}
	return remaining
}

type ProgressBand string

const (
	BandNominal   ProgressBand = "nominal"
	BandNearLimit ProgressBand = "near-limit"
	BandOverLimit ProgressBand = "over-limit"
)

// CalorieProgress is the consumed fraction of the adjusted target. A
// zero target with zero intake counts as no progress; a zero target
// with any intake saturates past the over-limit band.
func CalorieProgress(totalCalories, adjustedTarget int) float64 {
	if adjustedTarget == 0 {
		if totalCalories == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return float64(totalCalories) / float64(adjustedTarget)
}

func ClassifyProgress(fraction float64) ProgressBand {
	switch {
	case fraction > 1.05:
		return BandOverLimit
	case fraction >= 0.90:
		return BandNearLimit
	default:
		return BandNominal
	}
}

// DayStatus is everything the daily dashboard shows: totals for the
// day, the activity-adjusted target and where intake sits against it.
type DayStatus struct {
	Date           string       `json:"date"`
	Totals         DayTotals    `json:"totals"`
	TargetCalories int          `json:"target_calories"`
	AdjustedTarget int          `json:"adjusted_target"`
	Remaining      int          `json:"remaining_calories"`
	Progress       float64      `json:"progress"`
	Band           ProgressBand `json:"band"`
	TargetProteinG float64      `json:"target_protein_g"`
	TargetCarbsG   float64      `json:"target_carbs_g"`
	TargetFatG     float64      `json:"target_fat_g"`
}

func DailyStatus(st *store.Store, now time.Time) DayStatus {
	user := st.User()
	health := st.Health()
	totals := TotalsForDay(st.Meals(), now)
	adjusted := AdjustedCalorieTarget(user, health)
	progress := CalorieProgress(totals.Calories, adjusted)
	return DayStatus{
		Date:           now.Local().Format("2006-01-02"),
		Totals:         totals,
		TargetCalories: user.TargetCalories,
		AdjustedTarget: adjusted,
		Remaining:      RemainingCalories(user, health, totals),
		Progress:       progress,
		Band:           ClassifyProgress(progress),
		TargetProteinG: user.TargetProteinG,
		TargetCarbsG:   user.TargetCarbsG,
		TargetFatG:     user.TargetFatG,
	}
}

// LogMealInput carries the raw field values as the user entered them.
// Calories must parse to a non-negative number; the macro fields fall
// back to zero when empty or unparseable.
type LogMealInput struct {
	Name     string
	Calories string
	Protein  string
	Carbs    string
	Fat      string
	At       time.Time
}

func LogMeal(st *store.Store, in LogMealInput) (model.Meal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Meal{}, fmt.Errorf("meal name is required: %w", ErrValidation)
	}
	calories, err := strconv.ParseFloat(strings.TrimSpace(in.Calories), 64)
	if err != nil {
		return model.Meal{}, fmt.Errorf("calories %q is not a number: %w", in.Calories, ErrValidation)
	}
	if calories < 0 {
		return model.Meal{}, fmt.Errorf("calories must be >= 0: %w", ErrValidation)
	}
	protein, err := parseMacro("protein", in.Protein)
	if err != nil {
		return model.Meal{}, err
	}
	carbs, err := parseMacro("carbs", in.Carbs)
	if err != nil {
		return model.Meal{}, err
	}
	fat, err := parseMacro("fat", in.Fat)
	if err != nil {
		return model.Meal{}, err
	}
	at := in.At
	if at.IsZero() {
		at = time.Now()
	}

	meal := model.Meal{
		ID:       uuid.NewString(),
		Name:     name,
		Calories: int(math.Round(calories)),
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		LoggedAt: at,
	}
	if err := st.SetMeals(append(st.Meals(), meal)); err != nil {
		return model.Meal{}, err
	}
	return meal, nil
}

// DeleteMeal removes a meal by id. Deleting an id that is not present
// is a successful no-op.
func DeleteMeal(st *store.Store, id string) error {
	meals := st.Meals()
	kept := make([]model.Meal, 0, len(meals))
	for _, m := range meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(meals) {
		return nil
	}
	return st.SetMeals(kept)
}

func parseMacro(name, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, nil
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be >= 0: %w", name, ErrValidation)
	}
	return v, nil
}
