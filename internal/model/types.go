package model

import "time"

// User is the single local profile. Macro targets are daily amounts,
// calories in kcal and protein/carbs/fat in grams.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Avatar           string    `json:"avatar,omitempty"`
	TargetCalories   int       `json:"target_calories"`
	TargetProteinG   float64   `json:"target_protein_g"`
	TargetCarbsG     float64   `json:"target_carbs_g"`
	TargetFatG       float64   `json:"target_fat_g"`
	ConnectedDevices []string  `json:"connected_devices,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HealthSnapshot is the latest biometric reading from the device feed.
// It is replaced wholesale on every sync, never patched.
type HealthSnapshot struct {
	Steps          int       `json:"steps"`
	ActiveCalories float64   `json:"active_calories"`
	HeartRate      int       `json:"heart_rate"`
	DistanceKm     float64   `json:"distance_km"`
	LastSync       time.Time `json:"last_sync"`
}

// Meal is a logged food entry. Its values are fixed at creation;
// correcting a meal means deleting and re-logging it.
type Meal struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatG     float64   `json:"fat_g"`
	LoggedAt time.Time `json:"logged_at"`
}

// Exercise is catalog reference data, read-only to the rest of the app.
type Exercise struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// WorkoutPlan is an ordered list of exercise ids. The same exercise may
// appear more than once; each occurrence becomes its own slot when a
// session starts.
type WorkoutPlan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Exercises []string  `json:"exercises"`
	CreatedAt time.Time `json:"created_at"`
}

type SetLog struct {
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}

// WorkoutExercise is one slot of a session. Sets is never empty.
type WorkoutExercise struct {
	ID         string   `json:"id"`
	ExerciseID string   `json:"exercise_id"`
	Sets       []SetLog `json:"sets"`
}

// WorkoutSession references its plan by id only; deleting the plan
// later does not invalidate the session. Name is copied from the plan
// at start time.
type WorkoutSession struct {
	ID        string            `json:"id"`
	PlanID    string            `json:"plan_id"`
	Name      string            `json:"name"`
	Date      time.Time         `json:"date"`
	Exercises []WorkoutExercise `json:"exercises"`
}

// PersonalRecord is the best weight ever logged for an exercise. There
// is at most one per exercise id and its weight never decreases.
type PersonalRecord struct {
	ExerciseID string    `json:"exercise_id"`
	WeightKg   float64   `json:"weight_kg"`
	Date       time.Time `json:"date"`
}
