// Package catalog holds the exercise reference data. The built-in list
// covers the basic barbell lifts; a YAML file can replace it entirely.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Lodziarka/GOD-X/internal/model"
)

type Catalog struct {
	exercises []model.Exercise
	byID      map[string]model.Exercise
}

func defaultExercises() []model.Exercise {
	return []model.Exercise{
		{ID: "bench-press", Name: "Bench Press", Category: "Chest"},
		{ID: "squat", Name: "Squat", Category: "Legs"},
		{ID: "deadlift", Name: "Deadlift", Category: "Back"},
		{ID: "overhead-press", Name: "Overhead Press", Category: "Shoulders"},
		{ID: "barbell-row", Name: "Barbell Row", Category: "Back"},
		{ID: "pull-up", Name: "Pull-Up", Category: "Back"},
		{ID: "biceps-curl", Name: "Biceps Curl", Category: "Arms"},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return build(defaultExercises())
}

type catalogFile struct {
	Exercises []model.Exercise `yaml:"exercises"`
}

// LoadFile reads a catalog from a YAML file. Every exercise needs a
// unique id and a name.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exercise catalog: %w", err)
	}
	var parsed catalogFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse exercise catalog: %w", err)
	}
	if len(parsed.Exercises) == 0 {
		return nil, fmt.Errorf("exercise catalog %s is empty", path)
	}
	seen := make(map[string]bool, len(parsed.Exercises))
	for _, ex := range parsed.Exercises {
		if strings.TrimSpace(ex.ID) == "" || strings.TrimSpace(ex.Name) == "" {
			return nil, fmt.Errorf("exercise catalog %s: every exercise needs an id and a name", path)
		}
		if seen[ex.ID] {
			return nil, fmt.Errorf("exercise catalog %s: duplicate exercise id %q", path, ex.ID)
		}
		seen[ex.ID] = true
	}
	return build(parsed.Exercises), nil
}

func build(exercises []model.Exercise) *Catalog {
	byID := make(map[string]model.Exercise, len(exercises))
	for _, ex := range exercises {
		byID[ex.ID] = ex
	}
	return &Catalog{exercises: exercises, byID: byID}
}

func (c *Catalog) List() []model.Exercise {
	return c.exercises
}

// Get resolves an exercise id. Sessions and records may reference ids
// that are no longer in the catalog; callers must handle the missing
// case.
func (c *Catalog) Get(id string) (model.Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// Search filters by substring of name or category, case-insensitive.
// An empty query returns everything.
func (c *Catalog) Search(query string) []model.Exercise {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.exercises
	}
	out := make([]model.Exercise, 0, len(c.exercises))
	for _, ex := range c.exercises {
		if strings.Contains(strings.ToLower(ex.Name), query) || strings.Contains(strings.ToLower(ex.Category), query) {
			out = append(out, ex)
		}
	}
	return out
}
