package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Lodziarka/GOD-X/internal/model"
)

// Store holds the persisted entity collections in memory and writes
// each one through to the blob backend after every mutation. It has no
// business logic; the service package is its only writer.
type Store struct {
	blobs Blobs

	user     model.User
	health   model.HealthSnapshot
	meals    []model.Meal
	sessions []model.WorkoutSession
	plans    []model.WorkoutPlan
	records  []model.PersonalRecord
	active   *model.WorkoutSession
}

func defaultUser() model.User {
	return model.User{
		ID:             "user-1",
		Name:           "Athlete",
		TargetCalories: 2500,
		TargetProteinG: 160,
		TargetCarbsG:   250,
		TargetFatG:     70,
	}
}

func defaultHealth() model.HealthSnapshot {
	return model.HealthSnapshot{HeartRate: 72, LastSync: time.Now()}
}

// Open loads every snapshot key from the backend. Keys that were never
// written fall back to empty collections and the default profile.
func Open(blobs Blobs) (*Store, error) {
	s := &Store{
		blobs:    blobs,
		user:     defaultUser(),
		health:   defaultHealth(),
		meals:    []model.Meal{},
		sessions: []model.WorkoutSession{},
		plans:    []model.WorkoutPlan{},
		records:  []model.PersonalRecord{},
	}
	if err := s.load(KeyUser, &s.user); err != nil {
		return nil, err
	}
	if err := s.load(KeyHealth, &s.health); err != nil {
		return nil, err
	}
	if err := s.load(KeyMeals, &s.meals); err != nil {
		return nil, err
	}
	if err := s.load(KeySessions, &s.sessions); err != nil {
		return nil, err
	}
	if err := s.load(KeyPlans, &s.plans); err != nil {
		return nil, err
	}
	if err := s.load(KeyRecords, &s.records); err != nil {
		return nil, err
	}
	if err := s.load(KeyActiveSession, &s.active); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(key string, target any) error {
	data, err := s.blobs.Load(key)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	return nil
}

func (s *Store) save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}
	return s.blobs.Save(key, data)
}

func (s *Store) User() model.User                 { return s.user }
func (s *Store) Health() model.HealthSnapshot     { return s.health }
func (s *Store) Meals() []model.Meal              { return s.meals }
func (s *Store) Sessions() []model.WorkoutSession { return s.sessions }
func (s *Store) Plans() []model.WorkoutPlan       { return s.plans }
func (s *Store) Records() []model.PersonalRecord  { return s.records }

// Active returns the in-progress session, or nil when idle. The
// pointer is the single mutable session instance; it is never part of
// the history list.
func (s *Store) Active() *model.WorkoutSession { return s.active }

func (s *Store) SetUser(u model.User) error {
	if err := s.save(KeyUser, u); err != nil {
		return err
	}
	s.user = u
	return nil
}

func (s *Store) SetHealth(h model.HealthSnapshot) error {
	if err := s.save(KeyHealth, h); err != nil {
		return err
	}
	s.health = h
	return nil
}

func (s *Store) SetMeals(meals []model.Meal) error {
	if err := s.save(KeyMeals, meals); err != nil {
		return err
	}
	s.meals = meals
	return nil
}

func (s *Store) SetPlans(plans []model.WorkoutPlan) error {
	if err := s.save(KeyPlans, plans); err != nil {
		return err
	}
	s.plans = plans
	return nil
}

// ReplaceRecords swaps the whole record collection at once. Workout
// completion relies on this being a single replacement rather than
// per-exercise writes.
func (s *Store) ReplaceRecords(records []model.PersonalRecord) error {
	if err := s.save(KeyRecords, records); err != nil {
		return err
	}
	s.records = records
	return nil
}

func (s *Store) AppendSession(session model.WorkoutSession) error {
	updated := append(s.sessions, session)
	if err := s.save(KeySessions, updated); err != nil {
		return err
	}
	s.sessions = updated
	return nil
}

// SetActive replaces the in-progress session; nil clears it.
func (s *Store) SetActive(session *model.WorkoutSession) error {
	if err := s.save(KeyActiveSession, session); err != nil {
		return err
	}
	s.active = session
	return nil
}

// SaveActive persists in-place mutations of the active session.
func (s *Store) SaveActive() error {
	return s.save(KeyActiveSession, s.active)
}
