// Package device produces health snapshots the way a paired wearable
// would: bounded increments on top of the previous reading, replacing
// the snapshot wholesale on every sync.
package device

import (
	"context"
	"math/rand"
	"time"

	"github.com/Lodziarka/GOD-X/internal/model"
)

const DefaultSyncInterval = 15 * time.Second

type Feed struct {
	Interval time.Duration
	rng      *rand.Rand
	now      func() time.Time
}

func NewFeed(interval time.Duration) *Feed {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &Feed{
		Interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// SyncNow builds the next snapshot from the previous one. Steps,
// active calories and distance only grow; heart rate floats in a
// resting-to-working range.
func (f *Feed) SyncNow(prev model.HealthSnapshot) model.HealthSnapshot {
	return model.HealthSnapshot{
		Steps:          prev.Steps + f.rng.Intn(50),
		ActiveCalories: prev.ActiveCalories + f.rng.Float64()*5,
		HeartRate:      65 + f.rng.Intn(25),
		DistanceKm:     prev.DistanceKm + f.rng.Float64()*0.1,
		LastSync:       f.now(),
	}
}

// Run emits a snapshot every interval until the context is cancelled.
// The latest function supplies the previous reading; apply receives
// the replacement.
func (f *Feed) Run(ctx context.Context, latest func() model.HealthSnapshot, apply func(model.HealthSnapshot)) {
	ticker := time.NewTicker(f.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			apply(f.SyncNow(latest()))
		}
	}
}
