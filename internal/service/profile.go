package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lodziarka/GOD-X/internal/model"
	"github.com/Lodziarka/GOD-X/internal/store"
)

// RenameProfile updates the display name and avatar reference.
func RenameProfile(st *store.Store, name, avatar string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("profile name is required: %w", ErrValidation)
	}
	user := st.User()
	user.Name = name
	user.Avatar = strings.TrimSpace(avatar)
	user.UpdatedAt = time.Now()
	return st.SetUser(user)
}

type GoalsInput struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// UpdateGoals replaces the daily macro targets.
func UpdateGoals(st *store.Store, in GoalsInput) error {
	if in.Calories < 0 {
		return fmt.Errorf("calories must be >= 0: %w", ErrValidation)
	}
	if in.ProteinG < 0 || in.CarbsG < 0 || in.FatG < 0 {
		return fmt.Errorf("macro targets must be >= 0: %w", ErrValidation)
	}
	user := st.User()
	user.TargetCalories = in.Calories
	user.TargetProteinG = in.ProteinG
	user.TargetCarbsG = in.CarbsG
	user.TargetFatG = in.FatG
	user.UpdatedAt = time.Now()
	return st.SetUser(user)
}

// ConnectDevice adds a device id to the connected set; connecting an
// already connected device changes nothing.
func ConnectDevice(st *store.Store, deviceID string) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return fmt.Errorf("device id is required: %w", ErrValidation)
	}
	user := st.User()
	if containsString(user.ConnectedDevices, deviceID) {
		return nil
	}
	user.ConnectedDevices = append(user.ConnectedDevices, deviceID)
	user.UpdatedAt = time.Now()
	return st.SetUser(user)
}

// DisconnectDevice removes a device id; unknown ids are a no-op.
func DisconnectDevice(st *store.Store, deviceID string) error {
	user := st.User()
	kept := make([]string, 0, len(user.ConnectedDevices))
	for _, id := range user.ConnectedDevices {
		if id != deviceID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(user.ConnectedDevices) {
		return nil
	}
	user.ConnectedDevices = kept
	user.UpdatedAt = time.Now()
	return st.SetUser(user)
}

// ApplyHealthSnapshot replaces the stored snapshot wholesale with a
// reading from the device feed.
func ApplyHealthSnapshot(st *store.Store, snap model.HealthSnapshot) error {
	if snap.Steps < 0 || snap.ActiveCalories < 0 || snap.DistanceKm < 0 {
		return fmt.Errorf("health snapshot values must be >= 0: %w", ErrValidation)
	}
	if snap.HeartRate <= 0 {
		return fmt.Errorf("heart rate must be > 0: %w", ErrValidation)
	}
	if snap.LastSync.IsZero() {
		snap.LastSync = time.Now()
	}
	return st.SetHealth(snap)
}
