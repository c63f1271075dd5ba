// Package ports declares the interfaces the application layer depends on.
// Implementations live under infrastructure.
package ports

import (
	"context"

	"bfd-backend/domain/mission"
)

// MissionStore defines the interface for visitor-scoped mission persistence.
// This is a port in hexagonal architecture - the application doesn't know
// about the backing store.
//
// Read operations degrade gracefully: a corrupt or unreadable record reads as
// absent rather than surfacing an error to the caller.
type MissionStore interface {
	// GetCurrent retrieves the visitor's current mission, if any
	GetCurrent(ctx context.Context, visitorID string) (*mission.Mission, error)

	// SetCurrent replaces the visitor's current mission
	SetCurrent(ctx context.Context, visitorID string, m mission.Mission) error

	// ClearCurrent removes the visitor's current mission
	ClearCurrent(ctx context.Context, visitorID string) error

	// IsCurrentRecent reports whether the current mission was created
	// strictly fewer than maxAgeDays ago
	IsCurrentRecent(ctx context.Context, visitorID string, maxAgeDays int) (bool, error)

	// GetSaved retrieves the visitor's saved missions in insertion order
	GetSaved(ctx context.Context, visitorID string) ([]mission.Mission, error)

	// CanSave reports whether the visitor is under the saved-mission cap.
	// The store itself never enforces the cap on Save.
	CanSave(ctx context.Context, visitorID string) (bool, error)

	// Save appends a mission to the visitor's saved list, stamping
	// CreatedAt when missing. Saving an ID already on the list is a
	// logged no-op.
	Save(ctx context.Context, visitorID string, m mission.Mission) error

	// Remove deletes a saved mission by ID. Removing an unknown ID is a
	// no-op.
	Remove(ctx context.Context, visitorID string, missionID string) error
}

// AnalyticsSink receives behavioral events. Implementations must never fail
// the calling operation; delivery problems are logged and swallowed.
type AnalyticsSink interface {
	// Track records a named event with free-form properties
	Track(ctx context.Context, event string, properties map[string]string)
}

// MetricsEmitter publishes operational counters
type MetricsEmitter interface {
	// Count increments a named counter by delta
	Count(ctx context.Context, metric string, delta float64)
}
