// Package memory provides an in-process MissionStore used in development and
// tests.
package memory

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"bfd-backend/domain/mission"
	"bfd-backend/pkg/events"
	"bfd-backend/pkg/utils"
)

type visitorState struct {
	current *mission.Mission
	saved   []mission.Mission
}

// MissionStore keeps visitor mission state in a map. Safe for concurrent use.
type MissionStore struct {
	mu       sync.RWMutex
	visitors map[string]*visitorState
	maxSaved int
	notifier *events.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewMissionStore creates an empty in-memory store
func NewMissionStore(maxSaved int, notifier *events.Notifier, logger *zap.Logger) *MissionStore {
	return &MissionStore{
		visitors: make(map[string]*visitorState),
		maxSaved: maxSaved,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *MissionStore) state(visitorID string) *visitorState {
	st, ok := s.visitors[visitorID]
	if !ok {
		st = &visitorState{}
		s.visitors[visitorID] = st
	}
	return st
}

// GetCurrent returns the visitor's current mission, or nil when absent
func (s *MissionStore) GetCurrent(_ context.Context, visitorID string) (*mission.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.visitors[visitorID]
	if !ok || st.current == nil {
		return nil, nil
	}
	m := *st.current
	return &m, nil
}

// SetCurrent overwrites the current mission and notifies route subscribers
func (s *MissionStore) SetCurrent(_ context.Context, visitorID string, m mission.Mission) error {
	s.mu.Lock()
	s.state(visitorID).current = &m
	s.mu.Unlock()

	s.notifier.Publish(events.TopicRouteSelected, events.RoutePayload{
		OriginCode:      m.OriginCode,
		DestinationCode: m.DestinationCode,
	})
	return nil
}

// ClearCurrent removes the current mission and notifies route subscribers
func (s *MissionStore) ClearCurrent(_ context.Context, visitorID string) error {
	s.mu.Lock()
	if st, ok := s.visitors[visitorID]; ok {
		st.current = nil
	}
	s.mu.Unlock()

	s.notifier.Publish(events.TopicRouteCleared, nil)
	return nil
}

// IsCurrentRecent reports whether the current mission is strictly younger
// than maxAgeDays. Missing mission or timestamp reads as not recent.
func (s *MissionStore) IsCurrentRecent(ctx context.Context, visitorID string, maxAgeDays int) (bool, error) {
	current, err := s.GetCurrent(ctx, visitorID)
	if err != nil || current == nil || current.CreatedAt == "" {
		return false, err
	}

	createdAt, err := utils.ParseRFC3339(current.CreatedAt)
	if err != nil {
		s.logger.Warn("current mission has unparseable createdAt",
			zap.String("visitorId", visitorID),
			zap.String("createdAt", current.CreatedAt))
		return false, nil
	}

	ageDays := s.now().Sub(createdAt).Hours() / 24
	return ageDays < float64(maxAgeDays), nil
}

// GetSaved returns the saved missions in insertion order
func (s *MissionStore) GetSaved(_ context.Context, visitorID string) ([]mission.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.visitors[visitorID]
	if !ok {
		return []mission.Mission{}, nil
	}
	saved := make([]mission.Mission, len(st.saved))
	copy(saved, st.saved)
	return saved, nil
}

// CanSave reports whether the visitor is under the saved cap
func (s *MissionStore) CanSave(_ context.Context, visitorID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.visitors[visitorID]
	if !ok {
		return true, nil
	}
	return len(st.saved) < s.maxSaved, nil
}

// Save appends the mission, stamping CreatedAt when missing. Duplicate IDs
// are a logged no-op. The cap is not enforced here; callers check CanSave
// and surface the upsell path themselves.
func (s *MissionStore) Save(_ context.Context, visitorID string, m mission.Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(visitorID)
	for _, existing := range st.saved {
		if existing.ID == m.ID {
			s.logger.Info("mission already saved",
				zap.String("visitorId", visitorID),
				zap.String("missionId", m.ID))
			return nil
		}
	}

	if m.CreatedAt == "" {
		m.CreatedAt = utils.NowRFC3339()
	}
	st.saved = append(st.saved, m)
	return nil
}

// Remove filters out the mission with the given ID. Unknown IDs are a no-op.
func (s *MissionStore) Remove(_ context.Context, visitorID string, missionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.visitors[visitorID]
	if !ok {
		return nil
	}
	filtered := st.saved[:0]
	for _, m := range st.saved {
		if m.ID != missionID {
			filtered = append(filtered, m)
		}
	}
	st.saved = filtered
	return nil
}
