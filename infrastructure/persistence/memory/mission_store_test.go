package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bfd-backend/domain/mission"
	"bfd-backend/pkg/events"
)

func newStore() *MissionStore {
	return NewMissionStore(3, events.NewNotifier(), zap.NewNop())
}

func sample(id string) mission.Mission {
	return mission.Mission{
		ID:              id,
		OriginCode:      "YYZ",
		DestinationCode: "LIS",
		Source:          mission.SourceDealsGrid,
	}
}

func TestCurrentMission_RoundTrip(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	m := sample("m1")
	m.CreatedAt = "2026-08-01T00:00:00Z"

	require.NoError(t, store.SetCurrent(ctx, "v1", m))

	got, err := store.GetCurrent(ctx, "v1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m, *got)

	require.NoError(t, store.ClearCurrent(ctx, "v1"))
	got, err = store.GetCurrent(ctx, "v1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCurrentMission_VisitorIsolation(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.SetCurrent(ctx, "v1", sample("m1")))

	got, err := store.GetCurrent(ctx, "v2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetCurrent_NotifiesRouteSubscribers(t *testing.T) {
	notifier := events.NewNotifier()
	store := NewMissionStore(3, notifier, zap.NewNop())

	var selected []events.RoutePayload
	cleared := 0
	notifier.Subscribe(events.TopicRouteSelected, func(payload interface{}) {
		selected = append(selected, payload.(events.RoutePayload))
	})
	notifier.Subscribe(events.TopicRouteCleared, func(interface{}) {
		cleared++
	})

	ctx := context.Background()
	require.NoError(t, store.SetCurrent(ctx, "v1", sample("m1")))
	require.NoError(t, store.ClearCurrent(ctx, "v1"))

	require.Len(t, selected, 1)
	assert.Equal(t, events.RoutePayload{OriginCode: "YYZ", DestinationCode: "LIS"}, selected[0])
	assert.Equal(t, 1, cleared)
}

func TestSave_IdempotentOnID(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "v1", sample("m1")))
	require.NoError(t, store.Save(ctx, "v1", sample("m1")))

	saved, err := store.GetSaved(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestSave_StampsCreatedAt(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "v1", sample("m1")))

	saved, err := store.GetSaved(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.NotEmpty(t, saved[0].CreatedAt)
}

func TestSave_PreservesInsertionOrder(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "v1", sample("m1")))
	require.NoError(t, store.Save(ctx, "v1", sample("m2")))
	require.NoError(t, store.Save(ctx, "v1", sample("m3")))

	saved, err := store.GetSaved(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, "m1", saved[0].ID)
	assert.Equal(t, "m2", saved[1].ID)
	assert.Equal(t, "m3", saved[2].ID)
}

func TestCanSave_SoftCap(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	ok, err := store.CanSave(ctx, "v1")
	require.NoError(t, err)
	assert.True(t, ok)

	for _, id := range []string{"m1", "m2", "m3"} {
		require.NoError(t, store.Save(ctx, "v1", sample(id)))
	}

	ok, err = store.CanSave(ctx, "v1")
	require.NoError(t, err)
	assert.False(t, ok, "cap reached")

	// The store itself does not enforce the cap.
	require.NoError(t, store.Save(ctx, "v1", sample("m4")))
	saved, err := store.GetSaved(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, saved, 4)
}

func TestRemove(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "v1", sample("m1")))
	require.NoError(t, store.Save(ctx, "v1", sample("m2")))

	require.NoError(t, store.Remove(ctx, "v1", "m1"))
	saved, err := store.GetSaved(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "m2", saved[0].ID)

	// Unknown id is a no-op.
	require.NoError(t, store.Remove(ctx, "v1", "nope"))
	saved, err = store.GetSaved(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestIsCurrentRecent(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	tests := []struct {
		name      string
		createdAt string
		want      bool
	}{
		{"created now", now.Format(time.RFC3339), true},
		{"six days ago", now.AddDate(0, 0, -6).Format(time.RFC3339), true},
		{"exactly seven days", now.AddDate(0, 0, -7).Format(time.RFC3339), false},
		{"eight days ago", now.AddDate(0, 0, -8).Format(time.RFC3339), false},
		{"no timestamp", "", false},
		{"garbage timestamp", "not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sample("m1")
			m.CreatedAt = tt.createdAt
			require.NoError(t, store.SetCurrent(ctx, "v1", m))

			recent, err := store.IsCurrentRecent(ctx, "v1", 7)
			require.NoError(t, err)
			assert.Equal(t, tt.want, recent)
		})
	}
}

func TestIsCurrentRecent_NoCurrentMission(t *testing.T) {
	store := newStore()

	recent, err := store.IsCurrentRecent(context.Background(), "v1", 7)
	require.NoError(t, err)
	assert.False(t, recent)
}
