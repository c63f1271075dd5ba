package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bfd-backend/domain/mission"
	"bfd-backend/pkg/events"
)

type fakeStore struct {
	current map[string]mission.Mission
	setErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{current: make(map[string]mission.Mission)}
}

func (s *fakeStore) GetCurrent(_ context.Context, visitorID string) (*mission.Mission, error) {
	m, ok := s.current[visitorID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (s *fakeStore) SetCurrent(_ context.Context, visitorID string, m mission.Mission) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.current[visitorID] = m
	return nil
}

func (s *fakeStore) ClearCurrent(_ context.Context, visitorID string) error {
	delete(s.current, visitorID)
	return nil
}

func (s *fakeStore) IsCurrentRecent(context.Context, string, int) (bool, error) { return false, nil }
func (s *fakeStore) GetSaved(context.Context, string) ([]mission.Mission, error) {
	return nil, nil
}
func (s *fakeStore) CanSave(context.Context, string) (bool, error)          { return true, nil }
func (s *fakeStore) Save(context.Context, string, mission.Mission) error    { return nil }
func (s *fakeStore) Remove(context.Context, string, string) error           { return nil }

type trackedEvent struct {
	name  string
	props map[string]string
}

type fakeAnalytics struct {
	events []trackedEvent
}

func (a *fakeAnalytics) Track(_ context.Context, event string, properties map[string]string) {
	a.events = append(a.events, trackedEvent{name: event, props: properties})
}

func newExecutor(store *fakeStore, analytics *fakeAnalytics, notifier *events.Notifier) *Executor {
	return New(store, analytics, notifier, nil, zap.NewNop())
}

func TestExecute_Pipeline(t *testing.T) {
	store := newFakeStore()
	analytics := &fakeAnalytics{}
	notifier := events.NewNotifier()

	var published []mission.Mission
	notifier.Subscribe(events.TopicMissionExecuted, func(payload interface{}) {
		published = append(published, payload.(mission.Mission))
	})

	exec := newExecutor(store, analytics, notifier)
	m := mission.Mission{
		ID:              "yyz-lis",
		OriginCode:      "YYZ",
		DestinationCode: "LIS",
		Source:          mission.SourceDealsGrid,
	}

	result := exec.Execute(context.Background(), "visitor-1", m)

	assert.NotEmpty(t, result.Mission.CreatedAt, "execution stamps createdAt")

	stored, err := store.GetCurrent(context.Background(), "visitor-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, result.Mission, *stored, "normalized mission persists as current")

	require.Len(t, analytics.events, 1)
	assert.Equal(t, "mission_executed", analytics.events[0].name)
	assert.Equal(t, map[string]string{
		"origin":      "YYZ",
		"destination": "LIS",
		"source":      "deals_grid",
		"id":          "yyz-lis",
	}, analytics.events[0].props)

	require.Len(t, published, 1)
	assert.Equal(t, result.Mission, published[0])
}

func TestExecute_PreservesCreatedAt(t *testing.T) {
	store := newFakeStore()
	exec := newExecutor(store, &fakeAnalytics{}, events.NewNotifier())
	m := mission.Mission{
		ID:              "m1",
		OriginCode:      "YYZ",
		DestinationCode: "LIS",
		CreatedAt:       "2026-08-01T12:00:00Z",
	}

	result := exec.Execute(context.Background(), "v", m)

	assert.Equal(t, "2026-08-01T12:00:00Z", result.Mission.CreatedAt)
}

func TestExecute_WidgetParamsDefaults(t *testing.T) {
	exec := newExecutor(newFakeStore(), &fakeAnalytics{}, events.NewNotifier())
	m := mission.Mission{OriginCode: "YYZ", DestinationCode: "LIS"}

	result := exec.Execute(context.Background(), "v", m)

	assert.Equal(t, "YYZ", result.WidgetParams["origin"])
	assert.Equal(t, "LIS", result.WidgetParams["destination"])
	assert.Equal(t, "1", result.WidgetParams["adults"])
	assert.Equal(t, "0", result.WidgetParams["trip_class"])
	assert.NotContains(t, result.WidgetParams, "depart_date")
	assert.NotContains(t, result.WidgetParams, "return_date")
}

func TestExecute_StorageFailureDoesNotFail(t *testing.T) {
	store := newFakeStore()
	store.setErr = assert.AnError
	analytics := &fakeAnalytics{}
	exec := newExecutor(store, analytics, events.NewNotifier())

	result := exec.Execute(context.Background(), "v", mission.Mission{
		OriginCode:      "YYZ",
		DestinationCode: "MEX",
	})

	assert.NotEmpty(t, result.DeepLink, "execution completes despite a storage failure")
	assert.Len(t, analytics.events, 1, "analytics still fires")
}

func TestExecute_DefaultsAnalyticsSource(t *testing.T) {
	analytics := &fakeAnalytics{}
	exec := newExecutor(newFakeStore(), analytics, events.NewNotifier())

	exec.Execute(context.Background(), "v", mission.Mission{
		OriginCode:      "YYZ",
		DestinationCode: "LIS",
	})

	require.Len(t, analytics.events, 1)
	assert.Equal(t, "mission_input", analytics.events[0].props["source"])
}

func TestDeepLink(t *testing.T) {
	tests := []struct {
		name string
		m    mission.Mission
		want string
	}{
		{
			name: "codes only",
			m:    mission.Mission{OriginCode: "YYZ", DestinationCode: "LIS"},
			want: "https://www.aviasales.com/search/YYZLIS1",
		},
		{
			name: "round trip with two adults",
			m: mission.Mission{
				OriginCode:      "YYZ",
				DestinationCode: "LIS",
				DepartDate:      "2026-05-01",
				ReturnDate:      "2026-05-15",
				Adults:          2,
			},
			want: "https://www.aviasales.com/search/YYZLIS010515052",
		},
		{
			name: "one way",
			m: mission.Mission{
				OriginCode:      "YYZ",
				DestinationCode: "BKK",
				DepartDate:      "2026-11-09",
			},
			want: "https://www.aviasales.com/search/YYZBKK09111",
		},
		{
			name: "unparseable date is skipped",
			m: mission.Mission{
				OriginCode:      "YYZ",
				DestinationCode: "LIS",
				DepartDate:      "next tuesday",
			},
			want: "https://www.aviasales.com/search/YYZLIS1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeepLink(tt.m))
		})
	}
}

func TestNormalize(t *testing.T) {
	out := Normalize(mission.Mission{OriginCode: "YYZ", DestinationCode: "LIS"})
	assert.NotEmpty(t, out.CreatedAt)

	in := mission.Mission{OriginCode: "YYZ", DestinationCode: "LIS", CreatedAt: "2026-01-01T00:00:00Z"}
	assert.Equal(t, in, Normalize(in), "everything else passes through unchanged")
}
