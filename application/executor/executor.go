// Package executor is the single choke point for running a mission. Every
// trigger path (deal card, suggestion card, saved resume, destination CTA)
// funnels through Execute.
package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bfd-backend/application/ports"
	"bfd-backend/application/widget"
	"bfd-backend/domain/mission"
	"bfd-backend/pkg/events"
	"bfd-backend/pkg/utils"
)

const deepLinkBase = "https://www.aviasales.com/search"

// Result is what a single execution hands back to the caller
type Result struct {
	Mission      mission.Mission   `json:"mission"`
	WidgetParams map[string]string `json:"widgetParams"`
	DeepLink     string            `json:"deepLink"`
}

// Executor runs the execution pipeline against injected collaborators
type Executor struct {
	store     ports.MissionStore
	analytics ports.AnalyticsSink
	notifier  *events.Notifier
	metrics   ports.MetricsEmitter
	logger    *zap.Logger
}

// New creates an Executor. metrics may be nil.
func New(store ports.MissionStore, analytics ports.AnalyticsSink, notifier *events.Notifier, metrics ports.MetricsEmitter, logger *zap.Logger) *Executor {
	return &Executor{
		store:     store,
		analytics: analytics,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
	}
}

// Normalize stamps CreatedAt when it is missing. Everything else passes
// through untouched; normalization never invents or corrects route or budget
// values and never fails.
func Normalize(m mission.Mission) mission.Mission {
	if m.CreatedAt == "" {
		m.CreatedAt = utils.NowRFC3339()
	}
	return m
}

// Execute runs the fixed pipeline: normalize, persist as the visitor's
// current mission, derive widget params and the deep link, track the
// execution, broadcast to subscribers. Persistence problems degrade to a
// logged warning; Execute itself never fails.
//
// Re-executing the same mission is last-write-wins on the current slot but
// tracks a fresh analytics event each time. Each execution is a real user
// action worth counting.
func (e *Executor) Execute(ctx context.Context, visitorID string, m mission.Mission) Result {
	normalized := Normalize(m)

	if err := e.store.SetCurrent(ctx, visitorID, normalized); err != nil {
		e.logger.Warn("failed to persist current mission",
			zap.String("visitorId", visitorID),
			zap.String("missionId", normalized.ID),
			zap.Error(err))
	}

	params := widget.Params(normalized)
	deepLink := DeepLink(normalized)

	source := normalized.Source
	if source == "" {
		source = mission.SourceMissionInput
	}
	e.analytics.Track(ctx, "mission_executed", map[string]string{
		"origin":      normalized.OriginCode,
		"destination": normalized.DestinationCode,
		"source":      string(source),
		"id":          normalized.ID,
	})

	if e.metrics != nil {
		e.metrics.Count(ctx, "MissionExecutions", 1)
	}

	e.notifier.Publish(events.TopicMissionExecuted, normalized)

	return Result{
		Mission:      normalized,
		WidgetParams: params,
		DeepLink:     deepLink,
	}
}

// DeepLink builds the affiliate search URL for a mission. The path is the
// origin and destination codes followed by DDMM depart and return dates when
// present, then the adult count. Unparseable dates are skipped rather than
// breaking the link.
func DeepLink(m mission.Mission) string {
	path := m.OriginCode + m.DestinationCode

	if m.DepartDate != "" {
		if t, err := utils.ParseISODate(m.DepartDate); err == nil {
			path += utils.FormatDDMM(t)
		}
	}
	if m.ReturnDate != "" {
		if t, err := utils.ParseISODate(m.ReturnDate); err == nil {
			path += utils.FormatDDMM(t)
		}
	}

	return fmt.Sprintf("%s/%s%d", deepLinkBase, path, m.AdultCount())
}
