// Package local provides a log-only analytics sink for development, where no
// event bus is configured.
package local

import (
	"context"

	"go.uber.org/zap"
)

// AnalyticsSink logs tracked events instead of shipping them anywhere
type AnalyticsSink struct {
	logger *zap.Logger
}

// NewAnalyticsSink creates a log-only analytics sink
func NewAnalyticsSink(logger *zap.Logger) *AnalyticsSink {
	return &AnalyticsSink{logger: logger}
}

// Track logs the event locally
func (s *AnalyticsSink) Track(_ context.Context, event string, properties map[string]string) {
	fields := make([]zap.Field, 0, len(properties)+1)
	fields = append(fields, zap.String("event", event))
	for k, v := range properties {
		fields = append(fields, zap.String(k, v))
	}
	s.logger.Info("analytics event", fields...)
}
