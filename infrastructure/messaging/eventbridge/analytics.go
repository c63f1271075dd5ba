// Package eventbridge ships behavioral analytics events to AWS EventBridge.
package eventbridge

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

// eventSource is the EventBridge source attribute on every entry
const eventSource = "bfd.web"

// AnalyticsSink publishes tracked events to an EventBridge bus. Tracking is
// fire-and-forget: delivery failures are logged and swallowed so no user
// action ever depends on analytics succeeding.
type AnalyticsSink struct {
	client       *eventbridge.Client
	eventBusName string
	logger       *zap.Logger
}

// NewAnalyticsSink creates an EventBridge-backed analytics sink
func NewAnalyticsSink(client *eventbridge.Client, eventBusName string, logger *zap.Logger) *AnalyticsSink {
	return &AnalyticsSink{
		client:       client,
		eventBusName: eventBusName,
		logger:       logger,
	}
}

// Track publishes one event entry
func (s *AnalyticsSink) Track(ctx context.Context, event string, properties map[string]string) {
	detail, err := json.Marshal(properties)
	if err != nil {
		s.logger.Warn("failed to marshal analytics properties",
			zap.String("event", event),
			zap.Error(err))
		return
	}

	input := &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(s.eventBusName),
				Source:       aws.String(eventSource),
				DetailType:   aws.String(event),
				Detail:       aws.String(string(detail)),
				Time:         aws.Time(time.Now()),
			},
		},
	}

	result, err := s.client.PutEvents(ctx, input)
	if err != nil {
		s.logger.Warn("failed to publish analytics event",
			zap.String("event", event),
			zap.Error(err))
		return
	}
	if result.FailedEntryCount > 0 {
		for _, entry := range result.Entries {
			if entry.ErrorCode != nil {
				s.logger.Warn("analytics event rejected",
					zap.String("event", event),
					zap.String("errorCode", aws.ToString(entry.ErrorCode)),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)))
			}
		}
		return
	}

	s.logger.Debug("analytics event published",
		zap.String("event", event),
		zap.String("eventBus", s.eventBusName))
}
