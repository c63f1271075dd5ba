// Package dynamodb implements the mission store on a single DynamoDB table.
//
// Key layout:
//
//	PK = VISITOR#<visitor_id>
//	SK = CURRENT                       (the current mission slot)
//	SK = SAVED#<seq>#<mission_id>      (saved list, seq preserves insertion order)
//
// Failure semantics: reads degrade to absent, writes degrade to a dropped
// write, both with a logged warning. A storage outage must never surface to
// the visitor.
package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"bfd-backend/domain/mission"
	"bfd-backend/pkg/events"
	"bfd-backend/pkg/utils"
)

const (
	skCurrent     = "CURRENT"
	skSavedPrefix = "SAVED#"
)

// missionRecord is how a mission is stored. The mission body rides as a JSON
// blob so a corrupt record can be detected and treated as absent on read.
type missionRecord struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	MissionID string `dynamodbav:"MissionID"`
	Source    string `dynamodbav:"Source"`
	CreatedAt string `dynamodbav:"CreatedAt"`
	Data      string `dynamodbav:"Data"`
}

// MissionStore implements the mission store on DynamoDB
type MissionStore struct {
	client    *dynamodb.Client
	tableName string
	maxSaved  int
	notifier  *events.Notifier
	logger    *zap.Logger
	now       func() time.Time
}

// NewMissionStore creates a DynamoDB-backed mission store
func NewMissionStore(client *dynamodb.Client, tableName string, maxSaved int, notifier *events.Notifier, logger *zap.Logger) *MissionStore {
	return &MissionStore{
		client:    client,
		tableName: tableName,
		maxSaved:  maxSaved,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func visitorPK(visitorID string) string {
	return fmt.Sprintf("VISITOR#%s", visitorID)
}

func (s *MissionStore) toRecord(visitorID, sk string, m mission.Mission) (missionRecord, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return missionRecord{}, fmt.Errorf("failed to marshal mission: %w", err)
	}
	return missionRecord{
		PK:        visitorPK(visitorID),
		SK:        sk,
		MissionID: m.ID,
		Source:    string(m.Source),
		CreatedAt: m.CreatedAt,
		Data:      string(data),
	}, nil
}

// decode unmarshals a record's mission body. Corrupt data logs a warning and
// reads as absent.
func (s *MissionStore) decode(record missionRecord) *mission.Mission {
	var m mission.Mission
	if err := json.Unmarshal([]byte(record.Data), &m); err != nil {
		s.logger.Warn("corrupt mission record treated as absent",
			zap.String("pk", record.PK),
			zap.String("sk", record.SK),
			zap.Error(err))
		return nil
	}
	return &m
}

// GetCurrent returns the visitor's current mission, or nil when absent or
// unreadable
func (s *MissionStore) GetCurrent(ctx context.Context, visitorID string) (*mission.Mission, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: visitorPK(visitorID)},
			"SK": &types.AttributeValueMemberS{Value: skCurrent},
		},
	})
	if err != nil {
		s.logger.Warn("failed to read current mission",
			zap.String("visitorId", visitorID),
			zap.Error(err))
		return nil, nil
	}
	if result.Item == nil {
		return nil, nil
	}

	var record missionRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		s.logger.Warn("corrupt current mission item treated as absent",
			zap.String("visitorId", visitorID),
			zap.Error(err))
		return nil, nil
	}
	return s.decode(record), nil
}

// SetCurrent overwrites the current mission slot and notifies route
// subscribers. A failed write is dropped with a logged warning.
func (s *MissionStore) SetCurrent(ctx context.Context, visitorID string, m mission.Mission) error {
	record, err := s.toRecord(visitorID, skCurrent, m)
	if err == nil {
		err = s.put(ctx, record)
	}
	if err != nil {
		s.logger.Warn("dropped current mission write",
			zap.String("visitorId", visitorID),
			zap.String("missionId", m.ID),
			zap.Error(err))
	}

	s.notifier.Publish(events.TopicRouteSelected, events.RoutePayload{
		OriginCode:      m.OriginCode,
		DestinationCode: m.DestinationCode,
	})
	return nil
}

// ClearCurrent deletes the current mission slot and notifies route
// subscribers
func (s *MissionStore) ClearCurrent(ctx context.Context, visitorID string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: visitorPK(visitorID)},
			"SK": &types.AttributeValueMemberS{Value: skCurrent},
		},
	})
	if err != nil {
		s.logger.Warn("failed to clear current mission",
			zap.String("visitorId", visitorID),
			zap.Error(err))
	}

	s.notifier.Publish(events.TopicRouteCleared, nil)
	return nil
}

// IsCurrentRecent reports whether the current mission is strictly younger
// than maxAgeDays
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

// GetSaved returns the visitor's saved missions in insertion order. Corrupt
// records are skipped; a failed query reads as an empty list.
func (s *MissionStore) GetSaved(ctx context.Context, visitorID string) ([]mission.Mission, error) {
	records, err := s.savedRecords(ctx, visitorID)
	if err != nil {
		s.logger.Warn("failed to read saved missions",
			zap.String("visitorId", visitorID),
			zap.Error(err))
		return []mission.Mission{}, nil
	}

	saved := make([]mission.Mission, 0, len(records))
	for _, record := range records {
		if m := s.decode(record); m != nil {
			saved = append(saved, *m)
		}
	}
	return saved, nil
}

// CanSave reports whether the visitor is under the saved cap
func (s *MissionStore) CanSave(ctx context.Context, visitorID string) (bool, error) {
	saved, err := s.GetSaved(ctx, visitorID)
	if err != nil {
		return false, err
	}
	return len(saved) < s.maxSaved, nil
}

// Save appends a mission to the saved list, stamping CreatedAt when missing.
// Saving an ID already on the list is a logged no-op. The cap is not
// enforced here.
func (s *MissionStore) Save(ctx context.Context, visitorID string, m mission.Mission) error {
	records, err := s.savedRecords(ctx, visitorID)
	if err != nil {
		s.logger.Warn("dropped mission save, saved list unreadable",
			zap.String("visitorId", visitorID),
			zap.Error(err))
		return nil
	}

	for _, record := range records {
		if record.MissionID == m.ID {
			s.logger.Info("mission already saved",
				zap.String("visitorId", visitorID),
				zap.String("missionId", m.ID))
			return nil
		}
	}

	if m.CreatedAt == "" {
		m.CreatedAt = utils.NowRFC3339()
	}

	sk := fmt.Sprintf("%s%020d#%s", skSavedPrefix, s.now().UnixNano(), m.ID)
	record, err := s.toRecord(visitorID, sk, m)
	if err == nil {
		err = s.put(ctx, record)
	}
	if err != nil {
		s.logger.Warn("dropped mission save",
			zap.String("visitorId", visitorID),
			zap.String("missionId", m.ID),
			zap.Error(err))
	}
	return nil
}

// Remove deletes the saved mission with the given ID. Unknown IDs are a
// no-op.
func (s *MissionStore) Remove(ctx context.Context, visitorID string, missionID string) error {
	records, err := s.savedRecords(ctx, visitorID)
	if err != nil {
		s.logger.Warn("failed to read saved missions for removal",
			zap.String("visitorId", visitorID),
			zap.Error(err))
		return nil
	}

	for _, record := range records {
		if record.MissionID != missionID {
			continue
		}
		_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key: map[string]types.AttributeValue{
				"PK": &types.AttributeValueMemberS{Value: record.PK},
				"SK": &types.AttributeValueMemberS{Value: record.SK},
			},
		})
		if err != nil {
			s.logger.Warn("failed to remove saved mission",
				zap.String("visitorId", visitorID),
				zap.String("missionId", missionID),
				zap.Error(err))
		}
	}
	return nil
}

func (s *MissionStore) put(ctx context.Context, record missionRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal mission record: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put mission record: %w", err)
	}
	return nil
}

// savedRecords queries the visitor's saved partition, following pagination,
// in SK order. The zero-padded sequence in the SK makes that insertion order.
func (s *MissionStore) savedRecords(ctx context.Context, visitorID string) ([]missionRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: visitorPK(visitorID)},
			":sk": &types.AttributeValueMemberS{Value: skSavedPrefix},
		},
		ScanIndexForward: aws.Bool(true),
	}

	var records []missionRecord
	for {
		result, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query saved missions: %w", err)
		}
		for _, item := range result.Items {
			var record missionRecord
			if err := attributevalue.UnmarshalMap(item, &record); err != nil {
				s.logger.Warn("skipping unreadable saved mission item",
					zap.String("visitorId", visitorID),
					zap.Error(err))
				continue
			}
			if strings.HasPrefix(record.SK, skSavedPrefix) {
				records = append(records, record)
			}
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return records, nil
}
