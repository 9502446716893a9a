// Package dynamodb implements the durable store repositories over a single
// DynamoDB table keyed by PK/SK.
package dynamodb

import (
	"context"
	"fmt"
	"time"

	"gogarvis-backend/domain/chat"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHistoryRepository persists chat messages under one partition per
// session. The sort key embeds the message timestamp, so a plain ascending
// query yields the exchange order.
type ChatHistoryRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewChatHistoryRepository creates a chat history repository
func NewChatHistoryRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *ChatHistoryRepository {
	return &ChatHistoryRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// chatMessageItem is the DynamoDB item structure for one chat message
type chatMessageItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	SessionID  string `dynamodbav:"SessionID"`
	Role       string `dynamodbav:"Role"`
	Content    string `dynamodbav:"Content"`
	Timestamp  string `dynamodbav:"Timestamp"`
}

func sessionPK(sessionID string) string {
	return fmt.Sprintf("SESSION#%s", sessionID)
}

// messageSK builds the sort key. The random suffix keeps two messages with
// identical timestamps from overwriting each other.
func messageSK(ts time.Time) string {
	return fmt.Sprintf("MSG#%s#%s", sortKeyTime(ts), uuid.New().String()[:8])
}

// Append persists one message
func (r *ChatHistoryRepository) Append(ctx context.Context, msg chat.Message) error {
	item := chatMessageItem{
		PK:         sessionPK(msg.SessionID),
		SK:         messageSK(msg.Timestamp),
		EntityType: "CHAT_MESSAGE",
		SessionID:  msg.SessionID,
		Role:       string(msg.Role),
		Content:    msg.Content,
		Timestamp:  msg.Timestamp.Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal chat message: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put chat message: %w", err)
	}
	return nil
}

// ListBySession returns every message for the session ascending by timestamp.
// An unknown session yields an empty slice.
func (r *ChatHistoryRepository) ListBySession(ctx context.Context, sessionID string) ([]chat.Message, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(sessionPK(sessionID))).
		And(expression.Key("SK").BeginsWith("MSG#"))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	messages := []chat.Message{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ScanIndexForward:          aws.Bool(true),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query chat history: %w", err)
		}

		for _, rawItem := range out.Items {
			var item chatMessageItem
			if err := attributevalue.UnmarshalMap(rawItem, &item); err != nil {
				r.logger.Warn("Skipping unreadable chat message item", zap.Error(err))
				continue
			}
			ts, err := time.Parse(time.RFC3339Nano, item.Timestamp)
			if err != nil {
				r.logger.Warn("Skipping chat message with bad timestamp",
					zap.String("timestamp", item.Timestamp),
				)
				continue
			}
			messages = append(messages, chat.Message{
				SessionID: item.SessionID,
				Role:      chat.Role(item.Role),
				Content:   item.Content,
				Timestamp: ts,
			})
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return messages, nil
}

// DeleteSession removes every persisted message for the session
func (r *ChatHistoryRepository) DeleteSession(ctx context.Context, sessionID string) error {
	keyCond := expression.Key("PK").Equal(expression.Value(sessionPK(sessionID)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return fmt.Errorf("failed to build query expression: %w", err)
	}

	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ProjectionExpression:      aws.String("PK, SK"),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return fmt.Errorf("failed to query chat history for delete: %w", err)
		}

		if err := r.batchDelete(ctx, out.Items); err != nil {
			return err
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return nil
}

// batchDelete removes items in BatchWriteItem chunks of 25
func (r *ChatHistoryRepository) batchDelete(ctx context.Context, items []map[string]types.AttributeValue) error {
	const batchSize = 25

	for i := 0; i < len(items); i += batchSize {
		end := i + batchSize
		if end > len(items) {
			end = len(items)
		}

		requests := make([]types.WriteRequest, 0, end-i)
		for _, item := range items[i:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
						"SK": item["SK"],
					},
				},
			})
		}

		_, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: requests,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to batch delete chat messages: %w", err)
		}
	}

	return nil
}
