package dynamodb

import (
	"context"
	"fmt"
	"time"

	"gogarvis-backend/domain/status"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// statusPartition is the fixed partition holding all status check-ins. The
// table is small and one partition keeps range reads chronological.
const statusPartition = "STATUS"

// StatusRepository persists client status check-ins
type StatusRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewStatusRepository creates a status repository
func NewStatusRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *StatusRepository {
	return &StatusRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// statusItem is the DynamoDB item structure for one check-in
type statusItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	CheckID    string `dynamodbav:"CheckID"`
	ClientName string `dynamodbav:"ClientName"`
	Timestamp  string `dynamodbav:"Timestamp"`
}

// Save persists one check-in
func (r *StatusRepository) Save(ctx context.Context, check status.Check) error {
	item := statusItem{
		PK:         statusPartition,
		SK:         fmt.Sprintf("CHECK#%s#%s", sortKeyTime(check.Timestamp), check.ID),
		EntityType: "STATUS_CHECK",
		CheckID:    check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp.Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal status check: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put status check: %w", err)
	}
	return nil
}

// List returns check-ins in chronological order, up to limit
func (r *StatusRepository) List(ctx context.Context, limit int) ([]status.Check, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(statusPartition))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(true),
		Limit:                     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query status checks: %w", err)
	}

	checks := []status.Check{}
	for _, rawItem := range out.Items {
		var item statusItem
		if err := attributevalue.UnmarshalMap(rawItem, &item); err != nil {
			r.logger.Warn("Skipping unreadable status item", zap.Error(err))
			continue
		}
		ts, err := time.Parse(time.RFC3339Nano, item.Timestamp)
		if err != nil {
			r.logger.Warn("Skipping status item with bad timestamp",
				zap.String("timestamp", item.Timestamp),
			)
			continue
		}
		checks = append(checks, status.Check{
			ID:         item.CheckID,
			ClientName: item.ClientName,
			Timestamp:  ts,
		})
	}

	return checks, nil
}
