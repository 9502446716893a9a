package dynamodb

import (
	"context"
	"fmt"
	"time"

	"gogarvis-backend/domain/audit"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// auditPartition is the fixed partition for the audit trail; newest entries
// are read by descending range query.
const auditPartition = "AUDIT"

// AuditRepository persists the append-only audit trail
type AuditRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewAuditRepository creates an audit repository
func NewAuditRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *AuditRepository {
	return &AuditRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// auditItem is the DynamoDB item structure for one audit entry
type auditItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	EntryID    string `dynamodbav:"EntryID"`
	Action     string `dynamodbav:"Action"`
	Subject    string `dynamodbav:"Subject"`
	Detail     string `dynamodbav:"Detail,omitempty"`
	Timestamp  string `dynamodbav:"Timestamp"`
}

// Append persists one audit entry
func (r *AuditRepository) Append(ctx context.Context, entry audit.Entry) error {
	item := auditItem{
		PK:         auditPartition,
		SK:         fmt.Sprintf("ENTRY#%s#%s", sortKeyTime(entry.Timestamp), entry.ID),
		EntityType: "AUDIT_ENTRY",
		EntryID:    entry.ID,
		Action:     string(entry.Action),
		Subject:    entry.Subject,
		Detail:     entry.Detail,
		Timestamp:  entry.Timestamp.Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put audit entry: %w", err)
	}
	return nil
}

// ListRecent returns audit entries newest first, up to limit
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]audit.Entry, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(auditPartition))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
		Limit:                     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query audit trail: %w", err)
	}

	entries := []audit.Entry{}
	for _, rawItem := range out.Items {
		var item auditItem
		if err := attributevalue.UnmarshalMap(rawItem, &item); err != nil {
			r.logger.Warn("Skipping unreadable audit item", zap.Error(err))
			continue
		}
		ts, err := time.Parse(time.RFC3339Nano, item.Timestamp)
		if err != nil {
			r.logger.Warn("Skipping audit item with bad timestamp",
				zap.String("timestamp", item.Timestamp),
			)
			continue
		}
		entries = append(entries, audit.Entry{
			ID:        item.EntryID,
			Action:    audit.Action(item.Action),
			Subject:   item.Subject,
			Detail:    item.Detail,
			Timestamp: ts,
		})
	}

	return entries, nil
}
