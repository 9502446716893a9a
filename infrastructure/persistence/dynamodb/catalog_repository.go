package dynamodb

import (
	"context"
	"fmt"

	"gogarvis-backend/domain/catalog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// CatalogRepository writes the canonical catalog tables to the durable store.
// Serving reads them from memory; this exists so downstream consumers of the
// table see the same reference data the portal serves.
type CatalogRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewCatalogRepository creates a catalog repository
func NewCatalogRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// SeedAll writes every catalog entry. Existing items with the same keys are
// overwritten, so reseeding is idempotent.
func (r *CatalogRepository) SeedAll(ctx context.Context, store *catalog.Store) error {
	if err := seedCatalog(ctx, r, "DOCUMENT", store.Documents.All()); err != nil {
		return err
	}
	if err := seedCatalog(ctx, r, "GLOSSARY_TERM", store.Glossary.All()); err != nil {
		return err
	}
	if err := seedCatalog(ctx, r, "COMPONENT", store.Components.All()); err != nil {
		return err
	}
	if err := seedCatalog(ctx, r, "OPERATOR", store.Operators.All()); err != nil {
		return err
	}
	if err := seedCatalog(ctx, r, "BRAND_PROFILE", store.Brands.All()); err != nil {
		return err
	}

	r.logger.Info("Seeded catalog tables",
		zap.Int("documents", store.Documents.Len()),
		zap.Int("glossary_terms", store.Glossary.Len()),
		zap.Int("components", store.Components.Len()),
		zap.Int("operators", store.Operators.Len()),
		zap.Int("brands", store.Brands.Len()),
	)
	return nil
}

// seedCatalog writes one catalog's entries under PK CATALOG#<entityType>
func seedCatalog[T catalog.Entry](ctx context.Context, r *CatalogRepository, entityType string, entries []T) error {
	for _, e := range entries {
		av, err := attributevalue.MarshalMap(e)
		if err != nil {
			return fmt.Errorf("failed to marshal %s entry: %w", entityType, err)
		}
		av["PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("CATALOG#%s", entityType)}
		av["SK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("ENTRY#%s", e.EntryID())}
		av["EntityType"] = &types.AttributeValueMemberS{Value: entityType}

		_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return fmt.Errorf("failed to put %s entry %s: %w", entityType, e.EntryID(), err)
		}
	}
	return nil
}
