package di

import (
	"context"
	"fmt"
	"time"

	"gogarvis-backend/application/ports"
	"gogarvis-backend/application/services"
	"gogarvis-backend/domain/catalog"
	"gogarvis-backend/infrastructure/config"
	"gogarvis-backend/infrastructure/llm"
	"gogarvis-backend/infrastructure/messaging/eventbridge"
	"gogarvis-backend/infrastructure/pdf"
	ddbpersistence "gogarvis-backend/infrastructure/persistence/dynamodb"
	"gogarvis-backend/infrastructure/storage"
	"gogarvis-backend/pkg/auth"
	"gogarvis-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// chatRequestsPerMinute caps how fast one IP can hit the chat endpoint
const chatRequestsPerMinute = 20

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideCatalogStore builds the in-memory catalog store
func ProvideCatalogStore() *catalog.Store {
	return catalog.NewStore()
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer("gogarvis", cfg.EnableTracing)
}

// ProvideMetrics creates the CloudWatch metrics publisher
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := fmt.Sprintf("GoGarvis/%s", cfg.Environment)
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideChatHistoryRepository creates the durable chat message log
func ProvideChatHistoryRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ChatHistoryRepository {
	return ddbpersistence.NewChatHistoryRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideStatusRepository creates the status check repository
func ProvideStatusRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.StatusRepository {
	return ddbpersistence.NewStatusRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideAuditRepository creates the audit trail repository
func ProvideAuditRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.AuditRepository {
	return ddbpersistence.NewAuditRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideCatalogRepository creates the catalog seeding repository
func ProvideCatalogRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) *ddbpersistence.CatalogRepository {
	return ddbpersistence.NewCatalogRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEventPublisher creates the audit event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideConversationFactory creates the Gemini conversation factory
func ProvideConversationFactory(cfg *config.Config, logger *zap.Logger) ports.ConversationFactory {
	return llm.NewGeminiFactory(cfg.GeminiAPIKey, cfg.GeminiModel, logger)
}

// ProvideArtifactStore creates the document artifact store
func ProvideArtifactStore(cfg *config.Config) ports.ArtifactStore {
	return storage.NewLocalArtifactStore(cfg.DocsPath)
}

// ProvideTextExtractor creates the PDF text extractor
func ProvideTextExtractor() ports.TextExtractor {
	return pdf.NewExtractor()
}

// ProvideContentService creates the document content resolver
func ProvideContentService(
	store *catalog.Store,
	artifacts ports.ArtifactStore,
	extractor ports.TextExtractor,
	tracer *observability.Tracer,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.ContentService {
	return services.NewContentService(store, artifacts, extractor, tracer, metrics, logger)
}

// ProvideChatService creates the conversation session manager
func ProvideChatService(
	factory ports.ConversationFactory,
	history ports.ChatHistoryRepository,
	auditor ports.AuditRepository,
	events ports.EventPublisher,
	tracer *observability.Tracer,
	metrics *observability.Metrics,
	cfg *config.Config,
	logger *zap.Logger,
) *services.ChatService {
	return services.NewChatService(factory, history, auditor, events, tracer, metrics, cfg.ChatTimeout, logger)
}

// ProvideStatusService creates the status check service
func ProvideStatusService(
	statuses ports.StatusRepository,
	auditor ports.AuditRepository,
	events ports.EventPublisher,
	logger *zap.Logger,
) *services.StatusService {
	return services.NewStatusService(statuses, auditor, events, logger)
}

// ProvideStatsService creates the stats aggregator
func ProvideStatsService(store *catalog.Store) *services.StatsService {
	return services.NewStatsService(store)
}

// ProvideChatLimiter creates the per-IP rate limiter for the chat endpoint
func ProvideChatLimiter() auth.RateLimiter {
	return auth.NewTokenBucketLimiter(chatRequestsPerMinute, time.Minute/chatRequestsPerMinute)
}

// ProvideJWTValidator creates the bearer token validator. Development falls
// back to a fixed secret so the audit endpoint stays testable locally.
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		secret = "development-secret-change-in-production"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
	})
}
