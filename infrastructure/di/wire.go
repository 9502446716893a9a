//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"gogarvis-backend/application/ports"
	"gogarvis-backend/application/services"
	"gogarvis-backend/domain/catalog"
	"gogarvis-backend/infrastructure/config"
	ddbpersistence "gogarvis-backend/infrastructure/persistence/dynamodb"
	"gogarvis-backend/pkg/auth"
	"gogarvis-backend/pkg/observability"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *zap.Logger
	Catalogs          *catalog.Store
	ContentService    *services.ContentService
	ChatService       *services.ChatService
	StatusService     *services.StatusService
	StatsService      *services.StatsService
	AuditRepository   ports.AuditRepository
	CatalogRepository *ddbpersistence.CatalogRepository
	Metrics           *observability.Metrics
	Tracer            *observability.Tracer
	ChatLimiter       auth.RateLimiter
	JWTValidator      *auth.JWTValidator
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideCatalogStore,
	ProvideTracer,
	ProvideMetrics,
	ProvideChatHistoryRepository,
	ProvideStatusRepository,
	ProvideAuditRepository,
	ProvideCatalogRepository,
	ProvideEventPublisher,
	ProvideConversationFactory,
	ProvideArtifactStore,
	ProvideTextExtractor,
	ProvideContentService,
	ProvideChatService,
	ProvideStatusService,
	ProvideStatsService,
	ProvideChatLimiter,
	ProvideJWTValidator,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
