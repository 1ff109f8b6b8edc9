package di

import (
	"context"
	"fmt"

	"chirp-backend/application/ports"
	"chirp-backend/application/services"
	domainservices "chirp-backend/domain/services"
	"chirp-backend/infrastructure/config"
	"chirp-backend/infrastructure/persistence/dynamodb"
	"chirp-backend/infrastructure/persistence/memory"
	"chirp-backend/pkg/auth"
	"chirp-backend/pkg/observability"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideHasher creates the password hasher with default parameters
func ProvideHasher() *auth.Hasher {
	return auth.NewHasher(auth.DefaultParams)
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("chirp")
}

// ProvideEntityStore selects the storage adapter for the configured driver
func ProvideEntityStore(
	ctx context.Context,
	cfg *config.Config,
	hasher *auth.Hasher,
	logger *zap.Logger,
) (ports.EntityStore, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.NewStore(hasher, logger), nil
	case config.DriverDynamoDB:
		client, err := dynamodb.NewClient(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		return dynamodb.NewStore(client, cfg.DynamoDBTable, cfg.UsernameIndexName, hasher, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// ProvideContentParser creates the content parser
func ProvideContentParser() *domainservices.ContentParser {
	return domainservices.NewContentParser()
}

// ProvideRelationshipManager creates the relationship manager
func ProvideRelationshipManager(store ports.EntityStore, logger *zap.Logger) *services.RelationshipManager {
	return services.NewRelationshipManager(store, logger)
}

// ProvideEdgeReconciler creates the edge reconciler
func ProvideEdgeReconciler(
	store ports.EntityStore,
	parser *domainservices.ContentParser,
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.EdgeReconciler {
	return services.NewEdgeReconciler(store, parser, metrics, logger)
}

// ProvideThreadResolver creates the thread resolver
func ProvideThreadResolver(store ports.EntityStore, logger *zap.Logger) *services.ThreadResolver {
	return services.NewThreadResolver(store, logger)
}

// ProvideFeedAssembler creates the feed assembler
func ProvideFeedAssembler(
	store ports.EntityStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.FeedAssembler {
	return services.NewFeedAssembler(store, metrics, logger)
}

// ProvideTweetService creates the tweet service
func ProvideTweetService(
	store ports.EntityStore,
	relationships *services.RelationshipManager,
	reconciler *services.EdgeReconciler,
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.TweetService {
	return services.NewTweetService(store, relationships, reconciler, metrics, logger)
}

// ProvideUserService creates the user service
func ProvideUserService(
	store ports.EntityStore,
	relationships *services.RelationshipManager,
	logger *zap.Logger,
) *services.UserService {
	return services.NewUserService(store, relationships, logger)
}

// ProvideHashtagService creates the hashtag service
func ProvideHashtagService(store ports.EntityStore, logger *zap.Logger) *services.HashtagService {
	return services.NewHashtagService(store, logger)
}
