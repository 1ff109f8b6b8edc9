package di

import (
	"chirp-backend/application/ports"
	"chirp-backend/application/services"
	"chirp-backend/infrastructure/config"
	"chirp-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *observability.Collector

	Store ports.EntityStore

	Relationships *services.RelationshipManager
	Reconciler    *services.EdgeReconciler
	Threads       *services.ThreadResolver
	Feeds         *services.FeedAssembler
	Tweets        *services.TweetService
	Users         *services.UserService
	Hashtags      *services.HashtagService
}

// Close flushes buffered log entries
func (c *Container) Close() {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
