package services

import (
	"context"
	"time"

	"chirp-backend/application/ports"
	"chirp-backend/domain/core/entities"
	domainservices "chirp-backend/domain/services"
	pkgerrors "chirp-backend/pkg/errors"
	"chirp-backend/pkg/observability"

	"go.uber.org/zap"
)

// EdgeReconciler keeps a tweet's hashtag and mention edges in sync with its
// text. Re-running it on unchanged content is a no-op for the edge sets, and
// edges for tokens that disappeared from the text are detached, so the edge
// sets are always a function of the current content only.
type EdgeReconciler struct {
	store   ports.EntityStore
	parser  *domainservices.ContentParser
	metrics *observability.Collector
	logger  *zap.Logger
	now     func() time.Time
}

// NewEdgeReconciler creates an edge reconciler
func NewEdgeReconciler(
	store ports.EntityStore,
	parser *domainservices.ContentParser,
	metrics *observability.Collector,
	logger *zap.Logger,
) *EdgeReconciler {
	return &EdgeReconciler{
		store:   store,
		parser:  parser,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Reconcile recomputes the tweet's derived edges from its content.
//
// Hashtag tokens upsert their hashtag and bump LastUsed once per token seen,
// duplicates included, so the final timestamp reflects this pass rather than
// the first match. Mention tokens that resolve to no user are dropped
// silently. The final edge sets are committed in one atomic store call.
func (r *EdgeReconciler) Reconcile(ctx context.Context, tweet *entities.Tweet) error {
	labels := r.parser.Hashtags(tweet.Content)
	mentions := r.parser.Mentions(tweet.Content)

	var hashtagIDs []string
	for _, label := range labels {
		tag, err := r.store.HashtagByLabel(ctx, label)
		if pkgerrors.IsNotFound(err) {
			tag = &entities.Hashtag{Label: label}
		} else if err != nil {
			return err
		}
		tag.LastUsed = r.now()
		tag, err = r.store.SaveHashtag(ctx, tag)
		if err != nil {
			return err
		}
		entities.AddID(&hashtagIDs, tag.ID)
	}

	var mentionedUserIDs []string
	for _, username := range mentions {
		user, err := r.store.UserByUsername(ctx, username)
		if pkgerrors.IsNotFound(err) {
			// Not an error: unresolvable mention tokens are dropped.
			continue
		} else if err != nil {
			return err
		}
		entities.AddID(&mentionedUserIDs, user.ID)
	}

	if err := r.store.SyncTweetEdges(ctx, tweet.ID, hashtagIDs, mentionedUserIDs); err != nil {
		return err
	}

	r.metrics.EdgesReconciled.Inc()
	r.logger.Debug("tweet edges reconciled",
		zap.String("tweetID", tweet.ID),
		zap.Int("hashtags", len(hashtagIDs)),
		zap.Int("mentions", len(mentionedUserIDs)),
	)
	return nil
}
