package services

import (
	"context"

	"chirp-backend/application/ports"
	"chirp-backend/domain/core/entities"
	"chirp-backend/pkg/observability"

	"go.uber.org/zap"
)

// FeedAssembler builds per-user chronological timelines. The feed
// neighborhood is exactly one hop: the user and the users they directly
// follow, never followees of followees.
type FeedAssembler struct {
	store   ports.EntityStore
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewFeedAssembler creates a feed assembler
func NewFeedAssembler(store ports.EntityStore, metrics *observability.Collector, logger *zap.Logger) *FeedAssembler {
	return &FeedAssembler{store: store, metrics: metrics, logger: logger}
}

// Feed returns the tweets authored by the user and by everyone they follow,
// deduplicated, most recent first. Soft-deleted authors and tweets are
// excluded.
func (f *FeedAssembler) Feed(ctx context.Context, username string) ([]*entities.Tweet, error) {
	user, err := activeUserByUsername(ctx, f.store, username)
	if err != nil {
		return nil, err
	}

	authors := []*entities.User{user}
	for _, followeeID := range user.FollowingIDs {
		followee, err := f.store.UserByID(ctx, followeeID)
		if err != nil {
			return nil, err
		}
		authors = append(authors, followee)
	}

	seen := make(map[string]bool)
	feed := []*entities.Tweet{}
	for _, author := range authors {
		if !author.IsActive() {
			continue
		}
		tweets, err := f.store.TweetsByIDs(ctx, author.TweetIDs)
		if err != nil {
			return nil, err
		}
		for _, t := range tweets {
			if !t.IsActive() || seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			feed = append(feed, t)
		}
	}

	sortByPostedDesc(feed)
	f.metrics.FeedsAssembled.Inc()
	f.logger.Debug("feed assembled",
		zap.String("username", username),
		zap.Int("authors", len(authors)),
		zap.Int("tweets", len(feed)),
	)
	return feed, nil
}

// UserTweets returns the user's authored tweets, most recent first. The user
// must exist and be active.
func (f *FeedAssembler) UserTweets(ctx context.Context, username string) ([]*entities.Tweet, error) {
	user, err := activeUserByUsername(ctx, f.store, username)
	if err != nil {
		return nil, err
	}
	return f.activeSorted(ctx, user.TweetIDs)
}

// TweetsByMention returns the tweets mentioning the user, most recent first.
// The user must exist and be active.
func (f *FeedAssembler) TweetsByMention(ctx context.Context, username string) ([]*entities.Tweet, error) {
	user, err := activeUserByUsername(ctx, f.store, username)
	if err != nil {
		return nil, err
	}
	return f.activeSorted(ctx, user.MentionTweetIDs)
}

func (f *FeedAssembler) activeSorted(ctx context.Context, ids []string) ([]*entities.Tweet, error) {
	tweets, err := f.store.TweetsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	active := filterActiveTweets(tweets)
	sortByPostedDesc(active)
	return active, nil
}
