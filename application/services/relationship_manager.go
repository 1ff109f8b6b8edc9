package services

import (
	"context"

	"chirp-backend/application/ports"
	pkgerrors "chirp-backend/pkg/errors"

	"go.uber.org/zap"
)

// RelationshipManager owns the symmetric edges between entities. Every
// operation validates that both endpoints exist, then delegates the flip of
// both id sets to the store, which applies it as one atomic unit. Adding an
// edge that already exists, or removing one that does not, is a no-op.
type RelationshipManager struct {
	store  ports.EntityStore
	logger *zap.Logger
}

// NewRelationshipManager creates a relationship manager
func NewRelationshipManager(store ports.EntityStore, logger *zap.Logger) *RelationshipManager {
	return &RelationshipManager{store: store, logger: logger}
}

// AddFollow records that follower follows followee
func (m *RelationshipManager) AddFollow(ctx context.Context, followerID, followeeID string) error {
	if err := m.requireUsers(ctx, followerID, followeeID); err != nil {
		return err
	}
	if err := m.store.AddFollow(ctx, followerID, followeeID); err != nil {
		return err
	}
	m.logger.Debug("follow edge added",
		zap.String("followerID", followerID),
		zap.String("followeeID", followeeID),
	)
	return nil
}

// RemoveFollow removes the follow edge between follower and followee
func (m *RelationshipManager) RemoveFollow(ctx context.Context, followerID, followeeID string) error {
	if err := m.requireUsers(ctx, followerID, followeeID); err != nil {
		return err
	}
	return m.store.RemoveFollow(ctx, followerID, followeeID)
}

// AddLike records that the user likes the tweet
func (m *RelationshipManager) AddLike(ctx context.Context, userID, tweetID string) error {
	if err := m.requireUserAndTweet(ctx, userID, tweetID); err != nil {
		return err
	}
	return m.store.AddLike(ctx, userID, tweetID)
}

// RemoveLike removes the like edge between the user and the tweet
func (m *RelationshipManager) RemoveLike(ctx context.Context, userID, tweetID string) error {
	if err := m.requireUserAndTweet(ctx, userID, tweetID); err != nil {
		return err
	}
	return m.store.RemoveLike(ctx, userID, tweetID)
}

// AddMention records that the tweet mentions the user
func (m *RelationshipManager) AddMention(ctx context.Context, tweetID, userID string) error {
	if err := m.requireUserAndTweet(ctx, userID, tweetID); err != nil {
		return err
	}
	return m.store.AddMention(ctx, tweetID, userID)
}

// RemoveMention removes the mention edge between the tweet and the user
func (m *RelationshipManager) RemoveMention(ctx context.Context, tweetID, userID string) error {
	if err := m.requireUserAndTweet(ctx, userID, tweetID); err != nil {
		return err
	}
	return m.store.RemoveMention(ctx, tweetID, userID)
}

func (m *RelationshipManager) requireUsers(ctx context.Context, userIDs ...string) error {
	for _, id := range userIDs {
		if _, err := m.store.UserByID(ctx, id); err != nil {
			return pkgerrors.Wrap(err, "relationship endpoint")
		}
	}
	return nil
}

func (m *RelationshipManager) requireUserAndTweet(ctx context.Context, userID, tweetID string) error {
	if _, err := m.store.UserByID(ctx, userID); err != nil {
		return pkgerrors.Wrap(err, "relationship endpoint")
	}
	if _, err := m.store.TweetByID(ctx, tweetID); err != nil {
		return pkgerrors.Wrap(err, "relationship endpoint")
	}
	return nil
}
