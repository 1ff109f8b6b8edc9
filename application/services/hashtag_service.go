package services

import (
	"context"

	"chirp-backend/application/ports"
	"chirp-backend/domain/core/entities"

	"go.uber.org/zap"
)

// HashtagService exposes the hashtag read surface
type HashtagService struct {
	store  ports.EntityStore
	logger *zap.Logger
}

// NewHashtagService creates a hashtag service
func NewHashtagService(store ports.EntityStore, logger *zap.Logger) *HashtagService {
	return &HashtagService{store: store, logger: logger}
}

// All returns every hashtag ever used
func (s *HashtagService) All(ctx context.Context) ([]*entities.Hashtag, error) {
	return s.store.Hashtags(ctx)
}

// TweetsByLabel returns the non-deleted tweets carrying the label, most
// recent first. Unknown labels are NotFound.
func (s *HashtagService) TweetsByLabel(ctx context.Context, label string) ([]*entities.Tweet, error) {
	tag, err := s.store.HashtagByLabel(ctx, label)
	if err != nil {
		return nil, err
	}

	tweets, err := s.store.TweetsByIDs(ctx, tag.TweetIDs)
	if err != nil {
		return nil, err
	}
	active := filterActiveTweets(tweets)
	sortByPostedDesc(active)
	return active, nil
}
