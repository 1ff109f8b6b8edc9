package services

import (
	"context"

	"chirp-backend/application/ports"
	"chirp-backend/domain/core/entities"
	pkgerrors "chirp-backend/pkg/errors"
	"chirp-backend/pkg/observability"

	"go.uber.org/zap"
)

// TweetInput carries the acting credential and the tweet text
type TweetInput struct {
	Credentials entities.Credential
	Content     string
}

// TweetService orchestrates the tweet lifecycle: creation, edit, reply,
// repost, like and soft delete. Content-bearing writes run the parser and
// reconciler so derived edges always match the stored text.
type TweetService struct {
	store         ports.EntityStore
	relationships *RelationshipManager
	reconciler    *EdgeReconciler
	metrics       *observability.Collector
	logger        *zap.Logger
}

// NewTweetService creates a tweet service
func NewTweetService(
	store ports.EntityStore,
	relationships *RelationshipManager,
	reconciler *EdgeReconciler,
	metrics *observability.Collector,
	logger *zap.Logger,
) *TweetService {
	return &TweetService{
		store:         store,
		relationships: relationships,
		reconciler:    reconciler,
		metrics:       metrics,
		logger:        logger,
	}
}

// ActiveTweets returns every non-deleted tweet
func (s *TweetService) ActiveTweets(ctx context.Context) ([]*entities.Tweet, error) {
	tweets, err := s.store.Tweets(ctx)
	if err != nil {
		return nil, err
	}
	return filterActiveTweets(tweets), nil
}

// ByID returns a non-deleted tweet
func (s *TweetService) ByID(ctx context.Context, id string) (*entities.Tweet, error) {
	return activeTweet(ctx, s.store, id)
}

// Create authors a new tweet and reconciles its derived edges
func (s *TweetService) Create(ctx context.Context, input TweetInput) (*entities.Tweet, error) {
	author, err := authorize(ctx, s.store, input.Credentials)
	if err != nil {
		return nil, err
	}
	if input.Content == "" {
		return nil, pkgerrors.NewValidationError("field 'content' is required")
	}

	tweet, err := s.store.SaveTweet(ctx, &entities.Tweet{
		AuthorID: author.ID,
		Content:  input.Content,
	})
	if err != nil {
		return nil, err
	}
	if err := s.reconciler.Reconcile(ctx, tweet); err != nil {
		return nil, err
	}

	s.metrics.TweetsCreated.Inc()
	s.logger.Info("tweet created",
		zap.String("tweetID", tweet.ID),
		zap.String("authorID", author.ID),
	)
	return s.store.TweetByID(ctx, tweet.ID)
}

// Reply authors a new tweet below an existing one and reconciles its edges
func (s *TweetService) Reply(ctx context.Context, parentID string, input TweetInput) (*entities.Tweet, error) {
	parent, err := activeTweet(ctx, s.store, parentID)
	if err != nil {
		return nil, err
	}
	author, err := authorize(ctx, s.store, input.Credentials)
	if err != nil {
		return nil, err
	}
	if input.Content == "" {
		return nil, pkgerrors.NewValidationError("field 'content' is required")
	}

	tweet, err := s.store.SaveTweet(ctx, &entities.Tweet{
		AuthorID:    author.ID,
		Content:     input.Content,
		InReplyToID: parent.ID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.reconciler.Reconcile(ctx, tweet); err != nil {
		return nil, err
	}

	s.metrics.TweetsCreated.Inc()
	return s.store.TweetByID(ctx, tweet.ID)
}

// Repost creates a contentless tweet pointing at the original. Reposts carry
// no text, so no reconciliation runs.
func (s *TweetService) Repost(ctx context.Context, originalID string, cred entities.Credential) (*entities.Tweet, error) {
	author, err := authorize(ctx, s.store, cred)
	if err != nil {
		return nil, err
	}
	original, err := activeTweet(ctx, s.store, originalID)
	if err != nil {
		return nil, err
	}

	tweet, err := s.store.SaveTweet(ctx, &entities.Tweet{
		AuthorID:   author.ID,
		RepostOfID: original.ID,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.TweetsCreated.Inc()
	return tweet, nil
}

// Edit replaces the tweet's content and re-reconciles its derived edges.
// Only the author may edit; the posted timestamp never changes.
func (s *TweetService) Edit(ctx context.Context, id string, input TweetInput) (*entities.Tweet, error) {
	tweet, err := activeTweet(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	user, err := authorize(ctx, s.store, input.Credentials)
	if err != nil {
		return nil, err
	}
	if user.ID != tweet.AuthorID {
		return nil, pkgerrors.NewUnauthorizedError("bad credentials")
	}
	if input.Content == "" {
		return nil, pkgerrors.NewValidationError("field 'content' is required")
	}

	tweet.Content = input.Content
	tweet, err = s.store.SaveTweet(ctx, tweet)
	if err != nil {
		return nil, err
	}
	if err := s.reconciler.Reconcile(ctx, tweet); err != nil {
		return nil, err
	}
	return s.store.TweetByID(ctx, tweet.ID)
}

// Delete soft-deletes a tweet. Only the author may delete. Replies and
// reposts of the tweet stay attached; read paths simply stop returning it.
func (s *TweetService) Delete(ctx context.Context, id string, cred entities.Credential) (*entities.Tweet, error) {
	tweet, err := activeTweet(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	user, err := authorize(ctx, s.store, cred)
	if err != nil {
		return nil, err
	}
	if user.ID != tweet.AuthorID {
		return nil, pkgerrors.NewUnauthorizedError("bad credentials")
	}

	tweet.Deleted = true
	tweet, err = s.store.SaveTweet(ctx, tweet)
	if err != nil {
		return nil, err
	}

	s.metrics.TweetsDeleted.Inc()
	s.logger.Info("tweet deleted", zap.String("tweetID", tweet.ID))
	return tweet, nil
}

// Like records that the acting user likes the tweet. Liking an already-liked
// tweet is a no-op.
func (s *TweetService) Like(ctx context.Context, id string, cred entities.Credential) error {
	user, err := authorize(ctx, s.store, cred)
	if err != nil {
		return err
	}
	tweet, err := activeTweet(ctx, s.store, id)
	if err != nil {
		return err
	}
	return s.relationships.AddLike(ctx, user.ID, tweet.ID)
}

// Unlike removes the acting user's like. Unliking a tweet that was never
// liked is a no-op.
func (s *TweetService) Unlike(ctx context.Context, id string, cred entities.Credential) error {
	user, err := authorize(ctx, s.store, cred)
	if err != nil {
		return err
	}
	tweet, err := activeTweet(ctx, s.store, id)
	if err != nil {
		return err
	}
	return s.relationships.RemoveLike(ctx, user.ID, tweet.ID)
}

// Likers returns the active users who like the tweet
func (s *TweetService) Likers(ctx context.Context, id string) ([]*entities.User, error) {
	tweet, err := activeTweet(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	return s.activeUsersByIDs(ctx, tweet.LikerIDs)
}

// Mentioned returns the active users mentioned in the tweet
func (s *TweetService) Mentioned(ctx context.Context, id string) ([]*entities.User, error) {
	tweet, err := activeTweet(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	return s.activeUsersByIDs(ctx, tweet.MentionedUserIDs)
}

func (s *TweetService) activeUsersByIDs(ctx context.Context, ids []string) ([]*entities.User, error) {
	users := []*entities.User{}
	for _, id := range ids {
		user, err := s.store.UserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user.IsActive() {
			users = append(users, user)
		}
	}
	return users, nil
}
