package services

import (
	"context"

	"chirp-backend/application/ports"
	"chirp-backend/domain/core/entities"

	"go.uber.org/zap"
)

// ThreadContext is the reply-thread neighborhood of a tweet
type ThreadContext struct {
	Target *entities.Tweet
	Before []*entities.Tweet
	After  []*entities.Tweet
}

// ThreadResolver walks the reply forest around a tweet. Soft-deleted tweets
// are filtered from results but traversed through: a deleted ancestor does
// not hide its own parent, and a deleted reply does not hide its children.
type ThreadResolver struct {
	store  ports.EntityStore
	logger *zap.Logger
}

// NewThreadResolver creates a thread resolver
func NewThreadResolver(store ports.EntityStore, logger *zap.Logger) *ThreadResolver {
	return &ThreadResolver{store: store, logger: logger}
}

// Context returns the target tweet with its ancestor chain (nearest ancestor
// first) and all its descendants in breadth-first order.
func (r *ThreadResolver) Context(ctx context.Context, tweetID string) (*ThreadContext, error) {
	target, err := activeTweet(ctx, r.store, tweetID)
	if err != nil {
		return nil, err
	}

	before, err := r.ancestors(ctx, target)
	if err != nil {
		return nil, err
	}
	after, err := r.descendants(ctx, target)
	if err != nil {
		return nil, err
	}

	return &ThreadContext{Target: target, Before: before, After: after}, nil
}

// RepliesTo returns the direct, non-deleted replies to a tweet
func (r *ThreadResolver) RepliesTo(ctx context.Context, tweetID string) ([]*entities.Tweet, error) {
	target, err := activeTweet(ctx, r.store, tweetID)
	if err != nil {
		return nil, err
	}
	return r.activeByIDs(ctx, target.ReplyIDs)
}

// RepostsOf returns the non-deleted reposts of a tweet
func (r *ThreadResolver) RepostsOf(ctx context.Context, tweetID string) ([]*entities.Tweet, error) {
	target, err := activeTweet(ctx, r.store, tweetID)
	if err != nil {
		return nil, err
	}
	return r.activeByIDs(ctx, target.RepostIDs)
}

// ancestors walks inReplyTo links upward. Order is walk order: nearest
// ancestor first.
func (r *ThreadResolver) ancestors(ctx context.Context, target *entities.Tweet) ([]*entities.Tweet, error) {
	before := []*entities.Tweet{}
	current := target
	for current.IsReply() {
		parent, err := r.store.TweetByID(ctx, current.InReplyToID)
		if err != nil {
			// Parents pre-exist their children; a missing one is a
			// store integrity fault, not a NotFound for the caller.
			return nil, err
		}
		if parent.IsActive() {
			before = append(before, parent)
		}
		current = parent
	}
	return before, nil
}

// descendants collects the reply tree below target in breadth-first order,
// excluding target itself. The reply forest gives every tweet one parent, so
// each node is visited exactly once without cycle tracking.
func (r *ThreadResolver) descendants(ctx context.Context, target *entities.Tweet) ([]*entities.Tweet, error) {
	after := []*entities.Tweet{}
	queue := append([]string{}, target.ReplyIDs...)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		reply, err := r.store.TweetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if reply.IsActive() {
			after = append(after, reply)
		}
		queue = append(queue, reply.ReplyIDs...)
	}
	return after, nil
}

func (r *ThreadResolver) activeByIDs(ctx context.Context, ids []string) ([]*entities.Tweet, error) {
	tweets, err := r.store.TweetsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	active := []*entities.Tweet{}
	for _, t := range tweets {
		if t.IsActive() {
			active = append(active, t)
		}
	}
	return active, nil
}
