package ports

import (
	"context"

	"chirp-backend/domain/core/entities"
)

// EntityStore is the authoritative storage port for users, tweets and
// hashtags. Implementations return NOT_FOUND AppErrors for missing entities
// and deep copies of stored records, and they guarantee that every edge
// mutation updates both endpoints as one atomic unit.
type EntityStore interface {
	UserStore
	TweetStore
	HashtagStore
	RelationshipStore
}

// UserStore persists users
type UserStore interface {
	// SaveUser upserts a user. On first insert it assigns the id and the
	// joined timestamp and hashes the credential secret at rest.
	SaveUser(ctx context.Context, user *entities.User) (*entities.User, error)

	UserByID(ctx context.Context, id string) (*entities.User, error)
	UserByUsername(ctx context.Context, username string) (*entities.User, error)

	// UserByCredential resolves a user whose stored secret matches the
	// supplied plaintext credential. Missing user and bad secret are both
	// NOT_FOUND; the service layer turns either into UNAUTHORIZED.
	UserByCredential(ctx context.Context, cred entities.Credential) (*entities.User, error)

	Users(ctx context.Context) ([]*entities.User, error)
}

// TweetStore persists tweets
type TweetStore interface {
	// SaveTweet upserts a tweet. On first insert it assigns the id and the
	// posted timestamp and links the derived inverses (author's authored
	// list, parent's replies, original's reposts) in the same atomic unit.
	SaveTweet(ctx context.Context, tweet *entities.Tweet) (*entities.Tweet, error)

	TweetByID(ctx context.Context, id string) (*entities.Tweet, error)
	TweetsByIDs(ctx context.Context, ids []string) ([]*entities.Tweet, error)
	Tweets(ctx context.Context) ([]*entities.Tweet, error)
}

// HashtagStore persists hashtags
type HashtagStore interface {
	// SaveHashtag upserts a hashtag, assigning an id on first insert.
	// Labels are unique; lookups are by exact label.
	SaveHashtag(ctx context.Context, tag *entities.Hashtag) (*entities.Hashtag, error)

	HashtagByLabel(ctx context.Context, label string) (*entities.Hashtag, error)
	Hashtags(ctx context.Context) ([]*entities.Hashtag, error)
}

// RelationshipStore mutates bidirectional edges. Each call updates both
// endpoints' id sets as one atomic unit: no caller, concurrent or otherwise,
// can observe one side updated without the other. Adding an existing edge or
// removing a missing one is a no-op.
type RelationshipStore interface {
	AddFollow(ctx context.Context, followerID, followeeID string) error
	RemoveFollow(ctx context.Context, followerID, followeeID string) error

	AddLike(ctx context.Context, userID, tweetID string) error
	RemoveLike(ctx context.Context, userID, tweetID string) error

	AddMention(ctx context.Context, tweetID, userID string) error
	RemoveMention(ctx context.Context, tweetID, userID string) error

	// SyncTweetEdges commits a reconciliation pass: it replaces the tweet's
	// hashtag and mention edge sets (and their inverses on the hashtag and
	// user records) so they exactly match the given ids, atomically.
	SyncTweetEdges(ctx context.Context, tweetID string, hashtagIDs, mentionedUserIDs []string) error
}
