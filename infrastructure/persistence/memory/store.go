// Package memory provides an in-process EntityStore used in development and
// tests. One RWMutex guards the whole graph, so every edge mutation flips
// both endpoints under the same critical section.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chirp-backend/application/ports"
	"chirp-backend/domain/core/entities"
	"chirp-backend/pkg/auth"
	"chirp-backend/pkg/errors"
)

// Store implements ports.EntityStore over plain maps
type Store struct {
	mu     sync.RWMutex
	hasher *auth.Hasher
	logger *zap.Logger
	now    func() time.Time

	users     map[string]*entities.User
	usernames map[string]string // username -> user id
	tweets    map[string]*entities.Tweet
	hashtags  map[string]*entities.Hashtag
	labels    map[string]string // label -> hashtag id

	// Insertion order, so listings stay deterministic
	userOrder  []string
	tweetOrder []string
	tagOrder   []string
}

var _ ports.EntityStore = (*Store)(nil)

// Option customizes a Store
type Option func(*Store)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty in-memory store
func NewStore(hasher *auth.Hasher, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		hasher:    hasher,
		logger:    logger,
		now:       time.Now,
		users:     make(map[string]*entities.User),
		usernames: make(map[string]string),
		tweets:    make(map[string]*entities.Tweet),
		hashtags:  make(map[string]*entities.Hashtag),
		labels:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ----- users -----

func (s *Store) SaveUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := user.Clone()

	if err := s.encodePassword(record); err != nil {
		return nil, err
	}

	if record.ID == "" {
		if _, taken := s.usernames[record.Credential.Username]; taken {
			return nil, errors.NewValidationError("username must be unique")
		}
		record.ID = uuid.NewString()
		record.Joined = s.now()
		s.users[record.ID] = record
		s.usernames[record.Credential.Username] = record.ID
		s.userOrder = append(s.userOrder, record.ID)
		s.logger.Debug("user created", zap.String("userId", record.ID))
		return record.Clone(), nil
	}

	stored, ok := s.users[record.ID]
	if !ok {
		return nil, errors.NewNotFoundError("user")
	}
	if record.Credential.Username != stored.Credential.Username {
		if owner, taken := s.usernames[record.Credential.Username]; taken && owner != record.ID {
			return nil, errors.NewValidationError("username must be unique")
		}
		delete(s.usernames, stored.Credential.Username)
		s.usernames[record.Credential.Username] = record.ID
	}

	// Scalar fields come from the caller; the joined timestamp and the
	// relationship sets stay authoritative in the store.
	record.Joined = stored.Joined
	record.TweetIDs = stored.TweetIDs
	record.LikedTweetIDs = stored.LikedTweetIDs
	record.MentionTweetIDs = stored.MentionTweetIDs
	record.FollowingIDs = stored.FollowingIDs
	record.FollowerIDs = stored.FollowerIDs
	s.users[record.ID] = record
	return record.Clone(), nil
}

// encodePassword hashes the credential secret unless it already carries an
// encoded hash, so re-saving a loaded record never double-hashes.
func (s *Store) encodePassword(user *entities.User) error {
	if user.Credential.Password == "" || auth.IsEncoded(user.Credential.Password) {
		return nil
	}
	encoded, err := s.hasher.Hash(user.Credential.Password)
	if err != nil {
		return errors.NewDatabaseError("encode password", err)
	}
	user.Credential.Password = encoded
	return nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userByID(id)
}

func (s *Store) userByID(id string) (*entities.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("user")
	}
	return user.Clone(), nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, errors.NewNotFoundError("user")
	}
	return s.users[id].Clone(), nil
}

func (s *Store) UserByCredential(ctx context.Context, cred entities.Credential) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[cred.Username]
	if !ok {
		return nil, errors.NewNotFoundError("user")
	}
	user := s.users[id]
	if err := s.hasher.Compare(user.Credential.Password, cred.Password); err != nil {
		return nil, errors.NewNotFoundError("user")
	}
	return user.Clone(), nil
}

func (s *Store) Users(ctx context.Context) ([]*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entities.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id].Clone())
	}
	return users, nil
}

// ----- tweets -----

func (s *Store) SaveTweet(ctx context.Context, tweet *entities.Tweet) (*entities.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := tweet.Clone()

	if record.ID == "" {
		author, ok := s.users[record.AuthorID]
		if !ok {
			return nil, errors.NewNotFoundError("user")
		}
		var parent, original *entities.Tweet
		if record.InReplyToID != "" {
			if parent, ok = s.tweets[record.InReplyToID]; !ok {
				return nil, errors.NewNotFoundError("tweet")
			}
		}
		if record.RepostOfID != "" {
			if original, ok = s.tweets[record.RepostOfID]; !ok {
				return nil, errors.NewNotFoundError("tweet")
			}
		}

		record.ID = uuid.NewString()
		record.Posted = s.now()
		s.tweets[record.ID] = record
		s.tweetOrder = append(s.tweetOrder, record.ID)

		// Derived inverses are linked in the same critical section as the
		// insert itself.
		entities.AddID(&author.TweetIDs, record.ID)
		if parent != nil {
			entities.AddID(&parent.ReplyIDs, record.ID)
		}
		if original != nil {
			entities.AddID(&original.RepostIDs, record.ID)
		}
		s.logger.Debug("tweet created",
			zap.String("tweetId", record.ID),
			zap.String("authorId", record.AuthorID))
		return record.Clone(), nil
	}

	stored, ok := s.tweets[record.ID]
	if !ok {
		return nil, errors.NewNotFoundError("tweet")
	}

	// Only content and the deletion flag are writable after insert; deletion
	// is monotonic.
	record.AuthorID = stored.AuthorID
	record.Posted = stored.Posted
	record.InReplyToID = stored.InReplyToID
	record.RepostOfID = stored.RepostOfID
	record.Deleted = stored.Deleted || record.Deleted
	record.ReplyIDs = stored.ReplyIDs
	record.RepostIDs = stored.RepostIDs
	record.HashtagIDs = stored.HashtagIDs
	record.MentionedUserIDs = stored.MentionedUserIDs
	record.LikerIDs = stored.LikerIDs
	s.tweets[record.ID] = record
	return record.Clone(), nil
}

func (s *Store) TweetByID(ctx context.Context, id string) (*entities.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tweetByID(id)
}

func (s *Store) tweetByID(id string) (*entities.Tweet, error) {
	tweet, ok := s.tweets[id]
	if !ok {
		return nil, errors.NewNotFoundError("tweet")
	}
	return tweet.Clone(), nil
}

func (s *Store) TweetsByIDs(ctx context.Context, ids []string) ([]*entities.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tweets := make([]*entities.Tweet, 0, len(ids))
	for _, id := range ids {
		tweet, err := s.tweetByID(id)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, tweet)
	}
	return tweets, nil
}

func (s *Store) Tweets(ctx context.Context) ([]*entities.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tweets := make([]*entities.Tweet, 0, len(s.tweetOrder))
	for _, id := range s.tweetOrder {
		tweets = append(tweets, s.tweets[id].Clone())
	}
	return tweets, nil
}

// ----- hashtags -----

func (s *Store) SaveHashtag(ctx context.Context, tag *entities.Hashtag) (*entities.Hashtag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := tag.Clone()

	if record.ID == "" {
		if _, taken := s.labels[record.Label]; taken {
			return nil, errors.NewValidationError("hashtag label must be unique")
		}
		record.ID = uuid.NewString()
		s.hashtags[record.ID] = record
		s.labels[record.Label] = record.ID
		s.tagOrder = append(s.tagOrder, record.ID)
		return record.Clone(), nil
	}

	stored, ok := s.hashtags[record.ID]
	if !ok {
		return nil, errors.NewNotFoundError("hashtag")
	}
	record.Label = stored.Label
	record.TweetIDs = stored.TweetIDs
	s.hashtags[record.ID] = record
	return record.Clone(), nil
}

func (s *Store) HashtagByLabel(ctx context.Context, label string) (*entities.Hashtag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.labels[label]
	if !ok {
		return nil, errors.NewNotFoundError("hashtag")
	}
	return s.hashtags[id].Clone(), nil
}

func (s *Store) Hashtags(ctx context.Context) ([]*entities.Hashtag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]*entities.Hashtag, 0, len(s.tagOrder))
	for _, id := range s.tagOrder {
		tags = append(tags, s.hashtags[id].Clone())
	}
	return tags, nil
}

// ----- relationships -----

func (s *Store) AddFollow(ctx context.Context, followerID, followeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	follower, followee, err := s.followPair(followerID, followeeID)
	if err != nil {
		return err
	}
	entities.AddID(&follower.FollowingIDs, followeeID)
	entities.AddID(&followee.FollowerIDs, followerID)
	return nil
}

func (s *Store) RemoveFollow(ctx context.Context, followerID, followeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	follower, followee, err := s.followPair(followerID, followeeID)
	if err != nil {
		return err
	}
	entities.RemoveID(&follower.FollowingIDs, followeeID)
	entities.RemoveID(&followee.FollowerIDs, followerID)
	return nil
}

func (s *Store) followPair(followerID, followeeID string) (*entities.User, *entities.User, error) {
	follower, ok := s.users[followerID]
	if !ok {
		return nil, nil, errors.NewNotFoundError("user")
	}
	followee, ok := s.users[followeeID]
	if !ok {
		return nil, nil, errors.NewNotFoundError("user")
	}
	return follower, followee, nil
}

func (s *Store) AddLike(ctx context.Context, userID, tweetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, tweet, err := s.likePair(userID, tweetID)
	if err != nil {
		return err
	}
	entities.AddID(&user.LikedTweetIDs, tweetID)
	entities.AddID(&tweet.LikerIDs, userID)
	return nil
}

func (s *Store) RemoveLike(ctx context.Context, userID, tweetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, tweet, err := s.likePair(userID, tweetID)
	if err != nil {
		return err
	}
	entities.RemoveID(&user.LikedTweetIDs, tweetID)
	entities.RemoveID(&tweet.LikerIDs, userID)
	return nil
}

func (s *Store) likePair(userID, tweetID string) (*entities.User, *entities.Tweet, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, nil, errors.NewNotFoundError("user")
	}
	tweet, ok := s.tweets[tweetID]
	if !ok {
		return nil, nil, errors.NewNotFoundError("tweet")
	}
	return user, tweet, nil
}

func (s *Store) AddMention(ctx context.Context, tweetID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, tweet, err := s.likePair(userID, tweetID)
	if err != nil {
		return err
	}
	entities.AddID(&tweet.MentionedUserIDs, userID)
	entities.AddID(&user.MentionTweetIDs, tweetID)
	return nil
}

func (s *Store) RemoveMention(ctx context.Context, tweetID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, tweet, err := s.likePair(userID, tweetID)
	if err != nil {
		return err
	}
	entities.RemoveID(&tweet.MentionedUserIDs, userID)
	entities.RemoveID(&user.MentionTweetIDs, tweetID)
	return nil
}

func (s *Store) SyncTweetEdges(ctx context.Context, tweetID string, hashtagIDs, mentionedUserIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tweet, ok := s.tweets[tweetID]
	if !ok {
		return errors.NewNotFoundError("tweet")
	}

	// Validate every desired endpoint before touching anything, so a bad id
	// cannot leave the pass half-applied.
	for _, id := range hashtagIDs {
		if _, ok := s.hashtags[id]; !ok {
			return errors.NewNotFoundError("hashtag")
		}
	}
	for _, id := range mentionedUserIDs {
		if _, ok := s.users[id]; !ok {
			return errors.NewNotFoundError("user")
		}
	}

	syncEdges(tweet.HashtagIDs, hashtagIDs,
		func(id string) {
			entities.AddID(&tweet.HashtagIDs, id)
			entities.AddID(&s.hashtags[id].TweetIDs, tweetID)
		},
		func(id string) {
			entities.RemoveID(&tweet.HashtagIDs, id)
			entities.RemoveID(&s.hashtags[id].TweetIDs, tweetID)
		})

	syncEdges(tweet.MentionedUserIDs, mentionedUserIDs,
		func(id string) {
			entities.AddID(&tweet.MentionedUserIDs, id)
			entities.AddID(&s.users[id].MentionTweetIDs, tweetID)
		},
		func(id string) {
			entities.RemoveID(&tweet.MentionedUserIDs, id)
			entities.RemoveID(&s.users[id].MentionTweetIDs, tweetID)
		})

	return nil
}

// syncEdges diffs the current edge set against the desired one and applies
// attach and detach callbacks for the difference.
func syncEdges(current, desired []string, attach, detach func(id string)) {
	want := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}
	for _, id := range append([]string(nil), current...) {
		if _, keep := want[id]; !keep {
			detach(id)
		}
	}
	for _, id := range desired {
		attach(id)
	}
}
