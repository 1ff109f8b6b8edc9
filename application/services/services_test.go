package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chirp-backend/domain/core/entities"
	domainservices "chirp-backend/domain/services"
	"chirp-backend/infrastructure/persistence/memory"
	"chirp-backend/pkg/auth"
	"chirp-backend/pkg/observability"
)

// testClock hands out strictly increasing timestamps so ordering assertions
// never depend on wall-clock resolution.
type testClock struct {
	mu      sync.Mutex
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(time.Second)
	return c.current
}

// testParams keeps argon2 cheap in tests
var testParams = &auth.Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type testEnv struct {
	ctx      context.Context
	clock    *testClock
	store    *memory.Store
	users    *UserService
	tweets   *TweetService
	threads  *ThreadResolver
	feeds    *FeedAssembler
	hashtags *HashtagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	clock := newTestClock()
	store := memory.NewStore(auth.NewHasher(testParams), logger, memory.WithClock(clock.Now))
	metrics := observability.NewCollector("test")

	relationships := NewRelationshipManager(store, logger)
	reconciler := NewEdgeReconciler(store, domainservices.NewContentParser(), metrics, logger)
	reconciler.now = clock.Now

	return &testEnv{
		ctx:      context.Background(),
		clock:    clock,
		store:    store,
		users:    NewUserService(store, relationships, logger),
		tweets:   NewTweetService(store, relationships, reconciler, metrics, logger),
		threads:  NewThreadResolver(store, logger),
		feeds:    NewFeedAssembler(store, metrics, logger),
		hashtags: NewHashtagService(store, logger),
	}
}

func (e *testEnv) register(t *testing.T, username string) *entities.User {
	t.Helper()
	user, err := e.users.Register(e.ctx, UserInput{
		Credential: entities.Credential{Username: username, Password: "secret-" + username},
		Profile:    entities.Profile{Email: username + "@example.com"},
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) credential(username string) entities.Credential {
	return entities.Credential{Username: username, Password: "secret-" + username}
}

func (e *testEnv) post(t *testing.T, username, content string) *entities.Tweet {
	t.Helper()
	tweet, err := e.tweets.Create(e.ctx, TweetInput{
		Credentials: e.credential(username),
		Content:     content,
	})
	require.NoError(t, err)
	return tweet
}

func (e *testEnv) reply(t *testing.T, username, parentID, content string) *entities.Tweet {
	t.Helper()
	tweet, err := e.tweets.Reply(e.ctx, parentID, TweetInput{
		Credentials: e.credential(username),
		Content:     content,
	})
	require.NoError(t, err)
	return tweet
}

func tweetIDs(tweets []*entities.Tweet) []string {
	ids := make([]string, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.ID)
	}
	return ids
}

func userIDs(users []*entities.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
