package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp-backend/pkg/errors"
)

func TestFeedIsOneHopNeighborhood(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "u")
	env.register(t, "v")
	env.register(t, "w")

	// u follows v, v follows w. w's tweets must not reach u.
	require.NoError(t, env.users.Follow(env.ctx, "v", env.credential("u")))
	require.NoError(t, env.users.Follow(env.ctx, "w", env.credential("v")))

	own := env.post(t, "u", "mine")
	followed := env.post(t, "v", "followed")
	env.post(t, "w", "two hops away")

	feed, err := env.feeds.Feed(env.ctx, "u")
	require.NoError(t, err)

	// Most recent first: v's tweet was posted after u's.
	assert.Equal(t, []string{followed.ID, own.ID}, tweetIDs(feed))
}

func TestFeedOrdersMostRecentFirst(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "u")
	env.register(t, "v")
	require.NoError(t, env.users.Follow(env.ctx, "v", env.credential("u")))

	first := env.post(t, "v", "first")
	second := env.post(t, "u", "second")
	third := env.post(t, "v", "third")

	feed, err := env.feeds.Feed(env.ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, tweetIDs(feed))
}

func TestFeedExcludesDeletedTweetsAndAuthors(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "u")
	env.register(t, "v")
	env.register(t, "w")
	require.NoError(t, env.users.Follow(env.ctx, "v", env.credential("u")))
	require.NoError(t, env.users.Follow(env.ctx, "w", env.credential("u")))

	kept := env.post(t, "v", "kept")
	droppedTweet := env.post(t, "v", "dropped")
	env.post(t, "w", "author leaves")

	_, err := env.tweets.Delete(env.ctx, droppedTweet.ID, env.credential("v"))
	require.NoError(t, err)
	_, err = env.users.Delete(env.ctx, "w", env.credential("w"))
	require.NoError(t, err)

	feed, err := env.feeds.Feed(env.ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, []string{kept.ID}, tweetIDs(feed))
}

func TestFeedOfUnknownOrDeletedUser(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "u")

	_, err := env.feeds.Feed(env.ctx, "nobody")
	assert.True(t, errors.IsNotFound(err))

	_, err = env.users.Delete(env.ctx, "u", env.credential("u"))
	require.NoError(t, err)

	_, err = env.feeds.Feed(env.ctx, "u")
	assert.True(t, errors.IsNotFound(err))
}

func TestUserTweetsSortedAndFiltered(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "u")

	first := env.post(t, "u", "first")
	second := env.post(t, "u", "second")
	dropped := env.post(t, "u", "dropped")

	_, err := env.tweets.Delete(env.ctx, dropped.ID, env.credential("u"))
	require.NoError(t, err)

	tweets, err := env.feeds.UserTweets(env.ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID, first.ID}, tweetIDs(tweets))
}

func TestTweetsByMention(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	env.register(t, "bob")

	older := env.post(t, "bob", "hey @alice")
	newer := env.post(t, "bob", "again @alice")
	env.post(t, "bob", "no mention")

	tweets, err := env.feeds.TweetsByMention(env.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{newer.ID, older.ID}, tweetIDs(tweets))
}
