package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	env.register(t, "bob")

	tweet := env.post(t, "bob", "ping @alice #topic")

	stored, err := env.store.TweetByID(env.ctx, tweet.ID)
	require.NoError(t, err)

	// A second pass over unchanged content changes nothing.
	require.NoError(t, env.tweets.reconciler.Reconcile(env.ctx, stored))

	again, err := env.store.TweetByID(env.ctx, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.HashtagIDs, again.HashtagIDs)
	assert.Equal(t, stored.MentionedUserIDs, again.MentionedUserIDs)

	tag, err := env.store.HashtagByLabel(env.ctx, "topic")
	require.NoError(t, err)
	assert.Equal(t, []string{tweet.ID}, tag.TweetIDs)
}

func TestReconcileBumpsLastUsedPerToken(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	env.post(t, "bob", "#tag")
	first, err := env.store.HashtagByLabel(env.ctx, "tag")
	require.NoError(t, err)

	env.post(t, "bob", "#tag again")
	second, err := env.store.HashtagByLabel(env.ctx, "tag")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "label resolves to the same record")
	assert.True(t, second.LastUsed.After(first.LastUsed))
	assert.Len(t, second.TweetIDs, 2)
}

func TestReconcileSharesHashtagsAcrossTweets(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	env.register(t, "alice")

	one := env.post(t, "bob", "#shared")
	two := env.post(t, "alice", "#shared too")

	tag, err := env.store.HashtagByLabel(env.ctx, "shared")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{one.ID, two.ID}, tag.TweetIDs)

	// Removing the label from one tweet leaves the other edge alone.
	_, err = env.tweets.Edit(env.ctx, one.ID, TweetInput{
		Credentials: env.credential("bob"),
		Content:     "plain now",
	})
	require.NoError(t, err)

	tag, err = env.store.HashtagByLabel(env.ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, []string{two.ID}, tag.TweetIDs)
}

func TestReconcileMentionOfDeletedUserStillLinks(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	ghost := env.register(t, "ghost")

	_, err := env.users.Delete(env.ctx, "ghost", env.credential("ghost"))
	require.NoError(t, err)

	// The username still resolves in storage, so the edge is created; read
	// paths filter the deleted user out later.
	tweet := env.post(t, "bob", "still see you @ghost")
	assert.Equal(t, []string{ghost.ID}, tweet.MentionedUserIDs)

	mentioned, err := env.tweets.Mentioned(env.ctx, tweet.ID)
	require.NoError(t, err)
	assert.Empty(t, mentioned)
}
