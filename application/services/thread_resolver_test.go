package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp-backend/pkg/errors"
)

func TestContextCollectsAncestorsAndDescendants(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	root := env.post(t, "bob", "root")
	mid := env.reply(t, "bob", root.ID, "mid")
	target := env.reply(t, "bob", mid.ID, "target")
	child := env.reply(t, "bob", target.ID, "child")
	grandchild := env.reply(t, "bob", child.ID, "grandchild")

	threadCtx, err := env.threads.Context(env.ctx, target.ID)
	require.NoError(t, err)

	assert.Equal(t, target.ID, threadCtx.Target.ID)
	assert.Equal(t, []string{mid.ID, root.ID}, tweetIDs(threadCtx.Before), "nearest ancestor first")
	assert.Equal(t, []string{child.ID, grandchild.ID}, tweetIDs(threadCtx.After), "breadth-first order")
}

func TestContextTraversesThroughDeletedTweets(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	env.register(t, "alice")

	root := env.post(t, "bob", "root")
	mid := env.reply(t, "alice", root.ID, "mid")
	target := env.reply(t, "bob", mid.ID, "target")
	reply := env.reply(t, "alice", target.ID, "reply")
	nested := env.reply(t, "bob", reply.ID, "nested")

	// Delete the middle of the chain on both sides of the target.
	_, err := env.tweets.Delete(env.ctx, mid.ID, env.credential("alice"))
	require.NoError(t, err)
	_, err = env.tweets.Delete(env.ctx, reply.ID, env.credential("alice"))
	require.NoError(t, err)

	threadCtx, err := env.threads.Context(env.ctx, target.ID)
	require.NoError(t, err)

	// The deleted tweets vanish from the result but not from the walk:
	// the root is still reachable above, the nested reply below.
	assert.Equal(t, []string{root.ID}, tweetIDs(threadCtx.Before))
	assert.Equal(t, []string{nested.ID}, tweetIDs(threadCtx.After))
}

func TestContextOfDeletedTweet(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	tweet := env.post(t, "bob", "gone soon")
	_, err := env.tweets.Delete(env.ctx, tweet.ID, env.credential("bob"))
	require.NoError(t, err)

	_, err = env.threads.Context(env.ctx, tweet.ID)
	assert.True(t, errors.IsNotFound(err))
}

func TestRepliesToFiltersDeleted(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	env.register(t, "alice")

	root := env.post(t, "bob", "root")
	kept := env.reply(t, "alice", root.ID, "kept")
	dropped := env.reply(t, "alice", root.ID, "dropped")

	_, err := env.tweets.Delete(env.ctx, dropped.ID, env.credential("alice"))
	require.NoError(t, err)

	replies, err := env.threads.RepliesTo(env.ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{kept.ID}, tweetIDs(replies))
}

func TestRepostsOfFiltersDeleted(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	env.register(t, "alice")
	env.register(t, "carol")

	original := env.post(t, "bob", "original")

	kept, err := env.tweets.Repost(env.ctx, original.ID, env.credential("alice"))
	require.NoError(t, err)
	dropped, err := env.tweets.Repost(env.ctx, original.ID, env.credential("carol"))
	require.NoError(t, err)

	_, err = env.tweets.Delete(env.ctx, dropped.ID, env.credential("carol"))
	require.NoError(t, err)

	reposts, err := env.threads.RepostsOf(env.ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{kept.ID}, tweetIDs(reposts))
}
