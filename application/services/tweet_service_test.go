package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp-backend/domain/core/entities"
	"chirp-backend/pkg/errors"
)

func TestCreateDerivesEdgesFromContent(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	env.register(t, "bob")

	tweet := env.post(t, "bob", "hello @alice #golang world")

	assert.Equal(t, []string{alice.ID}, tweet.MentionedUserIDs)
	require.Len(t, tweet.HashtagIDs, 1)

	tag, err := env.store.HashtagByLabel(env.ctx, "golang")
	require.NoError(t, err)
	assert.Equal(t, tweet.HashtagIDs[0], tag.ID)
	assert.Equal(t, []string{tweet.ID}, tag.TweetIDs)
	assert.False(t, tag.LastUsed.IsZero())

	// The inverse mention edge lands on the user record.
	stored, err := env.store.UserByID(env.ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tweet.ID}, stored.MentionTweetIDs)
}

func TestCreateCollapsesDuplicateTokens(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	tweet := env.post(t, "bob", "#foo #foo #foo")

	assert.Len(t, tweet.HashtagIDs, 1, "duplicate tokens yield one edge")

	tag, err := env.store.HashtagByLabel(env.ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, []string{tweet.ID}, tag.TweetIDs)
}

func TestCreateDropsUnresolvableMentions(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	tweet := env.post(t, "bob", "hi @ghost and @ nobody")

	assert.Empty(t, tweet.MentionedUserIDs)
}

func TestCreateRequiresContentAndCredential(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	_, err := env.tweets.Create(env.ctx, TweetInput{Credentials: env.credential("bob")})
	assert.True(t, errors.IsValidation(err))

	_, err = env.tweets.Create(env.ctx, TweetInput{
		Credentials: entities.Credential{Username: "bob", Password: "wrong"},
		Content:     "hello",
	})
	assert.True(t, errors.IsUnauthorized(err))
}

func TestEditReconcilesEdges(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	tweet := env.post(t, "bob", "#a #b")
	require.Len(t, tweet.HashtagIDs, 2)

	edited, err := env.tweets.Edit(env.ctx, tweet.ID, TweetInput{
		Credentials: env.credential("bob"),
		Content:     "#a only",
	})
	require.NoError(t, err)

	assert.Equal(t, "#a only", edited.Content)
	assert.Equal(t, tweet.Posted, edited.Posted, "posted timestamp is immutable")
	require.Len(t, edited.HashtagIDs, 1)

	tagA, err := env.store.HashtagByLabel(env.ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{tweet.ID}, tagA.TweetIDs)

	// The dropped label keeps its record but loses the edge.
	tagB, err := env.store.HashtagByLabel(env.ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, tagB.TweetIDs)
}

func TestEditOnlyByAuthor(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	env.register(t, "mallory")

	tweet := env.post(t, "bob", "original")

	_, err := env.tweets.Edit(env.ctx, tweet.ID, TweetInput{
		Credentials: env.credential("mallory"),
		Content:     "defaced",
	})
	assert.True(t, errors.IsUnauthorized(err))

	stored, err := env.tweets.ByID(env.ctx, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Content)
}

func TestReplyLinksParent(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	env.register(t, "alice")

	parent := env.post(t, "bob", "root")
	reply := env.reply(t, "alice", parent.ID, "answer")

	assert.Equal(t, parent.ID, reply.InReplyToID)

	stored, err := env.tweets.ByID(env.ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{reply.ID}, stored.ReplyIDs)
}

func TestReplyToDeletedTweet(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	env.register(t, "alice")

	parent := env.post(t, "bob", "root")
	_, err := env.tweets.Delete(env.ctx, parent.ID, env.credential("bob"))
	require.NoError(t, err)

	_, err = env.tweets.Reply(env.ctx, parent.ID, TweetInput{
		Credentials: env.credential("alice"),
		Content:     "too late",
	})
	assert.True(t, errors.IsNotFound(err))
}

func TestRepost(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	env.register(t, "alice")

	original := env.post(t, "bob", "worth sharing #news")

	repost, err := env.tweets.Repost(env.ctx, original.ID, env.credential("alice"))
	require.NoError(t, err)

	assert.Equal(t, original.ID, repost.RepostOfID)
	assert.Empty(t, repost.Content)
	assert.Empty(t, repost.HashtagIDs, "reposts carry no text and no derived edges")

	stored, err := env.tweets.ByID(env.ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{repost.ID}, stored.RepostIDs)
}

func TestDeleteSoftDeletes(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	tweet := env.post(t, "bob", "fleeting")
	deleted, err := env.tweets.Delete(env.ctx, tweet.ID, env.credential("bob"))
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	_, err = env.tweets.ByID(env.ctx, tweet.ID)
	assert.True(t, errors.IsNotFound(err))

	active, err := env.tweets.ActiveTweets(env.ctx)
	require.NoError(t, err)
	assert.NotContains(t, tweetIDs(active), tweet.ID)

	// The record itself survives for traversal.
	stored, err := env.store.TweetByID(env.ctx, tweet.ID)
	require.NoError(t, err)
	assert.True(t, stored.Deleted)
}

func TestDeleteOnlyByAuthor(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	env.register(t, "mallory")

	tweet := env.post(t, "bob", "keep me")

	_, err := env.tweets.Delete(env.ctx, tweet.ID, env.credential("mallory"))
	assert.True(t, errors.IsUnauthorized(err))

	_, err = env.tweets.ByID(env.ctx, tweet.ID)
	require.NoError(t, err)
}

func TestLikeAndUnlike(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	alice := env.register(t, "alice")

	tweet := env.post(t, "bob", "likeable")

	require.NoError(t, env.tweets.Like(env.ctx, tweet.ID, env.credential("alice")))
	// Liking twice is a no-op, not an error.
	require.NoError(t, env.tweets.Like(env.ctx, tweet.ID, env.credential("alice")))

	likers, err := env.tweets.Likers(env.ctx, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID}, userIDs(likers))

	stored, err := env.store.UserByID(env.ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tweet.ID}, stored.LikedTweetIDs)

	require.NoError(t, env.tweets.Unlike(env.ctx, tweet.ID, env.credential("alice")))
	require.NoError(t, env.tweets.Unlike(env.ctx, tweet.ID, env.credential("alice")))

	likers, err = env.tweets.Likers(env.ctx, tweet.ID)
	require.NoError(t, err)
	assert.Empty(t, likers)
}

func TestLikeUnauthorizedLeavesEdgesUntouched(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	tweet := env.post(t, "bob", "guarded")

	err := env.tweets.Like(env.ctx, tweet.ID, entities.Credential{Username: "bob", Password: "wrong"})
	assert.True(t, errors.IsUnauthorized(err))

	stored, err := env.store.TweetByID(env.ctx, tweet.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.LikerIDs)
}
