package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp-backend/domain/core/entities"
	"chirp-backend/pkg/errors"
)

func TestRegisterAndLookup(t *testing.T) {
	env := newTestEnv(t)

	alice := env.register(t, "alice")
	assert.NotEmpty(t, alice.ID)
	assert.False(t, alice.Joined.IsZero())

	found, err := env.users.ByUsername(env.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	exists, err := env.users.UsernameExists(env.ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = env.users.UsernameExists(env.ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = env.users.ByUsername(env.ctx, "bob")
	assert.True(t, errors.IsNotFound(err))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(env.ctx, UserInput{
		Credential: entities.Credential{Username: "alice"},
		Profile:    entities.Profile{Email: "alice@example.com"},
	})
	assert.True(t, errors.IsValidation(err))

	_, err = env.users.Register(env.ctx, UserInput{
		Credential: entities.Credential{Username: "alice", Password: "pw"},
	})
	assert.True(t, errors.IsValidation(err))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	_, err := env.users.Register(env.ctx, UserInput{
		Credential: entities.Credential{Username: "alice", Password: "other"},
		Profile:    entities.Profile{Email: "other@example.com"},
	})
	assert.True(t, errors.IsValidation(err))
}

func TestRegisterRevivesSoftDeletedUser(t *testing.T) {
	env := newTestEnv(t)

	alice := env.register(t, "alice")
	tweet := env.post(t, "alice", "still here")

	_, err := env.users.Delete(env.ctx, "alice", env.credential("alice"))
	require.NoError(t, err)
	_, err = env.users.ByUsername(env.ctx, "alice")
	assert.True(t, errors.IsNotFound(err))

	revived, err := env.users.Register(env.ctx, UserInput{
		Credential: entities.Credential{Username: "alice", Password: "new-secret"},
		Profile:    entities.Profile{Email: "new@example.com"},
	})
	require.NoError(t, err)

	// Same account comes back: the id and the authored tweets survive.
	assert.Equal(t, alice.ID, revived.ID)
	assert.Contains(t, revived.TweetIDs, tweet.ID)
	assert.Equal(t, "new@example.com", revived.Profile.Email)

	// The old credential no longer authorizes.
	_, err = env.users.Delete(env.ctx, "alice", env.credential("alice"))
	assert.True(t, errors.IsUnauthorized(err))
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	env.register(t, "bob")

	updated, err := env.users.Update(env.ctx, "alice", UserInput{
		Credential: env.credential("alice"),
		Profile:    entities.Profile{Email: "new@example.com", FirstName: "Alice"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Profile.Email)
	assert.Equal(t, "Alice", updated.Profile.FirstName)

	// Acting on someone else's path is unauthorized even with a valid login.
	_, err = env.users.Update(env.ctx, "bob", UserInput{
		Credential: env.credential("alice"),
		Profile:    entities.Profile{Email: "hijack@example.com"},
	})
	assert.True(t, errors.IsUnauthorized(err))

	_, err = env.users.Update(env.ctx, "alice", UserInput{
		Credential: entities.Credential{Username: "alice", Password: "wrong"},
		Profile:    entities.Profile{Email: "x@example.com"},
	})
	assert.True(t, errors.IsUnauthorized(err))
}

func TestFollowAndUnfollow(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	require.NoError(t, env.users.Follow(env.ctx, "bob", env.credential("alice")))

	// Both sides of the edge are visible.
	following, err := env.users.Following(env.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{bob.ID}, userIDs(following))

	followers, err := env.users.Followers(env.ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID}, userIDs(followers))

	err = env.users.Follow(env.ctx, "bob", env.credential("alice"))
	assert.True(t, errors.IsValidation(err), "second follow is rejected")

	require.NoError(t, env.users.Unfollow(env.ctx, "bob", env.credential("alice")))

	following, err = env.users.Following(env.ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, following)

	err = env.users.Unfollow(env.ctx, "bob", env.credential("alice"))
	assert.True(t, errors.IsValidation(err), "unfollow without a follow is rejected")
}

func TestFollowListingsFilterDeletedUsers(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	bob := env.register(t, "bob")
	carol := env.register(t, "carol")

	require.NoError(t, env.users.Follow(env.ctx, "bob", env.credential("alice")))
	require.NoError(t, env.users.Follow(env.ctx, "carol", env.credential("alice")))

	_, err := env.users.Delete(env.ctx, "bob", env.credential("bob"))
	require.NoError(t, err)

	following, err := env.users.Following(env.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{carol.ID}, userIDs(following))

	// The edge itself survives the soft delete.
	stored, err := env.store.UserByID(env.ctx, bob.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.FollowerIDs)
}

func TestDeleteRequiresOwnCredential(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	env.register(t, "bob")

	_, err := env.users.Delete(env.ctx, "bob", env.credential("alice"))
	assert.True(t, errors.IsUnauthorized(err))

	users, err := env.users.ActiveUsers(env.ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
