package services

import (
	"context"
	"sort"

	"chirp-backend/application/ports"
	"chirp-backend/domain/core/entities"
	pkgerrors "chirp-backend/pkg/errors"
)

// Soft-delete filtering and authorization are centralized here; every read
// path and every mutation precondition goes through the same predicates.

// activeTweet resolves a tweet that must exist and not be soft-deleted
func activeTweet(ctx context.Context, store ports.EntityStore, id string) (*entities.Tweet, error) {
	tweet, err := store.TweetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tweet.IsActive() {
		return nil, pkgerrors.NewNotFoundError("tweet")
	}
	return tweet, nil
}

// activeUserByUsername resolves a user that must exist and not be soft-deleted
func activeUserByUsername(ctx context.Context, store ports.EntityStore, username string) (*entities.User, error) {
	user, err := store.UserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !user.IsActive() {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	return user, nil
}

// authorize resolves the acting user from a credential. Unknown usernames,
// wrong secrets and soft-deleted accounts all map to UNAUTHORIZED, and the
// check runs before the operation it guards performs any mutation.
func authorize(ctx context.Context, store ports.EntityStore, cred entities.Credential) (*entities.User, error) {
	if cred.Username == "" || cred.Password == "" {
		return nil, pkgerrors.NewValidationError("field 'credentials' is required")
	}
	user, err := store.UserByCredential(ctx, cred)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NewUnauthorizedError("bad credentials")
		}
		return nil, err
	}
	if !user.IsActive() {
		return nil, pkgerrors.NewUnauthorizedError("bad credentials")
	}
	return user, nil
}

// sortByPostedDesc orders tweets most recent first. Equal timestamps fall
// back to id order so the result is deterministic.
func sortByPostedDesc(tweets []*entities.Tweet) {
	sort.SliceStable(tweets, func(i, j int) bool {
		if !tweets[i].Posted.Equal(tweets[j].Posted) {
			return tweets[i].Posted.After(tweets[j].Posted)
		}
		return tweets[i].ID < tweets[j].ID
	})
}

// filterActiveTweets drops soft-deleted tweets
func filterActiveTweets(tweets []*entities.Tweet) []*entities.Tweet {
	active := []*entities.Tweet{}
	for _, t := range tweets {
		if t.IsActive() {
			active = append(active, t)
		}
	}
	return active
}

// filterActiveUsers drops soft-deleted users
func filterActiveUsers(users []*entities.User) []*entities.User {
	active := []*entities.User{}
	for _, u := range users {
		if u.IsActive() {
			active = append(active, u)
		}
	}
	return active
}
