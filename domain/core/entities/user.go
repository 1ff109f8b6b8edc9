package entities

import "time"

// Credential identifies a user for authorization. The password is opaque to
// the application core; the store adapters hash it at rest and verify it on
// credential lookups.
type Credential struct {
	Username string
	Password string
}

// Profile holds the user's public-facing details
type Profile struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// User is an indexed-store record. All relationships are held as id slices on
// both endpoints; the store adapters flip both sides of an edge as one atomic
// unit, so the slices here are never mutated one-sided.
type User struct {
	ID         string
	Credential Credential
	Profile    Profile
	Joined     time.Time
	Deleted    bool

	// Authored tweets, in creation order
	TweetIDs []string

	// Liked tweets (inverse of Tweet.LikerIDs)
	LikedTweetIDs []string

	// Tweets mentioning this user (inverse of Tweet.MentionedUserIDs)
	MentionTweetIDs []string

	// Users this user follows, and the derived inverse
	FollowingIDs []string
	FollowerIDs  []string
}

// IsActive reports whether the user exists for read paths. Soft-deleted users
// stay in storage and in other entities' relationship sets.
func (u *User) IsActive() bool {
	return u != nil && !u.Deleted
}

// Follows reports whether the user currently follows the given user id
func (u *User) Follows(userID string) bool {
	return HasID(u.FollowingIDs, userID)
}

// Clone returns a deep copy so store internals never leak to callers
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	dup := *u
	dup.TweetIDs = cloneIDs(u.TweetIDs)
	dup.LikedTweetIDs = cloneIDs(u.LikedTweetIDs)
	dup.MentionTweetIDs = cloneIDs(u.MentionTweetIDs)
	dup.FollowingIDs = cloneIDs(u.FollowingIDs)
	dup.FollowerIDs = cloneIDs(u.FollowerIDs)
	return &dup
}
