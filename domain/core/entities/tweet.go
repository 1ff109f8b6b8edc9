package entities

import "time"

// Tweet is an indexed-store record for a post. The reply relation forms a
// forest: a tweet has at most one parent, and parents always exist before
// their children, so no cycle can form. Posted is set on first insert and is
// immutable afterwards, as is RepostOfID once set.
type Tweet struct {
	ID       string
	AuthorID string
	Content  string
	Posted   time.Time
	Deleted  bool

	// Parent tweet id when this tweet is a reply; empty for roots
	InReplyToID string

	// Derived inverse of InReplyToID, in creation order
	ReplyIDs []string

	// Original tweet id when this tweet is a repost, and the derived inverse
	RepostOfID string
	RepostIDs  []string

	// Edges derived from content by the reconciler
	HashtagIDs       []string
	MentionedUserIDs []string

	// Users who liked this tweet (inverse of User.LikedTweetIDs)
	LikerIDs []string
}

// IsActive reports whether the tweet exists for read paths. Soft delete is
// monotonic: once set it is never cleared.
func (t *Tweet) IsActive() bool {
	return t != nil && !t.Deleted
}

// IsReply reports whether the tweet is part of a thread below another tweet
func (t *Tweet) IsReply() bool {
	return t.InReplyToID != ""
}

// Clone returns a deep copy so store internals never leak to callers
func (t *Tweet) Clone() *Tweet {
	if t == nil {
		return nil
	}
	dup := *t
	dup.ReplyIDs = cloneIDs(t.ReplyIDs)
	dup.RepostIDs = cloneIDs(t.RepostIDs)
	dup.HashtagIDs = cloneIDs(t.HashtagIDs)
	dup.MentionedUserIDs = cloneIDs(t.MentionedUserIDs)
	dup.LikerIDs = cloneIDs(t.LikerIDs)
	return &dup
}
