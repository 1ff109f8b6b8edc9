package entities

import "time"

// Hashtag is an indexed-store record for a tag label. Labels are unique and
// case-preserving. LastUsed is bumped for every tweet token that references
// the label, including duplicate tokens within one tweet.
type Hashtag struct {
	ID       string
	Label    string
	LastUsed time.Time

	// Tweets carrying this tag (inverse of Tweet.HashtagIDs)
	TweetIDs []string
}

// Clone returns a deep copy so store internals never leak to callers
func (h *Hashtag) Clone() *Hashtag {
	if h == nil {
		return nil
	}
	dup := *h
	dup.TweetIDs = cloneIDs(h.TweetIDs)
	return &dup
}
