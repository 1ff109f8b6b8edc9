package dynamodb

import (
	"fmt"
	"time"

	"chirp-backend/domain/core/entities"
)

// Single-table layout. Every record lives under its own partition with a
// METADATA sort key; GSI1 serves username and hashtag label lookups.
//
//	USER#<id>  / METADATA   GSI1: USERNAME#<username> / METADATA
//	TWEET#<id> / METADATA
//	TAG#<id>   / METADATA   GSI1: LABEL#<label>       / METADATA
const (
	skMetadata = "METADATA"

	entityTypeUser    = "USER"
	entityTypeTweet   = "TWEET"
	entityTypeHashtag = "HASHTAG"
)

func userPK(id string) string        { return fmt.Sprintf("USER#%s", id) }
func tweetPK(id string) string       { return fmt.Sprintf("TWEET#%s", id) }
func tagPK(id string) string         { return fmt.Sprintf("TAG#%s", id) }
func usernameGSI(name string) string { return fmt.Sprintf("USERNAME#%s", name) }
func labelGSI(label string) string   { return fmt.Sprintf("LABEL#%s", label) }

// Relationship sets are stored as DynamoDB string sets so both sides of an
// edge can be flipped with ADD/DELETE update actions inside one transaction.
// String sets carry no order; read paths sort before returning.

type userItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"EntityType"`

	UserID    string `dynamodbav:"UserID"`
	Username  string `dynamodbav:"Username"`
	Password  string `dynamodbav:"Password"`
	Email     string `dynamodbav:"Email"`
	FirstName string `dynamodbav:"FirstName"`
	LastName  string `dynamodbav:"LastName"`
	Phone     string `dynamodbav:"Phone"`
	Joined    string `dynamodbav:"Joined"`
	Deleted   bool   `dynamodbav:"Deleted"`

	TweetIDs        []string `dynamodbav:"TweetIDs,stringset,omitempty"`
	LikedTweetIDs   []string `dynamodbav:"LikedTweetIDs,stringset,omitempty"`
	MentionTweetIDs []string `dynamodbav:"MentionTweetIDs,stringset,omitempty"`
	FollowingIDs    []string `dynamodbav:"FollowingIDs,stringset,omitempty"`
	FollowerIDs     []string `dynamodbav:"FollowerIDs,stringset,omitempty"`
}

func newUserItem(user *entities.User) userItem {
	return userItem{
		PK:         userPK(user.ID),
		SK:         skMetadata,
		GSI1PK:     usernameGSI(user.Credential.Username),
		GSI1SK:     skMetadata,
		EntityType: entityTypeUser,

		UserID:    user.ID,
		Username:  user.Credential.Username,
		Password:  user.Credential.Password,
		Email:     user.Profile.Email,
		FirstName: user.Profile.FirstName,
		LastName:  user.Profile.LastName,
		Phone:     user.Profile.Phone,
		Joined:    user.Joined.Format(time.RFC3339Nano),
		Deleted:   user.Deleted,

		TweetIDs:        user.TweetIDs,
		LikedTweetIDs:   user.LikedTweetIDs,
		MentionTweetIDs: user.MentionTweetIDs,
		FollowingIDs:    user.FollowingIDs,
		FollowerIDs:     user.FollowerIDs,
	}
}

func (i userItem) toEntity() (*entities.User, error) {
	joined, err := parseTime(i.Joined)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", i.UserID, err)
	}
	return &entities.User{
		ID: i.UserID,
		Credential: entities.Credential{
			Username: i.Username,
			Password: i.Password,
		},
		Profile: entities.Profile{
			Email:     i.Email,
			FirstName: i.FirstName,
			LastName:  i.LastName,
			Phone:     i.Phone,
		},
		Joined:  joined,
		Deleted: i.Deleted,

		TweetIDs:        i.TweetIDs,
		LikedTweetIDs:   i.LikedTweetIDs,
		MentionTweetIDs: i.MentionTweetIDs,
		FollowingIDs:    i.FollowingIDs,
		FollowerIDs:     i.FollowerIDs,
	}, nil
}

type tweetItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`

	TweetID     string `dynamodbav:"TweetID"`
	AuthorID    string `dynamodbav:"AuthorID"`
	Content     string `dynamodbav:"Content"`
	Posted      string `dynamodbav:"Posted"`
	Deleted     bool   `dynamodbav:"Deleted"`
	InReplyToID string `dynamodbav:"InReplyToID,omitempty"`
	RepostOfID  string `dynamodbav:"RepostOfID,omitempty"`

	ReplyIDs         []string `dynamodbav:"ReplyIDs,stringset,omitempty"`
	RepostIDs        []string `dynamodbav:"RepostIDs,stringset,omitempty"`
	HashtagIDs       []string `dynamodbav:"HashtagIDs,stringset,omitempty"`
	MentionedUserIDs []string `dynamodbav:"MentionedUserIDs,stringset,omitempty"`
	LikerIDs         []string `dynamodbav:"LikerIDs,stringset,omitempty"`
}

func newTweetItem(tweet *entities.Tweet) tweetItem {
	return tweetItem{
		PK:         tweetPK(tweet.ID),
		SK:         skMetadata,
		EntityType: entityTypeTweet,

		TweetID:     tweet.ID,
		AuthorID:    tweet.AuthorID,
		Content:     tweet.Content,
		Posted:      tweet.Posted.Format(time.RFC3339Nano),
		Deleted:     tweet.Deleted,
		InReplyToID: tweet.InReplyToID,
		RepostOfID:  tweet.RepostOfID,

		ReplyIDs:         tweet.ReplyIDs,
		RepostIDs:        tweet.RepostIDs,
		HashtagIDs:       tweet.HashtagIDs,
		MentionedUserIDs: tweet.MentionedUserIDs,
		LikerIDs:         tweet.LikerIDs,
	}
}

func (i tweetItem) toEntity() (*entities.Tweet, error) {
	posted, err := parseTime(i.Posted)
	if err != nil {
		return nil, fmt.Errorf("tweet %s: %w", i.TweetID, err)
	}
	return &entities.Tweet{
		ID:          i.TweetID,
		AuthorID:    i.AuthorID,
		Content:     i.Content,
		Posted:      posted,
		Deleted:     i.Deleted,
		InReplyToID: i.InReplyToID,
		RepostOfID:  i.RepostOfID,

		ReplyIDs:         i.ReplyIDs,
		RepostIDs:        i.RepostIDs,
		HashtagIDs:       i.HashtagIDs,
		MentionedUserIDs: i.MentionedUserIDs,
		LikerIDs:         i.LikerIDs,
	}, nil
}

type hashtagItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"EntityType"`

	HashtagID string `dynamodbav:"HashtagID"`
	Label     string `dynamodbav:"Label"`
	LastUsed  string `dynamodbav:"LastUsed"`

	TweetIDs []string `dynamodbav:"TweetIDs,stringset,omitempty"`
}

func newHashtagItem(tag *entities.Hashtag) hashtagItem {
	return hashtagItem{
		PK:         tagPK(tag.ID),
		SK:         skMetadata,
		GSI1PK:     labelGSI(tag.Label),
		GSI1SK:     skMetadata,
		EntityType: entityTypeHashtag,

		HashtagID: tag.ID,
		Label:     tag.Label,
		LastUsed:  tag.LastUsed.Format(time.RFC3339Nano),
		TweetIDs:  tag.TweetIDs,
	}
}

func (i hashtagItem) toEntity() (*entities.Hashtag, error) {
	lastUsed, err := parseTime(i.LastUsed)
	if err != nil {
		return nil, fmt.Errorf("hashtag %s: %w", i.HashtagID, err)
	}
	return &entities.Hashtag{
		ID:       i.HashtagID,
		Label:    i.Label,
		LastUsed: lastUsed,
		TweetIDs: i.TweetIDs,
	}, nil
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}
