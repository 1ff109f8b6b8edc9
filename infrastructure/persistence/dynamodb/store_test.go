package dynamodb

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp-backend/domain/core/entities"
)

// The relationship sets are owned by the ADD/DELETE transact actions. The
// entity update builders must never name them, or a concurrent edge flip
// could be overwritten with a stale read.
var relationshipAttributes = []string{
	"TweetIDs",
	"LikedTweetIDs",
	"MentionTweetIDs",
	"FollowingIDs",
	"FollowerIDs",
	"ReplyIDs",
	"RepostIDs",
	"HashtagIDs",
	"MentionedUserIDs",
	"LikerIDs",
}

func expressionNames(t *testing.T, update expression.UpdateBuilder) []string {
	t.Helper()
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	require.NoError(t, err)
	names := make([]string, 0, len(expr.Names()))
	for _, name := range expr.Names() {
		names = append(names, name)
	}
	return names
}

func TestUserUpdateTouchesScalarAttributesOnly(t *testing.T) {
	names := expressionNames(t, userUpdate(&entities.User{
		ID:         "u1",
		Credential: entities.Credential{Username: "ada", Password: "encoded"},
		Profile:    entities.Profile{Email: "ada@example.com", FirstName: "Ada"},
	}))

	assert.ElementsMatch(t, []string{
		"GSI1PK", "Username", "Password", "Email", "FirstName", "LastName", "Phone", "Deleted",
	}, names)
	for _, attr := range relationshipAttributes {
		assert.NotContains(t, names, attr)
	}
}

func TestTweetUpdateTouchesScalarAttributesOnly(t *testing.T) {
	names := expressionNames(t, tweetUpdate(&entities.Tweet{
		ID:      "t1",
		Content: "hello",
		Deleted: true,
	}))

	assert.ElementsMatch(t, []string{"Content", "Deleted"}, names)
	for _, attr := range relationshipAttributes {
		assert.NotContains(t, names, attr)
	}
}

func TestTweetUpdateNeverClearsDeleted(t *testing.T) {
	names := expressionNames(t, tweetUpdate(&entities.Tweet{
		ID:      "t1",
		Content: "edited",
	}))

	assert.NotContains(t, names, "Deleted")
}

func TestHashtagUpdateTouchesLastUsedOnly(t *testing.T) {
	names := expressionNames(t, hashtagUpdate(&entities.Hashtag{
		ID:       "h1",
		Label:    "#go",
		LastUsed: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}))

	assert.ElementsMatch(t, []string{"LastUsed"}, names)
	assert.NotContains(t, names, "Label")
	assert.NotContains(t, names, "TweetIDs")
}
