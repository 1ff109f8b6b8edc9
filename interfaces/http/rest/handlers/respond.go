package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"chirp-backend/domain/core/entities"
	"chirp-backend/pkg/errors"

	"go.uber.org/zap"
)

// UserResponse is the public representation of a user. The password never
// leaves the server.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Joined    string `json:"joined"`

	TweetIDs        []string `json:"tweetIds"`
	LikedTweetIDs   []string `json:"likedTweetIds"`
	MentionTweetIDs []string `json:"mentionTweetIds"`
	FollowingIDs    []string `json:"followingIds"`
	FollowerIDs     []string `json:"followerIds"`
}

func newUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Credential.Username,
		Email:     user.Profile.Email,
		FirstName: user.Profile.FirstName,
		LastName:  user.Profile.LastName,
		Phone:     user.Profile.Phone,
		Joined:    user.Joined.Format(time.RFC3339),

		TweetIDs:        orEmpty(user.TweetIDs),
		LikedTweetIDs:   orEmpty(user.LikedTweetIDs),
		MentionTweetIDs: orEmpty(user.MentionTweetIDs),
		FollowingIDs:    orEmpty(user.FollowingIDs),
		FollowerIDs:     orEmpty(user.FollowerIDs),
	}
}

func newUserListResponse(users []*entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}
	return out
}

// TweetResponse is the public representation of a tweet
type TweetResponse struct {
	ID          string `json:"id"`
	AuthorID    string `json:"authorId"`
	Content     string `json:"content,omitempty"`
	Posted      string `json:"posted"`
	InReplyToID string `json:"inReplyToId,omitempty"`
	RepostOfID  string `json:"repostOfId,omitempty"`

	ReplyIDs         []string `json:"replyIds"`
	RepostIDs        []string `json:"repostIds"`
	HashtagIDs       []string `json:"hashtagIds"`
	MentionedUserIDs []string `json:"mentionedUserIds"`
	LikerIDs         []string `json:"likerIds"`
}

func newTweetResponse(tweet *entities.Tweet) TweetResponse {
	return TweetResponse{
		ID:          tweet.ID,
		AuthorID:    tweet.AuthorID,
		Content:     tweet.Content,
		Posted:      tweet.Posted.Format(time.RFC3339),
		InReplyToID: tweet.InReplyToID,
		RepostOfID:  tweet.RepostOfID,

		ReplyIDs:         orEmpty(tweet.ReplyIDs),
		RepostIDs:        orEmpty(tweet.RepostIDs),
		HashtagIDs:       orEmpty(tweet.HashtagIDs),
		MentionedUserIDs: orEmpty(tweet.MentionedUserIDs),
		LikerIDs:         orEmpty(tweet.LikerIDs),
	}
}

func newTweetListResponse(tweets []*entities.Tweet) []TweetResponse {
	out := make([]TweetResponse, 0, len(tweets))
	for _, tweet := range tweets {
		out = append(out, newTweetResponse(tweet))
	}
	return out
}

// HashtagResponse is the public representation of a hashtag
type HashtagResponse struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	LastUsed string   `json:"lastUsed"`
	TweetIDs []string `json:"tweetIds"`
}

func newHashtagResponse(tag *entities.Hashtag) HashtagResponse {
	return HashtagResponse{
		ID:       tag.ID,
		Label:    tag.Label,
		LastUsed: tag.LastUsed.Format(time.RFC3339),
		TweetIDs: orEmpty(tag.TweetIDs),
	}
}

func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps an application error onto its HTTP status
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		logger.Error("unhandled error", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}
	respondJSON(w, appErr.HTTPStatus, ErrorResponse{Error: appErr.Message})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}
