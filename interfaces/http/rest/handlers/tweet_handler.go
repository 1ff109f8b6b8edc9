package handlers

import (
	"encoding/json"
	"net/http"

	"chirp-backend/application/services"
	"chirp-backend/domain/core/entities"
	"chirp-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TweetHandler handles tweet-related HTTP requests
type TweetHandler struct {
	tweets  *services.TweetService
	threads *services.ThreadResolver
	logger  *zap.Logger
}

// NewTweetHandler creates a new tweet handler
func NewTweetHandler(tweets *services.TweetService, threads *services.ThreadResolver, logger *zap.Logger) *TweetHandler {
	return &TweetHandler{tweets: tweets, threads: threads, logger: logger}
}

// CreateTweetRequest represents the request body for creating, replying to or
// editing a tweet
type CreateTweetRequest struct {
	Credentials CredentialsRequest `json:"credentials" validate:"required"`
	Content     string             `json:"content" validate:"required,max=280"`
}

func (r CreateTweetRequest) toInput() services.TweetInput {
	return services.TweetInput{
		Credentials: r.Credentials.toCredential(),
		Content:     r.Content,
	}
}

// ContextResponse is the reply-thread neighborhood of a tweet
type ContextResponse struct {
	Target TweetResponse   `json:"target"`
	Before []TweetResponse `json:"before"`
	After  []TweetResponse `json:"after"`
}

// ListTweets handles GET /tweets
func (h *TweetHandler) ListTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.tweets.ActiveTweets(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetListResponse(tweets))
}

// CreateTweet handles POST /tweets
func (h *TweetHandler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTweetRequest(w, r)
	if !ok {
		return
	}
	tweet, err := h.tweets.Create(r.Context(), req.toInput())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, newTweetResponse(tweet))
}

// GetTweet handles GET /tweets/{tweetID}
func (h *TweetHandler) GetTweet(w http.ResponseWriter, r *http.Request) {
	tweet, err := h.tweets.ByID(r.Context(), chi.URLParam(r, "tweetID"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetResponse(tweet))
}

// EditTweet handles PATCH /tweets/{tweetID}
func (h *TweetHandler) EditTweet(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTweetRequest(w, r)
	if !ok {
		return
	}
	tweet, err := h.tweets.Edit(r.Context(), chi.URLParam(r, "tweetID"), req.toInput())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetResponse(tweet))
}

// DeleteTweet handles DELETE /tweets/{tweetID}
func (h *TweetHandler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	tweet, err := h.tweets.Delete(r.Context(), chi.URLParam(r, "tweetID"), cred)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetResponse(tweet))
}

// Reply handles POST /tweets/{tweetID}/reply
func (h *TweetHandler) Reply(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTweetRequest(w, r)
	if !ok {
		return
	}
	tweet, err := h.tweets.Reply(r.Context(), chi.URLParam(r, "tweetID"), req.toInput())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, newTweetResponse(tweet))
}

// Repost handles POST /tweets/{tweetID}/repost
func (h *TweetHandler) Repost(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	tweet, err := h.tweets.Repost(r.Context(), chi.URLParam(r, "tweetID"), cred)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, newTweetResponse(tweet))
}

// Like handles POST /tweets/{tweetID}/like
func (h *TweetHandler) Like(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	if err := h.tweets.Like(r.Context(), chi.URLParam(r, "tweetID"), cred); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Unlike handles POST /tweets/{tweetID}/unlike
func (h *TweetHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	if err := h.tweets.Unlike(r.Context(), chi.URLParam(r, "tweetID"), cred); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListLikers handles GET /tweets/{tweetID}/likes
func (h *TweetHandler) ListLikers(w http.ResponseWriter, r *http.Request) {
	users, err := h.tweets.Likers(r.Context(), chi.URLParam(r, "tweetID"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newUserListResponse(users))
}

// ListMentioned handles GET /tweets/{tweetID}/mentions
func (h *TweetHandler) ListMentioned(w http.ResponseWriter, r *http.Request) {
	users, err := h.tweets.Mentioned(r.Context(), chi.URLParam(r, "tweetID"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newUserListResponse(users))
}

// GetContext handles GET /tweets/{tweetID}/context
func (h *TweetHandler) GetContext(w http.ResponseWriter, r *http.Request) {
	threadCtx, err := h.threads.Context(r.Context(), chi.URLParam(r, "tweetID"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, ContextResponse{
		Target: newTweetResponse(threadCtx.Target),
		Before: newTweetListResponse(threadCtx.Before),
		After:  newTweetListResponse(threadCtx.After),
	})
}

// ListReplies handles GET /tweets/{tweetID}/replies
func (h *TweetHandler) ListReplies(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.threads.RepliesTo(r.Context(), chi.URLParam(r, "tweetID"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetListResponse(tweets))
}

// ListReposts handles GET /tweets/{tweetID}/reposts
func (h *TweetHandler) ListReposts(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.threads.RepostsOf(r.Context(), chi.URLParam(r, "tweetID"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetListResponse(tweets))
}

func (h *TweetHandler) decodeTweetRequest(w http.ResponseWriter, r *http.Request) (CreateTweetRequest, bool) {
	var req CreateTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return req, false
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err.Error())
		return req, false
	}
	return req, true
}

func (h *TweetHandler) decodeCredentials(w http.ResponseWriter, r *http.Request) (entities.Credential, bool) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return entities.Credential{}, false
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err.Error())
		return entities.Credential{}, false
	}
	return req.toCredential(), true
}
