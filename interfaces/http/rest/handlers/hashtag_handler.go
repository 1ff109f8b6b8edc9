package handlers

import (
	"net/http"

	"chirp-backend/application/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HashtagHandler handles hashtag-related HTTP requests
type HashtagHandler struct {
	hashtags *services.HashtagService
	logger   *zap.Logger
}

// NewHashtagHandler creates a new hashtag handler
func NewHashtagHandler(hashtags *services.HashtagService, logger *zap.Logger) *HashtagHandler {
	return &HashtagHandler{hashtags: hashtags, logger: logger}
}

// ListHashtags handles GET /hashtags
func (h *HashtagHandler) ListHashtags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.hashtags.All(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	out := make([]HashtagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, newHashtagResponse(tag))
	}
	respondJSON(w, http.StatusOK, out)
}

// ListTweetsByLabel handles GET /hashtags/{label}
func (h *HashtagHandler) ListTweetsByLabel(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.hashtags.TweetsByLabel(r.Context(), chi.URLParam(r, "label"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetListResponse(tweets))
}
