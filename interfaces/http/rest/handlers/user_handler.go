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

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  *services.UserService
	feeds  *services.FeedAssembler
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *services.UserService, feeds *services.FeedAssembler, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, feeds: feeds, logger: logger}
}

// CredentialsRequest carries the acting user's credentials
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r CredentialsRequest) toCredential() entities.Credential {
	return entities.Credential{Username: r.Username, Password: r.Password}
}

// RegisterUserRequest represents the request body for registering a user
type RegisterUserRequest struct {
	Username  string `json:"username" validate:"required,max=50"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// UpdateUserRequest represents the request body for updating a profile. The
// credentials authorize the change; the remaining fields replace the profile.
type UpdateUserRequest struct {
	Credentials CredentialsRequest `json:"credentials" validate:"required"`
	Email       string             `json:"email" validate:"required,email"`
	FirstName   string             `json:"firstName,omitempty"`
	LastName    string             `json:"lastName,omitempty"`
	Phone       string             `json:"phone,omitempty"`
}

// ExistsResponse reports whether a username is taken
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ActiveUsers(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newUserListResponse(users))
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	user, err := h.users.Register(r.Context(), services.UserInput{
		Credential: entities.Credential{Username: req.Username, Password: req.Password},
		Profile: entities.Profile{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		},
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, newUserResponse(user))
}

// GetUser handles GET /users/{username}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.ByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newUserResponse(user))
}

// UsernameExists handles GET /users/{username}/exists
func (h *UserHandler) UsernameExists(w http.ResponseWriter, r *http.Request) {
	exists, err := h.users.UsernameExists(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
}

// UpdateUser handles PATCH /users/{username}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	user, err := h.users.Update(r.Context(), chi.URLParam(r, "username"), services.UserInput{
		Credential: req.Credentials.toCredential(),
		Profile: entities.Profile{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		},
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newUserResponse(user))
}

// DeleteUser handles DELETE /users/{username}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	user, err := h.users.Delete(r.Context(), chi.URLParam(r, "username"), cred)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newUserResponse(user))
}

// Follow handles POST /users/{username}/follow
func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	if err := h.users.Follow(r.Context(), chi.URLParam(r, "username"), cred); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Unfollow handles POST /users/{username}/unfollow
func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	if err := h.users.Unfollow(r.Context(), chi.URLParam(r, "username"), cred); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListFollowers handles GET /users/{username}/followers
func (h *UserHandler) ListFollowers(w http.ResponseWriter, r *http.Request) {
	followers, err := h.users.Followers(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newUserListResponse(followers))
}

// ListFollowing handles GET /users/{username}/following
func (h *UserHandler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	following, err := h.users.Following(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newUserListResponse(following))
}

// ListTweets handles GET /users/{username}/tweets
func (h *UserHandler) ListTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.feeds.UserTweets(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetListResponse(tweets))
}

// ListMentions handles GET /users/{username}/mentions
func (h *UserHandler) ListMentions(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.feeds.TweetsByMention(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetListResponse(tweets))
}

// GetFeed handles GET /users/{username}/feed
func (h *UserHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.feeds.Feed(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, newTweetListResponse(tweets))
}

func (h *UserHandler) decodeCredentials(w http.ResponseWriter, r *http.Request) (entities.Credential, bool) {
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
