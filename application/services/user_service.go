package services

import (
	"context"

	"chirp-backend/application/ports"
	"chirp-backend/domain/core/entities"
	pkgerrors "chirp-backend/pkg/errors"

	"go.uber.org/zap"
)

// UserInput carries registration and profile-update fields
type UserInput struct {
	Credential entities.Credential
	Profile    entities.Profile
}

// UserService orchestrates the user lifecycle and the follow graph surface
type UserService struct {
	store         ports.EntityStore
	relationships *RelationshipManager
	logger        *zap.Logger
}

// NewUserService creates a user service
func NewUserService(store ports.EntityStore, relationships *RelationshipManager, logger *zap.Logger) *UserService {
	return &UserService{store: store, relationships: relationships, logger: logger}
}

// ActiveUsers returns every non-deleted user
func (s *UserService) ActiveUsers(ctx context.Context) ([]*entities.User, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	return filterActiveUsers(users), nil
}

// ByUsername returns a non-deleted user
func (s *UserService) ByUsername(ctx context.Context, username string) (*entities.User, error) {
	return activeUserByUsername(ctx, s.store, username)
}

// UsernameExists reports whether any user, active or deleted, holds the name
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := s.store.UserByUsername(ctx, username)
	if pkgerrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Register creates a user. Registering a username whose previous owner was
// soft-deleted revives that account with the new credential and profile; an
// active duplicate username is rejected.
func (s *UserService) Register(ctx context.Context, input UserInput) (*entities.User, error) {
	if err := validateUserInput(input); err != nil {
		return nil, err
	}

	existing, err := s.store.UserByUsername(ctx, input.Credential.Username)
	switch {
	case pkgerrors.IsNotFound(err):
		user, err := s.store.SaveUser(ctx, &entities.User{
			Credential: input.Credential,
			Profile:    input.Profile,
		})
		if err != nil {
			return nil, err
		}
		s.logger.Info("user registered", zap.String("username", user.Credential.Username))
		return user, nil
	case err != nil:
		return nil, err
	case existing.Deleted:
		existing.Credential = input.Credential
		existing.Profile = input.Profile
		existing.Deleted = false
		user, err := s.store.SaveUser(ctx, existing)
		if err != nil {
			return nil, err
		}
		s.logger.Info("user revived", zap.String("username", user.Credential.Username))
		return user, nil
	default:
		return nil, pkgerrors.NewValidationError("username must be unique")
	}
}

// Update replaces the authorized user's profile. The username in the path
// must be the acting user's own; username and password stay unchanged.
func (s *UserService) Update(ctx context.Context, username string, input UserInput) (*entities.User, error) {
	user, err := authorize(ctx, s.store, input.Credential)
	if err != nil {
		return nil, err
	}
	if user.Credential.Username != username {
		return nil, pkgerrors.NewUnauthorizedError("bad credentials")
	}

	user.Profile = input.Profile
	return s.store.SaveUser(ctx, user)
}

// Delete soft-deletes the authorized user's account. The user stays in
// storage and in other entities' relationship sets; read paths filter it.
func (s *UserService) Delete(ctx context.Context, username string, cred entities.Credential) (*entities.User, error) {
	user, err := authorize(ctx, s.store, cred)
	if err != nil {
		return nil, err
	}
	if user.Credential.Username != username {
		return nil, pkgerrors.NewUnauthorizedError("bad credentials")
	}

	user.Deleted = true
	deleted, err := s.store.SaveUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user deleted", zap.String("username", username))
	return deleted, nil
}

// Follow makes the authorized user follow the named user
func (s *UserService) Follow(ctx context.Context, username string, cred entities.Credential) error {
	followee, err := activeUserByUsername(ctx, s.store, username)
	if err != nil {
		return err
	}
	follower, err := authorize(ctx, s.store, cred)
	if err != nil {
		return err
	}
	if follower.Follows(followee.ID) {
		return pkgerrors.NewValidationError("already following")
	}
	return s.relationships.AddFollow(ctx, follower.ID, followee.ID)
}

// Unfollow removes the authorized user's follow of the named user
func (s *UserService) Unfollow(ctx context.Context, username string, cred entities.Credential) error {
	followee, err := activeUserByUsername(ctx, s.store, username)
	if err != nil {
		return err
	}
	follower, err := authorize(ctx, s.store, cred)
	if err != nil {
		return err
	}
	if !follower.Follows(followee.ID) {
		return pkgerrors.NewValidationError("not following")
	}
	return s.relationships.RemoveFollow(ctx, follower.ID, followee.ID)
}

// Followers returns the active users following the named user
func (s *UserService) Followers(ctx context.Context, username string) ([]*entities.User, error) {
	user, err := activeUserByUsername(ctx, s.store, username)
	if err != nil {
		return nil, err
	}
	return s.activeUsersByIDs(ctx, user.FollowerIDs)
}

// Following returns the active users the named user follows
func (s *UserService) Following(ctx context.Context, username string) ([]*entities.User, error) {
	user, err := activeUserByUsername(ctx, s.store, username)
	if err != nil {
		return nil, err
	}
	return s.activeUsersByIDs(ctx, user.FollowingIDs)
}

func (s *UserService) activeUsersByIDs(ctx context.Context, ids []string) ([]*entities.User, error) {
	users := []*entities.User{}
	for _, id := range ids {
		user, err := s.store.UserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user.IsActive() {
			users = append(users, user)
		}
	}
	return users, nil
}

func validateUserInput(input UserInput) error {
	if input.Credential.Username == "" {
		return pkgerrors.NewValidationError("field 'username' is required")
	}
	if input.Credential.Password == "" {
		return pkgerrors.NewValidationError("field 'password' is required")
	}
	if input.Profile.Email == "" {
		return pkgerrors.NewValidationError("field 'email' is required")
	}
	return nil
}
