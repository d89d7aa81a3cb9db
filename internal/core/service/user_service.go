package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sylee999/minifeed/internal/core/domain"
	"github.com/sylee999/minifeed/internal/core/ports"
)

type userService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(users ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{users: users, log: log}
}

func (s *userService) Signup(ctx context.Context, input ports.SignupInput) ports.UserMutationResult {
	existing, err := s.users.Search(ctx, "email", input.Email, 1, 1)
	if err != nil {
		s.log.Error().Err(err).Msg("signup: email lookup failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to create account: " + storeFailureText(err)}
	}
	for _, u := range existing {
		if u.Email == input.Email {
			return ports.UserMutationResult{Success: false, Message: "Email is already registered"}
		}
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:            input.Name,
		Email:           input.Email,
		Password:        input.Password,
		Avatar:          input.Avatar,
		Bio:             input.Bio,
		Following:       []string{},
		BookmarkedPosts: []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Msg("signup: create failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to create account: " + storeFailureText(err)}
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	return ports.UserMutationResult{Success: true, Message: "Account created successfully", User: created}
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User", id)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) ports.UserMutationResult {
	if input.UserID == "" {
		return ports.UserMutationResult{Success: false, Message: "You must be logged in to update your profile"}
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("profile update: load failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to load user: " + storeFailureText(err)}
	}
	if user == nil {
		return ports.UserMutationResult{Success: false, Message: domain.NewNotFoundError("User", input.UserID).Message}
	}

	user.Name = input.Name
	user.Avatar = input.Avatar
	user.Bio = input.Bio
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("profile update: write failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to update profile: " + storeFailureText(err)}
	}
	return ports.UserMutationResult{Success: true, Message: "Profile updated successfully", User: user}
}

func (s *userService) DeleteAccount(ctx context.Context, userID string) ports.UserMutationResult {
	if userID == "" {
		return ports.UserMutationResult{Success: false, Message: "You must be logged in to delete your account"}
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("account delete failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to delete account: " + storeFailureText(err)}
	}

	s.log.Info().Str("user_id", userID).Msg("account deleted")
	return ports.UserMutationResult{Success: true, Message: "Account deleted successfully"}
}

// Follow adds targetID to the caller's following list. Only the caller's
// record is written; there is no mirrored followers list to keep in sync.
func (s *userService) Follow(ctx context.Context, targetID, userID string) ports.UserMutationResult {
	if userID == "" {
		return ports.UserMutationResult{Success: false, Message: "You must be logged in to follow users"}
	}
	if targetID == userID {
		return ports.UserMutationResult{Success: false, Message: "You cannot follow yourself"}
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", targetID).Msg("follow: target lookup failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to load user: " + storeFailureText(err)}
	}
	if target == nil {
		return ports.UserMutationResult{Success: false, Message: domain.NewNotFoundError("User", targetID).Message}
	}

	me, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("follow: self lookup failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to load user: " + storeFailureText(err)}
	}
	if me == nil {
		return ports.UserMutationResult{Success: false, Message: domain.NewNotFoundError("User", userID).Message}
	}

	if me.Follows(targetID) {
		return ports.UserMutationResult{Success: false, Message: "You are already following this user"}
	}

	me.Following = addID(me.Following, targetID)
	me.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, me); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("follow: write failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to follow user: " + storeFailureText(err)}
	}

	return ports.UserMutationResult{Success: true, Message: "User followed successfully", User: me}
}

func (s *userService) Unfollow(ctx context.Context, targetID, userID string) ports.UserMutationResult {
	if userID == "" {
		return ports.UserMutationResult{Success: false, Message: "You must be logged in to unfollow users"}
	}

	me, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("unfollow: self lookup failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to load user: " + storeFailureText(err)}
	}
	if me == nil {
		return ports.UserMutationResult{Success: false, Message: domain.NewNotFoundError("User", userID).Message}
	}

	if !me.Follows(targetID) {
		return ports.UserMutationResult{Success: false, Message: "You are not following this user"}
	}

	me.Following = removeID(me.Following, targetID)
	me.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, me); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("unfollow: write failed")
		return ports.UserMutationResult{Success: false, Message: "Failed to unfollow user: " + storeFailureText(err)}
	}

	return ports.UserMutationResult{Success: true, Message: "User unfollowed successfully", User: me}
}
