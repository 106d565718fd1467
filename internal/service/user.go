package service

import (
	"context"
	"errors"

	"github.com/eduliv/eduliv-go/internal/config"
	"github.com/eduliv/eduliv-go/internal/crypto"
	"github.com/eduliv/eduliv-go/internal/model"
	"github.com/eduliv/eduliv-go/internal/repository"
	"github.com/eduliv/eduliv-go/internal/schema"
	"github.com/eduliv/eduliv-go/internal/text"
)

// UserService handles user registration and lookups for the presentation layer.
type UserService struct {
	directory  UserDirectory
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(directory UserDirectory, cfg config.Config) *UserService {
	return &UserService{
		directory:  directory,
		bcryptCost: cfg.BcryptCost,
	}
}

// Create registers a new user. The display name is derived from the full name
// at creation time and stored, not recomputed.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	parsed, err := schema.ParseCreateUser(req.FullName, req.Email, req.Password, req.Phone)
	if err != nil {
		return model.UserResponse{}, ErrValidation
	}

	_, err = s.directory.GetByEmail(ctx, parsed.Email)
	if err == nil {
		return model.UserResponse{}, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(parsed.Password, s.bcryptCost)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Email:       parsed.Email,
		Password:    hash,
		FullName:    parsed.FullName,
		DisplayName: text.FirstName(parsed.FullName),
		Phone:       parsed.Phone,
	}

	if err := s.directory.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		DisplayName: user.DisplayName,
	}, nil
}

// Session returns the current-user projection for an authenticated user ID.
func (s *UserService) Session(ctx context.Context, userID string) (model.UserSession, error) {
	user, err := s.directory.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserSession{}, ErrUnauthorized
		}
		return model.UserSession{}, err
	}

	return model.UserSession{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Phone:       user.Phone,
	}, nil
}
