package service

import (
	"context"
	"errors"
	"time"

	"github.com/eduliv/eduliv-go/internal/config"
	"github.com/eduliv/eduliv-go/internal/crypto"
	"github.com/eduliv/eduliv-go/internal/model"
	"github.com/eduliv/eduliv-go/internal/repository"
	"github.com/eduliv/eduliv-go/internal/schema"
	"github.com/eduliv/eduliv-go/internal/session"
)

var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailTaken         = errors.New("email already taken")
)

// UserDirectory is the user store consulted by the auth flow.
type UserDirectory interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// AuthService orchestrates login, logout and session verification over a
// per-request cookie jar. Domain failures come back as the sentinel errors
// above; infrastructure failures propagate unwrapped.
type AuthService struct {
	directory  UserDirectory
	cookieName string
	cookieOpts session.Options
	jwtSecret  string
	jwtExpiry  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(directory UserDirectory, cfg config.Config) *AuthService {
	return &AuthService{
		directory:  directory,
		cookieName: cfg.CookieName,
		cookieOpts: session.DefaultOptions(cfg.IsProduction()),
		jwtSecret:  cfg.JWTSecret,
		jwtExpiry:  cfg.JWTExpiry,
	}
}

// Login verifies the credentials and, on success, issues a session token in
// the session cookie. An unknown email and a wrong password fail identically,
// so the caller cannot tell which of the two was wrong.
func (s *AuthService) Login(ctx context.Context, jar *session.Jar, req model.LoginRequest) error {
	creds, err := schema.ParseLogin(req.Email, req.Password)
	if err != nil {
		return ErrValidation
	}

	user, err := s.directory.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !crypto.VerifyPassword(creds.Password, user.Password) {
		return ErrInvalidCredentials
	}

	token, err := crypto.SignSession(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return err
	}

	jar.Set(s.cookieName, token, s.cookieOpts)
	return nil
}

// Logout removes the session cookie. Without a session there is nothing to
// log out of.
func (s *AuthService) Logout(jar *session.Jar) error {
	if _, ok := jar.Get(s.cookieName); !ok {
		return ErrUnauthorized
	}

	jar.Delete(s.cookieName, s.cookieOpts)
	return nil
}

// VerifySession checks the current session cookie and returns the user it
// belongs to. A missing cookie, an unverifiable token and a deleted user all
// fail with ErrUnauthorized; the directory lookup is the only enforcement
// point for "user still exists".
func (s *AuthService) VerifySession(ctx context.Context, jar *session.Jar) (*model.User, error) {
	token, ok := jar.Get(s.cookieName)
	if !ok {
		return nil, ErrUnauthorized
	}

	claims, err := crypto.VerifySession(token, s.jwtSecret)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.directory.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}
