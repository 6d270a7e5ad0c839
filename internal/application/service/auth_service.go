package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/internal/session"
	"github.com/dentastore/backoffice-client/pkg/apperror"
)

// AuthService owns the login/logout flow and the session cell.
type AuthService struct {
	authRepo repository.AuthRepository
	session  *session.Cell
	log      zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(authRepo repository.AuthRepository, cell *session.Cell, log zerolog.Logger) *AuthService {
	return &AuthService{authRepo: authRepo, session: cell, log: log}
}

// Login authenticates against the backend and persists the token and profile
// into the session cell.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, apperror.NewValidationError("username and password are required")
	}
	token, user, err := s.authRepo.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	s.session.Set(token, user)
	s.log.Info().Str("username", user.Username).Str("role", user.Role.String()).Msg("signed in")
	return user, nil
}

// Logout tells the backend to revoke the session and clears the cell either
// way. A failed revocation must not leave the operator signed in locally.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.authRepo.Logout(ctx)
	s.session.Clear()
	if err != nil && !apperror.IsUnauthorized(err) {
		return err
	}
	return nil
}

// CurrentUser returns the profile restored from the session store, nil when
// signed out.
func (s *AuthService) CurrentUser() *entity.User {
	return s.session.User()
}

// SignedIn reports whether a token is present.
func (s *AuthService) SignedIn() bool {
	return s.session.Token() != ""
}
