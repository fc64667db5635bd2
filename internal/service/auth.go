package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mcastell/product-catalog/internal/logging"
	"github.com/mcastell/product-catalog/internal/repo"
	"github.com/mcastell/product-catalog/internal/session"
)

// ErrInvalidCredentials covers both unknown users and wrong passwords, so the
// login surface cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Repo     *repo.GormRepo
	Sessions *session.Store
}

// Login validates the credential pair against the record store and, on
// success, issues a session token bound to the resolved user id.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, uint, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	user, err := s.Repo.FindUserByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "reason", "invalid credentials")
			return "", 0, ErrInvalidCredentials
		}
		l.Error("login_failed", "reason", "storage fault", "error", err)
		return "", 0, err
	}

	token := s.Sessions.Create(user.ID)
	l.Info("login_success", "user_id", user.ID)
	return token, user.ID, nil
}

// Logout invalidates the session; calling it with an unknown or already
// cleared token is a no-op.
func (s *AuthService) Logout(token string) {
	s.Sessions.Delete(token)
}

// UserID resolves the logged-in user for a session token, guarding the
// protected routes.
func (s *AuthService) UserID(token string) (uint, bool) {
	return s.Sessions.UserID(token)
}
