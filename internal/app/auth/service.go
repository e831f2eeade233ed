// Package auth implements credential verification and token issuance.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskboard-hq/taskboard-api/internal/app/apperror"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/platform/auth/passwords"
	"github.com/taskboard-hq/taskboard-api/internal/platform/auth/tokens"
	"github.com/taskboard-hq/taskboard-api/internal/platform/logging"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/userrepo"
)

type Service struct {
	users  userrepo.Repository
	tokens *tokens.Service
	log    *slog.Logger
}

func NewService(users userrepo.Repository, tok *tokens.Service, log *slog.Logger) *Service {
	return &Service{users: users, tokens: tok, log: log}
}

// Login verifies the credentials and returns a signed identity token.
//
// Status contract: 401 for missing fields or an unknown email, 403 for a
// password mismatch. The message strings are part of the wire contract.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperror.New(http.StatusUnauthorized, "Could not verify")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return "", apperror.New(http.StatusUnauthorized, "User not found")
		}
		return "", err
	}

	if !passwords.Verify(user.PasswordHash, password) {
		return "", apperror.New(http.StatusForbidden, "Password is incorrect")
	}

	raw, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("issue token", logging.Err(err), slog.Int64("user_id", int64(user.ID)))
		return "", err
	}
	return raw, nil
}

// Resolve looks up the identity embedded in a verified token. A stale token
// whose user record has since been deleted is rejected here rather than
// passing a missing identity into handlers.
func (s *Service) Resolve(ctx context.Context, id domain.UserID) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, apperror.New(http.StatusNotFound, "User not found")
		}
		return domain.User{}, err
	}
	return user, nil
}
