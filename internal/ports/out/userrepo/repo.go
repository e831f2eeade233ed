package userrepo

import (
	"context"

	"github.com/taskboard-hq/taskboard-api/internal/domain"
)

// Repository is the credential-store read path used by login and by the auth
// middleware to resolve the acting identity.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id domain.UserID) (domain.User, error)
}
