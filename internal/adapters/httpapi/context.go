package httpapi

import (
	"context"

	"github.com/taskboard-hq/taskboard-api/internal/domain"
)

type userKey struct{}

func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the authenticated identity stored by the auth
// middleware. ok is false on routes that skip authentication.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(domain.User)
	return u, ok && u.ID != 0
}
