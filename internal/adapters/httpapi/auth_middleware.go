package httpapi

import (
	"context"
	"net/http"

	"github.com/taskboard-hq/taskboard-api/internal/app/apperror"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/platform/auth/tokens"
)

// TokenHeader carries the identity token on protected requests.
const TokenHeader = "x-access-tokens"

// IdentityResolver maps a verified token's user id to the acting identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, id domain.UserID) (domain.User, error)
}

// NewAuthMiddleware enforces a valid identity token on every wrapped route.
//
// State machine per request: no token -> short-circuit 403; token present ->
// verify -> short-circuit 403 with the specific cause on failure; verified ->
// resolve identity (a stale token whose user is gone is rejected, not passed
// through) and store it in request context for the handler.
func NewAuthMiddleware(tok *tokens.Service, ident IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(TokenHeader)
			if raw == "" {
				writeMessage(w, http.StatusForbidden, "Token is missing!")
				return
			}

			id, err := tok.Verify(raw)
			if err != nil {
				writeMessageDetail(w, http.StatusForbidden, "Token is invalid!", err.Error())
				return
			}

			user, err := ident.Resolve(r.Context(), id)
			if err != nil {
				if ae, ok := apperror.From(err); ok {
					writeMessage(w, ae.Status, ae.Message)
					return
				}
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
