package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestAuthMiddleware_MissingToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/tareas", "", nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "Token is missing!" {
		t.Fatalf("message=%q", msg)
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/tareas", "not-a-jwt", nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	m := decodeMessage(t, rec)
	if m["message"] != "Token is invalid!" {
		t.Fatalf("message=%q", m["message"])
	}
	if m["error"] == "" {
		t.Fatalf("expected a rejection cause in the error field")
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.register(t, "ana@example.com", "secret-pass")
	token := env.login(t, "ana@example.com", "secret-pass")

	env.clk.Advance(31 * time.Minute)
	rec := env.do(t, http.MethodGet, "/api/tareas", token, nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	m := decodeMessage(t, rec)
	if m["message"] != "Token is invalid!" {
		t.Fatalf("message=%q", m["message"])
	}
	if !strings.Contains(m["error"], "expired") {
		t.Fatalf("error=%q, want an expiry cause", m["error"])
	}
}

func TestAuthMiddleware_ValidTokenPasses(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.register(t, "ana@example.com", "secret-pass")
	token := env.login(t, "ana@example.com", "secret-pass")

	rec := env.do(t, http.MethodGet, "/api/tareas", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAuthMiddleware_StaleTokenUserDeleted(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	id := env.register(t, "ana@example.com", "secret-pass")
	token := env.login(t, "ana@example.com", "secret-pass")

	// Delete the account out from under the still-valid token.
	other := env.register(t, "otro@example.com", "secret-pass")
	otherToken := env.login(t, "otro@example.com", "secret-pass")
	rec := env.do(t, http.MethodDelete, "/api/usuarios/"+strconv.FormatInt(int64(id), 10), otherToken, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete user status=%d body=%s", rec.Code, rec.Body.String())
	}
	_ = other

	rec = env.do(t, http.MethodGet, "/api/tareas", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "User not found" {
		t.Fatalf("message=%q", msg)
	}
}
