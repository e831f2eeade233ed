package httpapi

import (
	"net/http"
	"testing"
)

func TestLogin_TokenWorksOnProtectedRoute(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.register(t, "ana@example.com", "secret-pass")
	token := env.login(t, "ana@example.com", "secret-pass")

	rec := env.do(t, http.MethodGet, "/api/usuarios", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.register(t, "ana@example.com", "secret-pass")

	tests := []struct {
		name        string
		body        map[string]string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "wrong password",
			body:        map[string]string{"CorreoElectronico": "ana@example.com", "Password": "wrong"},
			wantStatus:  http.StatusForbidden,
			wantMessage: "Password is incorrect",
		},
		{
			name:        "unknown email",
			body:        map[string]string{"CorreoElectronico": "nadie@example.com", "Password": "secret-pass"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "User not found",
		},
		{
			name:        "missing credentials",
			body:        map[string]string{},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Could not verify",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/auth/login", "", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
			}
			if msg := decodeMessage(t, rec)["message"]; msg != tt.wantMessage {
				t.Fatalf("message=%q, want %q", msg, tt.wantMessage)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.register(t, "ana@example.com", "secret-pass")

	rec := env.do(t, http.MethodPost, "/api/usuarios", "", map[string]any{
		"Nombre":            "Otra",
		"Apellido":          "Ana",
		"CorreoElectronico": "ana@example.com",
		"Password":          "secret-pass",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "Email already registered" {
		t.Fatalf("message=%q", msg)
	}
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing nombre", map[string]any{"Apellido": "L", "CorreoElectronico": "a@b.com", "Password": "secret1"}},
		{"bad email", map[string]any{"Nombre": "A", "Apellido": "L", "CorreoElectronico": "not-an-email", "Password": "secret1"}},
		{"short password", map[string]any{"Nombre": "A", "Apellido": "L", "CorreoElectronico": "a@b.com", "Password": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/usuarios", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
			}
		})
	}
}
