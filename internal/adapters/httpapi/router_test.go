package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	memclock "github.com/taskboard-hq/taskboard-api/internal/adapters/memory/clock"
	memcommandstore "github.com/taskboard-hq/taskboard-api/internal/adapters/memory/commandstore"
	memuserrepo "github.com/taskboard-hq/taskboard-api/internal/adapters/memory/userrepo"
	appauth "github.com/taskboard-hq/taskboard-api/internal/app/auth"
	apptasks "github.com/taskboard-hq/taskboard-api/internal/app/tasks"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/platform/auth/tokens"
	"github.com/taskboard-hq/taskboard-api/internal/realtime"
)

type testEnv struct {
	handler http.Handler
	store   *memcommandstore.Store
	clk     *memclock.ManualClock
	tokens  *tokens.Service
	hub     *realtime.Hub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := memclock.NewManualClock(time.Unix(1_700_000_000, 0).UTC())
	store := memcommandstore.NewStore(clk)
	users := memuserrepo.NewRepo(store)
	tok := tokens.NewService("test-secret", 30*time.Minute, clk)
	hub := realtime.NewHub(log)

	authSvc := appauth.NewService(users, tok, log)
	taskSvc := apptasks.NewService(store, hub)

	api := NewServer(log, authSvc, taskSvc, store, hub, t.TempDir())
	handler := NewRouter(api, NewAuthMiddleware(tok, authSvc))

	return &testEnv{handler: handler, store: store, clk: clk, tokens: tok, hub: hub}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// register creates a user through the public registration endpoint and
// returns the id it was assigned.
func (e *testEnv) register(t *testing.T, email, password string) domain.UserID {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/usuarios", "", map[string]any{
		"Nombre":            "Ana",
		"Apellido":          "Lopez",
		"CorreoElectronico": email,
		"Password":          password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status=%d body=%s", rec.Code, rec.Body.String())
	}

	rows, err := e.store.Call(context.Background(), "ObtenerUsuarios")
	if err != nil {
		t.Fatalf("ObtenerUsuarios: %v", err)
	}
	for _, row := range rows {
		if row["CorreoElectronico"] == email {
			return domain.UserID(row["UsuarioID"].(int64))
		}
	}
	t.Fatalf("registered user %q not found", email)
	return 0
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"CorreoElectronico": email,
		"Password":          password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("login returned empty token")
	}
	return resp.Token
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var m map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode message envelope: %v (body=%s)", err, rec.Body.String())
	}
	return m
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}
