package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appauth "github.com/taskboard-hq/taskboard-api/internal/app/auth"
	apptasks "github.com/taskboard-hq/taskboard-api/internal/app/tasks"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
	"github.com/taskboard-hq/taskboard-api/internal/realtime"
)

// Server is the HTTP adapter. Task and auth operations go through their app
// services; the remaining resources are thin pass-throughs to the command
// store, the way the schema's stored procedures intend.
type Server struct {
	log *slog.Logger

	Auth  *appauth.Service
	Tasks *apptasks.Service
	Store commandstore.Store
	Hub   *realtime.Hub

	UploadDir string
}

func NewServer(log *slog.Logger, auth *appauth.Service, tasks *apptasks.Service, store commandstore.Store, hub *realtime.Hub, uploadDir string) *Server {
	return &Server{
		log:       log,
		Auth:      auth,
		Tasks:     tasks,
		Store:     store,
		Hub:       hub,
		UploadDir: uploadDir,
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// idParam parses the numeric {id} route parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// listResource serves the GET-collection shape shared by most resources.
func (s *Server) listResource(w http.ResponseWriter, r *http.Request, op string) {
	rows, err := s.Store.Call(r.Context(), op)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if rows == nil {
		rows = []commandstore.Row{}
	}
	writeJSON(w, http.StatusOK, rows)
}

// getResource serves the GET-by-id shape: first row or a 404 message.
func (s *Server) getResource(w http.ResponseWriter, r *http.Request, op, notFound string) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	rows, err := s.Store.Call(r.Context(), op, id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}
	writeJSON(w, http.StatusOK, rows[0])
}

// deleteResource checks existence with getOp, then deletes. 204 on success.
func (s *Server) deleteResource(w http.ResponseWriter, r *http.Request, getOp, deleteOp, notFound string) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	rows, err := s.Store.Call(r.Context(), getOp, id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}
	if _, err := s.Store.Call(r.Context(), deleteOp, id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
