package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/taskboard-hq/taskboard-api/internal/app/apperror"
	"github.com/taskboard-hq/taskboard-api/internal/platform/logging"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes the `{"message": ...}` rejection envelope. Every
// rejection carries a short machine-readable message; internal detail never
// crosses the boundary.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeMessageDetail adds an `error` field naming the rejection cause.
func writeMessageDetail(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, map[string]string{"message": message, "error": detail})
}

// writeError maps app-layer errors to their status/message and everything
// else to an opaque 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	if ae, ok := apperror.From(err); ok {
		writeMessage(w, ae.Status, ae.Message)
		return
	}
	s.log.Error("request failed", logging.Err(err))
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}
