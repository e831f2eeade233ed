package httpapi

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const maxUploadBytes = 16 << 20

// uploadAttachment accepts a multipart form with a single "file" part, stores
// the file under the configured upload directory, and records it against the
// task. The stored name is prefixed with a random id so uploads never collide.
func (s *Server) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	taskID, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	rows, err := s.Store.Call(r.Context(), "ObtenerTareaPorID", taskID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, "Task not found")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeMessage(w, http.StatusBadRequest, "No file part")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()

	name := filepath.Base(header.Filename)
	if name == "" || name == "." || name == "/" {
		writeMessage(w, http.StatusBadRequest, "No selected file")
		return
	}

	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		s.writeError(w, err)
		return
	}
	stored := filepath.Join(s.UploadDir, uuid.NewString()+"_"+name)
	dst, err := os.Create(stored)
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(stored)
		s.writeError(w, err)
		return
	}

	if _, err := s.Store.Call(r.Context(), "CrearAdjunto", taskID, stored); err != nil {
		_ = os.Remove(stored)
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Attachment uploaded successfully")
}

func (s *Server) getAttachment(w http.ResponseWriter, r *http.Request) {
	s.getResource(w, r, "ObtenerAdjuntoPorID", "Attachment not found")
}

func (s *Server) deleteAttachment(w http.ResponseWriter, r *http.Request) {
	s.deleteResource(w, r, "ObtenerAdjuntoPorID", "EliminarAdjunto", "Attachment not found")
}
