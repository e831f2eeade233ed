package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type tagRequest struct {
	Nombre string `json:"Nombre"`
}

type taskTagRequest struct {
	EtiquetaID int64 `json:"EtiquetaID"`
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerEtiquetas")
}

func (s *Server) getTag(w http.ResponseWriter, r *http.Request) {
	s.getResource(w, r, "ObtenerEtiquetaPorID", "Tag not found")
}

func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Nombre == "" || len(req.Nombre) > 50 {
		writeMessage(w, http.StatusBadRequest, "Nombre is required and must be at most 50 characters")
		return
	}
	if _, err := s.Store.Call(r.Context(), "CrearEtiqueta", req.Nombre); err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Tag created successfully")
}

func (s *Server) updateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req tagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Nombre == "" || len(req.Nombre) > 50 {
		writeMessage(w, http.StatusBadRequest, "Nombre is required and must be at most 50 characters")
		return
	}
	rows, err := s.Store.Call(r.Context(), "ObtenerEtiquetaPorID", id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, "Tag not found")
		return
	}
	if _, err := s.Store.Call(r.Context(), "ActualizarEtiqueta", id, req.Nombre); err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Tag updated successfully")
}

func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	s.deleteResource(w, r, "ObtenerEtiquetaPorID", "EliminarEtiqueta", "Tag not found")
}

func (s *Server) addTagToTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req taskTagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EtiquetaID == 0 {
		writeMessage(w, http.StatusBadRequest, "EtiquetaID is required")
		return
	}
	if _, err := s.Store.Call(r.Context(), "AgregarEtiquetaATarea", taskID, req.EtiquetaID); err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Tag added to task successfully")
}

func (s *Server) removeTagFromTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	tagID, err := strconv.ParseInt(chi.URLParam(r, "etiquetaID"), 10, 64)
	if err != nil || tagID <= 0 {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if _, err := s.Store.Call(r.Context(), "RemoverEtiquetaDeTarea", taskID, tagID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
