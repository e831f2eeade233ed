package httpapi

import "net/http"

type commentRequest struct {
	TareaID int64  `json:"TareaID"`
	Texto   string `json:"Texto"`
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerComentarios")
}

func (s *Server) getComment(w http.ResponseWriter, r *http.Request) {
	s.getResource(w, r, "ObtenerComentarioPorID", "Comment not found")
}

// createComment attributes the comment to the authenticated identity.
func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusForbidden, "Token is missing!")
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TareaID == 0 || req.Texto == "" {
		writeMessage(w, http.StatusBadRequest, "TareaID and Texto are required")
		return
	}
	_, err := s.Store.Call(r.Context(), "CrearComentario", req.TareaID, int64(user.ID), req.Texto)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Comment created successfully")
}

func (s *Server) updateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Texto == "" {
		writeMessage(w, http.StatusBadRequest, "Texto is required")
		return
	}
	rows, err := s.Store.Call(r.Context(), "ObtenerComentarioPorID", id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, "Comment not found")
		return
	}
	if _, err := s.Store.Call(r.Context(), "ActualizarComentario", id, req.Texto); err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Comment updated successfully")
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	s.deleteResource(w, r, "ObtenerComentarioPorID", "EliminarComentario", "Comment not found")
}
