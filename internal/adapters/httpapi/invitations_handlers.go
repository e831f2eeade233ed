package httpapi

import "net/http"

type invitationRequest struct {
	UsuarioDestinoID int64 `json:"UsuarioDestinoID"`
}

type assignmentRequest struct {
	TareaID   int64 `json:"TareaID"`
	UsuarioID int64 `json:"UsuarioID"`
}

func (s *Server) listInvitations(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerInvitaciones")
}

// createInvitation sends an invitation from the authenticated user. New
// invitations always start out pending.
func (s *Server) createInvitation(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusForbidden, "Token is missing!")
		return
	}
	var req invitationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UsuarioDestinoID == 0 {
		writeMessage(w, http.StatusBadRequest, "UsuarioDestinoID is required")
		return
	}
	rows, err := s.Store.Call(r.Context(), "ObtenerUsuarioPorID", req.UsuarioDestinoID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	_, err = s.Store.Call(r.Context(), "CrearInvitacion", int64(user.ID), req.UsuarioDestinoID, "pendiente")
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Invitation sent successfully")
}

func (s *Server) listAssignments(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerAsignaciones")
}

func (s *Server) createAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TareaID == 0 || req.UsuarioID == 0 {
		writeMessage(w, http.StatusBadRequest, "TareaID and UsuarioID are required")
		return
	}
	rows, err := s.Store.Call(r.Context(), "ObtenerTareaPorID", req.TareaID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, "Task not found")
		return
	}
	if _, err := s.Store.Call(r.Context(), "CrearAsignacion", req.TareaID, req.UsuarioID); err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Assignment created successfully")
}

func (s *Server) listAuditLogs(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerAuditoria")
}
