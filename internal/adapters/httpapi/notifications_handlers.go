package httpapi

import "net/http"

type notificationRequest struct {
	UsuarioID int64  `json:"UsuarioID"`
	Mensaje   string `json:"Mensaje"`
	Leida     bool   `json:"Leida"`
}

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerNotificaciones")
}

func (s *Server) getNotification(w http.ResponseWriter, r *http.Request) {
	s.getResource(w, r, "ObtenerNotificacionPorID", "Notification not found")
}

func (s *Server) createNotification(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UsuarioID == 0 || req.Mensaje == "" {
		writeMessage(w, http.StatusBadRequest, "UsuarioID and Mensaje are required")
		return
	}
	if len(req.Mensaje) > 255 {
		writeMessage(w, http.StatusBadRequest, "Mensaje must be at most 255 characters")
		return
	}
	_, err := s.Store.Call(r.Context(), "CrearNotificacion", req.UsuarioID, req.Mensaje, req.Leida)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Notification created successfully")
}

func (s *Server) updateNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req notificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Mensaje == "" || len(req.Mensaje) > 255 {
		writeMessage(w, http.StatusBadRequest, "Mensaje is required and must be at most 255 characters")
		return
	}
	rows, err := s.Store.Call(r.Context(), "ObtenerNotificacionPorID", id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, "Notification not found")
		return
	}
	if _, err := s.Store.Call(r.Context(), "ActualizarNotificacion", id, req.Mensaje, req.Leida); err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Notification updated successfully")
}

func (s *Server) deleteNotification(w http.ResponseWriter, r *http.Request) {
	s.deleteResource(w, r, "ObtenerNotificacionPorID", "EliminarNotificacion", "Notification not found")
}
