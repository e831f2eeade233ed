package httpapi

import "net/http"

type profileRequest struct {
	UsuarioID int64  `json:"UsuarioID"`
	Editable  bool   `json:"Editable"`
	Biografia string `json:"Biografia"`
	Intereses string `json:"Intereses"`
	Ocupacion string `json:"Ocupacion"`
}

func (s *Server) listProfiles(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerPerfilesUsuario")
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	s.getResource(w, r, "ObtenerPerfilUsuarioPorID", "Profile not found")
}

func (s *Server) createProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UsuarioID == 0 {
		writeMessage(w, http.StatusBadRequest, "UsuarioID is required")
		return
	}
	if len(req.Ocupacion) > 100 {
		writeMessage(w, http.StatusBadRequest, "Ocupacion must be at most 100 characters")
		return
	}
	_, err := s.Store.Call(r.Context(), "CrearPerfilUsuario",
		req.UsuarioID, req.Editable, req.Biografia, req.Intereses, req.Ocupacion)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Profile created successfully")
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rows, err := s.Store.Call(r.Context(), "ObtenerPerfilUsuarioPorID", id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, "Profile not found")
		return
	}
	_, err = s.Store.Call(r.Context(), "ActualizarPerfilUsuario",
		id, req.Editable, req.Biografia, req.Intereses, req.Ocupacion)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Profile updated successfully")
}

func (s *Server) deleteProfile(w http.ResponseWriter, r *http.Request) {
	s.deleteResource(w, r, "ObtenerPerfilUsuarioPorID", "EliminarPerfilUsuario", "Profile not found")
}
