package httpapi

import "net/http"

type loginRequest struct {
	CorreoElectronico string `json:"CorreoElectronico"`
	Password          string `json:"Password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Could not verify")
		return
	}
	token, err := s.Auth.Login(r.Context(), req.CorreoElectronico, req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
