package httpapi

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/taskboard-hq/taskboard-api/internal/platform/auth/passwords"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
)

type userRequest struct {
	Nombre            string `json:"Nombre"`
	Apellido          string `json:"Apellido"`
	CorreoElectronico string `json:"CorreoElectronico"`
	Telefono          string `json:"Telefono"`
	ImagenPerfil      string `json:"ImagenPerfil"`
	Password          string `json:"Password"`
}

func (u userRequest) validate(requirePassword bool) string {
	switch {
	case u.Nombre == "" || len(u.Nombre) > 50:
		return "Nombre is required and must be at most 50 characters"
	case u.Apellido == "" || len(u.Apellido) > 50:
		return "Apellido is required and must be at most 50 characters"
	case u.CorreoElectronico == "":
		return "CorreoElectronico is required"
	case len(u.CorreoElectronico) > 100:
		return "CorreoElectronico must be at most 100 characters"
	}
	if _, err := mail.ParseAddress(u.CorreoElectronico); err != nil {
		return "CorreoElectronico is not a valid email address"
	}
	if requirePassword && len(u.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerUsuarios")
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	s.getResource(w, r, "ObtenerUsuarioPorID", "User not found")
}

// createUser is registration; it is the one unauthenticated write. The
// plaintext password is hashed here and never reaches the store.
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(true); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}
	digest, err := passwords.Hash(req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	_, err = s.Store.Call(r.Context(), "CrearUsuario",
		req.Nombre, req.Apellido, req.CorreoElectronico, req.Telefono, req.ImagenPerfil, digest)
	if err != nil {
		if errors.Is(err, commandstore.ErrConflict) {
			writeMessage(w, http.StatusConflict, "Email already registered")
			return
		}
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "User created successfully")
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(false); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}
	rows, err := s.Store.Call(r.Context(), "ObtenerUsuarioPorID", id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	_, err = s.Store.Call(r.Context(), "ActualizarUsuario",
		id, req.Nombre, req.Apellido, req.CorreoElectronico, req.Telefono, req.ImagenPerfil)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User updated successfully")
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	s.deleteResource(w, r, "ObtenerUsuarioPorID", "EliminarUsuario", "User not found")
}
