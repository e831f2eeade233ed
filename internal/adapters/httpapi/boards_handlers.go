package httpapi

import "net/http"

type boardRequest struct {
	Titulo string `json:"Titulo"`
}

type projectRequest struct {
	BoardID int64  `json:"BoardID"`
	Titulo  string `json:"Titulo"`
}

type columnRequest struct {
	ProyectoID    int64  `json:"ProyectoID"`
	ColumnaNombre string `json:"ColumnaNombre"`
}

func (s *Server) listBoards(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerBoards")
}

// createBoard makes the authenticated user the board owner.
func (s *Server) createBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusForbidden, "Token is missing!")
		return
	}
	var req boardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Titulo == "" || len(req.Titulo) > 100 {
		writeMessage(w, http.StatusBadRequest, "Titulo is required and must be at most 100 characters")
		return
	}
	rows, err := s.Store.Call(r.Context(), "CrearBoard", int64(user.ID), req.Titulo)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) > 0 {
		writeJSON(w, http.StatusCreated, rows[0])
		return
	}
	writeMessage(w, http.StatusCreated, "Board created successfully")
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerProyectos")
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BoardID == 0 || req.Titulo == "" {
		writeMessage(w, http.StatusBadRequest, "BoardID and Titulo are required")
		return
	}
	if len(req.Titulo) > 100 {
		writeMessage(w, http.StatusBadRequest, "Titulo must be at most 100 characters")
		return
	}
	rows, err := s.Store.Call(r.Context(), "CrearProyecto", req.BoardID, req.Titulo)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) > 0 {
		writeJSON(w, http.StatusCreated, rows[0])
		return
	}
	writeMessage(w, http.StatusCreated, "Project created successfully")
}

func (s *Server) listColumns(w http.ResponseWriter, r *http.Request) {
	s.listResource(w, r, "ObtenerColumnas")
}

func (s *Server) createColumn(w http.ResponseWriter, r *http.Request) {
	var req columnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProyectoID == 0 || req.ColumnaNombre == "" {
		writeMessage(w, http.StatusBadRequest, "ProyectoID and ColumnaNombre are required")
		return
	}
	if len(req.ColumnaNombre) > 50 {
		writeMessage(w, http.StatusBadRequest, "ColumnaNombre must be at most 50 characters")
		return
	}
	rows, err := s.Store.Call(r.Context(), "CrearColumna", req.ProyectoID, req.ColumnaNombre)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) > 0 {
		writeJSON(w, http.StatusCreated, rows[0])
		return
	}
	writeMessage(w, http.StatusCreated, "Column created successfully")
}
