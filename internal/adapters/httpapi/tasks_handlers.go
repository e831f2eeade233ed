package httpapi

import (
	"net/http"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	apptasks "github.com/taskboard-hq/taskboard-api/internal/app/tasks"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
)

type taskRequest struct {
	ProyectoID       int64                                 `json:"ProyectoID"`
	Titulo           string                                `json:"Titulo"`
	Descripcion      string                                `json:"Descripcion"`
	Importancia      int                                   `json:"Importancia"`
	Estado           string                                `json:"Estado"`
	FechaVencimiento nullable.Nullable[openapi_types.Date] `json:"FechaVencimiento"`
}

func (t taskRequest) input() apptasks.TaskInput {
	return apptasks.TaskInput{
		ProyectoID:       t.ProyectoID,
		Titulo:           t.Titulo,
		Descripcion:      t.Descripcion,
		Importancia:      t.Importancia,
		Estado:           t.Estado,
		FechaVencimiento: t.FechaVencimiento,
	}
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	rows, err := s.Tasks.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if rows == nil {
		rows = []commandstore.Row{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	row, err := s.Tasks.Get(r.Context(), domain.TaskID(id))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.Tasks.Create(r.Context(), req.input()); err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Task created successfully")
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.Tasks.Update(r.Context(), domain.TaskID(id), req.input()); err != nil {
		s.writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Task updated successfully")
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := s.Tasks.Delete(r.Context(), domain.TaskID(id)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
