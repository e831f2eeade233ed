// Package tasks implements task operations over the command store and owns
// the one consistency rule of the realtime channel: an event is published
// only after the mutating command has been acknowledged.
package tasks

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taskboard-hq/taskboard-api/internal/app/apperror"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
	"github.com/taskboard-hq/taskboard-api/internal/realtime"
)

// Broadcaster publishes a task-change event to all connected subscribers.
type Broadcaster interface {
	Publish(ev realtime.TaskEvent)
}

type Service struct {
	store commandstore.Store
	hub   Broadcaster
}

func NewService(store commandstore.Store, hub Broadcaster) *Service {
	return &Service{store: store, hub: hub}
}

func (s *Service) List(ctx context.Context) ([]commandstore.Row, error) {
	return s.store.Call(ctx, "ObtenerTareas")
}

func (s *Service) Get(ctx context.Context, id domain.TaskID) (commandstore.Row, error) {
	rows, err := s.store.Call(ctx, "ObtenerTareaPorID", int64(id))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperror.New(http.StatusNotFound, "Task not found")
	}
	return rows[0], nil
}

func (s *Service) Create(ctx context.Context, in TaskInput) error {
	in = in.withDefaults()
	if err := validate(in); err != nil {
		return err
	}
	_, err := s.store.Call(ctx, "CrearTarea",
		in.ProyectoID, in.Titulo, in.Descripcion, in.Importancia, in.Estado, in.dueDate())
	if err != nil {
		return err
	}
	s.hub.Publish(realtime.NewTask(in.payload()))
	return nil
}

func (s *Service) Update(ctx context.Context, id domain.TaskID, in TaskInput) error {
	in = in.withDefaults()
	if err := validate(in); err != nil {
		return err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	_, err := s.store.Call(ctx, "ActualizarTarea",
		int64(id), in.ProyectoID, in.Titulo, in.Descripcion, in.Importancia, in.Estado, in.dueDate())
	if err != nil {
		return err
	}
	s.hub.Publish(realtime.UpdatedTask(in.payload()))
	return nil
}

func (s *Service) Delete(ctx context.Context, id domain.TaskID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if _, err := s.store.Call(ctx, "EliminarTarea", int64(id)); err != nil {
		return err
	}
	s.hub.Publish(realtime.DeletedTask(int64(id)))
	return nil
}

func validate(in TaskInput) error {
	if in.ProyectoID == 0 {
		return apperror.New(http.StatusBadRequest, "ProyectoID is required")
	}
	if in.Titulo == "" {
		return apperror.New(http.StatusBadRequest, "Titulo is required")
	}
	if len(in.Titulo) > 100 {
		return apperror.New(http.StatusBadRequest, "Titulo must be at most 100 characters")
	}
	if in.Importancia < 1 || in.Importancia > 5 {
		return apperror.New(http.StatusBadRequest, "Importancia must be between 1 and 5")
	}
	if !domain.ValidTaskState(in.Estado) {
		return apperror.New(http.StatusBadRequest, fmt.Sprintf("Estado %q is not valid", in.Estado))
	}
	return nil
}
