package tasks

import (
	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/taskboard-hq/taskboard-api/internal/domain"
)

// TaskInput carries the mutable task fields for create and update.
// FechaVencimiento distinguishes "absent", "explicit null", and "set".
type TaskInput struct {
	ProyectoID       int64
	Titulo           string
	Descripcion      string
	Importancia      int
	Estado           string
	FechaVencimiento nullable.Nullable[openapi_types.Date]
}

func (in TaskInput) withDefaults() TaskInput {
	if in.Importancia == 0 {
		in.Importancia = 1
	}
	if in.Estado == "" {
		in.Estado = domain.TaskStatePending
	}
	return in
}

// dueDate yields the positional argument for the store: a time.Time or nil.
func (in TaskInput) dueDate() any {
	if !in.FechaVencimiento.IsSpecified() || in.FechaVencimiento.IsNull() {
		return nil
	}
	d, err := in.FechaVencimiento.Get()
	if err != nil {
		return nil
	}
	return d.Time
}

// payload is the task representation carried by broadcast events, mirroring
// the request body the mutation was made with.
func (in TaskInput) payload() map[string]any {
	p := map[string]any{
		"ProyectoID":  in.ProyectoID,
		"Titulo":      in.Titulo,
		"Descripcion": in.Descripcion,
		"Importancia": in.Importancia,
		"Estado":      in.Estado,
	}
	if in.FechaVencimiento.IsSpecified() && !in.FechaVencimiento.IsNull() {
		if d, err := in.FechaVencimiento.Get(); err == nil {
			p["FechaVencimiento"] = d.Format("2006-01-02")
		}
	}
	return p
}
