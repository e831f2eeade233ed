// Package commandstore is an in-memory implementation of the command store
// port: named operations with positional arguments over per-entity tables.
// It backs local development and tests; the operation surface mirrors the
// relational store's stored procedures.
package commandstore

import (
	"context"
	"fmt"
	"sync"

	clockport "github.com/taskboard-hq/taskboard-api/internal/ports/out/clock"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
)

type table struct {
	idCol  string
	nextID int64
	rows   []commandstore.Row
}

// Store is safe for concurrent use.
type Store struct {
	clk clockport.Clock

	mu     sync.RWMutex
	tables map[string]*table

	// taskTags holds task-to-tag link rows (composite key, no id column).
	taskTags []commandstore.Row
}

func NewStore(clk clockport.Clock) *Store {
	s := &Store{clk: clk, tables: make(map[string]*table)}
	for name, idCol := range map[string]string{
		"Usuarios":           "UsuarioID",
		"PerfilesUsuario":    "PerfilID",
		"Tareas":             "TareaID",
		"Comentarios":        "ComentarioID",
		"Notificaciones":     "NotificacionID",
		"Etiquetas":          "EtiquetaID",
		"Adjuntos":           "AdjuntoID",
		"Boards":             "BoardID",
		"Proyectos":          "ProyectoID",
		"Columnas":           "ColumnaID",
		"Invitaciones":       "InvitacionID",
		"AsignacionesTareas": "AsignacionID",
		"AuditLogs":          "LogID",
	} {
		s.tables[name] = &table{idCol: idCol, nextID: 1}
	}
	return s
}

func (s *Store) Call(ctx context.Context, op string, args ...any) ([]commandstore.Row, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	switch op {
	// Usuarios
	case "ObtenerUsuarios":
		return s.list("Usuarios"), nil
	case "ObtenerUsuarioPorID":
		return s.getByID("Usuarios", args)
	case "CrearUsuario":
		if err := wantArgs(op, args, 6); err != nil {
			return nil, err
		}
		email := str(args[2])
		for _, r := range s.tables["Usuarios"].rows {
			if r["CorreoElectronico"] == email {
				return nil, fmt.Errorf("CrearUsuario: email %q: %w", email, commandstore.ErrConflict)
			}
		}
		return s.insert("Usuarios", commandstore.Row{
			"Nombre":            str(args[0]),
			"Apellido":          str(args[1]),
			"CorreoElectronico": email,
			"Telefono":          str(args[3]),
			"ImagenPerfil":      str(args[4]),
			"PasswordHash":      str(args[5]),
		}), nil
	case "ActualizarUsuario":
		if err := wantArgs(op, args, 6); err != nil {
			return nil, err
		}
		return s.updateByID("Usuarios", args[0], commandstore.Row{
			"Nombre":            str(args[1]),
			"Apellido":          str(args[2]),
			"CorreoElectronico": str(args[3]),
			"Telefono":          str(args[4]),
			"ImagenPerfil":      str(args[5]),
		})
	case "EliminarUsuario":
		return s.deleteByID("Usuarios", args)

	// PerfilesUsuario
	case "ObtenerPerfilesUsuario":
		return s.list("PerfilesUsuario"), nil
	case "ObtenerPerfilUsuarioPorID":
		return s.getByID("PerfilesUsuario", args)
	case "CrearPerfilUsuario":
		if err := wantArgs(op, args, 5); err != nil {
			return nil, err
		}
		return s.insert("PerfilesUsuario", commandstore.Row{
			"UsuarioID": num(args[0]),
			"Editable":  boolean(args[1]),
			"Biografia": str(args[2]),
			"Intereses": str(args[3]),
			"Ocupacion": str(args[4]),
		}), nil
	case "ActualizarPerfilUsuario":
		if err := wantArgs(op, args, 5); err != nil {
			return nil, err
		}
		return s.updateByID("PerfilesUsuario", args[0], commandstore.Row{
			"Editable":  boolean(args[1]),
			"Biografia": str(args[2]),
			"Intereses": str(args[3]),
			"Ocupacion": str(args[4]),
		})
	case "EliminarPerfilUsuario":
		return s.deleteByID("PerfilesUsuario", args)

	// Tareas
	case "ObtenerTareas":
		return s.list("Tareas"), nil
	case "ObtenerTareaPorID":
		return s.getByID("Tareas", args)
	case "CrearTarea":
		if err := wantArgs(op, args, 6); err != nil {
			return nil, err
		}
		now := s.clk.Now()
		return s.insert("Tareas", commandstore.Row{
			"ProyectoID":          num(args[0]),
			"Titulo":              str(args[1]),
			"Descripcion":         str(args[2]),
			"Importancia":         num(args[3]),
			"Estado":              str(args[4]),
			"FechaVencimiento":    args[5],
			"FechaCreacion":       now,
			"UltimaActualizacion": now,
		}), nil
	case "ActualizarTarea":
		if err := wantArgs(op, args, 7); err != nil {
			return nil, err
		}
		return s.updateByID("Tareas", args[0], commandstore.Row{
			"ProyectoID":          num(args[1]),
			"Titulo":              str(args[2]),
			"Descripcion":         str(args[3]),
			"Importancia":         num(args[4]),
			"Estado":              str(args[5]),
			"FechaVencimiento":    args[6],
			"UltimaActualizacion": s.clk.Now(),
		})
	case "EliminarTarea":
		return s.deleteByID("Tareas", args)

	// Comentarios
	case "ObtenerComentarios":
		return s.list("Comentarios"), nil
	case "ObtenerComentarioPorID":
		return s.getByID("Comentarios", args)
	case "CrearComentario":
		if err := wantArgs(op, args, 3); err != nil {
			return nil, err
		}
		return s.insert("Comentarios", commandstore.Row{
			"TareaID":   num(args[0]),
			"UsuarioID": num(args[1]),
			"Texto":     str(args[2]),
			"Fecha":     s.clk.Now(),
		}), nil
	case "ActualizarComentario":
		if err := wantArgs(op, args, 2); err != nil {
			return nil, err
		}
		return s.updateByID("Comentarios", args[0], commandstore.Row{"Texto": str(args[1])})
	case "EliminarComentario":
		return s.deleteByID("Comentarios", args)

	// Notificaciones
	case "ObtenerNotificaciones":
		return s.list("Notificaciones"), nil
	case "ObtenerNotificacionPorID":
		return s.getByID("Notificaciones", args)
	case "CrearNotificacion":
		if err := wantArgs(op, args, 3); err != nil {
			return nil, err
		}
		return s.insert("Notificaciones", commandstore.Row{
			"UsuarioID": num(args[0]),
			"Mensaje":   str(args[1]),
			"Leida":     boolean(args[2]),
			"Fecha":     s.clk.Now(),
		}), nil
	case "ActualizarNotificacion":
		if err := wantArgs(op, args, 3); err != nil {
			return nil, err
		}
		return s.updateByID("Notificaciones", args[0], commandstore.Row{
			"Mensaje": str(args[1]),
			"Leida":   boolean(args[2]),
		})
	case "EliminarNotificacion":
		return s.deleteByID("Notificaciones", args)

	// Etiquetas
	case "ObtenerEtiquetas":
		return s.list("Etiquetas"), nil
	case "ObtenerEtiquetaPorID":
		return s.getByID("Etiquetas", args)
	case "CrearEtiqueta":
		if err := wantArgs(op, args, 1); err != nil {
			return nil, err
		}
		return s.insert("Etiquetas", commandstore.Row{"Nombre": str(args[0])}), nil
	case "ActualizarEtiqueta":
		if err := wantArgs(op, args, 2); err != nil {
			return nil, err
		}
		return s.updateByID("Etiquetas", args[0], commandstore.Row{"Nombre": str(args[1])})
	case "EliminarEtiqueta":
		return s.deleteByID("Etiquetas", args)
	case "AgregarEtiquetaATarea":
		if err := wantArgs(op, args, 2); err != nil {
			return nil, err
		}
		link := commandstore.Row{"TareaID": num(args[0]), "EtiquetaID": num(args[1])}
		for _, r := range s.taskTags {
			if r["TareaID"] == link["TareaID"] && r["EtiquetaID"] == link["EtiquetaID"] {
				return []commandstore.Row{clone(r)}, nil
			}
		}
		s.taskTags = append(s.taskTags, link)
		return []commandstore.Row{clone(link)}, nil
	case "RemoverEtiquetaDeTarea":
		if err := wantArgs(op, args, 2); err != nil {
			return nil, err
		}
		taskID, tagID := num(args[0]), num(args[1])
		kept := s.taskTags[:0]
		for _, r := range s.taskTags {
			if !(r["TareaID"] == taskID && r["EtiquetaID"] == tagID) {
				kept = append(kept, r)
			}
		}
		s.taskTags = kept
		return nil, nil

	// Adjuntos
	case "ObtenerAdjuntoPorID":
		return s.getByID("Adjuntos", args)
	case "CrearAdjunto":
		if err := wantArgs(op, args, 2); err != nil {
			return nil, err
		}
		return s.insert("Adjuntos", commandstore.Row{
			"TareaID": num(args[0]),
			"Archivo": str(args[1]),
			"Fecha":   s.clk.Now(),
		}), nil
	case "EliminarAdjunto":
		return s.deleteByID("Adjuntos", args)

	// Boards / Proyectos / Columnas
	case "ObtenerBoards":
		return s.list("Boards"), nil
	case "CrearBoard":
		if err := wantArgs(op, args, 2); err != nil {
			return nil, err
		}
		return s.insert("Boards", commandstore.Row{
			"UsuarioPropietarioID": num(args[0]),
			"Titulo":               str(args[1]),
		}), nil
	case "ObtenerProyectos":
		return s.list("Proyectos"), nil
	case "CrearProyecto":
		if err := wantArgs(op, args, 2); err != nil {
			return nil, err
		}
		return s.insert("Proyectos", commandstore.Row{
			"BoardID": num(args[0]),
			"Titulo":  str(args[1]),
		}), nil
	case "ObtenerColumnas":
		return s.list("Columnas"), nil
	case "CrearColumna":
		if err := wantArgs(op, args, 2); err != nil {
			return nil, err
		}
		return s.insert("Columnas", commandstore.Row{
			"ProyectoID":    num(args[0]),
			"ColumnaNombre": str(args[1]),
		}), nil

	// Invitaciones / Asignaciones / Auditoria
	case "ObtenerInvitaciones":
		return s.list("Invitaciones"), nil
	case "CrearInvitacion":
		if err := wantArgs(op, args, 3); err != nil {
			return nil, err
		}
		return s.insert("Invitaciones", commandstore.Row{
			"UsuarioOrigenID":  num(args[0]),
			"UsuarioDestinoID": num(args[1]),
			"Estado":           str(args[2]),
			"FechaEnvio":       s.clk.Now(),
		}), nil
	case "ObtenerAsignaciones":
		return s.list("AsignacionesTareas"), nil
	case "CrearAsignacion":
		if err := wantArgs(op, args, 2); err != nil {
			return nil, err
		}
		return s.insert("AsignacionesTareas", commandstore.Row{
			"TareaID":   num(args[0]),
			"UsuarioID": num(args[1]),
		}), nil
	case "ObtenerAuditoria":
		return s.list("AuditLogs"), nil
	}

	return nil, fmt.Errorf("%w: %s", commandstore.ErrUnknownOperation, op)
}

func (s *Store) list(name string) []commandstore.Row {
	t := s.tables[name]
	out := make([]commandstore.Row, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, clone(r))
	}
	return out
}

func (s *Store) getByID(name string, args []any) ([]commandstore.Row, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	t := s.tables[name]
	id := num(args[0])
	for _, r := range t.rows {
		if r[t.idCol] == id {
			return []commandstore.Row{clone(r)}, nil
		}
	}
	return nil, nil
}

func (s *Store) insert(name string, row commandstore.Row) []commandstore.Row {
	t := s.tables[name]
	row[t.idCol] = t.nextID
	t.nextID++
	t.rows = append(t.rows, row)
	return []commandstore.Row{clone(row)}
}

func (s *Store) updateByID(name string, idArg any, patch commandstore.Row) ([]commandstore.Row, error) {
	t := s.tables[name]
	id := num(idArg)
	for _, r := range t.rows {
		if r[t.idCol] == id {
			for k, v := range patch {
				r[k] = v
			}
			return []commandstore.Row{clone(r)}, nil
		}
	}
	// Mirrors a procedure updating zero rows: not an executor failure.
	return nil, nil
}

func (s *Store) deleteByID(name string, args []any) ([]commandstore.Row, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	t := s.tables[name]
	id := num(args[0])
	for i, r := range t.rows {
		if r[t.idCol] == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			break
		}
	}
	return nil, nil
}

func wantArgs(op string, args []any, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: want %d args, got %d", op, n, len(args))
	}
	return nil
}

func clone(r commandstore.Row) commandstore.Row {
	out := make(commandstore.Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Positional arguments arrive as whatever the handler decoded; normalize the
// scalar kinds the tables store.
func num(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func boolean(v any) bool {
	b, _ := v.(bool)
	return b
}
