// Package contracttest holds behavioral suites shared by every adapter that
// implements a storage port. Each adapter package runs the suite against its
// own factory so memory and postgres stay interchangeable.
package contracttest

import (
	"context"
	"errors"
	"testing"

	commandstoreport "github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
	userrepoport "github.com/taskboard-hq/taskboard-api/internal/ports/out/userrepo"
)

type CleanupFunc = func()

type CommandStoreFactory func(t *testing.T) (commandstoreport.Store, CleanupFunc)

// UserRepoFactory returns the repository under test plus the command store it
// reads from, so the suite can seed users through the write path.
type UserRepoFactory func(t *testing.T) (userrepoport.Repository, commandstoreport.Store, CleanupFunc)

func RunCommandStore(t *testing.T, newStore CommandStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Task lifecycle: create, read back, update, delete.
	created, err := store.Call(ctx, "CrearTarea", int64(1), "Primera tarea", "desc", int64(3), "pendiente", nil)
	if err != nil {
		t.Fatalf("CrearTarea: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("CrearTarea returned %d rows, want 1", len(created))
	}
	taskID, ok := created[0]["TareaID"].(int64)
	if !ok || taskID <= 0 {
		t.Fatalf("CrearTarea row has no usable TareaID: %#v", created[0])
	}

	rows, err := store.Call(ctx, "ObtenerTareaPorID", taskID)
	if err != nil {
		t.Fatalf("ObtenerTareaPorID: %v", err)
	}
	if len(rows) != 1 || rows[0]["Titulo"] != "Primera tarea" {
		t.Fatalf("unexpected task row: %#v", rows)
	}

	if _, err := store.Call(ctx, "ActualizarTarea", taskID, int64(1), "Renombrada", "desc", int64(5), "en_proceso", nil); err != nil {
		t.Fatalf("ActualizarTarea: %v", err)
	}
	rows, err = store.Call(ctx, "ObtenerTareaPorID", taskID)
	if err != nil {
		t.Fatalf("ObtenerTareaPorID after update: %v", err)
	}
	if len(rows) != 1 || rows[0]["Titulo"] != "Renombrada" || rows[0]["Estado"] != "en_proceso" {
		t.Fatalf("update not visible: %#v", rows)
	}

	if _, err := store.Call(ctx, "EliminarTarea", taskID); err != nil {
		t.Fatalf("EliminarTarea: %v", err)
	}
	rows, err = store.Call(ctx, "ObtenerTareaPorID", taskID)
	if err != nil {
		t.Fatalf("ObtenerTareaPorID after delete: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("task still present after delete: %#v", rows)
	}

	// Email uniqueness on user creation.
	if _, err := store.Call(ctx, "CrearUsuario", "Ana", "Lopez", "ana@example.com", "", "", "hash"); err != nil {
		t.Fatalf("CrearUsuario: %v", err)
	}
	if _, err := store.Call(ctx, "CrearUsuario", "Ana", "Duplicada", "ana@example.com", "", "", "hash"); !errors.Is(err, commandstoreport.ErrConflict) {
		t.Fatalf("duplicate email: want ErrConflict, got %v", err)
	}

	// Tag links are idempotent on the composite key.
	tagRows, err := store.Call(ctx, "CrearEtiqueta", "urgente")
	if err != nil {
		t.Fatalf("CrearEtiqueta: %v", err)
	}
	tagID := tagRows[0]["EtiquetaID"].(int64)
	if _, err := store.Call(ctx, "AgregarEtiquetaATarea", int64(7), tagID); err != nil {
		t.Fatalf("AgregarEtiquetaATarea: %v", err)
	}
	if _, err := store.Call(ctx, "AgregarEtiquetaATarea", int64(7), tagID); err != nil {
		t.Fatalf("AgregarEtiquetaATarea repeat: %v", err)
	}
	if _, err := store.Call(ctx, "RemoverEtiquetaDeTarea", int64(7), tagID); err != nil {
		t.Fatalf("RemoverEtiquetaDeTarea: %v", err)
	}

	// Unknown operations fail loudly instead of returning empty results.
	if _, err := store.Call(ctx, "OperacionInexistente"); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

func RunUserRepo(t *testing.T, newRepo UserRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, store, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	created, err := store.Call(ctx, "CrearUsuario", "Luis", "Mora", "luis@example.com", "555-0100", "", "bcrypt-digest")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	id, ok := created[0]["UsuarioID"].(int64)
	if !ok {
		t.Fatalf("seeded row has no UsuarioID: %#v", created[0])
	}

	byEmail, err := repo.GetByEmail(ctx, "luis@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if int64(byEmail.ID) != id || byEmail.PasswordHash != "bcrypt-digest" {
		t.Fatalf("unexpected user by email: %+v", byEmail)
	}

	byID, err := repo.GetByID(ctx, byEmail.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != "luis@example.com" || byID.Nombre != "Luis" {
		t.Fatalf("unexpected user by id: %+v", byID)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, userrepoport.ErrNotFound) {
		t.Fatalf("GetByEmail miss: want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, byEmail.ID+1000); !errors.Is(err, userrepoport.ErrNotFound) {
		t.Fatalf("GetByID miss: want ErrNotFound, got %v", err)
	}
}
