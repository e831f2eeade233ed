// Package userrepo adapts the in-memory command store's Usuarios table to the
// credential-store read port, so registration through the command store is
// immediately visible to login and identity resolution.
package userrepo

import (
	"context"
	"fmt"

	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/userrepo"
)

type Repo struct {
	store commandstore.Store
}

func NewRepo(store commandstore.Store) *Repo {
	return &Repo{store: store}
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	rows, err := r.store.Call(ctx, "ObtenerUsuarios")
	if err != nil {
		return domain.User{}, err
	}
	for _, row := range rows {
		if row["CorreoElectronico"] == email {
			return userFromRow(row)
		}
	}
	return domain.User{}, userrepo.ErrNotFound
}

func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	rows, err := r.store.Call(ctx, "ObtenerUsuarioPorID", int64(id))
	if err != nil {
		return domain.User{}, err
	}
	if len(rows) == 0 {
		return domain.User{}, userrepo.ErrNotFound
	}
	return userFromRow(rows[0])
}

func userFromRow(row commandstore.Row) (domain.User, error) {
	id, ok := row["UsuarioID"].(int64)
	if !ok {
		return domain.User{}, fmt.Errorf("user row missing UsuarioID: %v", row)
	}
	asString := func(k string) string {
		s, _ := row[k].(string)
		return s
	}
	return domain.User{
		ID:           domain.UserID(id),
		Nombre:       asString("Nombre"),
		Apellido:     asString("Apellido"),
		Email:        asString("CorreoElectronico"),
		Telefono:     asString("Telefono"),
		ImagenPerfil: asString("ImagenPerfil"),
		PasswordHash: asString("PasswordHash"),
	}, nil
}
