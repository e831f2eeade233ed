// Package userrepo reads identities from the Usuarios table.
package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/userrepo"
)

const userColumns = `
	"UsuarioID", "Nombre", "Apellido", "CorreoElectronico",
	COALESCE("Telefono", ''), COALESCE("ImagenPerfil", ''), "PasswordHash"
`

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM "Usuarios" WHERE "CorreoElectronico" = $1`, email)
	return scanUser(row)
}

func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM "Usuarios" WHERE "UsuarioID" = $1`, int64(id))
	return scanUser(row)
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u  domain.User
		id int64
	)
	err := row.Scan(&id, &u.Nombre, &u.Apellido, &u.Email, &u.Telefono, &u.ImagenPerfil, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, userrepo.ErrNotFound
		}
		return domain.User{}, err
	}
	u.ID = domain.UserID(id)
	return u, nil
}
