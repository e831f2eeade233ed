// Package commandstore invokes the relational store's named operations as
// SQL functions: `SELECT * FROM <op>(...)`. The schema, including the
// functions themselves, is owned by the database.
package commandstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard-hq/taskboard-api/internal/adapters/postgres"
	"github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Call(ctx context.Context, op string, args ...any) ([]commandstore.Row, error) {
	if !validOpName(op) {
		return nil, fmt.Errorf("%w: %q", commandstore.ErrUnknownOperation, op)
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	sql := fmt.Sprintf("SELECT * FROM %s(%s)", op, strings.Join(placeholders, ", "))

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, callError(op, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, callError(op, err)
	}
	result := make([]commandstore.Row, 0, len(out))
	for _, r := range out {
		result = append(result, commandstore.Row(r))
	}
	return result, nil
}

func callError(op string, err error) error {
	if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
		return fmt.Errorf("call %s: %w", op, commandstore.ErrConflict)
	}
	return fmt.Errorf("call %s: %w", op, err)
}

// Operation names are compile-time constants in this codebase, but they are
// interpolated into SQL, so reject anything that is not a bare identifier.
func validOpName(op string) bool {
	if op == "" {
		return false
	}
	for i, r := range op {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
