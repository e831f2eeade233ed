package commandstore

import "context"

// Row is one result row from a named operation, keyed by column name.
type Row = map[string]any

// Store is the persistence boundary: named operations with positional arguments
// returning row sets. Implementations own the schema; callers own nothing but
// the operation names and argument order.
type Store interface {
	Call(ctx context.Context, op string, args ...any) ([]Row, error)
}
