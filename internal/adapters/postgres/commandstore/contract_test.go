package commandstore

import (
	"testing"

	"github.com/taskboard-hq/taskboard-api/internal/adapters/contracttest"
	"github.com/taskboard-hq/taskboard-api/internal/adapters/postgres/testutil"
	commandstoreport "github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
)

func TestContract_PostgresCommandStore(t *testing.T) {
	pool := testutil.OpenPool(t)

	contracttest.RunCommandStore(t, func(t *testing.T) (commandstoreport.Store, func()) {
		t.Helper()
		return NewStore(pool), nil
	})
}
