package userrepo

import (
	"testing"

	"github.com/taskboard-hq/taskboard-api/internal/adapters/contracttest"
	pgcommandstore "github.com/taskboard-hq/taskboard-api/internal/adapters/postgres/commandstore"
	"github.com/taskboard-hq/taskboard-api/internal/adapters/postgres/testutil"
	commandstoreport "github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
	userrepoport "github.com/taskboard-hq/taskboard-api/internal/ports/out/userrepo"
)

func TestContract_PostgresUserRepo(t *testing.T) {
	pool := testutil.OpenPool(t)

	contracttest.RunUserRepo(t, func(t *testing.T) (userrepoport.Repository, commandstoreport.Store, func()) {
		t.Helper()
		return NewRepo(pool), pgcommandstore.NewStore(pool), nil
	})
}
