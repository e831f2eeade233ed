package userrepo

import (
	"testing"
	"time"

	"github.com/taskboard-hq/taskboard-api/internal/adapters/contracttest"
	memclock "github.com/taskboard-hq/taskboard-api/internal/adapters/memory/clock"
	memcommandstore "github.com/taskboard-hq/taskboard-api/internal/adapters/memory/commandstore"
	commandstoreport "github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
	userrepoport "github.com/taskboard-hq/taskboard-api/internal/ports/out/userrepo"
)

func TestContract_UserRepo(t *testing.T) {
	contracttest.RunUserRepo(t, func(t *testing.T) (userrepoport.Repository, commandstoreport.Store, func()) {
		t.Helper()
		store := memcommandstore.NewStore(memclock.NewManualClock(time.Unix(1000, 0).UTC()))
		return NewRepo(store), store, nil
	})
}
