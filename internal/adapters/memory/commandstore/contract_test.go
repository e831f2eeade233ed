package commandstore

import (
	"testing"
	"time"

	"github.com/taskboard-hq/taskboard-api/internal/adapters/contracttest"
	memclock "github.com/taskboard-hq/taskboard-api/internal/adapters/memory/clock"
	commandstoreport "github.com/taskboard-hq/taskboard-api/internal/ports/out/commandstore"
)

func TestContract_CommandStore(t *testing.T) {
	contracttest.RunCommandStore(t, func(t *testing.T) (commandstoreport.Store, func()) {
		t.Helper()
		return NewStore(memclock.NewManualClock(time.Unix(1000, 0).UTC())), nil
	})
}
