// Package util provides shared test database helpers. Service and
// coordinator tests run against in-memory SQLite so the suite needs no
// external PostgreSQL; the SQL the services emit is dialect-neutral.
package util

import (
	"fmt"
	"sync/atomic"
	"testing"

	"entgo.io/ent/dialect"
	_ "github.com/mattn/go-sqlite3"

	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/enttest"
)

var dbCounter atomic.Int64

// OpenTestClient opens a fresh in-memory SQLite ent client with the schema
// created. Each call gets an isolated database; the client is closed when
// the test ends.
func OpenTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_fk=1&_busy_timeout=10000", dbCounter.Add(1))
	client := enttest.Open(t, dialect.SQLite, dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
