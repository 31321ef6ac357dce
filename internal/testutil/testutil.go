package testutil

import (
	"database/sql"
	"testing"

	"fasttrackLogistics/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// The shared cache keeps the database alive across connections with the same
// name. The DB is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
