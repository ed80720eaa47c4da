package service

import (
	"context"
	"path/filepath"
	"testing"

	"second-brain/api/db"
	"second-brain/api/pkg/security"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *db.Store {
	t.Helper()

	s := db.New(db.Options{
		Driver: db.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "brain.db"),
	})
	t.Cleanup(func() { s.Close() })

	return s
}

// testStoreWithForeignKeys enforces foreign keys like Postgres does
func testStoreWithForeignKeys(t *testing.T) *db.Store {
	t.Helper()

	s := db.New(db.Options{
		Driver: db.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "brain.db") + "?_foreign_keys=on",
	})
	t.Cleanup(func() { s.Close() })

	return s
}

func testHasher() *security.ArgonHash {
	a := security.New()
	a.Memory = 1024
	a.Iterations = 1
	a.Parallelism = 1

	return a
}

func mustRegister(t *testing.T, a *Accounts, username string) string {
	t.Helper()

	id, err := a.Register(context.Background(), username, "password123")
	require.NoError(t, err)

	return id
}
