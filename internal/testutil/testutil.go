package testutil

import (
	"context"
	"database/sql"
	"testing"

	"courierPortal/internal/db"
	"courierPortal/internal/schema"
	"courierPortal/internal/store"
	"courierPortal/models"
)

// OpenInMemoryDB opens an in-memory SQLite database with the portal
// schema applied. The shared cache keeps the database alive across
// connections under the same name. Closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// NewStore opens an in-memory database and wraps it in a SQLiteStore.
func NewStore(t *testing.T, name string) *store.SQLiteStore {
	t.Helper()
	return store.NewSQLiteStore(OpenInMemoryDB(t, name), "CP")
}

// SeedUser inserts a user with the given credentials and returns it.
func SeedUser(t *testing.T, s *store.SQLiteStore, email, password string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		ID:    "user-" + email,
		Name:  "Test User",
		Email: email,
		Role:  role,
	}
	if err := s.CreateUser(context.Background(), schema.UserRecordOf(u), password); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}
