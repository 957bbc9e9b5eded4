// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"shortener-be/internal/database"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteDB returns a migrated in-memory database that is closed when the test ends
func NewSQLiteDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	// every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(context.Background(), db, database.DialectSQLite); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}
