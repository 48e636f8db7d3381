package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	migrationFS := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);"),
		},
		"002_add_name.sql": &fstest.MapFile{
			Data: []byte("ALTER TABLE widgets ADD COLUMN name TEXT;"),
		},
	}

	runner := NewRunner(db, migrationFS)

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations returned unexpected error: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion returned unexpected error: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Re-running is a no-op.
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations returned unexpected error: %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied = %d, want 0", applied)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	migrationFS := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);"),
		},
		"002_broken.sql": &fstest.MapFile{
			Data: []byte("THIS IS NOT SQL;"),
		},
	}

	runner := NewRunner(db, migrationFS)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	// Version must still reflect the last successful migration.
	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion returned unexpected error: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name string
		file string
	}{
		{"missing version prefix", "init.sql"},
		{"non-numeric version", "abc_init.sql"},
		{"zero version", "000_init.sql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(db, fstest.MapFS{
				tt.file: &fstest.MapFile{Data: []byte("SELECT 1;")},
			})
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Errorf("expected error for filename %q", tt.file)
			}
		})
	}
}

func TestValidateVersionRejectsNewerDatabase(t *testing.T) {
	db := setupTestDB(t)
	migrationFS := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);"),
		},
	}

	runner := NewRunner(db, migrationFS)
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations returned unexpected error: %v", err)
	}

	// Simulate a database written by a newer application version.
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
		t.Fatal(err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for newer schema version")
	}
}
