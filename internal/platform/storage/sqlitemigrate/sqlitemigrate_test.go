package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyRecordsMigrations(t *testing.T) {
	t.Parallel()

	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"001_accounts.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE accounts(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE accounts;")},
		"002_inbox.sql":    &fstest.MapFile{Data: []byte("CREATE TABLE inbox(id TEXT PRIMARY KEY);")},
		"README.md":        &fstest.MapFile{Data: []byte("ignored")},
	}

	applied, err := Apply(context.Background(), db, migrations, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 2 {
		t.Fatalf("applied = %d, want 2", applied)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("schema_migrations rows = %d, want 2", got)
	}
	for _, table := range []string{"accounts", "inbox"} {
		if !tableExists(t, db, table) {
			t.Fatalf("expected table %q", table)
		}
	}
}

func TestApplySkipsAlreadyApplied(t *testing.T) {
	t.Parallel()

	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"001_accounts.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE accounts(id TEXT PRIMARY KEY);")},
	}
	if _, err := Apply(context.Background(), db, migrations, ""); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	applied, err := Apply(context.Background(), db, migrations, "")
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if applied != 0 {
		t.Fatalf("applied = %d, want 0", applied)
	}
}

func TestApplyUsesRootKeys(t *testing.T) {
	t.Parallel()

	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"sql/001_accounts.sql": &fstest.MapFile{Data: []byte("CREATE TABLE accounts(id TEXT PRIMARY KEY);")},
	}
	if _, err := Apply(context.Background(), db, migrations, "sql"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	var name string
	if err := db.QueryRow("SELECT name FROM schema_migrations").Scan(&name); err != nil {
		t.Fatalf("read migration name: %v", err)
	}
	if name != "sql/001_accounts.sql" {
		t.Fatalf("name = %q, want %q", name, "sql/001_accounts.sql")
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	t.Parallel()

	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"001_broken.sql": &fstest.MapFile{Data: []byte("CREATE TABLE broken(")},
	}
	if _, err := Apply(context.Background(), db, migrations, ""); err == nil {
		t.Fatal("expected migration error")
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Fatalf("schema_migrations rows = %d, want 0", got)
	}
}

func TestApplyRequiresInputs(t *testing.T) {
	t.Parallel()

	if _, err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected nil db error")
	}
	db := openMemoryDB(t)
	if _, err := Apply(context.Background(), db, nil, ""); err == nil {
		t.Fatal("expected nil fs error")
	}
}

func TestExtractUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "SELECT 1;", want: "SELECT 1;"},
		{name: "up only", content: "-- +migrate Up\nSELECT 1;", want: "\nSELECT 1;"},
		{name: "up and down", content: "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;", want: "\nSELECT 1;\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractUp(tc.content); got != tc.want {
				t.Fatalf("ExtractUp() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	t.Parallel()

	if IsAlreadyExistsError(nil) {
		t.Fatal("nil error should not match")
	}
	if !IsAlreadyExistsError(errors.New("table accounts already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExistsError(errors.New("duplicate column name: email")) {
		t.Fatal("expected duplicate column match")
	}
	if IsAlreadyExistsError(errors.New("syntax error")) {
		t.Fatal("syntax error should not match")
	}
}

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var n int64
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		t.Fatalf("lookup table %q: %v", table, err)
	}
	return true
}
