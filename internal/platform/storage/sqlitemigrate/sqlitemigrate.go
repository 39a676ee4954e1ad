// Package sqlitemigrate applies embedded SQL migrations to SQLite databases.
package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const (
	migrationTable = "schema_migrations"
	upMarker       = "-- +migrate Up"
	downMarker     = "-- +migrate Down"
)

// Apply executes the *.sql files under root in lexical order, each at most
// once, and returns how many were newly applied.
func Apply(ctx context.Context, sqlDB *sql.DB, migrationFS fs.FS, root string) (int, error) {
	if ctx == nil {
		return 0, errors.New("context is required")
	}
	if sqlDB == nil {
		return 0, errors.New("sql db is required")
	}
	if migrationFS == nil {
		return 0, errors.New("migration fs is required")
	}

	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	files, err := listMigrations(migrationFS, root)
	if err != nil {
		return 0, err
	}

	if _, err := sqlDB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return 0, fmt.Errorf("ensure migration table: %w", err)
	}

	applied := 0
	for _, name := range files {
		ok, err := applyOne(ctx, sqlDB, migrationFS, root, name)
		if err != nil {
			return applied, err
		}
		if ok {
			applied++
		}
	}
	return applied, nil
}

func listMigrations(migrationFS fs.FS, root string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, root)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func applyOne(ctx context.Context, sqlDB *sql.DB, migrationFS fs.FS, root, name string) (bool, error) {
	key := name
	if root != "." {
		key = path.Join(root, name)
	}
	done, err := isApplied(ctx, sqlDB, key)
	if err != nil {
		return false, fmt.Errorf("check migration %s: %w", name, err)
	}
	if done {
		return false, nil
	}

	content, err := fs.ReadFile(migrationFS, path.Join(root, name))
	if err != nil {
		return false, fmt.Errorf("read migration %s: %w", name, err)
	}
	upSQL := ExtractUp(string(content))
	if strings.TrimSpace(upSQL) == "" {
		return false, nil
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin migration %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, upSQL); err != nil && !IsAlreadyExistsError(err) {
		_ = tx.Rollback()
		return false, fmt.Errorf("exec migration %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		key,
		time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("record migration %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit migration %s: %w", name, err)
	}
	return true, nil
}

// ExtractUp returns the SQL between the Up marker and the optional Down
// marker. Files without markers are applied whole.
func ExtractUp(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	body := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(body, downMarker); downIdx != -1 {
		return body[:downIdx]
	}
	return body
}

// IsAlreadyExistsError reports whether err is idempotent DDL noise.
func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}

func isApplied(ctx context.Context, sqlDB *sql.DB, name string) (bool, error) {
	var found int
	err := sqlDB.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
