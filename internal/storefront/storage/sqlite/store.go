// Package sqlite persists storefront accounts and contact messages.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/arvana/storefront/internal/platform/id"
	sqlitemigrate "github.com/arvana/storefront/internal/platform/storage/sqlitemigrate"
	"github.com/arvana/storefront/internal/storefront/auth"
	"github.com/arvana/storefront/internal/storefront/contact"
	"github.com/arvana/storefront/internal/storefront/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store is the SQLite-backed account directory and contact inbox.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the database at path and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if _, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// EnsureAccount creates the account unless its email is already registered.
func (s *Store) EnsureAccount(ctx context.Context, registration auth.Registration) error {
	_, err := s.Create(ctx, registration)
	if errors.Is(err, auth.ErrEmailTaken) {
		return nil
	}
	return err
}

// Authenticate verifies email and password against stored bcrypt hashes.
func (s *Store) Authenticate(ctx context.Context, email, password string) (auth.Profile, error) {
	if err := s.ready(ctx); err != nil {
		return auth.Profile{}, err
	}
	var (
		profile auth.Profile
		hash    string
	)
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, email, name, avatar_url, password_hash FROM accounts WHERE email = ?`,
		auth.NormalizeEmail(email),
	)
	err := row.Scan(&profile.ID, &profile.Email, &profile.Name, &profile.AvatarURL, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.Profile{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.Profile{}, fmt.Errorf("lookup account: %w", err)
	}
	if !auth.CheckPassword(hash, password) {
		return auth.Profile{}, auth.ErrInvalidCredentials
	}
	return profile, nil
}

// Create stores a new account.
func (s *Store) Create(ctx context.Context, registration auth.Registration) (auth.Profile, error) {
	if err := s.ready(ctx); err != nil {
		return auth.Profile{}, err
	}
	if err := registration.Validate(); err != nil {
		return auth.Profile{}, err
	}
	registration = registration.Normalize()
	hash, err := auth.HashPassword(registration.Password)
	if err != nil {
		return auth.Profile{}, err
	}
	accountID, err := id.NewID()
	if err != nil {
		return auth.Profile{}, err
	}
	profile := auth.Profile{
		ID:        accountID,
		Name:      registration.Name,
		Email:     registration.Email,
		AvatarURL: auth.AvatarURL(registration.Name),
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO accounts (id, email, name, avatar_url, password_hash, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		profile.ID, profile.Email, profile.Name, profile.AvatarURL, hash, toMillis(s.now()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return auth.Profile{}, auth.ErrEmailTaken
		}
		return auth.Profile{}, fmt.Errorf("insert account: %w", err)
	}
	return profile, nil
}

// Delete removes the account with the given id.
func (s *Store) Delete(ctx context.Context, accountID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete account %s: not found", accountID)
	}
	return nil
}

// Record stores one contact message.
func (s *Store) Record(ctx context.Context, message contact.Message) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(message.ID) == "" {
		return fmt.Errorf("message id is required")
	}
	status := message.Status
	if status == "" {
		status = contact.StatusUnread
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, received_at, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		message.ID, message.Name, message.Email, message.Subject, message.Message, toMillis(message.ReceivedAt), string(status),
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// List returns every contact message, newest first.
func (s *Store) List(ctx context.Context) ([]contact.Message, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, email, subject, message, received_at, status FROM contact_messages ORDER BY received_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []contact.Message
	for rows.Next() {
		var (
			m          contact.Message
			receivedAt int64
			status     string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &receivedAt, &status); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		m.ReceivedAt = fromMillis(receivedAt)
		m.Status = contact.Status(status)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return messages, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
