package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/arvana/storefront/internal/platform/id"
	"golang.org/x/crypto/bcrypt"
)

// Demo account available in every fresh directory.
const (
	DemoEmail    = "demo@arvana.com"
	DemoPassword = "arvana-demo"
	DemoName     = "Demo Shopper"
)

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AvatarURL returns the generated avatar image for name.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?background=111827&color=fff&name=" + url.QueryEscape(name)
}

type credential struct {
	profile Profile
	hash    string
}

// MemoryDirectory is an in-process credential directory.
type MemoryDirectory struct {
	mu      sync.RWMutex
	byEmail map[string]credential
}

// NewMemoryDirectory returns a directory holding only the demo account.
func NewMemoryDirectory() (*MemoryDirectory, error) {
	d := &MemoryDirectory{byEmail: make(map[string]credential)}
	if _, err := d.Create(context.Background(), Registration{Name: DemoName, Email: DemoEmail, Password: DemoPassword}); err != nil {
		return nil, fmt.Errorf("seed demo account: %w", err)
	}
	return d, nil
}

// Authenticate verifies email and password.
func (d *MemoryDirectory) Authenticate(ctx context.Context, email, password string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	d.mu.RLock()
	cred, ok := d.byEmail[NormalizeEmail(email)]
	d.mu.RUnlock()
	if !ok || !CheckPassword(cred.hash, password) {
		return Profile{}, ErrInvalidCredentials
	}
	return cred.profile, nil
}

// Create registers a new credential.
func (d *MemoryDirectory) Create(ctx context.Context, registration Registration) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	if err := registration.Validate(); err != nil {
		return Profile{}, err
	}
	registration = registration.Normalize()
	hash, err := HashPassword(registration.Password)
	if err != nil {
		return Profile{}, err
	}
	profileID, err := id.NewID()
	if err != nil {
		return Profile{}, err
	}
	profile := Profile{
		ID:        profileID,
		Name:      registration.Name,
		Email:     registration.Email,
		AvatarURL: AvatarURL(registration.Name),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.byEmail[registration.Email]; ok {
		return Profile{}, ErrEmailTaken
	}
	d.byEmail[registration.Email] = credential{profile: profile, hash: hash}
	return profile, nil
}

// Delete removes the credential owned by profile id.
func (d *MemoryDirectory) Delete(ctx context.Context, profileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for email, cred := range d.byEmail {
		if cred.profile.ID == profileID {
			delete(d.byEmail, email)
			return nil
		}
	}
	return errors.New("auth: credential not found")
}

// Len returns the number of stored credentials.
func (d *MemoryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byEmail)
}
