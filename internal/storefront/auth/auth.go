// Package auth tracks a visitor's sign-in state against a credential
// directory.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/arvana/storefront/internal/storefront/latency"
)

var (
	// ErrInvalidCredentials is returned for an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	// ErrEmailTaken is returned when registering an email already in use.
	ErrEmailTaken = errors.New("auth: email already registered")
	// ErrInvalidRegistration is returned for incomplete registrations.
	ErrInvalidRegistration = errors.New("auth: invalid registration")
	// ErrSuperseded is returned to an attempt overtaken by a later one.
	ErrSuperseded = errors.New("auth: attempt superseded")
)

// MinPasswordLength is the shortest accepted registration password.
const MinPasswordLength = 8

// State is the sign-in state of one visitor.
type State int

const (
	StateSignedOut State = iota
	StateSigningIn
	StateSignedIn
)

func (s State) String() string {
	switch s {
	case StateSignedOut:
		return "signed_out"
	case StateSigningIn:
		return "signing_in"
	case StateSignedIn:
		return "signed_in"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Profile describes a signed-in user.
type Profile struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
}

// Registration is a new account request.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Normalize trims fields and lowercases the email.
func (r Registration) Normalize() Registration {
	return Registration{
		Name:     strings.TrimSpace(r.Name),
		Email:    NormalizeEmail(r.Email),
		Password: r.Password,
	}
}

// Validate reports whether the registration is complete.
func (r Registration) Validate() error {
	r = r.Normalize()
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRegistration)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil || r.Email == "" {
		return fmt.Errorf("%w: email is invalid", ErrInvalidRegistration)
	}
	if len(r.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidRegistration, MinPasswordLength)
	}
	return nil
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Directory verifies and stores credentials.
type Directory interface {
	// Authenticate returns the profile for matching credentials or
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (Profile, error)
	// Create stores a new credential or returns ErrEmailTaken.
	Create(ctx context.Context, registration Registration) (Profile, error)
	// Delete removes a credential by profile id.
	Delete(ctx context.Context, id string) error
}

// Store is one visitor's authentication state. Login and Register resolve
// last-write-wins: a result from an attempt overtaken by a newer attempt or
// by Logout is discarded.
type Store struct {
	directory Directory
	latency   latency.Latency

	mu      sync.Mutex
	state   State
	profile *Profile
	attempt uint64
}

// NewStore returns a signed-out store backed by directory.
func NewStore(directory Directory, l latency.Latency) *Store {
	return &Store{directory: directory, latency: latency.OrNone(l)}
}

// Login signs the visitor in. A failed login restores the prior state.
func (s *Store) Login(ctx context.Context, email, password string) (Profile, error) {
	if s.directory == nil {
		return Profile{}, errors.New("auth: directory is not configured")
	}
	attempt := s.begin()
	if err := s.latency.Wait(ctx); err != nil {
		return Profile{}, s.fail(attempt, err)
	}
	profile, err := s.directory.Authenticate(ctx, NormalizeEmail(email), password)
	if err != nil {
		return Profile{}, s.fail(attempt, err)
	}
	if !s.commit(attempt, profile) {
		return Profile{}, ErrSuperseded
	}
	return profile, nil
}

// Register creates a credential and signs the visitor in with it. When the
// session cannot be established the credential is removed again.
func (s *Store) Register(ctx context.Context, registration Registration) (Profile, error) {
	if s.directory == nil {
		return Profile{}, errors.New("auth: directory is not configured")
	}
	if err := registration.Validate(); err != nil {
		return Profile{}, err
	}
	attempt := s.begin()
	if err := s.latency.Wait(ctx); err != nil {
		return Profile{}, s.fail(attempt, err)
	}
	if !s.current(attempt) {
		return Profile{}, ErrSuperseded
	}
	profile, err := s.directory.Create(ctx, registration.Normalize())
	if err != nil {
		return Profile{}, s.fail(attempt, err)
	}
	if !s.commit(attempt, profile) {
		if err := s.directory.Delete(context.WithoutCancel(ctx), profile.ID); err != nil {
			return Profile{}, fmt.Errorf("%w: remove orphaned credential: %v", ErrSuperseded, err)
		}
		return Profile{}, ErrSuperseded
	}
	return profile, nil
}

// Logout signs the visitor out and discards any in-flight attempt. It is a
// no-op when already signed out.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt++
	s.profile = nil
	s.state = StateSignedOut
}

// State returns the current sign-in state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Profile returns the signed-in profile.
func (s *Store) Profile() (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return Profile{}, false
	}
	return *s.profile, true
}

// SignedIn reports whether a profile is established.
func (s *Store) SignedIn() bool {
	_, ok := s.Profile()
	return ok
}

func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt++
	s.state = StateSigningIn
	return s.attempt
}

func (s *Store) current(attempt uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt == attempt
}

func (s *Store) commit(attempt uint64, profile Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt != attempt {
		return false
	}
	s.profile = &profile
	s.state = StateSignedIn
	return true
}

func (s *Store) fail(attempt uint64, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt != attempt {
		return ErrSuperseded
	}
	s.state = stableState(s.profile)
	return cause
}

func stableState(profile *Profile) State {
	if profile == nil {
		return StateSignedOut
	}
	return StateSignedIn
}
