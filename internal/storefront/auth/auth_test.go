package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/arvana/storefront/internal/storefront/latency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T) *MemoryDirectory {
	t.Helper()
	d, err := NewMemoryDirectory()
	require.NoError(t, err)
	return d
}

func TestLoginValidCredentials(t *testing.T) {
	t.Parallel()

	s := NewStore(newDirectory(t), nil)
	assert.Equal(t, StateSignedOut, s.State())

	profile, err := s.Login(context.Background(), " Demo@Arvana.com ", DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, DemoEmail, profile.Email)
	assert.Equal(t, DemoName, profile.Name)
	assert.NotEmpty(t, profile.AvatarURL)
	assert.Equal(t, StateSignedIn, s.State())

	got, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, profile, got)
}

func TestLoginInvalidCredentialsKeepsState(t *testing.T) {
	t.Parallel()

	s := NewStore(newDirectory(t), nil)
	_, err := s.Login(context.Background(), DemoEmail, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateSignedOut, s.State())
	assert.False(t, s.SignedIn())

	_, err = s.Login(context.Background(), DemoEmail, DemoPassword)
	require.NoError(t, err)
	_, err = s.Login(context.Background(), "nobody@arvana.com", DemoPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateSignedIn, s.State())
	profile, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, DemoEmail, profile.Email)
}

func TestLogoutClearsProfileAndIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewStore(newDirectory(t), nil)
	_, err := s.Login(context.Background(), DemoEmail, DemoPassword)
	require.NoError(t, err)

	s.Logout()
	assert.Equal(t, StateSignedOut, s.State())
	profile, ok := s.Profile()
	assert.False(t, ok)
	assert.Equal(t, Profile{}, profile)

	s.Logout()
	assert.Equal(t, StateSignedOut, s.State())
}

func TestSigningInWhileInFlight(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	s := NewStore(newDirectory(t), latency.Func(func(context.Context) error {
		close(entered)
		<-release
		return nil
	}))

	done := make(chan error, 1)
	go func() {
		_, err := s.Login(context.Background(), DemoEmail, DemoPassword)
		done <- err
	}()
	<-entered
	assert.Equal(t, StateSigningIn, s.State())
	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateSignedIn, s.State())
}

func TestLastLoginWins(t *testing.T) {
	t.Parallel()

	d := newDirectory(t)
	_, err := d.Create(context.Background(), Registration{Name: "Sarah Smith", Email: "sarah@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls int
	var mu sync.Mutex
	s := NewStore(d, latency.Func(func(context.Context) error {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(firstEntered)
			<-releaseFirst
		}
		return nil
	}))

	firstDone := make(chan error, 1)
	go func() {
		_, err := s.Login(context.Background(), DemoEmail, DemoPassword)
		firstDone <- err
	}()
	<-firstEntered

	second, err := s.Login(context.Background(), "sarah@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Smith", second.Name)

	close(releaseFirst)
	assert.ErrorIs(t, <-firstDone, ErrSuperseded)

	profile, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, "sarah@example.com", profile.Email)
	assert.Equal(t, StateSignedIn, s.State())
}

func TestLogoutSupersedesInFlightLogin(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	s := NewStore(newDirectory(t), latency.Func(func(context.Context) error {
		close(entered)
		<-release
		return nil
	}))
	done := make(chan error, 1)
	go func() {
		_, err := s.Login(context.Background(), DemoEmail, DemoPassword)
		done <- err
	}()
	<-entered
	s.Logout()
	close(release)

	assert.ErrorIs(t, <-done, ErrSuperseded)
	assert.Equal(t, StateSignedOut, s.State())
	assert.False(t, s.SignedIn())
}

func TestRegisterCreatesCredentialAndSession(t *testing.T) {
	t.Parallel()

	d := newDirectory(t)
	s := NewStore(d, nil)
	profile, err := s.Register(context.Background(), Registration{Name: " John Doe ", Email: "John@Example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", profile.Name)
	assert.Equal(t, "john@example.com", profile.Email)
	assert.Equal(t, StateSignedIn, s.State())
	assert.Equal(t, 2, d.Len())

	other := NewStore(d, nil)
	_, err = other.Login(context.Background(), "john@example.com", "password123")
	require.NoError(t, err)
}

func TestRegisterFailuresCreateNothing(t *testing.T) {
	t.Parallel()

	d := newDirectory(t)
	s := NewStore(d, nil)

	tests := []struct {
		name string
		reg  Registration
		want error
	}{
		{name: "missing name", reg: Registration{Email: "a@example.com", Password: "password123"}, want: ErrInvalidRegistration},
		{name: "bad email", reg: Registration{Name: "A", Email: "not-an-email", Password: "password123"}, want: ErrInvalidRegistration},
		{name: "short password", reg: Registration{Name: "A", Email: "a@example.com", Password: "short"}, want: ErrInvalidRegistration},
		{name: "taken email", reg: Registration{Name: "A", Email: DemoEmail, Password: "password123"}, want: ErrEmailTaken},
	}
	for _, tc := range tests {
		_, err := s.Register(context.Background(), tc.reg)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
	assert.Equal(t, StateSignedOut, s.State())
	assert.Equal(t, 1, d.Len())
}

func TestSupersededRegisterRemovesCredential(t *testing.T) {
	t.Parallel()

	d := newDirectory(t)
	created := make(chan struct{})
	release := make(chan struct{})
	dir := &hookDirectory{Directory: d, afterCreate: func() {
		close(created)
		<-release
	}}
	s := NewStore(dir, nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.Register(context.Background(), Registration{Name: "Late", Email: "late@example.com", Password: "password123"})
		done <- err
	}()
	<-created
	s.Logout()
	close(release)

	assert.ErrorIs(t, <-done, ErrSuperseded)
	assert.Equal(t, 1, d.Len())
	assert.False(t, s.SignedIn())
}

func TestLatencyFailureRestoresState(t *testing.T) {
	t.Parallel()

	boom := errors.New("unreachable")
	s := NewStore(newDirectory(t), latency.Func(func(context.Context) error { return boom }))
	_, err := s.Login(context.Background(), DemoEmail, DemoPassword)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateSignedOut, s.State())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "signed_out", StateSignedOut.String())
	assert.Equal(t, "signing_in", StateSigningIn.String())
	assert.Equal(t, "signed_in", StateSignedIn.String())
	assert.Equal(t, "state(9)", State(9).String())
}

type hookDirectory struct {
	Directory
	afterCreate func()
}

func (d *hookDirectory) Create(ctx context.Context, registration Registration) (Profile, error) {
	profile, err := d.Directory.Create(ctx, registration)
	if err == nil && d.afterCreate != nil {
		d.afterCreate()
	}
	return profile, err
}
