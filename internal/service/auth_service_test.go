package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestAuthService(clock Clock) (AuthService, PreferenceService) {
	prefs := NewPreferenceService(newMapPreferenceStore())
	return NewAuthService(prefs, NewValidator(), testSecret, time.Hour, clock), prefs
}

func TestAuthService_LoginValidation(t *testing.T) {
	svc, _ := newTestAuthService(newFakeClock(time.Now()))

	tests := []struct {
		name  string
		form  LoginForm
		field string
		msg   string
	}{
		{"no username", LoginForm{Password: "pw"}, "username", "Username or email is required"},
		{"blank username", LoginForm{Username: "  ", Password: "pw"}, "username", "Username or email is required"},
		{"no password", LoginForm{Username: "alice"}, "password", "Password is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), "b", tt.form)
			require.ErrorIs(t, err, ErrInvalidCredentials)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.msg, verr.Field(tt.field))
		})
	}
}

func TestAuthService_LoginAndResolve(t *testing.T) {
	clock := newFakeClock(time.Date(2023, 10, 19, 9, 0, 0, 0, time.UTC))
	svc, _ := newTestAuthService(clock)
	ctx := context.Background()

	token, user, err := svc.Login(ctx, "b", LoginForm{Username: " alice@uni.edu ", Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "alice@uni.edu", user)
	assert.NotEmpty(t, token)

	session, err := svc.Resolve(ctx, "b", token)
	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn)
	assert.Equal(t, "alice@uni.edu", session.CurrentUser)
	assert.Equal(t, "b", session.BrowserID)
}

func TestAuthService_ResolveRejects(t *testing.T) {
	clock := newFakeClock(time.Date(2023, 10, 19, 9, 0, 0, 0, time.UTC))
	svc, _ := newTestAuthService(clock)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "b", LoginForm{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	other, _ := newTestAuthService(clock)
	forged, _, err := NewAuthService(NewPreferenceService(newMapPreferenceStore()), nil, "other-secret", time.Hour, clock).
		Login(ctx, "b", LoginForm{Username: "mallory", Password: "pw"})
	require.NoError(t, err)

	cases := map[string]struct {
		svc   AuthService
		bid   string
		token string
	}{
		"empty token":     {svc, "b", ""},
		"garbage":         {svc, "b", "not-a-jwt"},
		"other browser":   {svc, "c", token},
		"wrong secret":    {svc, "b", forged},
		"never logged in": {other, "b", token},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			session, err := tc.svc.Resolve(ctx, tc.bid, tc.token)
			require.NoError(t, err)
			assert.False(t, session.IsLoggedIn)
			assert.Empty(t, session.CurrentUser)
			assert.Equal(t, tc.bid, session.BrowserID)
		})
	}
}

func TestAuthService_Expiry(t *testing.T) {
	clock := newFakeClock(time.Date(2023, 10, 19, 9, 0, 0, 0, time.UTC))
	svc, _ := newTestAuthService(clock)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "b", LoginForm{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	session, err := svc.Resolve(ctx, "b", token)
	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn)

	clock.Advance(time.Minute)
	session, err = svc.Resolve(ctx, "b", token)
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn)
}

func TestAuthService_LogoutAndRename(t *testing.T) {
	clock := newFakeClock(time.Date(2023, 10, 19, 9, 0, 0, 0, time.UTC))
	svc, prefs := newTestAuthService(clock)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "b", LoginForm{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, prefs.SetCurrentUser(ctx, "b", "Alice Smith"))
	session, err := svc.Resolve(ctx, "b", token)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", session.CurrentUser)

	require.NoError(t, svc.Logout(ctx, "b"))
	session, err = svc.Resolve(ctx, "b", token)
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn)
}

func TestNewAuthService_EmptySecretPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewAuthService(NewPreferenceService(newMapPreferenceStore()), nil, "", time.Hour, SystemClock{})
	})
}
