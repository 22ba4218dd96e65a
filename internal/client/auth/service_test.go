package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagertrack/wagertrack/internal/client/api"
	"github.com/wagertrack/wagertrack/internal/client/storage/memory"
	pkgapi "github.com/wagertrack/wagertrack/pkg/api"
)

func newTestService(t *testing.T, apiClient *api.ClientAPIMock) (*Service, *Session, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	session := NewSession(memory.New(), slog.Default())
	session.now = clock.Now

	svc := NewService(apiClient, session, slog.Default())
	svc.now = clock.Now
	return svc, session, clock
}

func TestServiceLogin(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			assert.Equal(t, "password123", req.Password)
			return &pkgapi.TokenResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresIn:    3600,
				UserID:       "user-1",
			}, nil
		},
		SetAccessTokenFunc: func(token string) {},
	}
	svc, session, clock := newTestService(t, apiClient)

	data, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", data.UserID)
	assert.Equal(t, "alice@example.com", data.Email)
	assert.Equal(t, clock.Now().Add(time.Hour), data.ExpiresAt)

	// The token is installed on the API client and the session persisted.
	calls := apiClient.SetAccessTokenCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "access", calls[0].Token)

	stored, err := session.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access", stored.AccessToken)
}

func TestServiceLoginRejectsBadEmail(t *testing.T) {
	apiClient := &api.ClientAPIMock{}
	svc, _, _ := newTestService(t, apiClient)

	_, err := svc.Login(context.Background(), "not-an-email", "password123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email")
	assert.Empty(t, apiClient.LoginCalls(), "no server round trip on invalid input")
}

func TestServiceLoginServerError(t *testing.T) {
	apiClient := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return nil, assert.AnError
		},
	}
	svc, session, _ := newTestService(t, apiClient)

	_, err := svc.Login(context.Background(), "alice@example.com", "password123")
	require.Error(t, err)

	_, err = session.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated, "failed login leaves no session")
}

func TestServiceRegister(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken: "access",
				ExpiresIn:   3600,
				UserID:      "user-2",
			}, nil
		},
		SetAccessTokenFunc: func(token string) {},
	}
	svc, _, _ := newTestService(t, apiClient)

	data, err := svc.Register(ctx, "bob@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-2", data.UserID)
}

func TestServiceRegisterRejectsShortPassword(t *testing.T) {
	apiClient := &api.ClientAPIMock{}
	svc, _, _ := newTestService(t, apiClient)

	_, err := svc.Register(context.Background(), "bob@example.com", "short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid password")
	assert.Empty(t, apiClient.RegisterCalls())
}

func TestServiceLogoutClearsSessionEvenWhenServerFails(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{
		LogoutFunc: func(ctx context.Context) error {
			return assert.AnError
		},
		SetAccessTokenFunc: func(token string) {},
	}
	svc, session, clock := newTestService(t, apiClient)

	require.NoError(t, session.Save(ctx, &AuthData{
		UserID:      "user-1",
		AccessToken: "access",
		ExpiresAt:   clock.Now().Add(time.Hour),
	}))

	require.NoError(t, svc.Logout(ctx))

	_, err := session.Load(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	calls := apiClient.SetAccessTokenCalls()
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Token, "bearer token cleared")
}

func TestServiceLogoutWithoutSession(t *testing.T) {
	apiClient := &api.ClientAPIMock{
		SetAccessTokenFunc: func(token string) {},
	}
	svc, _, _ := newTestService(t, apiClient)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, apiClient.LogoutCalls(), "no server call without a session")
}

func TestServiceRestore(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{
		SetAccessTokenFunc: func(token string) {},
	}
	svc, session, clock := newTestService(t, apiClient)

	require.NoError(t, session.Save(ctx, &AuthData{
		UserID:      "user-1",
		AccessToken: "access",
		ExpiresAt:   clock.Now().Add(time.Hour),
	}))

	data, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", data.UserID)

	calls := apiClient.SetAccessTokenCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "access", calls[0].Token)
}

func TestServiceRestoreExpired(t *testing.T) {
	ctx := context.Background()

	apiClient := &api.ClientAPIMock{}
	svc, session, clock := newTestService(t, apiClient)

	require.NoError(t, session.Save(ctx, &AuthData{
		UserID:    "user-1",
		ExpiresAt: clock.Now().Add(-time.Minute),
	}))

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, apiClient.SetAccessTokenCalls())
}
