// Package auth manages the client-side session: tokens persisted in the
// durable store, expiry derived from the access token itself, and the
// login/register/logout flows against the backend.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wagertrack/wagertrack/internal/client/storage"
)

// keyAuth is the sentinel key the session is persisted under.
const keyAuth = "auth_session"

// ErrNotAuthenticated indicates that no session is stored or it has expired.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthData is the persisted session state.
type AuthData struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Session persists and validates auth data in the durable store.
type Session struct {
	store  storage.KVStore
	logger *slog.Logger
	now    func() time.Time
}

// NewSession creates a session store.
func NewSession(store storage.KVStore, logger *slog.Logger) *Session {
	return &Session{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Save persists the session. If ExpiresAt is zero it is derived from the
// access token's exp claim; the token is only decoded, never verified, since
// the client holds no signing key and the server re-checks on every request.
func (s *Session) Save(ctx context.Context, auth *AuthData) error {
	if auth == nil {
		return fmt.Errorf("auth data is nil")
	}

	data := *auth
	if data.ExpiresAt.IsZero() && data.AccessToken != "" {
		expiresAt, err := tokenExpiry(data.AccessToken)
		if err != nil {
			s.logger.Warn("failed to read token expiry", "error", err)
		} else {
			data.ExpiresAt = expiresAt
		}
	}

	if err := s.store.Set(ctx, keyAuth, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the stored session, expired or not. Callers that need a live
// token should use IsAuthenticated first.
func (s *Session) Load(ctx context.Context) (*AuthData, error) {
	var data AuthData
	err := s.store.Get(ctx, keyAuth, &data)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &data, nil
}

// Delete removes the stored session. Deleting an absent session is a no-op.
func (s *Session) Delete(ctx context.Context) error {
	if err := s.store.Remove(ctx, keyAuth); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a session exists and its token has not
// expired. A session without a recorded expiry counts as authenticated.
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	data, err := s.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return false, nil
		}
		return false, err
	}
	if data.ExpiresAt.IsZero() {
		return true, nil
	}
	return s.now().Before(data.ExpiresAt), nil
}

// tokenExpiry decodes the exp claim of a JWT without verifying the signature.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read exp claim: %w", err)
	}
	if expiresAt == nil {
		return time.Time{}, fmt.Errorf("token has no exp claim")
	}
	return expiresAt.Time, nil
}
