package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wagertrack/wagertrack/internal/client/api"
	"github.com/wagertrack/wagertrack/internal/validation"
	pkgapi "github.com/wagertrack/wagertrack/pkg/api"
)

// Service drives the login, register and logout flows. It owns the handoff
// between the API client and the persisted session: after any successful
// flow the API client carries the right bearer token and the store matches.
type Service struct {
	apiClient api.ClientAPI
	session   *Session
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates an auth service.
func NewService(apiClient api.ClientAPI, session *Session, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		session:   session,
		logger:    logger,
		now:       time.Now,
	}
}

// Register creates an account, then persists and activates the session.
func (s *Service) Register(ctx context.Context, email, password string) (*AuthData, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return s.activate(ctx, email, resp)
}

// Login authenticates, then persists and activates the session.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthData, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return s.activate(ctx, email, resp)
}

// Logout notifies the server best-effort and always clears the local
// session, so logout works offline too.
func (s *Service) Logout(ctx context.Context) error {
	if _, err := s.session.Load(ctx); err != nil {
		if !errors.Is(err, ErrNotAuthenticated) {
			return err
		}
		s.logger.Debug("no session found during logout")
	} else {
		if err := s.apiClient.Logout(ctx); err != nil {
			s.logger.Warn("failed to logout on server", "error", err)
		}
	}

	s.apiClient.SetAccessToken("")
	if err := s.session.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}

// Restore loads a previously persisted session and, if it is still valid,
// installs its token on the API client. Returns ErrNotAuthenticated when no
// usable session exists.
func (s *Service) Restore(ctx context.Context) (*AuthData, error) {
	ok, err := s.session.IsAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAuthenticated
	}

	data, err := s.session.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.apiClient.SetAccessToken(data.AccessToken)
	return data, nil
}

func (s *Service) activate(ctx context.Context, email string, resp *pkgapi.TokenResponse) (*AuthData, error) {
	data := &AuthData{
		UserID:       resp.UserID,
		Email:        email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if resp.ExpiresIn > 0 {
		data.ExpiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	if err := s.session.Save(ctx, data); err != nil {
		return nil, err
	}
	s.apiClient.SetAccessToken(data.AccessToken)

	s.logger.Info("session established", "user_id", data.UserID)
	return data, nil
}
