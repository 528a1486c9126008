package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/playlog/playlog/internal/client/api"
	"github.com/playlog/playlog/internal/client/storage"
	"github.com/playlog/playlog/internal/validation"
	pkgapi "github.com/playlog/playlog/pkg/api"
)

// Service is the single source of truth for "am I logged in, and with
// what credential". It holds the bearer token and the identity derived
// from login, and keeps the durable storage mirror in step: on every
// transition storage is written first, then the in-memory state.
// Token and identity are always set and cleared together.
type Service struct {
	apiClient *api.Client
	storage   storage.SessionStorage
	current   *storage.SessionData
}

// NewService creates a new session service. The session starts empty;
// call Restore to rehydrate a persisted one.
func NewService(apiClient *api.Client, sessionStorage storage.SessionStorage) *Service {
	return &Service{
		apiClient: apiClient,
		storage:   sessionStorage,
	}
}

// Restore rehydrates the session from durable storage. A missing or
// corrupt record leaves the session empty; corrupt state is logged,
// never an error, so startup cannot fail on bad persisted data.
// Restoring twice with unchanged storage yields the same state.
func (s *Service) Restore(ctx context.Context) {
	data, err := s.storage.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			slog.Warn("failed to restore session, starting unauthenticated", "error", err)
		}
		s.current = nil
		return
	}

	// Token and identity only exist together
	if data.Token == "" || data.Username == "" {
		slog.Warn("persisted session is incomplete, starting unauthenticated")
		s.current = nil
		return
	}

	s.current = data
}

// Login authenticates against the backend and, only after success,
// persists the returned token and identity and sets them in memory.
// Failures propagate unchanged and leave both stores untouched.
func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	data, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	session := &storage.SessionData{
		Username: data.User.Username,
		Token:    data.Token,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.current = session

	return nil
}

// Logout notifies the backend best-effort and always clears the local
// session, durable and in-memory, so the client never stays logged in
// locally after an attempted logout. A failed remote call is logged,
// not surfaced.
func (s *Service) Logout(ctx context.Context) error {
	if s.current != nil {
		if err := s.apiClient.Logout(ctx, s.current.Token); err != nil {
			slog.Warn("failed to logout on server", "error", err)
		}
	}

	return s.Invalidate(ctx)
}

// Invalidate clears the local session without contacting the backend.
// Used on logout and when a call comes back with a rejected token.
func (s *Service) Invalidate(ctx context.Context) error {
	err := s.storage.DeleteSession(ctx)
	s.current = nil
	if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a token is present. It is derived
// from the token alone, never from the identity.
func (s *Service) IsAuthenticated() bool {
	return s.current != nil && s.current.Token != ""
}

// Token returns the current bearer token, empty when logged out.
func (s *Service) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Username returns the current identity, empty when logged out.
func (s *Service) Username() string {
	if s.current == nil {
		return ""
	}
	return s.current.Username
}
