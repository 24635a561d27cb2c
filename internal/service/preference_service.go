package service

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
	"errors"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

// PreferenceService reads and writes the per-browser keys the pages rely on.
// sessionID is the browser's storage namespace, not the login.
type PreferenceService interface {
	// Theme returns the saved theme, else the browser's preference, else light.
	Theme(ctx context.Context, sessionID string, prefersDark bool) (domain.Theme, error)
	SetTheme(ctx context.Context, sessionID string, theme domain.Theme) error
	ToggleTheme(ctx context.Context, sessionID string, prefersDark bool) (domain.Theme, error)
	// ConsumeWelcome is true exactly once per session.
	ConsumeWelcome(ctx context.Context, sessionID string) (bool, error)
	CurrentUser(ctx context.Context, sessionID string) (string, error)
	SetCurrentUser(ctx context.Context, sessionID, name string) error
	StartSession(ctx context.Context, sessionID, user string) error
	IsLoggedIn(ctx context.Context, sessionID string) (bool, error)
	EndSession(ctx context.Context, sessionID string) error
}

type preferenceService struct {
	store repository.PreferenceStore
}

func NewPreferenceService(store repository.PreferenceStore) PreferenceService {
	return &preferenceService{store: store}
}

// lookup returns "" for keys that were never set.
func (s *preferenceService) lookup(ctx context.Context, sessionID, key string) (string, error) {
	v, err := s.store.Get(ctx, sessionID, key)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	return v, err
}

func (s *preferenceService) Theme(ctx context.Context, sessionID string, prefersDark bool) (domain.Theme, error) {
	saved, err := s.lookup(ctx, sessionID, domain.PrefTheme)
	if err != nil {
		return domain.ThemeLight, err
	}
	if t := domain.Theme(saved); t.Valid() {
		return t, nil
	}
	if prefersDark {
		return domain.ThemeDark, nil
	}
	return domain.ThemeLight, nil
}

func (s *preferenceService) SetTheme(ctx context.Context, sessionID string, theme domain.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}
	return s.store.Set(ctx, sessionID, domain.PrefTheme, string(theme))
}

func (s *preferenceService) ToggleTheme(ctx context.Context, sessionID string, prefersDark bool) (domain.Theme, error) {
	current, err := s.Theme(ctx, sessionID, prefersDark)
	if err != nil {
		return current, err
	}
	next := current.Opposite()
	if err := s.SetTheme(ctx, sessionID, next); err != nil {
		return current, err
	}
	return next, nil
}

func (s *preferenceService) ConsumeWelcome(ctx context.Context, sessionID string) (bool, error) {
	shown, err := s.lookup(ctx, sessionID, domain.PrefWelcomeShown)
	if err != nil || shown == "true" {
		return false, err
	}
	if err := s.store.Set(ctx, sessionID, domain.PrefWelcomeShown, "true"); err != nil {
		return false, err
	}
	return true, nil
}

func (s *preferenceService) CurrentUser(ctx context.Context, sessionID string) (string, error) {
	return s.lookup(ctx, sessionID, domain.PrefCurrentUser)
}

func (s *preferenceService) SetCurrentUser(ctx context.Context, sessionID, name string) error {
	return s.store.Set(ctx, sessionID, domain.PrefCurrentUser, name)
}

// StartSession marks the browser logged in. welcomeShown is scoped to one
// login, so it is reset here.
func (s *preferenceService) StartSession(ctx context.Context, sessionID, user string) error {
	if err := s.store.Set(ctx, sessionID, domain.PrefIsLoggedIn, "true"); err != nil {
		return err
	}
	if err := s.store.Set(ctx, sessionID, domain.PrefCurrentUser, user); err != nil {
		return err
	}
	return s.store.Delete(ctx, sessionID, domain.PrefWelcomeShown)
}

// IsLoggedIn reads the isLoggedIn key.
func (s *preferenceService) IsLoggedIn(ctx context.Context, sessionID string) (bool, error) {
	v, err := s.lookup(ctx, sessionID, domain.PrefIsLoggedIn)
	return v == "true", err
}

// EndSession forgets the login keys. The theme outlives the login.
func (s *preferenceService) EndSession(ctx context.Context, sessionID string) error {
	for _, key := range []string{domain.PrefIsLoggedIn, domain.PrefCurrentUser, domain.PrefWelcomeShown} {
		if err := s.store.Delete(ctx, sessionID, key); err != nil {
			return err
		}
	}
	return nil
}
