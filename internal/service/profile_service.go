package service

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrNotEditing     = errors.New("profile is not in edit mode")
)

// Alert texts of the profile page.
const (
	msgProfileRequired  = "Name and email are required fields"
	msgProfileBadEmail  = "Please enter a valid email address"
	msgProfileSaved     = "Profile updated successfully!"
	msgProfileCancelled = "Edit cancelled. No changes were saved."
)

var profileMessages = map[string]string{
	notBlankTag:    "This field is required",
	portalEmailTag: msgProfileBadEmail,
}

// ProfileForm is the profile as shown in the form right now.
type ProfileForm struct {
	Profile domain.Profile
	Mode    domain.ProfileMode
}

// ProfileService owns the single profile record together with its shadow
// copy. Cancel restores the shadow; Save replaces both.
type ProfileService interface {
	Get(ctx context.Context) (ProfileForm, error)
	BeginEdit(ctx context.Context) (ProfileForm, error)
	// UpdateDraft keeps unsaved edits so a re-render does not lose them.
	UpdateDraft(ctx context.Context, draft domain.Profile) (ProfileForm, error)
	Cancel(ctx context.Context, sessionID string) (ProfileForm, error)
	// Save validates and stores fields. On failure the form stays in edit
	// mode and the error is a *ValidationError wrapping ErrInvalidProfile.
	Save(ctx context.Context, sessionID string, fields domain.Profile) (ProfileForm, error)
}

type profileService struct {
	mu        sync.Mutex
	repo      repository.ProfileRepository
	prefs     PreferenceService
	notifier  Notifier
	validate  *validator.Validate
	log       *zap.Logger
	mode      domain.ProfileMode
	original  domain.Profile // shadow copy, what Cancel goes back to
	draft     domain.Profile
	hasShadow bool
}

func NewProfileService(
	repo repository.ProfileRepository,
	prefs PreferenceService,
	notifier Notifier,
	validate *validator.Validate,
	log *zap.Logger,
) ProfileService {
	if validate == nil {
		validate = NewValidator()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &profileService{
		repo:     repo,
		prefs:    prefs,
		notifier: notifier,
		validate: validate,
		log:      log,
		mode:     domain.ProfileView,
	}
}

// loadShadow fills the shadow copy from the repository on first use.
func (s *profileService) loadShadow(ctx context.Context) error {
	if s.hasShadow {
		return nil
	}
	p, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	s.original = p
	s.draft = p
	s.hasShadow = true
	return nil
}

func (s *profileService) form() ProfileForm {
	if s.mode == domain.ProfileEdit {
		return ProfileForm{Profile: s.draft, Mode: s.mode}
	}
	return ProfileForm{Profile: s.original, Mode: s.mode}
}

func (s *profileService) Get(ctx context.Context) (ProfileForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadShadow(ctx); err != nil {
		return ProfileForm{}, err
	}
	return s.form(), nil
}

func (s *profileService) BeginEdit(ctx context.Context) (ProfileForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadShadow(ctx); err != nil {
		return ProfileForm{}, err
	}
	if s.mode != domain.ProfileEdit {
		s.draft = s.original
		s.mode = domain.ProfileEdit
	}
	return s.form(), nil
}

func (s *profileService) UpdateDraft(ctx context.Context, draft domain.Profile) (ProfileForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadShadow(ctx); err != nil {
		return ProfileForm{}, err
	}
	if s.mode != domain.ProfileEdit {
		return s.form(), ErrNotEditing
	}
	draft.Avatar = s.original.Avatar
	s.draft = draft
	return s.form(), nil
}

func (s *profileService) Cancel(ctx context.Context, sessionID string) (ProfileForm, error) {
	s.mu.Lock()
	if err := s.loadShadow(ctx); err != nil {
		s.mu.Unlock()
		return ProfileForm{}, err
	}
	s.draft = s.original
	s.mode = domain.ProfileView
	form := s.form()
	s.mu.Unlock()

	s.notify(sessionID, msgProfileCancelled, domain.AlertInfo)
	return form, nil
}

func (s *profileService) Save(ctx context.Context, sessionID string, fields domain.Profile) (ProfileForm, error) {
	s.mu.Lock()
	if err := s.loadShadow(ctx); err != nil {
		s.mu.Unlock()
		return ProfileForm{}, err
	}
	fields.Avatar = s.original.Avatar
	// Whatever happens next, the form shows what was typed.
	s.draft = fields
	s.mode = domain.ProfileEdit

	if err := validateStruct(s.validate, fields, ErrInvalidProfile, profileMessages); err != nil {
		form := s.form()
		s.mu.Unlock()

		msg := msgProfileBadEmail
		var verr *ValidationError
		if errors.As(err, &verr) && verr.HasTag(notBlankTag) {
			msg = msgProfileRequired
		}
		s.notify(sessionID, msg, domain.AlertError)
		return form, err
	}

	if err := s.repo.Save(ctx, fields); err != nil {
		s.mu.Unlock()
		s.log.Error("saving profile failed", zap.Error(err))
		return ProfileForm{}, err
	}
	s.original = fields
	s.draft = fields
	s.mode = domain.ProfileView
	form := s.form()
	s.mu.Unlock()

	if s.prefs != nil && sessionID != "" {
		if err := s.prefs.SetCurrentUser(ctx, sessionID, fields.FullName); err != nil {
			s.log.Warn("updating currentUser failed", zap.Error(err))
		}
	}
	s.notify(sessionID, msgProfileSaved, domain.AlertSuccess)
	return form, nil
}

func (s *profileService) notify(sessionID, msg string, typ domain.AlertType) {
	if s.notifier != nil {
		s.notifier.Notify(sessionID, msg, typ, 0)
	}
}
