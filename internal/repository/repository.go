package repository

import (
	"alcyxob/student-portal/internal/domain" // Import our defined domain models
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AssignmentRepository owns the assignment collection.
type AssignmentRepository interface {
	// List returns a copy of every assignment in seed order.
	List(ctx context.Context) ([]domain.Assignment, error)
	GetByID(ctx context.Context, id int) (*domain.Assignment, error)
	// MarkSubmitted records a submission: SubmittedDate = on, Status = submitted.
	MarkSubmitted(ctx context.Context, id int, on domain.Date) (*domain.Assignment, error)
}

// CourseRepository exposes the read-only course list.
type CourseRepository interface {
	List(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id int) (*domain.Course, error)
}

// ProfileRepository holds the single student profile.
type ProfileRepository interface {
	Get(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}

// StatRepository holds the fixed dashboard cards.
type StatRepository interface {
	List(ctx context.Context) ([]domain.Stat, error)
}

// PreferenceStore is the server-side stand-in for browser storage, one
// namespace per session id.
type PreferenceStore interface {
	// Get returns ErrNotFound when the key was never set.
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID, key string) error
	// Clear drops every key of the session.
	Clear(ctx context.Context, sessionID string) error
	Close(ctx context.Context) error
}
