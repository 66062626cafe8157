package ports

import (
	"context"

	"github.com/remotehub/jobboard-api/internal/core/domain"
)

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched in the stored document.
type ProfileUpdate struct {
	Name        *string
	Email       *string
	Preferences *domain.Preferences
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	SetResume(ctx context.Context, id string, resume domain.Resume) (*domain.User, error)

	// AddSavedJob appends the snapshot only when jobID is not already
	// present, in a single atomic update, and returns the full list.
	// Returns domain.ErrJobAlreadySaved when the entry exists.
	AddSavedJob(ctx context.Context, id string, job domain.SavedJob) ([]domain.SavedJob, error)

	// RemoveSavedJob pulls any entry matching jobID and returns the full
	// list. Removing an absent entry is not an error.
	RemoveSavedJob(ctx context.Context, id string, jobID string) ([]domain.SavedJob, error)
}
