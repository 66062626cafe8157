package ports

import (
	"context"
	"io"

	"github.com/remotehub/jobboard-api/internal/core/domain"
)

// ResumeUpload carries an incoming resume file before validation.
type ResumeUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// UserService defines profile read/update and resume attachment.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	AttachResume(ctx context.Context, userID string, upload ResumeUpload) (*domain.Resume, error)
}

// SavedJobsService defines the per-user saved-jobs list operations.
type SavedJobsService interface {
	// Save appends a snapshot of the posting; a duplicate jobID fails
	// with domain.ErrJobAlreadySaved.
	Save(ctx context.Context, userID, jobID, title, company string) ([]domain.SavedJob, error)
	// Unsave removes any entry matching jobID; absent entries are a no-op.
	Unsave(ctx context.Context, userID, jobID string) ([]domain.SavedJob, error)
}
