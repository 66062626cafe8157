package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

// SavedJobsService manages the per-user saved-jobs list.
type SavedJobsService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewSavedJobsService(repo ports.UserRepository, logger zerolog.Logger) *SavedJobsService {
	return &SavedJobsService{repo: repo, logger: logger}
}

// Save appends a snapshot of the posting to the user's list. The insert is
// conditional on the jobID being absent, so concurrent saves of the same
// posting cannot produce a duplicate entry.
func (s *SavedJobsService) Save(ctx context.Context, userID, jobID, title, company string) ([]domain.SavedJob, error) {
	if jobID == "" {
		return nil, domain.ErrInvalidInput
	}

	job := domain.SavedJob{
		JobID:   jobID,
		Title:   title,
		Company: company,
		SavedAt: time.Now().UTC(),
	}

	list, err := s.repo.AddSavedJob(ctx, userID, job)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("job_id", jobID).Msg("job saved")
	return list, nil
}

// Unsave removes any entry matching jobID. Removing an absent entry is a
// no-op returning the unchanged list.
func (s *SavedJobsService) Unsave(ctx context.Context, userID, jobID string) ([]domain.SavedJob, error) {
	if jobID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.RemoveSavedJob(ctx, userID, jobID)
}
