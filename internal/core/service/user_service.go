package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

// maxResumeSize is the upload ceiling for resume files.
const maxResumeSize = 5 << 20 // 5 MiB

// allowedResumeExts is the resume extension allow-list.
var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// FileStore abstracts where resume files land (local disk in this
// deployment). Save returns the stored path.
type FileStore interface {
	Save(ctx context.Context, name string, content io.Reader) (string, error)
}

// UserService implements profile reads, partial updates, and resume
// attachment.
type UserService struct {
	repo   ports.UserRepository
	files  FileStore
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, files FileStore, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, files: files, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies a partial update; nil fields are left untouched.
// Email uniqueness is enforced by the store's unique index, not re-checked
// here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	if update.Email != nil {
		normalized := normalizeEmail(*update.Email)
		if normalized == "" {
			return nil, domain.ErrInvalidInput
		}
		update.Email = &normalized
	}

	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

// AttachResume validates the upload, writes the file, and replaces any
// prior resume metadata wholesale. The previous file is not deleted; see
// the storage-lifecycle note in the service docs.
func (s *UserService) AttachResume(ctx context.Context, userID string, upload ports.ResumeUpload) (*domain.Resume, error) {
	if upload.Filename == "" || upload.Content == nil {
		return nil, domain.ErrInvalidInput
	}
	if upload.Size > maxResumeSize {
		return nil, fmt.Errorf("%w: file exceeds 5MB limit", domain.ErrInvalidInput)
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !allowedResumeExts[ext] {
		return nil, fmt.Errorf("%w: only pdf, doc and docx files are allowed", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	stored := fmt.Sprintf("%s-%d%s", userID, now.UnixMilli(), ext)

	path, err := s.files.Save(ctx, stored, io.LimitReader(upload.Content, maxResumeSize))
	if err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	resume := domain.Resume{
		Filename:   upload.Filename,
		Path:       path,
		UploadedAt: now,
	}

	user, err := s.repo.SetResume(ctx, userID, resume)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("path", path).Msg("resume attached")
	return user.Resume, nil
}
