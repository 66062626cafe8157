package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

// JobsFeed abstracts the upstream remote-jobs API.
type JobsFeed interface {
	Fetch(ctx context.Context, query ports.JobsQuery) ([]domain.JobPosting, error)
}

// JobsCache abstracts the expiring cache in front of the feed (Redis).
type JobsCache interface {
	Get(ctx context.Context, key string) ([]domain.JobPosting, bool, error)
	Set(ctx context.Context, key string, postings []domain.JobPosting) error
}

// JobsService is a read-through cached proxy for the external feed.
// Cache failures degrade to a direct fetch; they never fail the request.
type JobsService struct {
	feed   JobsFeed
	cache  JobsCache
	logger zerolog.Logger
}

func NewJobsService(feed JobsFeed, cache JobsCache, logger zerolog.Logger) *JobsService {
	return &JobsService{feed: feed, cache: cache, logger: logger}
}

func (s *JobsService) List(ctx context.Context, query ports.JobsQuery) ([]domain.JobPosting, error) {
	key := cacheKey(query)

	if s.cache != nil {
		postings, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("jobs cache read failed, fetching upstream")
		} else if hit {
			return postings, nil
		}
	}

	postings, err := s.feed.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, postings); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("jobs cache write failed")
		}
	}

	return postings, nil
}

func cacheKey(q ports.JobsQuery) string {
	return strings.ToLower(strings.TrimSpace(q.Search)) + "|" + strings.ToLower(strings.TrimSpace(q.Category))
}
