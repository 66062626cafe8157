package ports

import (
	"context"

	"github.com/remotehub/jobboard-api/internal/core/domain"
)

// JobsQuery narrows the postings returned from the external feed.
type JobsQuery struct {
	Search   string
	Category string
}

// JobsService serves postings from the external remote-jobs feed.
type JobsService interface {
	List(ctx context.Context, query JobsQuery) ([]domain.JobPosting, error)
}
