package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/remotehub/jobboard-api/internal/core/domain"
)

const jobsCacheTTL = 10 * time.Minute

// JobsCache is an expiring cache for remote-jobs feed responses.
// Key format: jobs:<search>|<category>
type JobsCache struct {
	client *redis.Client
}

// NewJobsCache creates a JobsCache wrapping the given Redis client.
func NewJobsCache(client *redis.Client) *JobsCache {
	return &JobsCache{client: client}
}

// Get returns the cached postings for key, and whether the key was present.
func (c *JobsCache) Get(ctx context.Context, key string) ([]domain.JobPosting, bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("jobs cache get: %w", err)
	}

	var postings []domain.JobPosting
	if err := json.Unmarshal(raw, &postings); err != nil {
		return nil, false, fmt.Errorf("jobs cache decode: %w", err)
	}
	return postings, true, nil
}

// Set stores the postings under key, expiring after jobsCacheTTL.
func (c *JobsCache) Set(ctx context.Context, key string, postings []domain.JobPosting) error {
	raw, err := json.Marshal(postings)
	if err != nil {
		return fmt.Errorf("jobs cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(key), raw, jobsCacheTTL).Err()
}

func (c *JobsCache) key(key string) string {
	return "jobs:" + key
}
