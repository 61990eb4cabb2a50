package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockTTL = 10 * time.Minute

// JobLock coordinates scheduled jobs across replicas. Before running a job,
// each replica tries to claim a per-job, per-day key; only the claimant runs.
// The TTL bounds how long a crashed claimant can block a rerun.
// Key format: joblock:<job>:<yyyy-mm-dd>
type JobLock struct {
	client *redis.Client
}

// NewJobLock creates a JobLock wrapping the given Redis client.
func NewJobLock(client *redis.Client) *JobLock {
	return &JobLock{client: client}
}

// Acquire attempts to claim today's run of the named job. It returns true
// when this process holds the claim, false when another replica got there
// first.
func (l *JobLock) Acquire(ctx context.Context, job string, now time.Time) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(job, now), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire job lock: %w", err)
	}
	return ok, nil
}

func (l *JobLock) key(job string, now time.Time) string {
	return fmt.Sprintf("joblock:%s:%s", job, now.UTC().Format("2006-01-02"))
}
