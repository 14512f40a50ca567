package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RMahshie/voltadash/internal/processing"
	"github.com/redis/go-redis/v9"
)

const (
	PeakSessionTTL = 60 * time.Minute
	peakPrefix     = "peaks:"
)

var _ processing.PeakStore = (*RedisPeakStore)(nil)

// RedisPeakStore implements processing.PeakStore using a Redis hash per session
type RedisPeakStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPeakStore connects to redisURL and verifies the connection
func NewRedisPeakStore(ctx context.Context, redisURL string) (*RedisPeakStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisPeakStore{client: client, ttl: PeakSessionTTL}, nil
}

// key generates a Redis key for the given session ID
func (r *RedisPeakStore) key(sessionID string) string {
	return peakPrefix + sessionID
}

// Load returns the stored peak for a label
func (r *RedisPeakStore) Load(ctx context.Context, sessionID string, c processing.Concentration) (float64, bool, error) {
	v, err := r.client.HGet(ctx, r.key(sessionID), string(c)).Float64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get peak current: %w", err)
	}
	return v, true, nil
}

// StoreIfAbsent sets the peak unless another writer got there first, and
// returns the value that is stored. Each write extends the session TTL.
func (r *RedisPeakStore) StoreIfAbsent(ctx context.Context, sessionID string, c processing.Concentration, value float64) (float64, error) {
	key := r.key(sessionID)

	var get *redis.StringCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, string(c), value)
		get = pipe.HGet(ctx, key, string(c))
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to store peak current: %w", err)
	}

	stored, err := get.Float64()
	if err != nil {
		return 0, fmt.Errorf("failed to read stored peak current: %w", err)
	}
	return stored, nil
}

// Reset removes every peak stored for the session
func (r *RedisPeakStore) Reset(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (r *RedisPeakStore) Close() error {
	return r.client.Close()
}
