package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// The snapshot lives under a single versioned key. The version suffix has
// been bumped on every schema change; the superseded keys stay listed here
// so startup can purge the orphans instead of letting them accumulate.
const snapshotKey = "leavedesk:requests:v3"

var deprecatedSnapshotKeys = []string{
	"leavedesk:requests:v1",
	"leavedesk:requests:v2",
}

var (
	// ErrSnapshotNotFound means the current key holds no value yet.
	ErrSnapshotNotFound = errors.New("request snapshot not found")
	// ErrSnapshotCorrupt means the stored value failed to decode. The store
	// treats it exactly like an absent snapshot and reseeds.
	ErrSnapshotCorrupt = errors.New("request snapshot corrupt")
)

type Repository interface {
	Load(ctx context.Context) ([]LeaveRequest, error)
	Save(ctx context.Context, requests []LeaveRequest) error
	PurgeDeprecated(ctx context.Context) error
}

type redisRepository struct {
	client *redis.Client
	key    string
}

func NewRepository(client *redis.Client) Repository {
	return &redisRepository{client: client, key: snapshotKey}
}

func (r *redisRepository) Load(ctx context.Context) ([]LeaveRequest, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load request snapshot: %w", err)
	}

	var requests []LeaveRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	return requests, nil
}

func (r *redisRepository) Save(ctx context.Context, requests []LeaveRequest) error {
	raw, err := json.Marshal(requests)
	if err != nil {
		return fmt.Errorf("encode request snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save request snapshot: %w", err)
	}
	return nil
}

func (r *redisRepository) PurgeDeprecated(ctx context.Context) error {
	if err := r.client.Del(ctx, deprecatedSnapshotKeys...).Err(); err != nil {
		return fmt.Errorf("purge deprecated snapshot keys: %w", err)
	}
	return nil
}
