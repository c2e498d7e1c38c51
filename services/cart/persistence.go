package cart

import (
	"context"
	"encoding/json"
	"time"

	"homigo/models"

	"github.com/go-redis/redis/v8"
)

const selectionKeyPrefix = "cart_selection:"

// SelectionStore persists a session's cart selection across process restarts.
// Only the selection survives; snapshots are recomputed on demand, so a
// restored session comes back with its toggles intact and an idle store.
type SelectionStore interface {
	Load(ctx context.Context, sessionID string) (*models.CartSelection, error)
	Save(ctx context.Context, sessionID string, sel models.CartSelection, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSelectionStore keeps selections in Redis under a per-session key that
// expires on the same TTL as the in-memory store.
type RedisSelectionStore struct {
	Client *redis.Client
}

func NewRedisSelectionStore(client *redis.Client) *RedisSelectionStore {
	return &RedisSelectionStore{Client: client}
}

// Load returns the persisted selection, or nil when the session has none.
func (r *RedisSelectionStore) Load(ctx context.Context, sessionID string) (*models.CartSelection, error) {
	data, err := r.Client.Get(ctx, selectionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sel models.CartSelection
	if err := json.Unmarshal([]byte(data), &sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

func (r *RedisSelectionStore) Save(ctx context.Context, sessionID string, sel models.CartSelection, ttl time.Duration) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, selectionKeyPrefix+sessionID, data, ttl).Err()
}

func (r *RedisSelectionStore) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, selectionKeyPrefix+sessionID).Err()
}
