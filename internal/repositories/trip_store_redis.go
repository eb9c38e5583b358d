package repositories

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
	tm "tripwise/internal/models/trip_models"
	"tripwise/pkg/utils"
)

// maxWatchAttempts bounds the optimistic WATCH/MULTI loop of AppendToIndex.
const maxWatchAttempts = 16

type redisTripStore struct {
	client redis.UniversalClient
}

func NewRedisTripStore(client redis.UniversalClient) TripStore {
	return &redisTripStore{client: client}
}

func (r *redisTripStore) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *redisTripStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return v, err
}

func (r *redisTripStore) GetMany(ctx context.Context, keys []string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if s, ok := v.(string); ok {
			out[i] = []byte(s)
		}
	}
	return out, nil
}

// AppendToIndex runs the read-modify-write of the user record under WATCH.
// A concurrent writer aborts the EXEC and the loop re-reads; because the
// append is idempotent a re-run never duplicates a key.
func (r *redisTripStore) AppendToIndex(ctx context.Context, ownerID, key string) error {
	userKey := tm.UserKey(ownerID)

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, userKey).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		next, changed, err := appendTripToUserRecord(raw, ownerID, key)
		if err != nil || !changed {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, userKey, next, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxWatchAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, userKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return utils.ErrIndexContention
}

func (r *redisTripStore) Index(ctx context.Context, ownerID string) ([]string, error) {
	raw, err := r.Get(ctx, tm.UserKey(ownerID))
	if err != nil {
		return nil, err
	}
	return tripsFromUserRecord(raw)
}

func (r *redisTripStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	iter := r.client.Scan(ctx, 0, escapeGlob(prefix)+"*", 200).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	// SCAN may return a key more than once
	sort.Strings(keys)
	return slices.Compact(keys), nil
}

func (r *redisTripStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}

