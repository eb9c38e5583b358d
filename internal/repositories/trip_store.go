package repositories

import "context"

// TripStore is a key/value store of JSON documents with an owner index kept
// on the `user:{ownerId}` record. Absent keys read as nil values.
//
// AppendToIndex must be atomic against concurrent appends for the same
// owner and idempotent: appending a key that is already indexed is a no-op.
type TripStore interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	// GetMany preserves input order; absent keys yield nil entries.
	GetMany(ctx context.Context, keys []string) ([][]byte, error)
	AppendToIndex(ctx context.Context, ownerID, key string) error
	Index(ctx context.Context, ownerID string) ([]string, error)
	// Keys lists stored keys that start with prefix, in lexical order.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
}
