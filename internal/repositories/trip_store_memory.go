package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	tm "tripwise/internal/models/trip_models"
)

// memoryTripStore keeps everything in process. Used for local runs and tests.
type memoryTripStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryTripStore() TripStore {
	return &memoryTripStore{data: make(map[string][]byte)}
}

func (s *memoryTripStore) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *memoryTripStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyOf(key), nil
}

func (s *memoryTripStore) GetMany(ctx context.Context, keys []string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = s.copyOf(k)
	}
	return out, nil
}

func (s *memoryTripStore) AppendToIndex(ctx context.Context, ownerID, key string) error {
	userKey := tm.UserKey(ownerID)

	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed, err := appendTripToUserRecord(s.data[userKey], ownerID, key)
	if err != nil || !changed {
		return err
	}
	s.data[userKey] = next
	return nil
}

func (s *memoryTripStore) Index(ctx context.Context, ownerID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tripsFromUserRecord(s.data[tm.UserKey(ownerID)])
}

func (s *memoryTripStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0)
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *memoryTripStore) Ping(ctx context.Context) error {
	return nil
}

func (s *memoryTripStore) copyOf(key string) []byte {
	v, ok := s.data[key]
	if !ok {
		return nil
	}
	return append([]byte(nil), v...)
}
