// internal/repositories/trip_store_postgres.go
package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripwise/internal/models/db_models"
	tm "tripwise/internal/models/trip_models"
)

type postgresTripStore struct {
	db *gorm.DB
}

// NewPostgresTripStore migrates the kv_store table and returns a store on it.
func NewPostgresTripStore(db *gorm.DB) (TripStore, error) {
	if err := db.AutoMigrate(&dbm.KVEntry{}); err != nil {
		return nil, err
	}
	return &postgresTripStore{db: db}, nil
}

func (r *postgresTripStore) Put(ctx context.Context, key string, value []byte) error {
	entry := dbm.KVEntry{Key: key, Value: datatypes.JSON(value)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (r *postgresTripStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry dbm.KVEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (r *postgresTripStore) GetMany(ctx context.Context, keys []string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	var entries []dbm.KVEntry
	if err := r.db.WithContext(ctx).Where("key IN ?", keys).Find(&entries).Error; err != nil {
		return nil, err
	}

	byKey := make(map[string][]byte, len(entries))
	for _, e := range entries {
		byKey[e.Key] = []byte(e.Value)
	}
	for i, k := range keys {
		out[i] = byKey[k]
	}
	return out, nil
}

// AppendToIndex locks the owner's row for the duration of the read-modify-write
// so concurrent appends serialize instead of overwriting each other.
func (r *postgresTripStore) AppendToIndex(ctx context.Context, ownerID, key string) error {
	userKey := tm.UserKey(ownerID)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		empty, _, err := appendTripToUserRecord(nil, ownerID, key)
		if err != nil {
			return err
		}
		// First writer creates the record; everyone else falls through to the lock.
		created := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dbm.KVEntry{Key: userKey, Value: datatypes.JSON(empty)})
		if created.Error != nil {
			return created.Error
		}
		if created.RowsAffected == 1 {
			return nil
		}

		var entry dbm.KVEntry
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("key = ?", userKey).
			First(&entry).Error; err != nil {
			return err
		}

		next, changed, err := appendTripToUserRecord(entry.Value, ownerID, key)
		if err != nil || !changed {
			return err
		}
		return tx.Model(&dbm.KVEntry{}).
			Where("key = ?", userKey).
			Updates(map[string]interface{}{
				"value":      datatypes.JSON(next),
				"updated_at": time.Now().Unix(),
			}).Error
	})
}

func (r *postgresTripStore) Index(ctx context.Context, ownerID string) ([]string, error) {
	raw, err := r.Get(ctx, tm.UserKey(ownerID))
	if err != nil {
		return nil, err
	}
	return tripsFromUserRecord(raw)
}

func (r *postgresTripStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).
		Model(&dbm.KVEntry{}).
		Where("key LIKE ?", escapeLike(prefix)+"%").
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *postgresTripStore) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
