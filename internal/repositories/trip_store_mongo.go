package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	tm "tripwise/internal/models/trip_models"
)

const kvCollection = "kv_store"

// mongoTripStore stores each key as {_id: key, value: <document>} so the user
// index can be appended with a single-document $addToSet.
type mongoTripStore struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewMongoTripStore(db *mongo.Database) TripStore {
	return &mongoTripStore{db: db, coll: db.Collection(kvCollection)}
}

func (r *mongoTripStore) Put(ctx context.Context, key string, value []byte) error {
	var doc bson.D
	if err := bson.UnmarshalExtJSON(wrapValue(value), false, &doc); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	replacement := append(bson.D{{Key: "_id", Value: key}}, doc...)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": key}, replacement, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoTripStore) Get(ctx context.Context, key string) ([]byte, error) {
	var raw bson.Raw
	err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return unwrapValue(raw)
}

func (r *mongoTripStore) GetMany(ctx context.Context, keys []string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	byKey := make(map[string][]byte, len(keys))
	for cursor.Next(ctx) {
		id, ok := cursor.Current.Lookup("_id").StringValueOK()
		if !ok {
			continue
		}
		v, err := unwrapValue(cursor.Current)
		if err != nil {
			return nil, err
		}
		byKey[id] = v
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	for i, k := range keys {
		out[i] = byKey[k]
	}
	return out, nil
}

// AppendToIndex is one atomic upsert; $addToSet keeps it idempotent and
// appends new keys at the end of the list.
func (r *mongoTripStore) AppendToIndex(ctx context.Context, ownerID, key string) error {
	update := bson.M{
		"$setOnInsert": bson.M{"value.id": ownerID},
		"$addToSet":    bson.M{"value.trips": key},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": tm.UserKey(ownerID)}, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoTripStore) Index(ctx context.Context, ownerID string) ([]string, error) {
	raw, err := r.Get(ctx, tm.UserKey(ownerID))
	if err != nil {
		return nil, err
	}
	return tripsFromUserRecord(raw)
}

func (r *mongoTripStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	filter := bson.M{"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	keys := make([]string, 0)
	for cursor.Next(ctx) {
		if id, ok := cursor.Current.Lookup("_id").StringValueOK(); ok {
			keys = append(keys, id)
		}
	}
	return keys, cursor.Err()
}

func (r *mongoTripStore) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func wrapValue(value []byte) []byte {
	out := make([]byte, 0, len(value)+10)
	out = append(out, `{"value":`...)
	out = append(out, value...)
	return append(out, '}')
}

func unwrapValue(raw bson.Raw) ([]byte, error) {
	ext, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(ext, &doc); err != nil {
		return nil, err
	}
	return []byte(doc.Value), nil
}
