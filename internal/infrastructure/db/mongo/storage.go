package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const storageCollection = "local_storage"

// Storage keeps one document per item key.
type Storage struct {
	coll *mongo.Collection
}

func NewStorage(db *mongo.Database) *Storage {
	return &Storage{coll: db.Collection(storageCollection)}
}

type storageItem struct {
	Key       string `bson:"_id"`
	Value     string `bson:"value"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var item storageItem
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("find item %s: %w", key, err)
	}
	return item.Value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	doc := storageItem{Key: key, Value: value, UpdatedAt: time.Now().Unix()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert item %s: %w", key, err)
	}
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete item %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}
