package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-level/level"
	"github.com/beka-birhanu/vinom-level/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LevelRepo stores level snapshots, one document per level.
type LevelRepo struct {
	collection *mongo.Collection
}

var _ i.LevelRepo = &LevelRepo{}

// NewLevelRepo creates a new LevelRepo with the given MongoDB client, database name, and collection name.
func NewLevelRepo(client *mongo.Client, dbName, collectionName string) *LevelRepo {
	return &LevelRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes indexes levels by owner.
func (l *LevelRepo) EnsureIndexes(ctx context.Context) error {
	_, err := l.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerID", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts or replaces the snapshot.
func (l *LevelRepo) Save(ctx context.Context, snapshot *level.Snapshot) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := l.collection.ReplaceOne(ctx, bson.M{"_id": snapshot.ID}, snapshot, opts); err != nil {
		return fmt.Errorf("saving level %s: %w", snapshot.ID, err)
	}
	return nil
}

// ByID retrieves a snapshot by level ID.
func (l *LevelRepo) ByID(ctx context.Context, id uuid.UUID) (*level.Snapshot, error) {
	var snapshot level.Snapshot
	if err := l.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&snapshot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrLevelNotFound
		}
		return nil, fmt.Errorf("loading level %s: %w", id, err)
	}
	return &snapshot, nil
}
