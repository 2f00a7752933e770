package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-level/identity"
	"github.com/beka-birhanu/vinom-level/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepo handles the persistence of player accounts.
type PlayerRepo struct {
	collection *mongo.Collection
}

var _ i.PlayerRepo = &PlayerRepo{}

// NewPlayerRepo creates a new PlayerRepo with the given MongoDB client, database name, and collection name.
func NewPlayerRepo(client *mongo.Client, dbName, collectionName string) *PlayerRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &PlayerRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the unique username index.
func (p *PlayerRepo) EnsureIndexes(ctx context.Context) error {
	_, err := p.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates a player in the repository.
// If the player already exists, it updates the existing record.
// If the player does not exist, it adds a new record.
func (p *PlayerRepo) Save(player *identity.Player) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": player.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     player.Username,
			"passwordHash": player.PasswordHash,
			"coins":        player.Coins,
			"treasures":    player.Treasures,
			"updatedAt":    time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := p.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return i.ErrUsernameTaken
		}
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a player by their ID.
// Returns an error if the player is not found or if an unexpected error occurs.
func (p *PlayerRepo) ByID(id uuid.UUID) (*identity.Player, error) {
	return p.findOne(bson.M{"_id": id})
}

// ByUsername retrieves a player by their username.
// Returns an error if the player is not found or if an unexpected error occurs.
func (p *PlayerRepo) ByUsername(username string) (*identity.Player, error) {
	return p.findOne(bson.M{"username": username})
}

func (p *PlayerRepo) findOne(filter bson.M) (*identity.Player, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var player identity.Player
	if err := p.collection.FindOne(ctx, filter).Decode(&player); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlayerNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &player, nil
}

// AddScore atomically increments the player's totals.
func (p *PlayerRepo) AddScore(id uuid.UUID, coins, treasures int) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"coins": coins, "treasures": treasures},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := p.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if res.MatchedCount == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
