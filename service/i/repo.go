package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-level/identity"
	"github.com/beka-birhanu/vinom-level/level"
	"github.com/google/uuid"
)

var (
	// ErrLevelNotFound is returned by LevelRepo.ByID for unknown IDs.
	ErrLevelNotFound = errors.New("level not found")
	// ErrUsernameTaken is returned by PlayerRepo.Save when another player has the username.
	ErrUsernameTaken = errors.New("username already taken")
)

// PlayerRepo defines the interface for player persistence operations.
type PlayerRepo interface {
	// Save inserts or updates a player in the repository.
	// If the player already exists, it updates the record. Otherwise, it creates a new one.
	Save(player *identity.Player) error

	// ByID retrieves a player by their unique ID.
	// Returns an error if the player is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*identity.Player, error)

	// ByUsername retrieves a player by their username.
	// Returns an error if the player is not found or in case of an unexpected error.
	ByUsername(username string) (*identity.Player, error)

	// AddScore increments the player's coin and treasure totals.
	AddScore(id uuid.UUID, coins, treasures int) error
}

// LevelRepo stores generated levels.
type LevelRepo interface {
	// Save inserts or replaces a level snapshot.
	Save(ctx context.Context, snapshot *level.Snapshot) error

	// ByID retrieves a level snapshot by its ID, or ErrLevelNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*level.Snapshot, error)
}
