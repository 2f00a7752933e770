package i

import (
	"context"

	"github.com/beka-birhanu/vinom-level/level"
	"github.com/google/uuid"
)

// LevelManager generates, serves and settles player levels.
type LevelManager interface {
	// Config resolves a preset name to a level configuration; empty means the defaults.
	Config(name string) (level.Config, error)

	// Generate builds and stores a level owned by ownerID.
	Generate(ctx context.Context, ownerID uuid.UUID, cfg level.Config) (*level.Level, error)

	// Level loads a stored level.
	Level(ctx context.Context, id uuid.UUID) (*level.Level, error)

	// Collect picks up a collectible on behalf of the level's owner and credits the points.
	Collect(ctx context.Context, playerID, levelID, collectibleID uuid.UUID) (level.Collectible, error)

	// Leaderboard returns the best players for a collectible kind.
	Leaderboard(ctx context.Context, kind level.Kind, n int64) ([]Standing, error)
}
