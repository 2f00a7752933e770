package i

import (
	"context"

	"github.com/beka-birhanu/vinom-level/level"
	"github.com/google/uuid"
)

// Standing is one player's position on a leaderboard.
type Standing struct {
	PlayerID uuid.UUID `json:"player_id"`
	Score    int       `json:"score"`
}

// Leaderboard ranks players by collected points, one board per collectible kind.
type Leaderboard interface {
	Add(ctx context.Context, kind level.Kind, playerID uuid.UUID, points int) error
	Top(ctx context.Context, kind level.Kind, n int64) ([]Standing, error)
}
