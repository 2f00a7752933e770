// Package levelapi exposes level generation, collection and leaderboards over HTTP.
package levelapi

import (
	"time"

	"github.com/beka-birhanu/vinom-level/level"
	"github.com/beka-birhanu/vinom-level/maze"
	"github.com/google/uuid"
)

// GenerateRequest asks for a new level. Every field is optional; unset fields come from the
// named preset, or from the server defaults when no preset is given.
type GenerateRequest struct {
	Preset    string `json:"preset"`
	Rows      *int   `json:"rows"`
	Cols      *int   `json:"cols"`
	Seed      *int64 `json:"seed"`
	Coins     *int   `json:"coins"`
	Treasures *int   `json:"treasures"`
}

// apply overlays the request on cfg.
func (r GenerateRequest) apply(cfg level.Config) level.Config {
	if r.Rows != nil {
		cfg.Rows = *r.Rows
	}
	if r.Cols != nil {
		cfg.Cols = *r.Cols
	}
	if r.Seed != nil {
		cfg = cfg.WithSeed(*r.Seed)
	}
	if r.Coins != nil {
		cfg.Coins.Count = *r.Coins
	}
	if r.Treasures != nil {
		cfg.Treasures.Count = *r.Treasures
	}
	return cfg
}

// LevelResponse describes a level without its wall geometry.
type LevelResponse struct {
	ID           uuid.UUID           `json:"id"`
	OwnerID      uuid.UUID           `json:"owner_id"`
	Seed         int64               `json:"seed"`
	Rows         int                 `json:"rows"`
	Cols         int                 `json:"cols"`
	CellSize     float64             `json:"cell_size"`
	Grid         [][]maze.Cell       `json:"grid"`
	Entrance     maze.CellPosition   `json:"entrance"`
	Exit         maze.CellPosition   `json:"exit"`
	PlayerSpawn  maze.Vec3           `json:"player_spawn"`
	Collectibles []level.Collectible `json:"collectibles"`
	Remaining    int                 `json:"remaining"`
	Completed    bool                `json:"completed"`
	CreatedAt    time.Time           `json:"created_at"`
}

func newLevelResponse(l *level.Level) LevelResponse {
	return LevelResponse{
		ID:           l.ID,
		OwnerID:      l.OwnerID,
		Seed:         l.Seed,
		Rows:         l.Maze.Rows,
		Cols:         l.Maze.Cols,
		CellSize:     l.Config.CellSize,
		Grid:         l.Maze.Grid,
		Entrance:     l.Entrance,
		Exit:         l.Exit,
		PlayerSpawn:  l.PlayerSpawn,
		Collectibles: l.Collectibles,
		Remaining:    l.Remaining(),
		Completed:    l.Completed(),
		CreatedAt:    l.CreatedAt,
	}
}

// SegmentsResponse lists the wall boxes a renderer instantiates.
type SegmentsResponse struct {
	ID       uuid.UUID      `json:"id"`
	Width    float64        `json:"width"`
	Depth    float64        `json:"depth"`
	Center   maze.Vec3      `json:"center"`
	Segments []maze.Segment `json:"segments"`
}

// CollectResponse reports a picked-up collectible.
type CollectResponse struct {
	Collectible level.Collectible `json:"collectible"`
}
