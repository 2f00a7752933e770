package level

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-level/maze"
	"github.com/google/uuid"
)

// Snapshot is the storable form of a Level. Segments are not stored; they are re-emitted from
// the grid on Restore.
type Snapshot struct {
	ID           uuid.UUID         `bson:"_id" json:"id" yaml:"id"`
	OwnerID      uuid.UUID         `bson:"ownerID" json:"owner_id" yaml:"owner_id"`
	Seed         int64             `bson:"seed" json:"seed" yaml:"seed"`
	Config       Config            `bson:"config" json:"config" yaml:"config"`
	Grid         [][]maze.Cell     `bson:"grid" json:"grid" yaml:"grid"`
	Entrance     maze.CellPosition `bson:"entrance" json:"entrance" yaml:"entrance"`
	Exit         maze.CellPosition `bson:"exit" json:"exit" yaml:"exit"`
	PlayerCell   maze.CellPosition `bson:"playerCell" json:"player_cell" yaml:"player_cell"`
	PlayerSpawn  maze.Vec3         `bson:"playerSpawn" json:"player_spawn" yaml:"player_spawn"`
	Collectibles []Collectible     `bson:"collectibles" json:"collectibles" yaml:"collectibles"`
	CreatedAt    time.Time         `bson:"createdAt" json:"created_at" yaml:"created_at"`
}

// Snapshot copies the level into its storable form.
func (l *Level) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	grid := make([][]maze.Cell, len(l.Maze.Grid))
	for i, row := range l.Maze.Grid {
		grid[i] = append([]maze.Cell(nil), row...)
	}

	return Snapshot{
		ID:           l.ID,
		OwnerID:      l.OwnerID,
		Seed:         l.Seed,
		Config:       l.Config,
		Grid:         grid,
		Entrance:     l.Entrance,
		Exit:         l.Exit,
		PlayerCell:   l.PlayerCell,
		PlayerSpawn:  l.PlayerSpawn,
		Collectibles: append([]Collectible(nil), l.Collectibles...),
		CreatedAt:    l.CreatedAt,
	}
}

// Restore rebuilds a Level from a snapshot.
func Restore(s Snapshot) (*Level, error) {
	m, err := maze.FromGrid(s.Grid)
	if err != nil {
		return nil, fmt.Errorf("restoring level %s: %w", s.ID, err)
	}
	layout := s.Config.Layout()
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("restoring level %s: %w", s.ID, err)
	}

	return &Level{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Seed:         s.Seed,
		Config:       s.Config,
		Maze:         m,
		Segments:     layout.Emit(m),
		Entrance:     s.Entrance,
		Exit:         s.Exit,
		PlayerCell:   s.PlayerCell,
		PlayerSpawn:  s.PlayerSpawn,
		Collectibles: append([]Collectible(nil), s.Collectibles...),
		CreatedAt:    s.CreatedAt,
	}, nil
}
