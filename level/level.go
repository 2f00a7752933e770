/*
Package level assembles a playable collectible maze.

Generate runs the whole pipeline once: a perfect maze is carved, the entrance and exit are opened
and reserved together with the player's start cell, wall segments are emitted, and coins then
treasures are scattered over the remaining free cells. Placement is best-effort: when the maze
runs out of free cells the level keeps what was placed and a warning is logged.

A Level is safe for concurrent Collect calls; everything else on it is read-only after Generate.
*/
package level

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-level/interfaces/general"
	"github.com/beka-birhanu/vinom-level/maze"
	"github.com/beka-birhanu/vinom-level/spawn"
	"github.com/google/uuid"
)

var (
	ErrCollectibleNotFound = errors.New("collectible not found")
	ErrAlreadyCollected    = errors.New("collectible already collected")
)

// Level is a generated maze with its geometry and collectibles.
type Level struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Seed         int64
	Config       Config
	Maze         *maze.Maze
	Segments     []maze.Segment
	Entrance     maze.CellPosition
	Exit         maze.CellPosition
	PlayerCell   maze.CellPosition
	PlayerSpawn  maze.Vec3
	Collectibles []Collectible
	CreatedAt    time.Time

	mu sync.Mutex
}

// Generate builds a new level from cfg. logger may be nil.
func Generate(cfg Config, logger general.Logger) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	cfg.Seed = &seed
	rng := rand.New(rand.NewSource(seed))

	m, err := maze.New(cfg.Rows, cfg.Cols, maze.WithRand(rng))
	if err != nil {
		return nil, err
	}
	entrance, exit := m.CarveEntranceAndExit()

	layout := cfg.Layout()
	pool, err := spawn.NewPool(m.Rows, m.Cols, layout.Locator(m), spawn.WithRand(rng))
	if err != nil {
		return nil, err
	}
	pool.Reserve(entrance)
	pool.Reserve(exit)

	// The player always starts in the entrance cell.
	playerCell := entrance
	playerSpawn := layout.CellCenter(m, playerCell)
	playerSpawn.Y = cfg.PlayerHeight
	pool.Reserve(playerCell)

	lvl := &Level{
		ID:          uuid.New(),
		Seed:        seed,
		Config:      cfg,
		Maze:        m,
		Segments:    layout.Emit(m),
		Entrance:    entrance,
		Exit:        exit,
		PlayerCell:  playerCell,
		PlayerSpawn: playerSpawn,
		CreatedAt:   time.Now().UTC(),
	}

	pool.Rebuild()
	lvl.Collectibles = append(lvl.Collectibles, placeBatch(pool, Coin, cfg.Coins, logger)...)
	lvl.Collectibles = append(lvl.Collectibles, placeBatch(pool, Treasure, cfg.Treasures, logger)...)

	if logger != nil {
		logger.Info(fmt.Sprintf("generated level %s (%dx%d, seed %d) with %d coins and %d treasures",
			lvl.ID, m.Rows, m.Cols, seed, lvl.Count(Coin), lvl.Count(Treasure)))
	}
	return lvl, nil
}

// placeBatch places one kind of collectible, keeping whatever fits.
func placeBatch(pool *spawn.Pool, kind Kind, batch Batch, logger general.Logger) []Collectible {
	placements, err := pool.PlaceBatch(batch.Count, batch.Clearance, batch.Height)
	if err != nil && logger != nil {
		logger.Warning(fmt.Sprintf("could not place every %s: %s", kind, err))
	}

	items := make([]Collectible, 0, len(placements))
	for _, p := range placements {
		items = append(items, Collectible{
			ID:        uuid.New(),
			Kind:      kind,
			Points:    batch.Points,
			Cell:      p.Cell,
			Position:  p.Position,
			Animation: batch.Animation,
		})
	}
	return items
}

// Count returns how many collectibles of kind were placed.
func (l *Level) Count(kind Kind) int {
	n := 0
	for _, c := range l.Collectibles {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Collect marks the collectible with the given ID as picked up and credits sink.
// Each collectible pays out once.
func (l *Level) Collect(id uuid.UUID, sink ScoreSink) (Collectible, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.Collectibles {
		c := &l.Collectibles[i]
		if c.ID != id {
			continue
		}
		if c.Collected {
			return *c, ErrAlreadyCollected
		}
		c.Collected = true
		if sink != nil {
			sink.AddPoints(c.Points, c.Kind == Treasure)
		}
		return *c, nil
	}
	return Collectible{}, fmt.Errorf("%w: %s", ErrCollectibleNotFound, id)
}

// Release puts a collected item back so it can be collected again.
// It undoes a Collect whose payout could not be recorded.
func (l *Level) Release(id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.Collectibles {
		if l.Collectibles[i].ID == id {
			l.Collectibles[i].Collected = false
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrCollectibleNotFound, id)
}

// Remaining returns the number of collectibles not yet picked up.
func (l *Level) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.Collectibles {
		if !c.Collected {
			n++
		}
	}
	return n
}

// Completed reports whether every collectible has been picked up.
func (l *Level) Completed() bool {
	return l.Remaining() == 0
}
