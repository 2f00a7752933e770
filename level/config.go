package level

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-level/maze"
)

var ErrInvalidBatch = errors.New("invalid collectible batch")

// Animation holds the presentation parameters a renderer applies to a collectible.
type Animation struct {
	RotationSpeed float64 `bson:"rotationSpeed" json:"rotation_speed" yaml:"rotation_speed"` // degrees per second around Y
	BobSpeed      float64 `bson:"bobSpeed" json:"bob_speed" yaml:"bob_speed"`                // bob cycles per second
	BobHeight     float64 `bson:"bobHeight" json:"bob_height" yaml:"bob_height"`             // bob amplitude
}

// Batch describes one kind of collectible to scatter over the maze.
type Batch struct {
	Count     int       `bson:"count" json:"count" yaml:"count"`             // desired number of items
	Points    int       `bson:"points" json:"points" yaml:"points"`          // score per item
	Height    float64   `bson:"height" json:"height" yaml:"height"`          // spawn height above ground
	Clearance float64   `bson:"clearance" json:"clearance" yaml:"clearance"` // minimum distance to the cell's walls
	Animation Animation `bson:"animation" json:"animation" yaml:"animation"`
}

func (b Batch) validate(name string) error {
	if b.Count < 0 || b.Points < 0 || b.Clearance < 0 {
		return fmt.Errorf("%w: %s count %d, points %d, clearance %.2f must not be negative", ErrInvalidBatch, name, b.Count, b.Points, b.Clearance)
	}
	return nil
}

// Config describes a level to generate.
type Config struct {
	Rows          int     `bson:"rows" json:"rows" yaml:"rows"`
	Cols          int     `bson:"cols" json:"cols" yaml:"cols"`
	CellSize      float64 `bson:"cellSize" json:"cell_size" yaml:"cell_size"`
	WallHeight    float64 `bson:"wallHeight" json:"wall_height" yaml:"wall_height"`
	WallThickness float64 `bson:"wallThickness" json:"wall_thickness" yaml:"wall_thickness"`
	PlayerHeight  float64 `bson:"playerHeight" json:"player_height" yaml:"player_height"`
	Coins         Batch   `bson:"coins" json:"coins" yaml:"coins"`
	Treasures     Batch   `bson:"treasures" json:"treasures" yaml:"treasures"`
	Seed          *int64  `bson:"seed,omitempty" json:"seed,omitempty" yaml:"seed,omitempty"` // nil picks a random seed
}

// DefaultConfig returns a 12x12 level with 10 coins and 3 treasures.
func DefaultConfig() Config {
	return Config{
		Rows:          12,
		Cols:          12,
		CellSize:      4,
		WallHeight:    2,
		WallThickness: 0.5,
		PlayerHeight:  2,
		Coins: Batch{
			Count:     10,
			Points:    10,
			Height:    1,
			Clearance: 0.35,
			Animation: Animation{RotationSpeed: 100, BobSpeed: 2, BobHeight: 0.3},
		},
		Treasures: Batch{
			Count:     3,
			Points:    50,
			Height:    1.5,
			Clearance: 0.45,
			Animation: Animation{RotationSpeed: 80, BobSpeed: 1.5, BobHeight: 0.4},
		},
	}
}

// Layout returns the geometry parameters of the level.
func (c Config) Layout() maze.Layout {
	return maze.Layout{Spacing: c.CellSize, WallHeight: c.WallHeight, WallThickness: c.WallThickness}
}

// WithSeed returns a copy of c pinned to seed.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = &seed
	return c
}

// Validate rejects configurations that cannot be generated.
// Rows and columns below maze.MinDimension are rejected, never clamped.
func (c Config) Validate() error {
	if c.Rows < maze.MinDimension || c.Cols < maze.MinDimension {
		return fmt.Errorf("%w: %dx%d, minimum is %dx%d", maze.ErrInvalidDimension, c.Rows, c.Cols, maze.MinDimension, maze.MinDimension)
	}
	if err := c.Layout().Validate(); err != nil {
		return err
	}
	if err := c.Coins.validate("coins"); err != nil {
		return err
	}
	return c.Treasures.validate("treasures")
}
