package level

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-level/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos, warnings, errors []string
}

func (r *recordingLogger) Info(msg string)    { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Warning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recordingLogger) Error(msg string)   { r.errors = append(r.errors, msg) }

func TestGenerateDefaultLevel(t *testing.T) {
	logger := &recordingLogger{}
	lvl, err := Generate(DefaultConfig().WithSeed(2024), logger)
	require.NoError(t, err)

	assert.Equal(t, int64(2024), lvl.Seed)
	assert.Equal(t, 12*12-1, lvl.Maze.OpenPassages())
	assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, lvl.Entrance)
	assert.Equal(t, maze.CellPosition{Row: 11, Col: 11}, lvl.Exit)
	assert.False(t, lvl.Maze.Grid[0][0].WestWall)
	assert.False(t, lvl.Maze.Grid[11][11].EastWall)

	assert.Equal(t, 10, lvl.Count(Coin))
	assert.Equal(t, 3, lvl.Count(Treasure))
	assert.Empty(t, logger.warnings)
	assert.Len(t, logger.infos, 1)

	// Player starts at the entrance cell centre, raised to player height.
	assert.Equal(t, lvl.Entrance, lvl.PlayerCell)
	assert.Equal(t, maze.Vec3{X: -22, Y: 2, Z: -22}, lvl.PlayerSpawn)

	_, err = lvl.Maze.Path(lvl.Entrance, lvl.Exit)
	assert.NoError(t, err)
}

func TestGenerateKeepsItemsOffReservedCells(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		lvl, err := Generate(DefaultConfig().WithSeed(seed), nil)
		require.NoError(t, err)

		cells := map[maze.CellPosition]bool{}
		layout := lvl.Config.Layout()
		for _, c := range lvl.Collectibles {
			assert.NotEqual(t, lvl.Entrance, c.Cell)
			assert.NotEqual(t, lvl.Exit, c.Cell)
			assert.NotEqual(t, lvl.PlayerCell, c.Cell)
			assert.False(t, cells[c.Cell], "two collectibles share cell %v", c.Cell)
			cells[c.Cell] = true

			batch := lvl.Config.Coins
			if c.Kind == Treasure {
				batch = lvl.Config.Treasures
			}
			center := layout.CellCenter(lvl.Maze, c.Cell)
			limit := layout.CellHalf() - batch.Clearance
			assert.LessOrEqual(t, math.Abs(c.Position.X-center.X), limit)
			assert.LessOrEqual(t, math.Abs(c.Position.Z-center.Z), limit)
			assert.Equal(t, batch.Height, c.Position.Y)
			assert.Equal(t, batch.Points, c.Points)
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a, err := Generate(DefaultConfig().WithSeed(77), nil)
	require.NoError(t, err)
	b, err := Generate(DefaultConfig().WithSeed(77), nil)
	require.NoError(t, err)

	assert.Equal(t, a.Maze.Grid, b.Maze.Grid)
	require.Len(t, b.Collectibles, len(a.Collectibles))
	for i := range a.Collectibles {
		assert.Equal(t, a.Collectibles[i].Cell, b.Collectibles[i].Cell)
		assert.Equal(t, a.Collectibles[i].Position, b.Collectibles[i].Position)
	}
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGeneratePartialPlacement(t *testing.T) {
	cfg := DefaultConfig().WithSeed(5)
	cfg.Rows, cfg.Cols = 2, 3
	cfg.Coins.Count = 3
	cfg.Treasures.Count = 5
	logger := &recordingLogger{}

	lvl, err := Generate(cfg, logger)
	require.NoError(t, err)

	// 6 cells minus entrance and exit leaves 4: 3 coins then 1 treasure.
	assert.Equal(t, 3, lvl.Count(Coin))
	assert.Equal(t, 1, lvl.Count(Treasure))
	require.Len(t, logger.warnings, 1)
	assert.True(t, strings.Contains(logger.warnings[0], string(Treasure)))
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"one row":            func(c *Config) { c.Rows = 1 },
		"zero cols":          func(c *Config) { c.Cols = 0 },
		"zero cell size":     func(c *Config) { c.CellSize = 0 },
		"negative coins":     func(c *Config) { c.Coins.Count = -1 },
		"negative clearance": func(c *Config) { c.Treasures.Clearance = -0.1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			_, err := Generate(cfg, nil)
			assert.Error(t, err)
		})
	}

	cfg := DefaultConfig()
	cfg.Rows = 1
	_, err := Generate(cfg, nil)
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}

func TestCollect(t *testing.T) {
	lvl, err := Generate(DefaultConfig().WithSeed(9), nil)
	require.NoError(t, err)
	board := &ScoreBoard{}

	total := len(lvl.Collectibles)
	coin := firstOf(t, lvl, Coin)
	treasure := firstOf(t, lvl, Treasure)

	got, err := lvl.Collect(coin.ID, board)
	require.NoError(t, err)
	assert.True(t, got.Collected)
	assert.Equal(t, 10, board.Coins())
	assert.Equal(t, total-1, lvl.Remaining())

	_, err = lvl.Collect(coin.ID, board)
	assert.ErrorIs(t, err, ErrAlreadyCollected)
	assert.Equal(t, 10, board.Coins(), "a collectible pays out once")

	_, err = lvl.Collect(treasure.ID, board)
	require.NoError(t, err)
	assert.Equal(t, 50, board.Treasures())

	_, err = lvl.Collect(uuid.New(), board)
	assert.ErrorIs(t, err, ErrCollectibleNotFound)

	for _, c := range lvl.Collectibles {
		_, _ = lvl.Collect(c.ID, nil)
	}
	assert.True(t, lvl.Completed())
}

func TestReleaseMakesItemCollectableAgain(t *testing.T) {
	lvl, err := Generate(DefaultConfig().WithSeed(11), nil)
	require.NoError(t, err)
	board := &ScoreBoard{}
	coin := firstOf(t, lvl, Coin)

	_, err = lvl.Collect(coin.ID, nil)
	require.NoError(t, err)
	require.NoError(t, lvl.Release(coin.ID))
	assert.Equal(t, len(lvl.Collectibles), lvl.Remaining())

	_, err = lvl.Collect(coin.ID, board)
	require.NoError(t, err)
	assert.Equal(t, coin.Points, board.Coins())

	assert.ErrorIs(t, lvl.Release(uuid.New()), ErrCollectibleNotFound)
}

func TestCollectConcurrently(t *testing.T) {
	lvl, err := Generate(DefaultConfig().WithSeed(10), nil)
	require.NoError(t, err)
	board := &ScoreBoard{}
	coin := firstOf(t, lvl, Coin)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = lvl.Collect(coin.ID, board)
		}()
	}
	wg.Wait()
	assert.Equal(t, coin.Points, board.Coins())
}

func TestSnapshotRestore(t *testing.T) {
	lvl, err := Generate(DefaultConfig().WithSeed(31), nil)
	require.NoError(t, err)
	lvl.OwnerID = uuid.New()
	_, err = lvl.Collect(lvl.Collectibles[0].ID, nil)
	require.NoError(t, err)

	restored, err := Restore(lvl.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, lvl.ID, restored.ID)
	assert.Equal(t, lvl.OwnerID, restored.OwnerID)
	assert.Equal(t, lvl.Maze.Grid, restored.Maze.Grid)
	assert.Equal(t, lvl.Segments, restored.Segments)
	assert.Equal(t, lvl.Remaining(), restored.Remaining())

	broken := lvl.Snapshot()
	broken.Grid = broken.Grid[:1]
	_, err = Restore(broken)
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}

func TestYAMLRoundTrip(t *testing.T) {
	lvl, err := Generate(DefaultConfig().WithSeed(12), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, lvl.Snapshot()))

	snap, err := ReadYAML(&buf)
	require.NoError(t, err)
	restored, err := Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, lvl.Maze.String(), restored.Maze.String())
	assert.Equal(t, lvl.ID, restored.ID)
	require.NotNil(t, restored.Config.Seed)
	assert.Equal(t, int64(12), *restored.Config.Seed)
}

func TestLoadPresets(t *testing.T) {
	src := `
presets:
  small:
    rows: 6
    cols: 5
    coins:
      count: 4
  big:
    rows: 30
    cols: 30
    treasures:
      count: 12
      points: 75
`
	presets, err := LoadPresets(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, presets, 2)

	small := presets["small"]
	assert.Equal(t, 6, small.Rows)
	assert.Equal(t, 5, small.Cols)
	assert.Equal(t, 4, small.Coins.Count)
	assert.Equal(t, 10, small.Coins.Points, "unset fields keep their defaults")
	assert.Equal(t, 4.0, small.CellSize)

	big := presets["big"]
	assert.Equal(t, 12, big.Treasures.Count)
	assert.Equal(t, 75, big.Treasures.Points)
	assert.Equal(t, 1.5, big.Treasures.Height)

	_, err = LoadPresets(strings.NewReader("presets:\n  bad:\n    rows: 1\n"))
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}

func firstOf(t *testing.T, lvl *Level, kind Kind) Collectible {
	t.Helper()
	for _, c := range lvl.Collectibles {
		if c.Kind == kind {
			return c
		}
	}
	require.FailNow(t, fmt.Sprintf("no %s placed", kind))
	return Collectible{}
}
