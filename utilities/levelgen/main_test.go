package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/vinom-level/level"
	"github.com/beka-birhanu/vinom-level/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	presets := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(presets, []byte("presets:\n  small:\n    rows: 5\n    cols: 6\n"), 0644))

	cfg, err := resolveConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, level.DefaultConfig(), cfg)

	cfg, err = resolveConfig(presets, "small")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rows)
	assert.Equal(t, 6, cfg.Cols)

	_, err = resolveConfig(presets, "huge")
	assert.Error(t, err)

	_, err = resolveConfig("", "small")
	assert.Error(t, err)
}

func TestWriteLevel(t *testing.T) {
	lvl, err := level.Generate(level.DefaultConfig().WithSeed(4), nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "level.yaml")
	require.NoError(t, writeLevel(path, lvl))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	snap, err := level.ReadYAML(f)
	require.NoError(t, err)
	assert.Equal(t, lvl.ID, snap.ID)
	assert.Equal(t, lvl.Maze.Grid, snap.Grid)
}

func TestApplyFlags(t *testing.T) {
	parse := func(t *testing.T, args ...string) level.Config {
		t.Helper()
		fs := flag.NewFlagSet("levelgen", flag.ContinueOnError)
		rows := fs.Int("rows", 0, "")
		cols := fs.Int("cols", 0, "")
		seed := fs.Int64("seed", 0, "")
		require.NoError(t, fs.Parse(args))
		return applyFlags(fs, level.DefaultConfig(), *rows, *cols, *seed)
	}

	t.Run("unset flags keep the base config", func(t *testing.T) {
		cfg := parse(t)
		assert.Equal(t, level.DefaultConfig(), cfg)
	})

	t.Run("explicit size and seed", func(t *testing.T) {
		cfg := parse(t, "-rows", "5", "-cols", "7", "-seed", "0")
		assert.Equal(t, 5, cfg.Rows)
		assert.Equal(t, 7, cfg.Cols)
		require.NotNil(t, cfg.Seed)
		assert.Equal(t, int64(0), *cfg.Seed)
	})

	t.Run("zero rows is rejected", func(t *testing.T) {
		cfg := parse(t, "-rows", "0")
		assert.Equal(t, 0, cfg.Rows)
		_, err := level.Generate(cfg, nil)
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)
	})

	t.Run("one column is rejected", func(t *testing.T) {
		_, err := level.Generate(parse(t, "-cols", "1"), nil)
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)
	})
}
