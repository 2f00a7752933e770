// Command levelgen generates a level offline, prints it and writes it as YAML.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beka-birhanu/vinom-level/level"
)

func main() {
	rows := flag.Int("rows", 0, "Maze rows (default: preset or 12)")
	cols := flag.Int("cols", 0, "Maze columns (default: preset or 12)")
	seed := flag.Int64("seed", 0, "Seed for random generation (default: random)")
	presetsPath := flag.String("presets", "", "YAML file of named level presets")
	presetName := flag.String("preset", "", "Preset to generate from -presets")
	outPath := flag.String("out", "", "Write the level to this YAML file")
	quiet := flag.Bool("quiet", false, "Skip the ASCII rendering")
	flag.Parse()

	cfg, err := resolveConfig(*presetsPath, *presetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = applyFlags(flag.CommandLine, cfg, *rows, *cols, *seed)

	lvl, err := level.Generate(cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %dx%d level (seed: %d)\n\n", lvl.Maze.Rows, lvl.Maze.Cols, lvl.Seed)
	if !*quiet {
		fmt.Println(lvl.Maze.String())
	}

	if *outPath != "" {
		fmt.Printf("Writing %s... ", *outPath)
		if err := writeLevel(*outPath, lvl); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
	}

	width, depth, _ := lvl.Config.Layout().Bounds(lvl.Maze)
	path, _ := lvl.Maze.Path(lvl.Entrance, lvl.Exit)

	fmt.Printf("\nLevel %s\n", lvl.ID)
	fmt.Printf("  - Footprint: %.1f x %.1f\n", width, depth)
	fmt.Printf("  - Wall segments: %d\n", len(lvl.Segments))
	fmt.Printf("  - Entrance: %v, exit: %v\n", lvl.Entrance, lvl.Exit)
	fmt.Printf("  - Shortest route: %d cells\n", len(path))
	fmt.Printf("  - Coins: %d of %d\n", lvl.Count(level.Coin), lvl.Config.Coins.Count)
	fmt.Printf("  - Treasures: %d of %d\n", lvl.Count(level.Treasure), lvl.Config.Treasures.Count)
}

// applyFlags overrides cfg with the size and seed flags set on the command line, even when
// set to zero, so an undersized grid is rejected instead of falling back to the default.
func applyFlags(fs *flag.FlagSet, cfg level.Config, rows, cols int, seed int64) level.Config {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = rows
		case "cols":
			cfg.Cols = cols
		case "seed":
			cfg = cfg.WithSeed(seed)
		}
	})
	return cfg
}

func resolveConfig(presetsPath, presetName string) (level.Config, error) {
	if presetsPath == "" {
		if presetName != "" {
			return level.Config{}, fmt.Errorf("-preset %q needs -presets", presetName)
		}
		return level.DefaultConfig(), nil
	}

	f, err := os.Open(presetsPath)
	if err != nil {
		return level.Config{}, err
	}
	defer f.Close()

	presets, err := level.LoadPresets(f)
	if err != nil {
		return level.Config{}, err
	}
	if presetName == "" {
		return level.DefaultConfig(), nil
	}
	cfg, ok := presets[presetName]
	if !ok {
		return level.Config{}, fmt.Errorf("preset %q not found in %s", presetName, presetsPath)
	}
	return cfg, nil
}

func writeLevel(path string, lvl *level.Level) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := level.WriteYAML(f, lvl.Snapshot()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
