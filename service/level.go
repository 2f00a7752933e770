package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-level/interfaces/general"
	"github.com/beka-birhanu/vinom-level/level"
	"github.com/beka-birhanu/vinom-level/service/i"
	"github.com/google/uuid"
)

const (
	collectLockKeyFmt = "level:%s:collect"

	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

var (
	ErrUnknownPreset = errors.New("unknown level preset")
	ErrUnknownKind   = errors.New("unknown collectible kind")
	ErrNotLevelOwner = errors.New("level belongs to another player")
)

// LevelService generates levels for players and settles collected items.
type LevelService struct {
	levels      i.LevelRepo
	players     i.PlayerRepo
	locker      i.Locker
	leaderboard i.Leaderboard
	defaults    level.Config
	presets     map[string]level.Config
	logger      general.Logger
}

var _ i.LevelManager = &LevelService{}

// LevelServiceConfig holds the dependencies of a LevelService.
type LevelServiceConfig struct {
	Levels      i.LevelRepo
	Players     i.PlayerRepo
	Locker      i.Locker
	Leaderboard i.Leaderboard
	Defaults    level.Config            // used when a request names no preset
	Presets     map[string]level.Config // optional named configurations
	Logger      general.Logger
}

// NewLevelService creates a LevelService.
func NewLevelService(c *LevelServiceConfig) (*LevelService, error) {
	if c == nil || c.Levels == nil || c.Players == nil || c.Locker == nil || c.Leaderboard == nil || c.Logger == nil {
		return nil, errors.New("level service requires level and player repos, a locker, a leaderboard and a logger")
	}
	if err := c.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("default level config: %w", err)
	}

	presets := make(map[string]level.Config, len(c.Presets))
	for name, cfg := range c.Presets {
		presets[name] = cfg
	}

	return &LevelService{
		levels:      c.Levels,
		players:     c.Players,
		locker:      c.Locker,
		leaderboard: c.Leaderboard,
		defaults:    c.Defaults,
		presets:     presets,
		logger:      c.Logger,
	}, nil
}

// Config returns the named preset, or the defaults when name is empty.
func (s *LevelService) Config(name string) (level.Config, error) {
	if name == "" {
		return s.defaults, nil
	}
	cfg, ok := s.presets[name]
	if !ok {
		return level.Config{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return cfg, nil
}

// Generate builds a level for ownerID and stores it.
func (s *LevelService) Generate(ctx context.Context, ownerID uuid.UUID, cfg level.Config) (*level.Level, error) {
	lvl, err := level.Generate(cfg, s.logger)
	if err != nil {
		return nil, err
	}
	lvl.OwnerID = ownerID

	snapshot := lvl.Snapshot()
	if err := s.levels.Save(ctx, &snapshot); err != nil {
		s.logger.Error(fmt.Sprintf("saving level %s: %s", lvl.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("stored level %s for player %s", lvl.ID, ownerID))
	return lvl, nil
}

// Level loads a stored level.
func (s *LevelService) Level(ctx context.Context, id uuid.UUID) (*level.Level, error) {
	snapshot, err := s.levels.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return level.Restore(*snapshot)
}

// Collect picks up one collectible for the level's owner.
// The level is locked for the whole read-modify-write so concurrent requests, from any replica,
// cannot pay the same item twice.
func (s *LevelService) Collect(ctx context.Context, playerID, levelID, collectibleID uuid.UUID) (level.Collectible, error) {
	unlock, err := s.locker.Lock(ctx, fmt.Sprintf(collectLockKeyFmt, levelID))
	if err != nil {
		s.logger.Error(fmt.Sprintf("obtaining collect lock for level %s: %s", levelID, err))
		return level.Collectible{}, err
	}
	defer func() {
		if err := unlock(); err != nil {
			s.logger.Warning(fmt.Sprintf("releasing collect lock for level %s: %s", levelID, err))
		}
	}()

	lvl, err := s.Level(ctx, levelID)
	if err != nil {
		return level.Collectible{}, err
	}
	if lvl.OwnerID != playerID {
		return level.Collectible{}, ErrNotLevelOwner
	}

	score := &level.ScoreBoard{}
	item, err := lvl.Collect(collectibleID, score)
	if err != nil {
		return item, err
	}

	snapshot := lvl.Snapshot()
	if err := s.levels.Save(ctx, &snapshot); err != nil {
		s.logger.Error(fmt.Sprintf("saving level %s after collect: %s", levelID, err))
		return level.Collectible{}, err
	}

	if err := s.players.AddScore(playerID, score.Coins(), score.Treasures()); err != nil {
		s.logger.Error(fmt.Sprintf("crediting player %s: %s", playerID, err))
		s.release(ctx, lvl, item.ID)
		return level.Collectible{}, err
	}

	if err := s.leaderboard.Add(ctx, item.Kind, playerID, item.Points); err != nil {
		// Totals are already stored in the player record.
		s.logger.Warning(fmt.Sprintf("updating %s leaderboard for player %s: %s", item.Kind, playerID, err))
	}

	s.logger.Info(fmt.Sprintf("player %s collected %s %s in level %s (%d left)", playerID, item.Kind, item.ID, levelID, lvl.Remaining()))
	return item, nil
}

// release stores the item as uncollected again after its payout failed, so a retry can pay it.
func (s *LevelService) release(ctx context.Context, lvl *level.Level, itemID uuid.UUID) {
	if err := lvl.Release(itemID); err != nil {
		s.logger.Error(fmt.Sprintf("releasing %s in level %s: %s", itemID, lvl.ID, err))
		return
	}
	snapshot := lvl.Snapshot()
	if err := s.levels.Save(ctx, &snapshot); err != nil {
		s.logger.Error(fmt.Sprintf("saving level %s after failed credit, %s stays collected: %s", lvl.ID, itemID, err))
	}
}

// Leaderboard returns the top n players for kind. n is clamped to [1, 100], 0 means 10.
func (s *LevelService) Leaderboard(ctx context.Context, kind level.Kind, n int64) ([]i.Standing, error) {
	if kind != level.Coin && kind != level.Treasure {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if n <= 0 {
		n = defaultLeaderboardSize
	}
	n = min(n, maxLeaderboardSize)
	return s.leaderboard.Top(ctx, kind, n)
}
