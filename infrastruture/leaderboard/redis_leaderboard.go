// Package leaderboard ranks players in Redis sorted sets, one set per collectible kind.
package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-level/level"
	"github.com/beka-birhanu/vinom-level/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "leaderboard"
	boardKeyFmt   = "%s:%s"
)

// RedisLeaderboard keeps one sorted set per collectible kind, scored by total points.
type RedisLeaderboard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ i.Leaderboard = &RedisLeaderboard{}

// NewRedisLeaderboard creates a leaderboard. A zero ttl keeps boards forever; otherwise a board
// expires ttl after its first entry, which gives seasonal resets.
func NewRedisLeaderboard(client *redis.Client, prefix string, ttl time.Duration) *RedisLeaderboard {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &RedisLeaderboard{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Add credits points to the player on the board for kind.
func (rl *RedisLeaderboard) Add(ctx context.Context, kind level.Kind, playerID uuid.UUID, points int) error {
	key := rl.boardKey(kind)
	if err := rl.client.ZIncrBy(ctx, key, float64(points), playerID.String()).Err(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	if rl.ttl > 0 {
		ttl, err := rl.client.TTL(ctx, key).Result()
		if err == nil && ttl == -1 {
			_ = rl.client.Expire(ctx, key, rl.ttl).Err()
		}
	}
	return nil
}

// Top returns up to n players with the highest totals, best first.
func (rl *RedisLeaderboard) Top(ctx context.Context, kind level.Kind, n int64) ([]i.Standing, error) {
	if n <= 0 {
		return nil, nil
	}
	entries, err := rl.client.ZRevRangeWithScores(ctx, rl.boardKey(kind), 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	return standings(entries), nil
}

// standings converts sorted-set entries, skipping members that are not player IDs.
func standings(entries []redis.Z) []i.Standing {
	result := make([]i.Standing, 0, len(entries))
	for _, e := range entries {
		member, ok := e.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		result = append(result, i.Standing{PlayerID: id, Score: int(e.Score)})
	}
	return result
}

func (rl *RedisLeaderboard) boardKey(kind level.Kind) string {
	return fmt.Sprintf(boardKeyFmt, rl.prefix, kind)
}
