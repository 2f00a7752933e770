package leaderboard

import (
	"context"
	"testing"

	"github.com/beka-birhanu/vinom-level/level"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardKey(t *testing.T) {
	rl := NewRedisLeaderboard(nil, "", 0)
	assert.Equal(t, "leaderboard:coin", rl.boardKey(level.Coin))

	rl = NewRedisLeaderboard(nil, "season1", 0)
	assert.Equal(t, "season1:treasure", rl.boardKey(level.Treasure))
}

func TestStandings(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := standings([]redis.Z{
		{Score: 120, Member: a.String()},
		{Score: 90, Member: "not-a-uuid"},
		{Score: 60, Member: b.String()},
		{Score: 10, Member: 42},
	})

	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].PlayerID)
	assert.Equal(t, 120, got[0].Score)
	assert.Equal(t, b, got[1].PlayerID)
}

func TestTopWithNonPositiveCount(t *testing.T) {
	rl := NewRedisLeaderboard(nil, "", 0)
	got, err := rl.Top(context.Background(), level.Coin, 0)
	assert.NoError(t, err)
	assert.Empty(t, got)
}
