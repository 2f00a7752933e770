package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "correct-horse-battery-staple-42"

func TestNewPlayer(t *testing.T) {
	t.Run("valid player", func(t *testing.T) {
		id := uuid.New()
		p, err := NewPlayer(PlayerConfig{ID: id, Username: "maze_runner", PlainPassword: strongPassword})
		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
		assert.NotEqual(t, strongPassword, p.PasswordHash)
		assert.True(t, p.VerifyPassword(strongPassword))
		assert.False(t, p.VerifyPassword("wrong"))
		assert.Zero(t, p.Coins)
		assert.Zero(t, p.Treasures)
	})

	t.Run("invalid usernames", func(t *testing.T) {
		cases := map[string]error{
			"ab":                        ErrUsernameTooShort,
			"abcdefghijklmnopqrstuvwxy": ErrUsernameTooLong,
			"bad name!":                 ErrUsernameFormat,
		}
		for name, want := range cases {
			_, err := NewPlayer(PlayerConfig{ID: uuid.New(), Username: name, PlainPassword: strongPassword})
			assert.ErrorIs(t, err, want, name)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewPlayer(PlayerConfig{ID: uuid.New(), Username: "maze_runner", PlainPassword: "1234"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}
