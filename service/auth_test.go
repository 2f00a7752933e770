package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery-staple-42"

func TestAuth(t *testing.T) {
	repo := newFakePlayerRepo()
	auth, err := NewAuthService(repo, &fakeTokenizer{}, &fakeLogger{})
	require.NoError(t, err)

	t.Run("register and sign in", func(t *testing.T) {
		require.NoError(t, auth.Register("maze_runner", testPassword))

		player, token, err := auth.SignIn("maze_runner", testPassword)
		require.NoError(t, err)
		assert.Equal(t, "maze_runner", player.Username)
		assert.Equal(t, "token-"+player.ID.String(), token)
	})

	t.Run("duplicate username", func(t *testing.T) {
		assert.Error(t, auth.Register("maze_runner", testPassword))
	})

	t.Run("weak password", func(t *testing.T) {
		assert.Error(t, auth.Register("another_runner", "abc"))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.SignIn("maze_runner", "not-the-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := auth.SignIn("ghost", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthTokenFailure(t *testing.T) {
	repo := newFakePlayerRepo()
	auth, err := NewAuthService(repo, &fakeTokenizer{err: errors.New("boom")}, &fakeLogger{})
	require.NoError(t, err)
	require.NoError(t, auth.Register("maze_runner", testPassword))

	_, _, err = auth.SignIn("maze_runner", testPassword)
	assert.Error(t, err)
}

func TestNewAuthServiceRequiresDependencies(t *testing.T) {
	_, err := NewAuthService(nil, &fakeTokenizer{}, &fakeLogger{})
	assert.Error(t, err)
}
