package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-level/identity"
	"github.com/beka-birhanu/vinom-level/interfaces/general"
	"github.com/beka-birhanu/vinom-level/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth registers players and issues tokens.
type Auth struct {
	playerRepo i.PlayerRepo
	tokenizer  i.Tokenizer
	logger     general.Logger
}

var _ i.Authenticator = &Auth{}

// NewAuthService creates an Auth service.
func NewAuthService(pr i.PlayerRepo, t i.Tokenizer, logger general.Logger) (*Auth, error) {
	if pr == nil || t == nil || logger == nil {
		return nil, errors.New("auth service requires a player repo, tokenizer and logger")
	}
	return &Auth{
		playerRepo: pr,
		tokenizer:  t,
		logger:     logger,
	}, nil
}

// Register creates a new player account.
func (a *Auth) Register(username, password string) error {
	playerConfig := identity.PlayerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	player, err := identity.NewPlayer(playerConfig)
	if err != nil {
		return err
	}

	if err := a.playerRepo.Save(player); err != nil {
		a.logger.Error(fmt.Sprintf("saving player %s: %s", username, err))
		return err
	}

	a.logger.Info(fmt.Sprintf("registered player %s (%s)", username, player.ID))
	return nil
}

// SignIn checks the credentials and returns the player with a signed token.
func (a *Auth) SignIn(username, password string) (*identity.Player, string, error) {
	player, err := a.playerRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !player.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimPlayerID: player.ID.String(),
		ClaimUsername: player.Username,
	}, tokenLifetime)
	if err != nil {
		a.logger.Error(fmt.Sprintf("signing token for %s: %s", username, err))
		return nil, "", err
	}

	return player, token, nil
}
