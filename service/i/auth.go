package i

import (
	"github.com/beka-birhanu/vinom-level/identity"
)

// Authenticator registers players and signs them in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*identity.Player, string, error)
}
