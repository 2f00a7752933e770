package i

import (
	"time"
)

// Tokenizer signs and verifies player session tokens.
type Tokenizer interface {
	// Generate signs claims into a token that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode verifies a token and returns its claims. Expired or foreign tokens are errors.
	Decode(token string) (map[string]interface{}, error)
}
