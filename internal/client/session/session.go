// Package session turns the locally stored bearer token into a client-side
// identity. The token is decoded, not verified: the client does not hold the
// signing secret, and token validity is the backend's concern on every
// request. A malformed token must degrade to the logged-out state, never
// crash the caller.
package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/common"
)

// claims mirrors the identity fields the backend embeds in the token.
type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userID"`
	Name   string `json:"name"`
}

// Resolve decodes token into a Session. An empty token yields (nil, nil):
// no identity is stored. A token that cannot be decoded, or that carries no
// user identifier, yields (nil, error) wrapping common.ErrInvalidToken.
func Resolve(token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}

	c := &claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, c); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if c.UserID == "" {
		return nil, fmt.Errorf("%w: missing user id", common.ErrInvalidToken)
	}

	return &models.Session{UserID: c.UserID, Name: c.Name}, nil
}
