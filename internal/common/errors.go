// Package common defines shared sentinel errors used across the MindWell
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

// ErrInvalidToken marks a stored bearer token that cannot be decoded or
// carries no identity.
var ErrInvalidToken = errors.New("invalid token")
