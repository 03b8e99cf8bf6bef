// Package api is the boundary to the MindWell backend HTTP service. It
// exposes the Client interface consumed by the services layer and an
// implementation over net/http. All errors surface as the package sentinels
// or a *ServerError; callers never see raw transport errors.
package api

import (
	"context"
	"time"

	"github.com/mindwell/mindwell/internal/client/models"
)

// User is the backend's user object as returned by login and signup.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials is the token/user pair issued on successful authentication.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Client covers the backend endpoints the MindWell client consumes.
//
// All methods honor context cancellation. Methods other than Login and
// Signup require a bearer token to have been set via SetToken.
type Client interface {
	// Login exchanges email/password for a token and user object.
	Login(ctx context.Context, email, password string) (*Credentials, error)

	// Signup registers a new account and returns the issued credentials.
	Signup(ctx context.Context, name, email, password string) (*Credentials, error)

	// ListEntries returns the user's journal entries in server order.
	ListEntries(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// CreateEntry persists a new journal entry.
	CreateEntry(ctx context.Context, userID, text string, at time.Time) (*models.JournalEntry, error)

	// DeleteEntry removes one entry by its server id.
	DeleteEntry(ctx context.Context, id string) error

	// ListLevels returns the user's emotion records in server order.
	// Chart continuity assumes the backend returns chronological order;
	// no client-side sort is applied.
	ListLevels(ctx context.Context, userID string) ([]models.EmotionRecord, error)

	// CreateLevel persists a new emotion record with the given scores.
	CreateLevel(ctx context.Context, userID string, scores models.EmotionScores, at time.Time) (*models.EmotionRecord, error)

	// DeleteLevel removes one emotion record by its server id.
	DeleteLevel(ctx context.Context, id string) error

	// SetToken installs the bearer token sent with subsequent requests.
	SetToken(token string)

	// ClearToken removes the bearer token (logout).
	ClearToken()
}
