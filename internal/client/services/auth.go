// Package services contains the application services of the MindWell client:
// authentication and session lifecycle, journal entries, emotion records,
// daily challenges, the quiz submission, and the help chat.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindwell/mindwell/internal/client/api"
	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/client/repositories/challenges"
	"github.com/mindwell/mindwell/internal/client/repositories/metadata"
	"github.com/mindwell/mindwell/internal/client/session"
	"github.com/mindwell/mindwell/internal/dbx"
	"github.com/mindwell/mindwell/internal/logging"
)

// ErrPasswordMismatch is returned by Signup when the confirmation does not
// match the password. Validation errors never reach the network.
var ErrPasswordMismatch = errors.New("passwords do not match")

// AuthService owns the session lifecycle: it is the only component that
// writes or clears locally stored identity data.
//
// Contract:
//   - Login/Signup: authenticate against the backend, establish the session.
//   - Restore: rebuild the session from the stored token on startup.
//     A malformed stored token is discarded and reported; it never panics.
//   - Logout: wipe the stored token, the cached challenges and the bearer
//     credential, so nothing of the previous user survives on this machine.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Signup(ctx context.Context, name, email, password, confirm string) (*models.Session, error)
	Restore(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API client and
// the local SQL cache database.
type authService struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// local database and logger.
func NewAuthService(client api.Client, db *sql.DB, log logging.Logger) AuthService {
	return &authService{client: client, db: db, log: log}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// establish persists the token and installs it as the bearer credential.
func (a *authService) establish(ctx context.Context, token string) error {
	if err := a.getMetadataRepo().Set(ctx, metadata.KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	a.client.SetToken(token)
	return nil
}

// wipeLocal removes everything user-specific from the local cache in one
// transaction: the stored token and the cached challenge set.
func (a *authService) wipeLocal(ctx context.Context) error {
	a.client.ClearToken()
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := metadata.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return challenges.NewSQLiteRepository(tx).Clear(ctx)
	})
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	creds, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	s, err := session.Resolve(creds.Token)
	if err != nil {
		return nil, fmt.Errorf("decoding issued token: %w", err)
	}
	if s == nil {
		// Backend answered 2xx without a token; treat as a server fault.
		return nil, fmt.Errorf("login error: empty token issued")
	}

	if err := a.establish(ctx, creds.Token); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *authService) Signup(ctx context.Context, name, email, password, confirm string) (*models.Session, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	creds, err := a.client.Signup(ctx, name, email, password)
	if err != nil {
		return nil, fmt.Errorf("signup error: %w", err)
	}

	s, err := session.Resolve(creds.Token)
	if err != nil {
		return nil, fmt.Errorf("decoding issued token: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("signup error: empty token issued")
	}

	if err := a.establish(ctx, creds.Token); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	token, err := a.getMetadataRepo().Get(ctx, metadata.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("reading stored token: %w", err)
	}

	s, err := session.Resolve(string(token))
	if err != nil {
		// A token we cannot decode is useless; drop it so the next start
		// comes up cleanly logged out.
		a.log.Warn(ctx, "stored token is malformed, discarding", "error", err)
		if wipeErr := a.wipeLocal(ctx); wipeErr != nil {
			a.log.Error(ctx, "failed to discard malformed token", "error", wipeErr)
		}
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	a.client.SetToken(string(token))
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.wipeLocal(ctx)
}
