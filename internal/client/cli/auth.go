package cli

import (
	"context"
	"errors"

	"github.com/mindwell/mindwell/internal/client/api"
	"github.com/mindwell/mindwell/internal/client/services"
)

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("error reading input:", err)
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		printlnFn("error reading input:", err)
		return err
	}

	s, err := a.auth.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			printlnFn("Invalid email or password.")
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server unavailable. Please try again later.")
		default:
			printlnFn("Login failed:", err)
		}
		return err
	}

	a.session = s
	printlnFn("Logged in as " + s.Name)
	return nil
}

func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		printlnFn("error reading input:", err)
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("error reading input:", err)
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		printlnFn("error reading input:", err)
		return err
	}
	confirmPassword, err := getPassword(a.out)
	if err != nil {
		printlnFn("error reading input:", err)
		return err
	}

	s, err := a.auth.Signup(ctx, name, email, password, confirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch):
			printlnFn("Passwords do not match.")
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server unavailable. Please try again later.")
		default:
			printlnFn("Signup failed:", err)
		}
		return err
	}

	a.session = s
	printlnFn("Welcome, " + s.Name + "!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}
	a.session = nil
	a.lastEntries = nil
	a.lastLevels = nil
	printlnFn("Logged out.")
	return nil
}

// requireLogin guards commands that need a session.
func (a *App) requireLogin() bool {
	if a.session == nil {
		printlnFn("Please log in first.")
		return false
	}
	return true
}
