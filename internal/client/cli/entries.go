package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/client/services"
)

func (a *App) Entries(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	entries, err := a.entries.List(ctx, a.session.UserID)
	if err != nil {
		printlnFn("Failed to load entries:", err)
		return err
	}
	a.lastEntries = entries

	if len(entries) == 0 {
		printlnFn("No entries yet. Start journaling with 'add'!")
		return nil
	}
	for i, e := range entries {
		printfFn("%3d  %s\n", i+1, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) AddEntry(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	text, err := getMultiline(a.reader, "Write your journal entry (at least 100 words for proper analysis)", a.out)
	if err != nil {
		printlnFn("error reading input:", err)
		return err
	}

	entry, err := a.entries.Create(ctx, a.session.UserID, text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyEntry) {
			printlnFn("Nothing to save: the entry is empty.")
			return nil
		}
		printlnFn("Failed to add entry. Please try again.")
		return err
	}

	a.lastEntries = append([]models.JournalEntry{*entry}, a.lastEntries...)
	printlnFn("Entry saved.")
	return nil
}

// entryByArg maps a one-based list index from the latest 'entries' output to
// the entry itself.
func (a *App) entryByArg(arg string) (*models.JournalEntry, error) {
	if len(a.lastEntries) == 0 {
		return nil, fmt.Errorf("run 'entries' first")
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.lastEntries) {
		return nil, fmt.Errorf("expected an entry number between 1 and %d", len(a.lastEntries))
	}
	return &a.lastEntries[n-1], nil
}

func (a *App) ShowEntry(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	entry, err := a.entryByArg(arg)
	if err != nil {
		printlnFn("Usage: show <n> —", err)
		return nil
	}

	printlnFn(entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	printlnFn(entry.Text)
	return nil
}

func (a *App) DeleteEntry(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	entry, err := a.entryByArg(arg)
	if err != nil {
		printlnFn("Usage: delentry <n> —", err)
		return nil
	}

	if !confirm(a.reader, "Delete this entry? This action cannot be undone.", a.out) {
		return nil
	}

	if err := a.entries.Delete(ctx, entry.ID); err != nil {
		printlnFn("Failed to delete entry:", err)
		return err
	}

	a.lastEntries = dropEntry(a.lastEntries, entry.ID)
	printlnFn("Entry deleted.")
	return nil
}

func dropEntry(entries []models.JournalEntry, id string) []models.JournalEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
