package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mindwell/mindwell/internal/client/models"
)

func (a *App) Levels(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	levels, err := a.levels.List(ctx, a.session.UserID)
	if err != nil {
		printlnFn("Failed to load emotion records:", err)
		return err
	}
	a.lastLevels = levels

	if len(levels) == 0 {
		printlnFn("No data available to display.")
		return nil
	}

	printfFn("%3s  %-16s  %7s %10s %6s %9s %5s\n",
		"#", "date", "anxiety", "depression", "stress", "happiness", "anger")
	for i, r := range levels {
		printfFn("%3d  %-16s  %7d %10d %6d %9d %5d\n",
			i+1, r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Anxiety, r.Depression, r.Stress, r.Happiness, r.Anger)
	}
	return nil
}

// levelByArg maps a one-based list index from the latest 'levels' output to
// the record itself.
func (a *App) levelByArg(arg string) (*models.EmotionRecord, error) {
	if len(a.lastLevels) == 0 {
		return nil, fmt.Errorf("run 'levels' first")
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.lastLevels) {
		return nil, fmt.Errorf("expected a record number between 1 and %d", len(a.lastLevels))
	}
	return &a.lastLevels[n-1], nil
}

func (a *App) ShowLevel(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	r, err := a.levelByArg(arg)
	if err != nil {
		printlnFn("Usage: level <n> —", err)
		return nil
	}

	printlnFn("Date:", r.CreatedAt.Local().Format("2006-01-02 15:04"))
	printlnFn("Anxiety:", r.Anxiety)
	printlnFn("Depression:", r.Depression)
	printlnFn("Stress:", r.Stress)
	printlnFn("Happiness:", r.Happiness)
	printlnFn("Anger:", r.Anger)
	return nil
}

func (a *App) DeleteLevel(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	r, err := a.levelByArg(arg)
	if err != nil {
		printlnFn("Usage: dellevel <n> —", err)
		return nil
	}

	if !confirm(a.reader, "Delete this emotion record?", a.out) {
		return nil
	}

	for {
		err := a.levels.Delete(ctx, r.ID)
		if err == nil {
			break
		}
		printlnFn("Failed to delete the record:", err)
		if !confirm(a.reader, "Retry?", a.out) {
			return err
		}
	}

	a.lastLevels = dropLevel(a.lastLevels, r.ID)
	printlnFn("Record deleted.")
	return nil
}

func dropLevel(levels []models.EmotionRecord, id string) []models.EmotionRecord {
	out := levels[:0]
	for _, r := range levels {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
