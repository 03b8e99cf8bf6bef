package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/client/services"
)

func (a *App) Challenges(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	set, err := a.challenges.Today(ctx, a.session.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNoEmotionData) {
			printlnFn("No emotional levels found. Please complete a quiz or journal entry.")
			return nil
		}
		printlnFn("Failed to generate daily challenges. Please try again later.")
		return err
	}

	printChallengeSet(set)
	return nil
}

func (a *App) CompleteChallenge(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > models.ChallengeCount {
		printfFn("Usage: complete <n> — expected a challenge number between 1 and %d\n", models.ChallengeCount)
		return nil
	}

	set, err := a.challenges.Complete(ctx, n-1)
	if err != nil {
		if errors.Is(err, services.ErrNoChallengeSet) {
			printlnFn("No challenges generated today yet. Run 'challenges' first.")
			return nil
		}
		printlnFn("Failed to mark the challenge:", err)
		return err
	}

	printChallengeSet(set)
	return nil
}

func printChallengeSet(set *models.DailyChallengeSet) {
	printlnFn("Your challenges for today:")
	for i, c := range set.Challenges {
		mark := " "
		if set.IsCompleted(i) {
			mark = "x"
		}
		printfFn("  [%s] %d. %s\n", mark, i+1, c)
	}
}
