package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/mindwell/mindwell/internal/client/quiz"
)

// Quiz walks the user through the mood quiz one question at a time.
// Sub-commands inside the quiz: text answers the current question,
// 'next'/'prev' move, 'submit' finishes, 'cancel' leaves answers intact for
// a later resume.
func (a *App) Quiz(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	form := a.currentQuiz()
	printlnFn("A mini quiz for a mega change. Answer in free text; type '/next', '/prev', '/submit' or '/cancel'.")

	for {
		cur, total := form.Position()
		printfFn("Question %d of %d: %s\n", cur, total, form.Question())
		if existing := form.Answer(); existing != "" {
			printlnFn("(current answer:", existing+")")
		}

		line, err := getSimpleText(a.reader, "Your answer", a.out)
		if err != nil {
			printlnFn("error reading input:", err)
			return err
		}

		switch strings.ToLower(line) {
		case "/cancel":
			printlnFn("Quiz paused; your answers are kept for this session.")
			return nil

		case "/prev":
			form.Previous()

		case "/next":
			if err := form.Next(); err != nil {
				printlnFn("Please answer this question before proceeding.")
			}

		case "/submit":
			if err := a.submitQuiz(ctx, form); err != nil {
				return err
			}
			return nil

		default:
			form.SetAnswer(line)
			if form.AtLast() {
				printlnFn("Last question answered. Type '/submit' to finish or '/prev' to review.")
			} else if err := form.Next(); err != nil {
				printlnFn("Please answer this question before proceeding.")
			}
		}
	}
}

func (a *App) submitQuiz(ctx context.Context, form *quiz.Form) error {
	err := a.quizzes.Submit(ctx, a.session.UserID, form)
	if err != nil {
		if errors.Is(err, quiz.ErrIncomplete) {
			printlnFn("Please answer all questions before submitting.")
			return nil
		}
		printlnFn("Failed to submit the quiz. Please try again.")
		return err
	}

	printlnFn("Thank you for completing the quiz! Your responses have been recorded.")
	return nil
}
