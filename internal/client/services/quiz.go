package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mindwell/mindwell/internal/client/ai"
	"github.com/mindwell/mindwell/internal/client/api"
	"github.com/mindwell/mindwell/internal/client/quiz"
	"github.com/mindwell/mindwell/internal/logging"
)

// QuizService turns a completed quiz form into one emotion record.
type QuizService interface {
	// Submit analyzes all answers as a single text and persists one record.
	// On failure the form is left untouched so answers are retained; on
	// success the form is reset to the first question.
	Submit(ctx context.Context, userID string, form *quiz.Form) error
}

type quizService struct {
	client api.Client
	bridge ai.Bridge
	log    logging.Logger
	now    func() time.Time
}

// NewQuizService constructs a QuizService.
func NewQuizService(client api.Client, bridge ai.Bridge, log logging.Logger) QuizService {
	return &quizService{client: client, bridge: bridge, log: log, now: time.Now}
}

func (s *quizService) Submit(ctx context.Context, userID string, form *quiz.Form) error {
	if !form.Complete() {
		return quiz.ErrIncomplete
	}

	// Unlike entry creation, a failed analysis blocks submission: the quiz
	// exists solely to produce a record, so there is nothing to fall back to.
	scores, err := s.bridge.AnalyzeEmotions(ctx, form.Combined())
	if err != nil {
		return fmt.Errorf("error analyzing quiz answers: %w", err)
	}

	if _, err := s.client.CreateLevel(ctx, userID, scores, s.now()); err != nil {
		return fmt.Errorf("error saving quiz result: %w", err)
	}

	form.Reset()
	return nil
}
