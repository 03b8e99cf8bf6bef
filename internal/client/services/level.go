package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mindwell/mindwell/internal/client/api"
	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/logging"
)

// LevelService manages the user's emotion-level records. Scores are derived
// by the caller (entry creation or quiz submission); this service only
// persists and lists them.
type LevelService interface {
	// List returns all records in server order. The history view depends on
	// the backend returning chronological order; no client-side sort.
	List(ctx context.Context, userID string) ([]models.EmotionRecord, error)

	// Create persists a new record with the given scores.
	Create(ctx context.Context, userID string, scores models.EmotionScores) (*models.EmotionRecord, error)

	// Delete removes one record by id.
	Delete(ctx context.Context, id string) error
}

type levelService struct {
	client api.Client
	log    logging.Logger
	now    func() time.Time
}

// NewLevelService constructs a LevelService.
func NewLevelService(client api.Client, log logging.Logger) LevelService {
	return &levelService{client: client, log: log, now: time.Now}
}

func (s *levelService) List(ctx context.Context, userID string) ([]models.EmotionRecord, error) {
	records, err := s.client.ListLevels(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading emotion records: %w", err)
	}
	return records, nil
}

func (s *levelService) Create(ctx context.Context, userID string, scores models.EmotionScores) (*models.EmotionRecord, error) {
	record, err := s.client.CreateLevel(ctx, userID, scores, s.now())
	if err != nil {
		return nil, fmt.Errorf("error saving emotion record: %w", err)
	}
	return record, nil
}

func (s *levelService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteLevel(ctx, id); err != nil {
		return fmt.Errorf("error deleting emotion record: %w", err)
	}
	return nil
}
