package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/mindwell/internal/client/ai"
	"github.com/mindwell/mindwell/internal/client/api"
	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/logging"
)

// ErrEmptyEntry is returned when a journal entry has no text.
var ErrEmptyEntry = errors.New("journal entry is empty")

// EntryService manages the user's journal entries.
type EntryService interface {
	// List returns the user's entries newest first.
	List(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// Create analyzes the text, persists the derived emotion record, then
	// persists the entry itself. The three steps are sequential, not
	// transactional. Outcomes:
	//
	//   analysis fails     — the entry is still written, no record is
	//                        created (failure logged, not surfaced)
	//   record write fails — the operation aborts; no entry is written
	//   entry write fails  — the error is returned; a record may already
	//                        exist (orphan, logged, not reconciled)
	Create(ctx context.Context, userID, text string) (*models.JournalEntry, error)

	// Delete removes one entry. Callers must have confirmed the action
	// with the user before calling.
	Delete(ctx context.Context, id string) error
}

type entryService struct {
	client api.Client
	bridge ai.Bridge
	log    logging.Logger
	now    func() time.Time
}

// NewEntryService constructs an EntryService.
func NewEntryService(client api.Client, bridge ai.Bridge, log logging.Logger) EntryService {
	return &entryService{client: client, bridge: bridge, log: log, now: time.Now}
}

func (s *entryService) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	rows, err := s.client.ListEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading entries: %w", err)
	}

	// Server order is oldest first; the journal reads newest first.
	out := make([]models.JournalEntry, len(rows))
	for i, e := range rows {
		out[len(rows)-1-i] = e
	}
	return out, nil
}

func (s *entryService) Create(ctx context.Context, userID, text string) (*models.JournalEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyEntry
	}

	at := s.now()

	// Phase one: derive and persist the emotion record. Journaling must
	// succeed even when inference does not, so an analysis failure is
	// logged and the entry proceeds without a record.
	var recordID string
	scores, err := s.bridge.AnalyzeEmotions(ctx, text)
	if err != nil {
		s.log.Warn(ctx, "emotion analysis failed, entry proceeds without a record", "error", err)
	} else {
		record, err := s.client.CreateLevel(ctx, userID, scores, at)
		if err != nil {
			return nil, fmt.Errorf("error saving emotion record: %w", err)
		}
		recordID = record.ID
	}

	// Phase two: persist the entry itself.
	entry, err := s.client.CreateEntry(ctx, userID, text, at)
	if err != nil {
		if recordID != "" {
			s.log.Warn(ctx, "entry write failed after emotion record was created",
				"record_id", recordID, "error", err)
		}
		return nil, fmt.Errorf("error saving entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("error deleting entry: %w", err)
	}
	return nil
}
