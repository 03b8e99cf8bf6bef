package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mindwell/mindwell/internal/client/ai"
	"github.com/mindwell/mindwell/internal/client/api"
	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/client/repositories/challenges"
	"github.com/mindwell/mindwell/internal/logging"
)

var (
	// ErrNoEmotionData means no emotion record exists yet to base the
	// challenges on. Actionable: complete a quiz or journal entry first.
	ErrNoEmotionData = errors.New("no emotion data yet")

	// ErrNoChallengeSet means completion was requested before any set was
	// generated today.
	ErrNoChallengeSet = errors.New("no challenge set for today")
)

// ChallengeService is the cache gate in front of challenge generation.
//
// A cached set generated on the current calendar day is served unchanged,
// including its completion marks; otherwise a new set is generated from the
// most recent emotion record and overwrites the cache with empty marks.
// Completion is a local-only mutation, never sent to the backend.
type ChallengeService interface {
	Today(ctx context.Context, userID string) (*models.DailyChallengeSet, error)
	Complete(ctx context.Context, index int) (*models.DailyChallengeSet, error)
}

type challengeService struct {
	client api.Client
	bridge ai.Bridge
	cache  challenges.Repository
	log    logging.Logger
	now    func() time.Time
}

// NewChallengeService constructs a ChallengeService.
func NewChallengeService(client api.Client, bridge ai.Bridge, cache challenges.Repository, log logging.Logger) ChallengeService {
	return &challengeService{client: client, bridge: bridge, cache: cache, log: log, now: time.Now}
}

func (s *challengeService) Today(ctx context.Context, userID string) (*models.DailyChallengeSet, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		// A corrupt cache row is not fatal; regenerate over it.
		s.log.Warn(ctx, "challenge cache unreadable, regenerating", "error", err)
	}
	if cached != nil && !models.Stale(cached.GeneratedAt, s.now()) {
		return cached, nil
	}

	records, err := s.client.ListLevels(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading emotion records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoEmotionData
	}
	latest := records[len(records)-1]

	generated, err := s.bridge.GenerateChallenges(ctx, latest)
	if err != nil {
		// Both transport and malformed-response failures are retryable;
		// nothing partial is cached or rendered.
		return nil, fmt.Errorf("error generating challenges: %w", err)
	}

	set := &models.DailyChallengeSet{
		Challenges:  generated,
		GeneratedAt: s.now(),
		Completed:   make(map[int]struct{}),
	}
	if err := s.cache.Save(ctx, set); err != nil {
		return nil, fmt.Errorf("error caching challenges: %w", err)
	}
	return set, nil
}

func (s *challengeService) Complete(ctx context.Context, index int) (*models.DailyChallengeSet, error) {
	set, err := s.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading challenge cache: %w", err)
	}
	if set == nil || models.Stale(set.GeneratedAt, s.now()) {
		return nil, ErrNoChallengeSet
	}

	set.MarkCompleted(index)
	if err := s.cache.Save(ctx, set); err != nil {
		return nil, fmt.Errorf("error saving completion mark: %w", err)
	}
	return set, nil
}
