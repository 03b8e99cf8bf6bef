package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mindwell/mindwell/internal/client/models"
)

// ErrMalformedResponse means the model's reply did not match the requested
// shape. Callers must treat it as "no data": a failed analysis never yields
// zero-valued scores, because zero is itself a legitimate score.
var ErrMalformedResponse = errors.New("analysis unavailable: malformed model response")

// stripFences removes Markdown code-fence markers the model sometimes wraps
// around JSON output.
func stripFences(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseScores classifies a raw model reply as a valid EmotionScores or
// malformed. All five fields must be present and within 0–100; a missing
// field is malformed, not zero.
func parseScores(raw string) (models.EmotionScores, error) {
	var probe struct {
		Anxiety    *int `json:"anxiety"`
		Depression *int `json:"depression"`
		Stress     *int `json:"stress"`
		Happiness  *int `json:"happiness"`
		Anger      *int `json:"anger"`
	}

	if err := json.Unmarshal([]byte(stripFences(raw)), &probe); err != nil {
		return models.EmotionScores{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	fields := map[string]*int{
		"anxiety":    probe.Anxiety,
		"depression": probe.Depression,
		"stress":     probe.Stress,
		"happiness":  probe.Happiness,
		"anger":      probe.Anger,
	}
	for name, v := range fields {
		if v == nil {
			return models.EmotionScores{}, fmt.Errorf("%w: missing field %q", ErrMalformedResponse, name)
		}
		if *v < 0 || *v > 100 {
			return models.EmotionScores{}, fmt.Errorf("%w: field %q out of range: %d", ErrMalformedResponse, name, *v)
		}
	}

	return models.EmotionScores{
		Anxiety:    *probe.Anxiety,
		Depression: *probe.Depression,
		Stress:     *probe.Stress,
		Happiness:  *probe.Happiness,
		Anger:      *probe.Anger,
	}, nil
}

// parseChallenges expects a JSON array of exactly models.ChallengeCount
// non-empty strings. Anything else is malformed; partial sets are never
// returned.
func parseChallenges(raw string) ([]string, error) {
	var challenges []string
	if err := json.Unmarshal([]byte(stripFences(raw)), &challenges); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if len(challenges) != models.ChallengeCount {
		return nil, fmt.Errorf("%w: expected %d challenges, got %d", ErrMalformedResponse, models.ChallengeCount, len(challenges))
	}
	for i, c := range challenges {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("%w: empty challenge at index %d", ErrMalformedResponse, i)
		}
	}
	return challenges, nil
}
