package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindwell/mindwell/internal/client/models"
)

type cannedGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *cannedGenerator) generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func TestAnalyzeEmotions(t *testing.T) {
	gen := &cannedGenerator{reply: `{"anxiety": 40, "depression": 10, "stress": 55, "happiness": 20, "anger": 5}`}
	b := &GeminiBridge{gen: gen, model: "test-model"}

	scores, err := b.AnalyzeEmotions(context.Background(), "rough morning")
	require.NoError(t, err)
	require.Equal(t, 55, scores.Stress)

	// The user's text leads the prompt, the format instruction follows.
	require.Len(t, gen.prompts, 1)
	require.True(t, strings.HasPrefix(gen.prompts[0], "rough morning ("))
	require.Contains(t, gen.prompts[0], `"anxiety": <Number>`)
}

func TestAnalyzeEmotions_TransportError(t *testing.T) {
	transport := errors.New("connection reset")
	b := &GeminiBridge{gen: &cannedGenerator{err: transport}, model: "test-model"}

	_, err := b.AnalyzeEmotions(context.Background(), "text")
	require.ErrorIs(t, err, transport)
	require.NotErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerateChallenges(t *testing.T) {
	gen := &cannedGenerator{reply: `["a", "b", "c", "d", "e"]`}
	b := &GeminiBridge{gen: gen, model: "test-model"}

	latest := models.EmotionRecord{EmotionScores: models.EmotionScores{Anxiety: 70}}
	challenges, err := b.GenerateChallenges(context.Background(), latest)
	require.NoError(t, err)
	require.Len(t, challenges, models.ChallengeCount)

	// The record's scores are embedded in the prompt as JSON.
	require.Contains(t, gen.prompts[0], `"anxiety":70`)
}

func TestGenerateChallenges_MalformedReply(t *testing.T) {
	b := &GeminiBridge{gen: &cannedGenerator{reply: "no can do"}, model: "test-model"}

	_, err := b.GenerateChallenges(context.Background(), models.EmotionRecord{})
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestChat_AppendsStyleSuffix(t *testing.T) {
	gen := &cannedGenerator{reply: "You've got this 💪"}
	b := &GeminiBridge{gen: gen, model: "test-model"}

	reply, err := b.Chat(context.Background(), "feeling low")
	require.NoError(t, err)
	require.Equal(t, "You've got this 💪", reply)
	require.True(t, strings.HasPrefix(gen.prompts[0], "feeling low ("))
}
