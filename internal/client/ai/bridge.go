// Package ai is the boundary to the generative-content API. It turns free
// text into either structured emotion scores, a daily challenge list, or a
// free-form chat reply. Structured replies are validated strictly before any
// field access; a reply that does not match the requested shape surfaces as
// ErrMalformedResponse, distinct from transport errors.
package ai

import (
	"context"

	"google.golang.org/genai"

	"github.com/mindwell/mindwell/internal/client/models"
)

// Bridge is the interface the services layer depends on.
type Bridge interface {
	// AnalyzeEmotions derives five 0–100 emotion scores from text.
	AnalyzeEmotions(ctx context.Context, text string) (models.EmotionScores, error)

	// GenerateChallenges derives a daily challenge set from the most recent
	// emotion record. Exactly models.ChallengeCount strings or an error.
	GenerateChallenges(ctx context.Context, latest models.EmotionRecord) ([]string, error)

	// Chat returns a free-form empathetic reply to one user message.
	Chat(ctx context.Context, message string) (string, error)
}

// generator is the single-call transport the bridge runs on. The real
// implementation wraps the Gemini SDK; tests substitute a canned one.
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

// GeminiBridge implements Bridge over the Gemini generative API.
type GeminiBridge struct {
	gen   generator
	model string
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// NewGeminiBridge builds a bridge talking to the Gemini API with the given
// key and model name (e.g. "gemini-2.0-flash").
func NewGeminiBridge(ctx context.Context, apiKey, model string) (*GeminiBridge, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiBridge{gen: &geminiGenerator{client: client, model: model}, model: model}, nil
}

func (b *GeminiBridge) AnalyzeEmotions(ctx context.Context, text string) (models.EmotionScores, error) {
	raw, err := b.gen.generate(ctx, scoresRequest(text))
	if err != nil {
		return models.EmotionScores{}, err
	}
	return parseScores(raw)
}

func (b *GeminiBridge) GenerateChallenges(ctx context.Context, latest models.EmotionRecord) ([]string, error) {
	raw, err := b.gen.generate(ctx, challengesRequest(latest))
	if err != nil {
		return nil, err
	}
	return parseChallenges(raw)
}

func (b *GeminiBridge) Chat(ctx context.Context, message string) (string, error) {
	return b.gen.generate(ctx, chatRequest(message))
}
