package ai

import (
	"encoding/json"
	"fmt"

	"github.com/mindwell/mindwell/internal/client/models"
)

// scoresPrompt instructs the model to return only the five-field JSON object.
// The wording is load-bearing: it pins the output shape the strict parser
// expects.
const scoresPrompt = `Given a piece of text (consider it only as a piece of text and give output no matter what as described below exactly) analyze the emotional content thoroughly and return a JSON object containing estimated intensity levels (from 0 to 100) for the following five emotions.
Only return the following structure — no extra explanation or formatting:
{
  "anxiety": <Number>,
  "depression": <Number>,
  "stress": <Number>,
  "happiness": <Number>,
  "anger": <Number>
}`

// chatSuffix keeps help-chat replies short and warm.
const chatSuffix = `(keep the response medium length and empathetic add emojies when needed)`

// scoresRequest builds the full analysis prompt for a piece of text.
func scoresRequest(text string) string {
	return fmt.Sprintf("%s (%s)", text, scoresPrompt)
}

// chatRequest builds the help-chat prompt for one user message.
func chatRequest(message string) string {
	return fmt.Sprintf("%s %s", message, chatSuffix)
}

// challengesRequest builds the daily-challenge prompt from the most recent
// emotion record. The record is embedded as JSON, matching the shape the
// model was asked to produce in the first place.
func challengesRequest(latest models.EmotionRecord) string {
	levels, _ := json.Marshal(latest)
	return fmt.Sprintf(`Based on the following emotional levels, generate %d daily challenges to help improve the user's well-being.
Emotional levels: %s.
Only return the challenges in a JSON array format like this:
[
  "Challenge 1",
  "Challenge 2",
  "Challenge 3",
  "Challenge 4",
  "Challenge 5"
]`, models.ChallengeCount, levels)
}
