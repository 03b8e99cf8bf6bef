package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mindwell/mindwell/internal/client/ai"
	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/logging"
)

// ErrEmptyMessage is returned when a chat message has no text.
var ErrEmptyMessage = errors.New("message is empty")

// chatFallback is the bot's reply when the generative call fails. The chat
// stays usable; the failure is logged, not surfaced.
const chatFallback = "Sorry, I couldn't process that. Please try again."

// ChatService runs the help-chat conversation. The transcript lives only in
// memory and is discarded with the service.
type ChatService interface {
	// Send appends the user's message, obtains the bot's reply, appends it
	// and returns it.
	Send(ctx context.Context, text string) (models.ChatMessage, error)

	// Transcript returns the conversation so far, oldest first.
	Transcript() []models.ChatMessage

	// Reset discards the transcript.
	Reset()
}

type chatService struct {
	bridge   ai.Bridge
	log      logging.Logger
	messages []models.ChatMessage
}

// NewChatService constructs a ChatService with an empty transcript.
func NewChatService(bridge ai.Bridge, log logging.Logger) ChatService {
	return &chatService{bridge: bridge, log: log}
}

func (s *chatService) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	s.messages = append(s.messages, models.ChatMessage{
		ID:     uuid.NewString(),
		Sender: models.SenderUser,
		Text:   text,
	})

	reply, err := s.bridge.Chat(ctx, text)
	if err != nil {
		s.log.Warn(ctx, "chat generation failed, answering with fallback", "error", err)
		reply = chatFallback
	}

	msg := models.ChatMessage{
		ID:     uuid.NewString(),
		Sender: models.SenderBot,
		Text:   reply,
	}
	s.messages = append(s.messages, msg)
	return msg, nil
}

func (s *chatService) Transcript() []models.ChatMessage {
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *chatService) Reset() {
	s.messages = nil
}
