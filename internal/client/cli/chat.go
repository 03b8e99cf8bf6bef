package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/mindwell/mindwell/internal/client/services"
)

// Chat runs the help-bot conversation until the user types '/quit'.
// Transcripts are discarded when the chat ends.
func (a *App) Chat(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	printlnFn("Start a conversation with your help bot! Type '/quit' to leave.")
	defer a.chat.Reset()

	for {
		line, err := getSimpleText(a.reader, "you", a.out)
		if err != nil {
			return nil
		}
		if strings.EqualFold(line, "/quit") {
			return nil
		}

		reply, err := a.chat.Send(ctx, line)
		if err != nil {
			if errors.Is(err, services.ErrEmptyMessage) {
				printlnFn("Please enter a message.")
				continue
			}
			printlnFn("Chat failed:", err)
			continue
		}
		printlnFn("bot:", reply.Text)
	}
}
