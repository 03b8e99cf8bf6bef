// Package models defines the client-side domain types: session identity,
// journal entries, emotion records, the daily challenge set, and chat
// transcript messages. JSON tags follow the backend wire format.
package models

import "time"

// Session is the client-held identity derived from the decoded bearer token.
// The client never validates the token itself; validity is delegated to the
// backend on each request.
type Session struct {
	UserID string
	Name   string
}

// JournalEntry is a free-text journal entry owned by the backend.
// Immutable once created except for deletion.
type JournalEntry struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"ID"`
	Text      string    `json:"journalentry"`
	CreatedAt time.Time `json:"datetime"`
}

// EmotionScores holds the five derived emotion intensities, each 0–100.
// A zero value is a legitimate score; absence of scores is expressed by the
// surrounding error, never by a zeroed struct.
type EmotionScores struct {
	Anxiety    int `json:"anxiety"`
	Depression int `json:"depression"`
	Stress     int `json:"stress"`
	Happiness  int `json:"happiness"`
	Anger      int `json:"anger"`
}

// EmotionRecord is a persisted, timestamped set of emotion scores.
// Records are created from a journal entry's analysis or a quiz submission;
// one record does not necessarily map to one entry.
type EmotionRecord struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"ID"`
	CreatedAt time.Time `json:"datetime"`
	EmotionScores
}

// ChatSender identifies a chat transcript participant.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessage is one message of the in-memory help-chat transcript.
// Transcripts live only for the duration of a chat session.
type ChatMessage struct {
	ID     string
	Sender ChatSender
	Text   string
}
