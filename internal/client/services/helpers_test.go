package services

import (
	"context"
	"time"

	"github.com/mindwell/mindwell/internal/client/api"
	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/logging"
)

// nopLogger satisfies logging.Logger and discards everything.
type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

// fakeClient implements api.Client with presets and call recording.
type fakeClient struct {
	// presets
	loginCreds  *api.Credentials
	loginErr    error
	signupCreds *api.Credentials
	signupErr   error

	entries        []models.JournalEntry
	listEntriesErr error
	createdEntry   *models.JournalEntry
	createEntryErr error
	deleteEntryErr error

	levels         []models.EmotionRecord
	listLevelsErr  error
	createdLevel   *models.EmotionRecord
	createLevelErr error
	deleteLevelErr error

	// recordings
	token            string
	signupCalls      int
	createEntryText  []string
	createLevelWith  []models.EmotionScores
	createLevelAt    []time.Time
	deletedEntryIDs  []string
	deletedLevelIDs  []string
	listLevelsCalls  int
	listEntriesCalls int
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.Credentials, error) {
	return f.loginCreds, f.loginErr
}

func (f *fakeClient) Signup(ctx context.Context, name, email, password string) (*api.Credentials, error) {
	f.signupCalls++
	return f.signupCreds, f.signupErr
}

func (f *fakeClient) ListEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	f.listEntriesCalls++
	return f.entries, f.listEntriesErr
}

func (f *fakeClient) CreateEntry(ctx context.Context, userID, text string, at time.Time) (*models.JournalEntry, error) {
	f.createEntryText = append(f.createEntryText, text)
	if f.createEntryErr != nil {
		return nil, f.createEntryErr
	}
	if f.createdEntry != nil {
		return f.createdEntry, nil
	}
	return &models.JournalEntry{ID: "e-new", UserID: userID, Text: text, CreatedAt: at}, nil
}

func (f *fakeClient) DeleteEntry(ctx context.Context, id string) error {
	if f.deleteEntryErr != nil {
		return f.deleteEntryErr
	}
	f.deletedEntryIDs = append(f.deletedEntryIDs, id)
	return nil
}

func (f *fakeClient) ListLevels(ctx context.Context, userID string) ([]models.EmotionRecord, error) {
	f.listLevelsCalls++
	return f.levels, f.listLevelsErr
}

func (f *fakeClient) CreateLevel(ctx context.Context, userID string, scores models.EmotionScores, at time.Time) (*models.EmotionRecord, error) {
	f.createLevelWith = append(f.createLevelWith, scores)
	f.createLevelAt = append(f.createLevelAt, at)
	if f.createLevelErr != nil {
		return nil, f.createLevelErr
	}
	if f.createdLevel != nil {
		return f.createdLevel, nil
	}
	return &models.EmotionRecord{ID: "r-new", UserID: userID, CreatedAt: at, EmotionScores: scores}, nil
}

func (f *fakeClient) DeleteLevel(ctx context.Context, id string) error {
	if f.deleteLevelErr != nil {
		return f.deleteLevelErr
	}
	f.deletedLevelIDs = append(f.deletedLevelIDs, id)
	return nil
}

func (f *fakeClient) SetToken(token string) { f.token = token }
func (f *fakeClient) ClearToken()           { f.token = "" }

// fakeBridge implements ai.Bridge with presets and call counting.
type fakeBridge struct {
	scores    models.EmotionScores
	scoresErr error

	challenges    []string
	challengesErr error

	reply    string
	replyErr error

	analyzeCalls  int
	analyzedTexts []string
	generateCalls int
	chatCalls     int
}

func (f *fakeBridge) AnalyzeEmotions(ctx context.Context, text string) (models.EmotionScores, error) {
	f.analyzeCalls++
	f.analyzedTexts = append(f.analyzedTexts, text)
	return f.scores, f.scoresErr
}

func (f *fakeBridge) GenerateChallenges(ctx context.Context, latest models.EmotionRecord) ([]string, error) {
	f.generateCalls++
	return f.challenges, f.challengesErr
}

func (f *fakeBridge) Chat(ctx context.Context, message string) (string, error) {
	f.chatCalls++
	return f.reply, f.replyErr
}

// memChallenges is an in-memory challenges.Repository.
type memChallenges struct {
	set       *models.DailyChallengeSet
	saveCalls int
}

func (m *memChallenges) Get(ctx context.Context) (*models.DailyChallengeSet, error) {
	if m.set == nil {
		return nil, nil
	}
	cp := *m.set
	cp.Completed = make(map[int]struct{}, len(m.set.Completed))
	for i := range m.set.Completed {
		cp.Completed[i] = struct{}{}
	}
	cp.Challenges = append([]string(nil), m.set.Challenges...)
	return &cp, nil
}

func (m *memChallenges) Save(ctx context.Context, set *models.DailyChallengeSet) error {
	m.saveCalls++
	cp := *set
	m.set = &cp
	return nil
}

func (m *memChallenges) Clear(ctx context.Context) error {
	m.set = nil
	return nil
}
