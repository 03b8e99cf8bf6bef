// Package cli implements the interactive MindWell shell: a REPL whose
// command set is gated by login state, driving the services layer.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mindwell/mindwell/internal/client/ai"
	"github.com/mindwell/mindwell/internal/client/api"
	"github.com/mindwell/mindwell/internal/client/config"
	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/client/quiz"
	"github.com/mindwell/mindwell/internal/client/repositories"
	"github.com/mindwell/mindwell/internal/client/services"
	"github.com/mindwell/mindwell/internal/logging"
)

// App wires configuration, services and terminal I/O into one shell.
type App struct {
	config *config.Config
	log    logging.Logger

	auth       services.AuthService
	entries    services.EntryService
	levels     services.LevelService
	challenges services.ChallengeService
	quizzes    services.QuizService
	chat       services.ChatService

	session *models.Session

	// Cached results of the most recent list commands, so numeric
	// arguments (show 2, delentry 3) can be mapped back to server ids.
	lastEntries []models.JournalEntry
	lastLevels  []models.EmotionRecord

	quizForm *quiz.Form

	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB
}

// NewApp builds the full application from configuration.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	repos, err := repositories.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		log.Error(ctx, "error initializing local cache database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)

	bridge, err := ai.NewGeminiBridge(ctx, c.GeminiAPIKey, c.GeminiModel)
	if err != nil {
		log.Error(ctx, "error initializing generative bridge", "error", err)
		return nil, err
	}

	return &App{
		config:     c,
		log:        log,
		auth:       services.NewAuthService(apiClient, repos.DB, log),
		entries:    services.NewEntryService(apiClient, bridge, log),
		levels:     services.NewLevelService(apiClient, log),
		challenges: services.NewChallengeService(apiClient, bridge, repos.Challenges, log),
		quizzes:    services.NewQuizService(apiClient, bridge, log),
		chat:       services.NewChatService(bridge, log),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		db:         repos.DB,
	}, nil
}

// Run restores the session from the stored token and starts the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	s, err := a.auth.Restore(ctx)
	if err != nil {
		printlnFn("Stored login could not be read. Please log in again.")
	}
	a.session = s
	if s != nil {
		printlnFn("Welcome back, " + s.Name + "!")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// status renders the prompt decoration: the display name when logged in.
func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	if a.session.Name != "" {
		return "(" + a.session.Name + ")"
	}
	return "(" + a.session.UserID + ")"
}

// currentQuiz keeps one in-progress form per app so an aborted quiz can be
// resumed within the session.
func (a *App) currentQuiz() *quiz.Form {
	if a.quizForm == nil {
		a.quizForm = quiz.NewForm()
	}
	return a.quizForm
}
