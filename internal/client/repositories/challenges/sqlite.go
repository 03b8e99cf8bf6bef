package challenges

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/mindwell/mindwell/internal/client/models"
	"github.com/mindwell/mindwell/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.DailyChallengeSet, error) {
	var (
		challengesJSON string
		generatedAt    string
		completedJSON  string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT challenges, generated_at, completed FROM challenge_cache WHERE id = 1`,
	).Scan(&challengesJSON, &generatedAt, &completedJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge cache: %w", err)
	}

	set := &models.DailyChallengeSet{Completed: make(map[int]struct{})}

	if err := json.Unmarshal([]byte(challengesJSON), &set.Challenges); err != nil {
		return nil, fmt.Errorf("corrupt challenge cache: %w", err)
	}
	set.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt challenge cache timestamp: %w", err)
	}

	var completed []int
	if err := json.Unmarshal([]byte(completedJSON), &completed); err != nil {
		return nil, fmt.Errorf("corrupt challenge completion marks: %w", err)
	}
	for _, i := range completed {
		set.Completed[i] = struct{}{}
	}
	return set, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, set *models.DailyChallengeSet) error {
	challengesJSON, err := json.Marshal(set.Challenges)
	if err != nil {
		return fmt.Errorf("failed to encode challenges: %w", err)
	}

	completed := make([]int, 0, len(set.Completed))
	for i := range set.Completed {
		completed = append(completed, i)
	}
	sort.Ints(completed)
	completedJSON, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("failed to encode completion marks: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO challenge_cache (id, challenges, generated_at, completed)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET challenges = excluded.challenges,
			generated_at = excluded.generated_at,
			completed = excluded.completed
	`, string(challengesJSON), set.GeneratedAt.Format(time.RFC3339), string(completedJSON))
	if err != nil {
		return fmt.Errorf("failed to save challenge cache: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM challenge_cache`)
	if err != nil {
		return fmt.Errorf("failed to clear challenge cache: %w", err)
	}
	return nil
}
