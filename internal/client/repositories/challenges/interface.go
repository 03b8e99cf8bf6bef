// Package challenges stores the cached daily challenge set in the local
// SQLite database. The cache holds at most one set; regeneration overwrites
// it together with its completion marks.
package challenges

import (
	"context"

	"github.com/mindwell/mindwell/internal/client/models"
)

// Repository persists the single cached DailyChallengeSet.
// Get returns (nil, nil) when no set has been cached yet.
type Repository interface {
	Get(ctx context.Context) (*models.DailyChallengeSet, error)
	Save(ctx context.Context, set *models.DailyChallengeSet) error
	Clear(ctx context.Context) error
}
