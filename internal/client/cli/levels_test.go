package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/mindwell/mindwell/internal/client/models"
)

type fakeLevelService struct {
	levels  []models.EmotionRecord
	listErr error

	deletedIDs  []string
	deleteErrs  []error
	deleteCalls int
}

func (f *fakeLevelService) List(_ context.Context, userID string) ([]models.EmotionRecord, error) {
	return f.levels, f.listErr
}

func (f *fakeLevelService) Create(_ context.Context, userID string, scores models.EmotionScores) (*models.EmotionRecord, error) {
	return nil, errors.New("not used")
}

func (f *fakeLevelService) Delete(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	f.deleteCalls++
	if len(f.deleteErrs) > 0 {
		err := f.deleteErrs[0]
		f.deleteErrs = f.deleteErrs[1:]
		return err
	}
	return nil
}

func TestLevels_CachesList(t *testing.T) {
	silenceOutput(t)

	f := &fakeLevelService{levels: []models.EmotionRecord{
		{ID: "r1", EmotionScores: models.EmotionScores{Anxiety: 40}},
	}}
	a := &App{levels: f, session: &models.Session{UserID: "u1"}}

	if err := a.Levels(context.Background()); err != nil {
		t.Fatalf("Levels err: %v", err)
	}
	if len(a.lastLevels) != 1 || a.lastLevels[0].ID != "r1" {
		t.Fatalf("list not cached: %+v", a.lastLevels)
	}
}

func TestDeleteLevel_Confirmed(t *testing.T) {
	silenceOutput(t)
	stubInputs(t, []string{"y"}, nil)

	f := &fakeLevelService{}
	a := &App{levels: f, session: &models.Session{UserID: "u1"}}
	a.lastLevels = []models.EmotionRecord{{ID: "r1"}}

	if err := a.DeleteLevel(context.Background(), "1"); err != nil {
		t.Fatalf("DeleteLevel err: %v", err)
	}
	if len(f.deletedIDs) != 1 || f.deletedIDs[0] != "r1" {
		t.Fatalf("wrong id deleted: %v", f.deletedIDs)
	}
	if len(a.lastLevels) != 0 {
		t.Fatalf("cache not updated: %+v", a.lastLevels)
	}
}

func TestDeleteLevel_RetryUntilSuccess(t *testing.T) {
	silenceOutput(t)
	// confirm delete, then agree to one retry after the first failure
	stubInputs(t, []string{"y", "y"}, nil)

	f := &fakeLevelService{deleteErrs: []error{errors.New("timeout")}}
	a := &App{levels: f, session: &models.Session{UserID: "u1"}}
	a.lastLevels = []models.EmotionRecord{{ID: "r1"}}

	if err := a.DeleteLevel(context.Background(), "1"); err != nil {
		t.Fatalf("DeleteLevel err: %v", err)
	}
	if f.deleteCalls != 2 {
		t.Fatalf("expected 2 delete attempts, got %d", f.deleteCalls)
	}
}

func TestDeleteLevel_RetryDeclinedReturnsError(t *testing.T) {
	silenceOutput(t)
	stubInputs(t, []string{"y", "n"}, nil)

	f := &fakeLevelService{deleteErrs: []error{errors.New("timeout")}}
	a := &App{levels: f, session: &models.Session{UserID: "u1"}}
	a.lastLevels = []models.EmotionRecord{{ID: "r1"}}

	if err := a.DeleteLevel(context.Background(), "1"); err == nil {
		t.Fatalf("want error when retry declined")
	}
	if len(a.lastLevels) != 1 {
		t.Fatalf("record must stay in cache after failed delete")
	}
}
