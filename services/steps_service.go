package services

import (
	"context"
	"fmt"
	"time"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type StepsStore interface {
	FindByDate(ctx context.Context, email, date string) (*models.StepEntry, error)
	Upsert(ctx context.Context, email, date string, steps int) error
	TotalBetween(ctx context.Context, email, from, to string) (int, error)
}

type StepHistory struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

type StepsService struct {
	store StepsStore
	now   func() time.Time
}

func NewStepsService(store StepsStore) *StepsService {
	return &StepsService{store: store, now: time.Now}
}

const dateLayout = "2006-01-02"

// UpdateSteps overwrites today's count; one document per user per UTC day.
func (s *StepsService) UpdateSteps(ctx context.Context, email string, steps int) (string, error) {
	if steps < 0 {
		return "", fmt.Errorf("steps value is required: %w", ErrInvalidInput)
	}
	date := s.now().UTC().Format(dateLayout)
	if err := s.store.Upsert(ctx, email, date, steps); err != nil {
		return "", err
	}
	return date, nil
}

// GetSteps reads today's count, zero when nothing was logged.
func (s *StepsService) GetSteps(ctx context.Context, email string) (int, string, error) {
	date := s.now().UTC().Format(dateLayout)
	entry, err := s.store.FindByDate(ctx, email, date)
	if isNotFound(err) {
		return 0, date, nil
	}
	if err != nil {
		return 0, date, err
	}
	return entry.Steps, date, nil
}

// GetStepHistory returns today's count plus rolling 7-day and 30-day totals
// (both windows include today).
func (s *StepsService) GetStepHistory(ctx context.Context, email string) (StepHistory, error) {
	today := s.now().UTC()
	daily, _, err := s.GetSteps(ctx, email)
	if err != nil {
		return StepHistory{}, err
	}

	to := today.Format(dateLayout)
	weekly, err := s.store.TotalBetween(ctx, email, today.AddDate(0, 0, -6).Format(dateLayout), to)
	if err != nil {
		return StepHistory{}, err
	}
	monthly, err := s.store.TotalBetween(ctx, email, today.AddDate(0, 0, -29).Format(dateLayout), to)
	if err != nil {
		return StepHistory{}, err
	}

	return StepHistory{Daily: daily, Weekly: weekly, Monthly: monthly}, nil
}
