package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type fakeStepsStore struct {
	mu      sync.Mutex
	entries map[string]map[string]int // email -> date -> steps
}

func newFakeStepsStore() *fakeStepsStore {
	return &fakeStepsStore{entries: make(map[string]map[string]int)}
}

func (f *fakeStepsStore) FindByDate(_ context.Context, email, date string) (*models.StepEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	steps, ok := f.entries[email][date]
	if !ok {
		return nil, fmt.Errorf("steps for %s on %s: %w", email, date, ErrNotFound)
	}
	return &models.StepEntry{Email: email, Date: date, Steps: steps}, nil
}

func (f *fakeStepsStore) Upsert(_ context.Context, email, date string, steps int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entries[email] == nil {
		f.entries[email] = make(map[string]int)
	}
	f.entries[email][date] = steps
	return nil
}

func (f *fakeStepsStore) TotalBetween(_ context.Context, email, from, to string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for date, steps := range f.entries[email] {
		if date >= from && date <= to {
			total += steps
		}
	}
	return total, nil
}

func newStepsServiceAt(day time.Time) (*StepsService, *fakeStepsStore) {
	store := newFakeStepsStore()
	svc := NewStepsService(store)
	svc.now = func() time.Time { return day }
	return svc, store
}

func TestUpdateStepsOverwritesSameDay(t *testing.T) {
	day := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	svc, _ := newStepsServiceAt(day)
	ctx := context.Background()

	date, err := svc.UpdateSteps(ctx, "erin@x.com", 4000)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", date)

	_, err = svc.UpdateSteps(ctx, "erin@x.com", 9500)
	require.NoError(t, err)

	steps, date, err := svc.GetSteps(ctx, "erin@x.com")
	require.NoError(t, err)
	assert.Equal(t, 9500, steps, "same-day update replaces, not accumulates")
	assert.Equal(t, "2025-03-15", date)
}

func TestUpdateStepsRejectsNegative(t *testing.T) {
	svc, _ := newStepsServiceAt(time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC))

	_, err := svc.UpdateSteps(context.Background(), "erin@x.com", -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStepsDefaultsToZero(t *testing.T) {
	svc, _ := newStepsServiceAt(time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC))

	steps, date, err := svc.GetSteps(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Zero(t, steps)
	assert.Equal(t, "2025-03-15", date)
}

func TestGetStepHistoryWindows(t *testing.T) {
	day := time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC)
	svc, store := newStepsServiceAt(day)
	ctx := context.Background()

	seed := map[string]int{
		"2025-03-30": 1000, // today
		"2025-03-25": 2000, // inside the 7-day window
		"2025-03-23": 3000, // just outside 7 days, inside 30
		"2025-03-01": 4000, // inside 30 days
		"2025-02-28": 5000, // outside both windows
	}
	for date, steps := range seed {
		require.NoError(t, store.Upsert(ctx, "erin@x.com", date, steps))
	}

	hist, err := svc.GetStepHistory(ctx, "erin@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1000, hist.Daily)
	assert.Equal(t, 3000, hist.Weekly)
	assert.Equal(t, 10000, hist.Monthly)
}
