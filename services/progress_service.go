package services

import (
	"context"
	"fmt"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type ProgressStore interface {
	Find(ctx context.Context, user string) (*models.Progress, error)
	Upsert(ctx context.Context, user string, days int, badge *string) error
}

type AchievementStore interface {
	Insert(ctx context.Context, a models.Achievement) error
	ListByOwner(ctx context.Context, user string) ([]models.Achievement, error)
	IncrementLikes(ctx context.Context, user, title string) error
}

type SleepStore interface {
	Insert(ctx context.Context, e models.SleepEntry) error
}

// Streak thresholds. Reaching the top badge wraps the counter back to zero.
const (
	BadgeBeginner     = "🏅 Beginner Badge"
	BadgeIntermediate = "🥈 Intermediate Badge"
	BadgeAdvanced     = "🏆 Advanced Badge"
	WellRestedBadge   = "🌙 Well-Rested Badge"
)

// TrackResult is what one recorded workout day produced.
type TrackResult struct {
	CompletedDays int
	Badge         *string
	Wrapped       bool // counter reset to zero (top badge reached)
}

// ProgressService runs the per-user day-streak state machine and writes
// achievement records when a threshold is crossed.
type ProgressService struct {
	progress     ProgressStore
	achievements AchievementStore
	sleep        SleepStore
}

func NewProgressService(progress ProgressStore, achievements AchievementStore, sleep SleepStore) *ProgressService {
	return &ProgressService{progress: progress, achievements: achievements, sleep: sleep}
}

// RecordWorkoutDay increments the streak by exactly one. The read and the
// upsert are separate store calls, so concurrent calls for the same user can
// both observe the old count.
func (s *ProgressService) RecordWorkoutDay(ctx context.Context, user string) (TrackResult, error) {
	prev, err := s.progress.Find(ctx, user)
	if err != nil && !isNotFound(err) {
		return TrackResult{}, err
	}

	days := 1
	if prev != nil {
		days = prev.CompletedDays + 1
	}
	achievementDays := days

	var badge *string
	switch days {
	case 3:
		badge = strPtr(BadgeBeginner)
	case 5:
		badge = strPtr(BadgeIntermediate)
	case 7:
		badge = strPtr(BadgeAdvanced)
		days = 0
	}

	if err := s.progress.Upsert(ctx, user, days, badge); err != nil {
		return TrackResult{}, err
	}

	if badge != nil {
		a := models.Achievement{
			User:        user,
			Title:       fmt.Sprintf("🎖 %s", *badge),
			Description: fmt.Sprintf("Congratulations! You've earned the %s for completing %d workout days!", *badge, achievementDays),
			Comments:    []models.Comment{},
		}
		if err := s.achievements.Insert(ctx, a); err != nil {
			return TrackResult{}, err
		}
	}

	return TrackResult{CompletedDays: days, Badge: badge, Wrapped: days == 0}, nil
}

// GetProgress never mutates; absent records read as a fresh streak.
func (s *ProgressService) GetProgress(ctx context.Context, user string) (*models.Progress, error) {
	p, err := s.progress.Find(ctx, user)
	if isNotFound(err) {
		return &models.Progress{User: user, CompletedDays: 0, Badge: nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProgressService) ResetProgress(ctx context.Context, user string) error {
	return s.progress.Upsert(ctx, user, 0, nil)
}

// RecordSleep logs the entry and, for more than six hours, awards a
// Well-Rested achievement. No dedup: every qualifying night earns another
// record. Independent of the day streak.
func (s *ProgressService) RecordSleep(ctx context.Context, user, date string, hours float64) (*string, error) {
	if err := s.sleep.Insert(ctx, models.SleepEntry{User: user, Date: date, SleepHours: hours}); err != nil {
		return nil, err
	}
	if hours <= 6 {
		return nil, nil
	}
	a := models.Achievement{
		User:        user,
		Title:       fmt.Sprintf("🎖 %s", WellRestedBadge),
		Description: "Congratulations! You've earned the Well-Rested Badge for sleeping more than 6 hours!",
		Comments:    []models.Comment{},
	}
	if err := s.achievements.Insert(ctx, a); err != nil {
		return nil, err
	}
	return strPtr(WellRestedBadge), nil
}

func strPtr(s string) *string { return &s }
