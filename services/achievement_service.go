package services

import (
	"context"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type AchievementService struct {
	store AchievementStore
}

func NewAchievementService(store AchievementStore) *AchievementService {
	return &AchievementService{store: store}
}

func (s *AchievementService) ListAchievements(ctx context.Context, user string) ([]models.Achievement, error) {
	return s.store.ListByOwner(ctx, user)
}

// LikeAchievement bumps the like counter on the caller's own achievement,
// located by exact title.
func (s *AchievementService) LikeAchievement(ctx context.Context, user, title string) error {
	return s.store.IncrementLikes(ctx, user, title)
}
