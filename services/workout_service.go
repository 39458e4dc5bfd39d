package services

import (
	"context"
	"fmt"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type AssessmentStore interface {
	Upsert(ctx context.Context, a models.FitnessAssessment) error
	Find(ctx context.Context, user string) (*models.FitnessAssessment, error)
}

const (
	LevelBeginner     = "Beginner 🟢"
	LevelIntermediate = "Intermediate 🟡"
	LevelAdvanced     = "Advanced 🔴"
)

type PlanDay struct {
	Day     string `json:"day"`
	Workout string `json:"workout"`
}

var workoutPlans = map[string][]PlanDay{
	LevelBeginner: {
		{Day: "Day 1", Workout: "Jumping Jacks x 30 sec, Squats x 10, Push-ups x 5"},
		{Day: "Day 2", Workout: "High Knees x 30 sec, Lunges x 10, Plank x 20 sec"},
		{Day: "Day 3", Workout: "Mountain Climbers x 30 sec, Wall Sit x 20 sec, Crunches x 15"},
		{Day: "Day 4", Workout: "Jogging in Place x 30 sec, Bridges x 10, Shoulder Taps x 10"},
		{Day: "Day 5", Workout: "Burpees x 5, Side Lunges x 10, Plank x 30 sec"},
	},
	LevelIntermediate: {
		{Day: "Day 1", Workout: "Jump Rope x 1 min, Squats x 20, Push-ups x 10"},
		{Day: "Day 2", Workout: "Burpees x 10, Lunges x 15, Plank x 40 sec"},
		{Day: "Day 3", Workout: "Mountain Climbers x 30 sec, Bicycle Crunches x 20, Wall Sit x 30 sec"},
		{Day: "Day 4", Workout: "Jogging x 3 min, Box Jumps x 10, Plank Shoulder Taps x 15"},
		{Day: "Day 5", Workout: "Jump Squats x 15, Bulgarian Split Squats x 10, Plank x 1 min"},
	},
	LevelAdvanced: {
		{Day: "Day 1", Workout: "Sprint x 2 min, Push-ups x 30, Squats x 30"},
		{Day: "Day 2", Workout: "Burpees x 20, Pull-ups x 10, Hanging Leg Raises x 15"},
		{Day: "Day 3", Workout: "Box Jumps x 20, Dead Hangs x 30 sec, Dips x 15"},
		{Day: "Day 4", Workout: "Running x 5 min, Power Cleans x 10, Plank Hold x 2 min"},
		{Day: "Day 5", Workout: "Jump Lunges x 20, Front Squats x 15, Push Press x 12"},
	},
}

// WorkoutService grades the self-assessment and serves the static five-day
// plan for the resulting level.
type WorkoutService struct {
	store AssessmentStore
}

func NewWorkoutService(store AssessmentStore) *WorkoutService {
	return &WorkoutService{store: store}
}

func (s *WorkoutService) SubmitAssessment(ctx context.Context, user string, pushups, squats, plankSeconds int) (string, error) {
	if pushups < 0 || squats < 0 || plankSeconds < 0 {
		return "", fmt.Errorf("assessment values must be non-negative: %w", ErrInvalidInput)
	}

	var level string
	switch {
	case pushups < 10 || squats < 10 || plankSeconds < 20:
		level = LevelBeginner
	case pushups < 20 || squats < 20 || plankSeconds < 40:
		level = LevelIntermediate
	default:
		level = LevelAdvanced
	}

	a := models.FitnessAssessment{
		User:         user,
		Level:        level,
		Pushups:      pushups,
		Squats:       squats,
		PlankSeconds: plankSeconds,
	}
	if err := s.store.Upsert(ctx, a); err != nil {
		return "", err
	}
	return level, nil
}

func (s *WorkoutService) GetFitnessLevel(ctx context.Context, user string) (string, error) {
	a, err := s.store.Find(ctx, user)
	if err != nil {
		return "", err
	}
	return a.Level, nil
}

// GetWorkoutPlan requires a prior assessment; an unknown stored level yields
// an empty plan rather than an error.
func (s *WorkoutService) GetWorkoutPlan(ctx context.Context, user string) ([]PlanDay, error) {
	a, err := s.store.Find(ctx, user)
	if err != nil {
		return nil, err
	}
	plan, ok := workoutPlans[a.Level]
	if !ok {
		return []PlanDay{}, nil
	}
	return plan, nil
}
