package services

import (
	"context"
	"fmt"
	"time"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/utils"
)

type ProfileStore interface {
	Upsert(ctx context.Context, p models.Profile) error
	Find(ctx context.Context, email string) (*models.Profile, error)
}

// ImageUploader stores a base64 data-URI image and returns its public URL.
type ImageUploader func(base64Data, filenamePrefix string) (string, error)

type ProfileInput struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	ProfilePicture string  `json:"profile_picture"`
}

type ProfileService struct {
	store    ProfileStore
	uploader ImageUploader
	now      func() time.Time
}

// NewProfileService accepts a nil uploader; pictures are then ignored.
func NewProfileService(store ProfileStore, uploader ImageUploader) *ProfileService {
	return &ProfileService{store: store, uploader: uploader, now: time.Now}
}

func (s *ProfileService) StoreProfile(ctx context.Context, email string, in ProfileInput) (*models.Profile, error) {
	if in.Name == "" || in.Age <= 0 || in.Gender == "" || in.Height <= 0 || in.Weight <= 0 {
		return nil, fmt.Errorf("missing required fields: %w", ErrInvalidInput)
	}

	bmi, err := utils.CalculateBMI(in.Height, in.Weight)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}

	p := models.Profile{
		Email:     email,
		Name:      in.Name,
		Age:       in.Age,
		Gender:    in.Gender,
		Height:    in.Height,
		Weight:    in.Weight,
		BMI:       bmi,
		CreatedAt: s.now().UTC(),
	}

	if in.ProfilePicture != "" && s.uploader != nil {
		url, err := s.uploader(in.ProfilePicture, email)
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile picture: %w", err)
		}
		p.ProfilePicture = url
	}

	if err := s.store.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	return s.store.Find(ctx, email)
}

// ComputeBMI is a pure calculation; nothing is stored.
func (s *ProfileService) ComputeBMI(height, weight float64) (float64, error) {
	bmi, err := utils.CalculateBMI(height, weight)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}
	return bmi, nil
}
