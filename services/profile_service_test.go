package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type fakeProfileStore struct {
	mu      sync.Mutex
	records map[string]models.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{records: make(map[string]models.Profile)}
}

func (f *fakeProfileStore) Upsert(_ context.Context, p models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[p.Email] = p
	return nil
}

func (f *fakeProfileStore) Find(_ context.Context, email string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.records[email]
	if !ok {
		return nil, fmt.Errorf("profile for %s: %w", email, ErrNotFound)
	}
	cp := p
	return &cp, nil
}

func TestStoreProfileComputesBMI(t *testing.T) {
	store := newFakeProfileStore()
	svc := NewProfileService(store, nil)

	p, err := svc.StoreProfile(context.Background(), "erin@x.com", ProfileInput{
		Name:   "Erin",
		Age:    28,
		Gender: "female",
		Height: 175,
		Weight: 70,
	})
	require.NoError(t, err)
	assert.Equal(t, 22.86, p.BMI)

	stored, err := svc.GetProfile(context.Background(), "erin@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Erin", stored.Name)
	assert.Empty(t, stored.ProfilePicture, "no uploader, picture ignored")
}

func TestStoreProfileRequiresAllFields(t *testing.T) {
	svc := NewProfileService(newFakeProfileStore(), nil)

	_, err := svc.StoreProfile(context.Background(), "erin@x.com", ProfileInput{
		Name: "Erin", Age: 28, Gender: "female", Height: 0, Weight: 70,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStoreProfileUploadsPicture(t *testing.T) {
	store := newFakeProfileStore()
	var gotPrefix string
	uploader := func(data, prefix string) (string, error) {
		gotPrefix = prefix
		return "https://cdn.example.com/" + prefix + ".jpg", nil
	}
	svc := NewProfileService(store, uploader)

	p, err := svc.StoreProfile(context.Background(), "erin@x.com", ProfileInput{
		Name:           "Erin",
		Age:            28,
		Gender:         "female",
		Height:         175,
		Weight:         70,
		ProfilePicture: "data:image/jpeg;base64,AAAA",
	})
	require.NoError(t, err)
	assert.Equal(t, "erin@x.com", gotPrefix)
	assert.Equal(t, "https://cdn.example.com/erin@x.com.jpg", p.ProfilePicture)
}

func TestStoreProfileUploadFailureSurfaces(t *testing.T) {
	uploader := func(string, string) (string, error) {
		return "", fmt.Errorf("bucket unreachable")
	}
	svc := NewProfileService(newFakeProfileStore(), uploader)

	_, err := svc.StoreProfile(context.Background(), "erin@x.com", ProfileInput{
		Name: "Erin", Age: 28, Gender: "female", Height: 175, Weight: 70,
		ProfilePicture: "data:image/jpeg;base64,AAAA",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile picture")
}
