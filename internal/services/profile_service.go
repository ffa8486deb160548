package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

var ErrNotOnboarded = errors.New("onboarding required")

type UserDataStore interface {
	Load() (models.UserData, bool, error)
	Save(data models.UserData) error
	Clear() error
}

// ProfileService loads the stored profile and always hands out freshly
// recomputed cycle stats. Writes are serialized so concurrent updates never
// overwrite each other.
type ProfileService struct {
	store UserDataStore
	mu    sync.Mutex
}

func NewProfileService(store UserDataStore) *ProfileService {
	return &ProfileService{store: store}
}

func (service *ProfileService) Current(now time.Time) (models.UserData, error) {
	data, found, err := service.store.Load()
	if err != nil {
		return models.UserData{}, fmt.Errorf("load user data: %w", err)
	}
	if !found {
		return models.UserData{}, ErrNotOnboarded
	}

	stats, err := BuildCycleStats(data.CycleStats.PeriodHistory, now)
	if err != nil {
		return models.UserData{}, err
	}
	data.CycleStats = stats
	return data, nil
}

// Update applies change to the current profile, recomputes the cycle stats
// from the resulting history and persists the result.
func (service *ProfileService) Update(now time.Time, change func(data *models.UserData) error) (models.UserData, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	data, err := service.Current(now)
	if err != nil {
		return models.UserData{}, err
	}
	if err := change(&data); err != nil {
		return models.UserData{}, err
	}
	return service.save(data, now)
}

// Create stores data as the first profile. It fails with ErrAlreadyOnboarded
// when a profile exists.
func (service *ProfileService) Create(data models.UserData, now time.Time) (models.UserData, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	_, found, err := service.store.Load()
	if err != nil {
		return models.UserData{}, fmt.Errorf("load user data: %w", err)
	}
	if found {
		return models.UserData{}, ErrAlreadyOnboarded
	}
	return service.save(data, now)
}

func (service *ProfileService) save(data models.UserData, now time.Time) (models.UserData, error) {
	stats, err := BuildCycleStats(data.CycleStats.PeriodHistory, now)
	if err != nil {
		return models.UserData{}, err
	}
	data.CycleStats = stats

	if err := service.store.Save(data); err != nil {
		return models.UserData{}, fmt.Errorf("save user data: %w", err)
	}
	return data, nil
}

func (service *ProfileService) Clear() error {
	service.mu.Lock()
	defer service.mu.Unlock()

	return service.store.Clear()
}
