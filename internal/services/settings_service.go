package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

const MaxWarningDays = 14

var ErrInvalidPreferences = errors.New("invalid preferences")

type SettingsService struct {
	profiles *ProfileService
}

func NewSettingsService(profiles *ProfileService) *SettingsService {
	return &SettingsService{profiles: profiles}
}

func (service *SettingsService) UpdatePreferences(preferences models.Preferences, now time.Time) (models.UserData, error) {
	normalized, err := NormalizePreferences(preferences)
	if err != nil {
		return models.UserData{}, err
	}
	return service.profiles.Update(now, func(data *models.UserData) error {
		data.Preferences = normalized
		return nil
	})
}

// ChangePasscode replaces the privacy lock passcode. An empty next passcode
// turns the lock off; the current passcode is required while a lock is set.
func (service *SettingsService) ChangePasscode(current string, next string, confirm string, now time.Time) (models.UserData, error) {
	if err := ValidatePasscodeChange(current, next, confirm); err != nil {
		return models.UserData{}, err
	}
	nextHash, err := HashPasscode(next)
	if err != nil {
		return models.UserData{}, err
	}
	return service.profiles.Update(now, func(data *models.UserData) error {
		if data.PasscodeHash != "" && !PasscodeMatches(data.PasscodeHash, current) {
			return ErrInvalidPasscode
		}
		data.PasscodeHash = nextHash
		return nil
	})
}

func (service *SettingsService) ClearAll() error {
	return service.profiles.Clear()
}

func NormalizePreferences(preferences models.Preferences) (models.Preferences, error) {
	preferences.Theme = strings.TrimSpace(preferences.Theme)
	if preferences.Theme == "" {
		preferences.Theme = models.ThemeMinimalCute
	}
	preferences.Language = strings.ToLower(strings.TrimSpace(preferences.Language))

	for _, days := range []int{
		preferences.NotificationSettings.PeriodWarningDays,
		preferences.NotificationSettings.PmsWarningDays,
		preferences.NotificationSettings.FertilityWarningDays,
	} {
		if days < 0 || days > MaxWarningDays {
			return models.Preferences{}, ErrInvalidPreferences
		}
	}
	return preferences, nil
}
