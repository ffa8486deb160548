package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/pocketlove/internal/models"
)

const maxDisplayNameLength = 64

var ErrDisplayNameTooLong = errors.New("display name too long")

func NormalizeDisplayName(raw string) (string, error) {
	displayName := strings.TrimSpace(raw)
	if displayName == "" {
		return "", ErrOnboardingNameRequired
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameLength {
		return "", ErrDisplayNameTooLong
	}
	return displayName, nil
}

func (service *SettingsService) UpdateName(raw string, now time.Time) (models.UserData, error) {
	name, err := NormalizeDisplayName(raw)
	if err != nil {
		return models.UserData{}, err
	}
	return service.profiles.Update(now, func(data *models.UserData) error {
		data.Name = name
		return nil
	})
}
