package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

// AuthService guards the optional device passcode.
type AuthService struct {
	profiles *ProfileService
}

func NewAuthService(profiles *ProfileService) *AuthService {
	return &AuthService{profiles: profiles}
}

// LockEnabled reports whether a passcode is set. It is false before onboarding.
func (service *AuthService) LockEnabled(now time.Time) (bool, error) {
	data, err := service.profiles.Current(now)
	if err != nil {
		if errors.Is(err, ErrNotOnboarded) {
			return false, nil
		}
		return false, err
	}
	return data.PasscodeHash != "", nil
}

func (service *AuthService) Unlock(passcode string, now time.Time) (models.UserData, error) {
	data, err := service.profiles.Current(now)
	if err != nil {
		return models.UserData{}, err
	}
	if data.PasscodeHash != "" && !PasscodeMatches(data.PasscodeHash, passcode) {
		return models.UserData{}, ErrInvalidPasscode
	}
	return data, nil
}
