package services

import "github.com/terraincognita07/pocketlove/internal/models"

type SetupUserRepository interface {
	FindOwner() (models.User, bool, error)
}

type SetupStatus struct {
	RequiresOnboarding bool `json:"requiresOnboarding"`
	LockEnabled        bool `json:"lockEnabled"`
}

// SetupService answers the first request a client makes, before any
// profile data is unlocked.
type SetupService struct {
	users SetupUserRepository
}

func NewSetupService(users SetupUserRepository) *SetupService {
	return &SetupService{users: users}
}

func (service *SetupService) Status() (SetupStatus, error) {
	owner, found, err := service.users.FindOwner()
	if err != nil {
		return SetupStatus{}, err
	}
	if !found {
		return SetupStatus{RequiresOnboarding: true}, nil
	}
	return SetupStatus{LockEnabled: owner.HasPasscode()}, nil
}
