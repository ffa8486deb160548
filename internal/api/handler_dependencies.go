package api

import (
	"github.com/terraincognita07/pocketlove/internal/db"
	"github.com/terraincognita07/pocketlove/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.setupService = services.NewSetupService(handler.repositories.Users)
	handler.profileService = services.NewProfileService(handler.repositories.UserData)
	handler.authService = services.NewAuthService(handler.profileService)
	handler.onboardingSvc = services.NewOnboardingService(handler.profileService)
	handler.periodService = services.NewPeriodService(handler.profileService)
	handler.moodService = services.NewMoodService(handler.profileService)
	handler.milestoneService = services.NewMilestoneService(handler.profileService, handler.location)
	handler.specialDateService = services.NewSpecialDateService(handler.profileService)
	handler.journalService = services.NewJournalService(handler.profileService)
	handler.settingsService = services.NewSettingsService(handler.profileService)
	return handler
}
