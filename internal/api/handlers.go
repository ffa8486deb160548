package api

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/pocketlove/internal/db"
	"github.com/terraincognita07/pocketlove/internal/i18n"
	"github.com/terraincognita07/pocketlove/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	location      *time.Location
	cookieSecure  bool
	i18n          *i18n.Manager
	validate      *validator.Validate
	unlockLimiter *attemptLimiter
	clock         func() time.Time

	repositories       *db.Repositories
	setupService       *services.SetupService
	profileService     *services.ProfileService
	authService        *services.AuthService
	onboardingSvc      *services.OnboardingService
	periodService      *services.PeriodService
	moodService        *services.MoodService
	milestoneService   *services.MilestoneService
	specialDateService *services.SpecialDateService
	journalService     *services.JournalService
	settingsService    *services.SettingsService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	handler := &Handler{
		db:            database,
		secretKey:     []byte(secret),
		location:      location,
		cookieSecure:  cookieSecure,
		i18n:          i18nManager,
		validate:      newRequestValidator(),
		unlockLimiter: newAttemptLimiter(unlockAttemptLimit, unlockAttemptWindow),
		clock:         time.Now,
	}
	return handler.withDependencies(database), nil
}

// now is the request time in the configured zone; every calendar decision
// is made against it.
func (handler *Handler) now() time.Time {
	return handler.clock().In(handler.location)
}
