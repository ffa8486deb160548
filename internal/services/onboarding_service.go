package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/pocketlove/internal/models"
)

var (
	ErrAlreadyOnboarded        = errors.New("already onboarded")
	ErrOnboardingNameRequired  = errors.New("name is required")
	ErrOnboardingStartInFuture = errors.New("last period start is in the future")
	ErrOnboardingStartRequired = errors.New("last period start is required")
)

const onboardingInitialEntryNotes = "Initial entry"

type OnboardingInput struct {
	Name            string
	LastPeriodStart string
	Passcode        string
}

type OnboardingService struct {
	profiles *ProfileService
}

func NewOnboardingService(profiles *ProfileService) *OnboardingService {
	return &OnboardingService{profiles: profiles}
}

// Complete creates the profile with a single seeded period entry. Only the
// first of several concurrent calls succeeds.
func (service *OnboardingService) Complete(input OnboardingInput, now time.Time) (models.UserData, error) {
	name, err := NormalizeDisplayName(input.Name)
	if err != nil {
		return models.UserData{}, err
	}
	rawStart := strings.TrimSpace(input.LastPeriodStart)
	if rawStart == "" {
		return models.UserData{}, ErrOnboardingStartRequired
	}
	start, err := ParseDay(rawStart)
	if err != nil {
		return models.UserData{}, ErrInvalidPeriodDate
	}
	if start.After(calendarDay(now)) {
		return models.UserData{}, ErrOnboardingStartInFuture
	}

	passcodeHash, err := HashPasscode(input.Passcode)
	if err != nil {
		return models.UserData{}, err
	}

	data := models.UserData{
		ID:           uuid.NewString(),
		Name:         name,
		Preferences:  models.DefaultPreferences(),
		PasscodeHash: passcodeHash,
		CycleStats: models.CycleStats{
			PeriodHistory: []models.PeriodEntry{{
				StartDate:  FormatDay(start),
				LengthDays: models.DefaultPeriodLength,
				Notes:      onboardingInitialEntryNotes,
			}},
		},
		LoveMeter:         []models.LoveLog{},
		SpecialDates:      []models.SpecialDate{},
		Journal:           []models.JournalEntry{},
		TimePassedEntries: []models.TimePassedEntry{},
	}
	return service.profiles.Create(data, now)
}
