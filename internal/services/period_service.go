package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

var (
	ErrPeriodAlreadyLogged = errors.New("period already logged for this date")
	ErrPeriodNotFound      = errors.New("period not found")
)

// PeriodInput carries optional fields: an empty StartDate means today and a
// zero LengthDays means the default length.
type PeriodInput struct {
	StartDate  string
	LengthDays int
	Notes      string
}

type PeriodService struct {
	profiles *ProfileService
}

func NewPeriodService(profiles *ProfileService) *PeriodService {
	return &PeriodService{profiles: profiles}
}

func (service *PeriodService) Log(input PeriodInput, now time.Time) (models.UserData, error) {
	entry, err := normalizePeriodInput(input, now)
	if err != nil {
		return models.UserData{}, err
	}

	return service.profiles.Update(now, func(data *models.UserData) error {
		if findPeriodIndex(data.CycleStats.PeriodHistory, entry.StartDate) >= 0 {
			return ErrPeriodAlreadyLogged
		}
		data.CycleStats.PeriodHistory = append(data.CycleStats.PeriodHistory, entry)
		return nil
	})
}

func (service *PeriodService) Update(startDate string, input PeriodInput, now time.Time) (models.UserData, error) {
	return service.profiles.Update(now, func(data *models.UserData) error {
		index := findPeriodIndex(data.CycleStats.PeriodHistory, startDate)
		if index < 0 {
			return ErrPeriodNotFound
		}

		current := data.CycleStats.PeriodHistory[index]
		if strings.TrimSpace(input.StartDate) == "" {
			input.StartDate = current.StartDate
		}
		if input.LengthDays == 0 {
			input.LengthDays = current.LengthDays
		}
		updated, err := normalizePeriodInput(input, now)
		if err != nil {
			return err
		}

		if other := findPeriodIndex(data.CycleStats.PeriodHistory, updated.StartDate); other >= 0 && other != index {
			return ErrPeriodAlreadyLogged
		}
		data.CycleStats.PeriodHistory[index] = updated
		return nil
	})
}

func (service *PeriodService) Delete(startDate string, now time.Time) (models.UserData, error) {
	return service.profiles.Update(now, func(data *models.UserData) error {
		index := findPeriodIndex(data.CycleStats.PeriodHistory, startDate)
		if index < 0 {
			return ErrPeriodNotFound
		}
		history := data.CycleStats.PeriodHistory
		data.CycleStats.PeriodHistory = append(history[:index:index], history[index+1:]...)
		return nil
	})
}

func normalizePeriodInput(input PeriodInput, now time.Time) (models.PeriodEntry, error) {
	entry := models.PeriodEntry{
		StartDate:  strings.TrimSpace(input.StartDate),
		LengthDays: input.LengthDays,
		Notes:      strings.TrimSpace(input.Notes),
	}
	if entry.StartDate == "" {
		entry.StartDate = FormatDay(calendarDay(now))
	}
	if entry.LengthDays == 0 {
		entry.LengthDays = models.DefaultPeriodLength
	}
	if err := ValidatePeriodEntries([]models.PeriodEntry{entry}); err != nil {
		return models.PeriodEntry{}, err
	}

	start, _ := ParseDay(entry.StartDate)
	entry.StartDate = FormatDay(start)
	return entry, nil
}

func findPeriodIndex(history []models.PeriodEntry, startDate string) int {
	target := strings.TrimSpace(startDate)
	for index, entry := range history {
		if entry.StartDate == target {
			return index
		}
	}
	return -1
}
