package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/pocketlove/internal/models"
)

var (
	ErrSpecialDateTitleRequired = errors.New("special date title is required")
	ErrInvalidSpecialDate       = errors.New("invalid special date")
	ErrInvalidRecurrence        = errors.New("invalid recurrence")
	ErrInvalidReminderDays      = errors.New("invalid reminder days")
	ErrSpecialDateNotFound      = errors.New("special date not found")
)

const MaxReminderDays = 60

type SpecialDateInput struct {
	Title        string
	Date         string
	Recurrence   string
	ReminderDays int
}

type UpcomingSpecialDate struct {
	models.SpecialDate
	NextDate    string `json:"nextDate"`
	DaysUntil   int    `json:"daysUntil"`
	ReminderDue bool   `json:"reminderDue"`
}

type SpecialDateService struct {
	profiles *ProfileService
}

func NewSpecialDateService(profiles *ProfileService) *SpecialDateService {
	return &SpecialDateService{profiles: profiles}
}

func (service *SpecialDateService) Add(input SpecialDateInput, now time.Time) (models.UserData, error) {
	entry, err := normalizeSpecialDateInput(input)
	if err != nil {
		return models.UserData{}, err
	}
	entry.ID = uuid.NewString()

	return service.profiles.Update(now, func(data *models.UserData) error {
		data.SpecialDates = append(data.SpecialDates, entry)
		return nil
	})
}

func (service *SpecialDateService) Delete(id string, now time.Time) (models.UserData, error) {
	return service.profiles.Update(now, func(data *models.UserData) error {
		filtered := make([]models.SpecialDate, 0, len(data.SpecialDates))
		for _, entry := range data.SpecialDates {
			if entry.ID != id {
				filtered = append(filtered, entry)
			}
		}
		if len(filtered) == len(data.SpecialDates) {
			return ErrSpecialDateNotFound
		}
		data.SpecialDates = filtered
		return nil
	})
}

func normalizeSpecialDateInput(input SpecialDateInput) (models.SpecialDate, error) {
	entry := models.SpecialDate{
		Title:        strings.TrimSpace(input.Title),
		Date:         strings.TrimSpace(input.Date),
		Recurrence:   strings.ToLower(strings.TrimSpace(input.Recurrence)),
		ReminderDays: input.ReminderDays,
	}
	if entry.Title == "" {
		return models.SpecialDate{}, ErrSpecialDateTitleRequired
	}
	if _, err := ParseDay(entry.Date); err != nil {
		return models.SpecialDate{}, ErrInvalidSpecialDate
	}
	if entry.Recurrence == "" {
		entry.Recurrence = models.RecurrenceNone
	}
	switch entry.Recurrence {
	case models.RecurrenceYearly, models.RecurrenceMonthly, models.RecurrenceNone:
	default:
		return models.SpecialDate{}, ErrInvalidRecurrence
	}
	if entry.ReminderDays < 0 || entry.ReminderDays > MaxReminderDays {
		return models.SpecialDate{}, ErrInvalidReminderDays
	}
	return entry, nil
}

// OccursOn reports whether the special date falls on day, honouring its
// recurrence.
func OccursOn(entry models.SpecialDate, day time.Time) bool {
	anchor, err := ParseDay(entry.Date)
	if err != nil {
		return false
	}
	target := calendarDay(day)
	if target.Before(anchor) {
		return false
	}

	switch entry.Recurrence {
	case models.RecurrenceYearly:
		return target.Equal(anniversaryIn(anchor, target.Year()))
	case models.RecurrenceMonthly:
		return target.Equal(monthlyIn(anchor, target.Year(), target.Month()))
	default:
		return target.Equal(anchor)
	}
}

// NextOccurrence returns the first occurrence on or after today.
func NextOccurrence(entry models.SpecialDate, today time.Time) (time.Time, bool) {
	anchor, err := ParseDay(entry.Date)
	if err != nil {
		return time.Time{}, false
	}
	from := calendarDay(today)
	if anchor.After(from) {
		return anchor, true
	}

	switch entry.Recurrence {
	case models.RecurrenceYearly:
		next := anniversaryIn(anchor, from.Year())
		if next.Before(from) {
			next = anniversaryIn(anchor, from.Year()+1)
		}
		return next, true
	case models.RecurrenceMonthly:
		next := monthlyIn(anchor, from.Year(), from.Month())
		if next.Before(from) {
			following := from.AddDate(0, 0, 1-from.Day()).AddDate(0, 1, 0)
			next = monthlyIn(anchor, following.Year(), following.Month())
		}
		return next, true
	default:
		if anchor.Equal(from) {
			return anchor, true
		}
		return time.Time{}, false
	}
}

// UpcomingSpecialDates lists future occurrences, soonest first.
func UpcomingSpecialDates(entries []models.SpecialDate, today time.Time, limit int) []UpcomingSpecialDate {
	from := calendarDay(today)
	upcoming := make([]UpcomingSpecialDate, 0, len(entries))
	for _, entry := range entries {
		next, ok := NextOccurrence(entry, from)
		if !ok {
			continue
		}
		daysUntil := daysBetween(from, next)
		upcoming = append(upcoming, UpcomingSpecialDate{
			SpecialDate: entry,
			NextDate:    FormatDay(next),
			DaysUntil:   daysUntil,
			ReminderDue: daysUntil <= entry.ReminderDays,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].DaysUntil == upcoming[j].DaysUntil {
			return upcoming[i].Title < upcoming[j].Title
		}
		return upcoming[i].DaysUntil < upcoming[j].DaysUntil
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// anniversaryIn clamps Feb 29 anchors to Feb 28 in common years.
func anniversaryIn(anchor time.Time, year int) time.Time {
	return clampedDate(year, anchor.Month(), anchor.Day())
}

func monthlyIn(anchor time.Time, year int, month time.Month) time.Time {
	return clampedDate(year, month, anchor.Day())
}

func clampedDate(year int, month time.Month, day int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
