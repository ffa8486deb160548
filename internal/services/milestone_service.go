package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/pocketlove/internal/models"
)

var (
	ErrMilestoneTitleRequired = errors.New("milestone title is required")
	ErrInvalidMilestoneTime   = errors.New("invalid milestone date or time")
	ErrMilestoneNotFound      = errors.New("milestone not found")
)

// ElapsedTime is a calendar breakdown of the time since a milestone.
type ElapsedTime struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type MilestoneService struct {
	profiles *ProfileService
	location *time.Location
}

func NewMilestoneService(profiles *ProfileService, location *time.Location) *MilestoneService {
	if location == nil {
		location = time.UTC
	}
	return &MilestoneService{profiles: profiles, location: location}
}

// Add stores a new milestone ahead of the existing ones.
func (service *MilestoneService) Add(title string, date string, clock string, now time.Time) (models.UserData, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.UserData{}, ErrMilestoneTitleRequired
	}

	dateTime := strings.TrimSpace(date) + "T" + strings.TrimSpace(clock)
	if _, err := ParseMilestoneTime(dateTime, service.location); err != nil {
		return models.UserData{}, ErrInvalidMilestoneTime
	}

	entry := models.TimePassedEntry{
		ID:       uuid.NewString(),
		Title:    title,
		DateTime: dateTime,
	}
	return service.profiles.Update(now, func(data *models.UserData) error {
		data.TimePassedEntries = append([]models.TimePassedEntry{entry}, data.TimePassedEntries...)
		return nil
	})
}

func (service *MilestoneService) Delete(id string, now time.Time) (models.UserData, error) {
	return service.profiles.Update(now, func(data *models.UserData) error {
		filtered := make([]models.TimePassedEntry, 0, len(data.TimePassedEntries))
		for _, entry := range data.TimePassedEntries {
			if entry.ID != id {
				filtered = append(filtered, entry)
			}
		}
		if len(filtered) == len(data.TimePassedEntries) {
			return ErrMilestoneNotFound
		}
		data.TimePassedEntries = filtered
		return nil
	})
}

func (service *MilestoneService) Elapsed(entry models.TimePassedEntry, now time.Time) (ElapsedTime, error) {
	start, err := ParseMilestoneTime(entry.DateTime, service.location)
	if err != nil {
		return ElapsedTime{}, ErrInvalidMilestoneTime
	}
	return ElapsedBetween(start, now.In(service.location)), nil
}

func ParseMilestoneTime(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(models.DateTimeLayout, strings.TrimSpace(raw), location)
}

// ElapsedBetween splits the interval into whole calendar units, largest
// first. A start after end yields the zero value.
func ElapsedBetween(start time.Time, end time.Time) ElapsedTime {
	if start.After(end) {
		return ElapsedTime{}
	}

	elapsed := ElapsedTime{}
	elapsed.Years = end.Year() - start.Year()
	for elapsed.Years > 0 && start.AddDate(elapsed.Years, 0, 0).After(end) {
		elapsed.Years--
	}
	cursor := start.AddDate(elapsed.Years, 0, 0)

	for !cursor.AddDate(0, elapsed.Months+1, 0).After(end) {
		elapsed.Months++
	}
	cursor = cursor.AddDate(0, elapsed.Months, 0)

	for !cursor.AddDate(0, 0, elapsed.Days+1).After(end) {
		elapsed.Days++
	}
	cursor = cursor.AddDate(0, 0, elapsed.Days)

	remaining := end.Sub(cursor)
	elapsed.Hours = int(remaining / time.Hour)
	remaining -= time.Duration(elapsed.Hours) * time.Hour
	elapsed.Minutes = int(remaining / time.Minute)
	remaining -= time.Duration(elapsed.Minutes) * time.Minute
	elapsed.Seconds = int(remaining / time.Second)
	return elapsed
}
