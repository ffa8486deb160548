package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

const RecentMoodWindow = 7

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type MoodService struct {
	profiles *ProfileService
}

func NewMoodService(profiles *ProfileService) *MoodService {
	return &MoodService{profiles: profiles}
}

func (service *MoodService) Log(rating int, note string, now time.Time) (models.UserData, error) {
	if rating < models.MinMoodRating || rating > models.MaxMoodRating {
		return models.UserData{}, ErrInvalidRating
	}

	entry := models.LoveLog{
		Date:   FormatDay(calendarDay(now)),
		Rating: rating,
		Note:   strings.TrimSpace(note),
	}
	return service.profiles.Update(now, func(data *models.UserData) error {
		data.LoveMeter = append(data.LoveMeter, entry)
		return nil
	})
}

// RecentMoodAverage averages the last window ratings, rounded to one decimal.
func RecentMoodAverage(logs []models.LoveLog, window int) (float64, bool) {
	if window <= 0 || len(logs) == 0 {
		return 0, false
	}
	if len(logs) > window {
		logs = logs[len(logs)-window:]
	}

	total := 0
	for _, entry := range logs {
		total += entry.Rating
	}
	average := float64(total) / float64(len(logs))
	return math.Round(average*10) / 10, true
}

const (
	MoodReactionBouquet  = "bouquet"
	MoodReactionConfetti = "confetti"
)

// MoodReaction picks the comfort or celebration response shown after a log.
func MoodReaction(rating int) string {
	if rating < 4 {
		return MoodReactionBouquet
	}
	return MoodReactionConfetti
}
