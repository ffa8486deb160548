package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/pocketlove/internal/models"
)

const MaxJournalContentLength = 5000

var (
	ErrJournalContentRequired = errors.New("journal content is required")
	ErrJournalContentTooLong  = errors.New("journal content is too long")
	ErrInvalidJournalDate     = errors.New("invalid journal date")
)

type JournalService struct {
	profiles *ProfileService
}

func NewJournalService(profiles *ProfileService) *JournalService {
	return &JournalService{profiles: profiles}
}

// Add prepends the entry so the journal reads newest first.
func (service *JournalService) Add(date string, content string, mood string, now time.Time) (models.UserData, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.UserData{}, ErrJournalContentRequired
	}
	if len([]rune(content)) > MaxJournalContentLength {
		return models.UserData{}, ErrJournalContentTooLong
	}

	day := calendarDay(now)
	if trimmed := strings.TrimSpace(date); trimmed != "" {
		parsed, err := ParseDay(trimmed)
		if err != nil {
			return models.UserData{}, ErrInvalidJournalDate
		}
		day = parsed
	}

	entry := models.JournalEntry{
		ID:      uuid.NewString(),
		Date:    FormatDay(day),
		Content: content,
		Mood:    strings.TrimSpace(mood),
	}
	return service.profiles.Update(now, func(data *models.UserData) error {
		data.Journal = append([]models.JournalEntry{entry}, data.Journal...)
		return nil
	})
}
