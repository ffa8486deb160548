package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/models"
	"github.com/terraincognita07/pocketlove/internal/services"
)

type dashboardCopy struct {
	Greeting  string   `json:"greeting"`
	Headline  string   `json:"headline"`
	Subline   string   `json:"subline,omitempty"`
	Badges    []string `json:"badges"`
	Reminders []string `json:"reminders"`
}

type dashboardResponse struct {
	services.DashboardSummary
	Name     string        `json:"name"`
	Language string        `json:"language"`
	Copy     dashboardCopy `json:"copy"`
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary := services.BuildDashboard(profile, handler.now())
	language := handler.profileLanguage(c, profile.Preferences.Language)
	return c.JSON(dashboardResponse{
		DashboardSummary: summary,
		Name:             profile.Name,
		Language:         language,
		Copy:             handler.buildDashboardCopy(language, profile.Name, summary),
	})
}

func (handler *Handler) buildDashboardCopy(language string, name string, summary services.DashboardSummary) dashboardCopy {
	translator := handler.i18n
	result := dashboardCopy{
		Greeting:  translator.Translatef(language, "greeting", name),
		Badges:    make([]string, 0, 1),
		Reminders: make([]string, 0, len(summary.Reminders)),
	}

	switch {
	case summary.IsPeriodDay:
		result.Headline = translator.Translate(language, "period_active")
		result.Subline = translator.Translate(language, "period_care")
		result.Badges = append(result.Badges, translator.Translate(language, "badge.flowing"))
	case summary.DaysUntilNextPeriod == 0:
		result.Headline = translator.Translate(language, "prediction.today")
	default:
		result.Headline = translator.Translatef(language, "prediction", summary.DaysUntilNextPeriod)
	}
	if summary.IsFertile {
		result.Subline = translator.Translate(language, "fertile")
		result.Badges = append(result.Badges, translator.Translate(language, "badge.fertility"))
	}

	for _, reminder := range summary.Reminders {
		result.Reminders = append(result.Reminders, handler.reminderText(language, reminder))
	}
	return result
}

func (handler *Handler) reminderText(language string, reminder services.Reminder) string {
	key := "reminder." + string(reminder.Kind)
	switch reminder.Kind {
	case services.ReminderSpecialDate:
		return handler.i18n.Translatef(language, key, reminder.Title, reminder.DaysUntil)
	case services.ReminderPMS:
		return handler.i18n.Translate(language, key)
	default:
		return handler.i18n.Translatef(language, key, reminder.DaysUntil)
	}
}

// dayStatusLabel is the localized label for a calendar cell.
func (handler *Handler) dayStatusLabel(language string, status models.DayStatus) string {
	switch status {
	case models.DayStatusPeriod:
		return handler.i18n.Translate(language, "period_active")
	case models.DayStatusFertile:
		return handler.i18n.Translate(language, "fertile")
	default:
		return ""
	}
}
