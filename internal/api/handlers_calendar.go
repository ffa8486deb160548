package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/services"
)

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := handler.now()
	month, err := services.ParseCalendarMonth(c.Query("month"), now)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid_month")
	}

	calendar, err := services.BuildCalendarMonth(month, profile.CycleStats, profile.SpecialDates, now)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(calendar)
}

func (handler *Handler) GetDayStatus(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := services.ParseDay(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid_date")
	}

	status := services.ClassifyDay(day, profile.CycleStats)
	language := handler.profileLanguage(c, profile.Preferences.Language)
	return c.JSON(fiber.Map{
		"date":   services.FormatDay(day),
		"status": status,
		"label":  handler.dayStatusLabel(language, status),
	})
}
