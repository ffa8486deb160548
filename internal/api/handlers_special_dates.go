package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/services"
)

const (
	defaultUpcomingLimit = 2
	maxUpcomingLimit     = 50
)

func (handler *Handler) ListSpecialDates(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(profile.SpecialDates)
}

func (handler *Handler) UpcomingSpecialDates(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := c.QueryInt("limit", defaultUpcomingLimit)
	if limit <= 0 || limit > maxUpcomingLimit {
		return apiError(c, fiber.StatusBadRequest, "invalid_limit")
	}
	return c.JSON(services.UpcomingSpecialDates(profile.SpecialDates, handler.now(), limit))
}

func (handler *Handler) AddSpecialDate(c *fiber.Ctx) error {
	input := specialDateInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	profile, err := handler.specialDateService.Add(services.SpecialDateInput{
		Title:        input.Title,
		Date:         input.Date,
		Recurrence:   input.Recurrence,
		ReminderDays: input.ReminderDays,
	}, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile.SpecialDates)
}

func (handler *Handler) DeleteSpecialDate(c *fiber.Ctx) error {
	profile, err := handler.specialDateService.Delete(c.Params("id"), handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile.SpecialDates)
}
