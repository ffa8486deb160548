package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/services"
)

func (input periodInput) toService() services.PeriodInput {
	return services.PeriodInput{
		StartDate:  input.StartDate,
		LengthDays: input.LengthDays,
		Notes:      input.Notes,
	}
}

func (handler *Handler) CreatePeriod(c *fiber.Ctx) error {
	input := periodInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	profile, err := handler.periodService.Log(input.toService(), handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile.CycleStats)
}

func (handler *Handler) UpdatePeriod(c *fiber.Ctx) error {
	input := periodInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	profile, err := handler.periodService.Update(c.Params("date"), input.toService(), handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile.CycleStats)
}

func (handler *Handler) DeletePeriod(c *fiber.Ctx) error {
	profile, err := handler.periodService.Delete(c.Params("date"), handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile.CycleStats)
}
