package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	profile, err := handler.settingsService.UpdateName(input.Name, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(profile.CycleStats)
}
