package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListJournal(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(profile.Journal)
}

func (handler *Handler) AddJournalEntry(c *fiber.Ctx) error {
	input := journalInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	profile, err := handler.journalService.Add(input.Date, input.Content, input.Mood, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile.Journal)
}
