package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/services"
)

func (handler *Handler) LogMood(c *fiber.Ctx) error {
	input := moodInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	profile, err := handler.moodService.Log(input.Rating, input.Note, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}

	response := fiber.Map{
		"loveMeter":   profile.LoveMeter,
		"averageMood": nil,
	}
	if average, ok := services.RecentMoodAverage(profile.LoveMeter, services.RecentMoodWindow); ok {
		response["averageMood"] = average
	}

	reaction := services.MoodReaction(input.Rating)
	language := handler.profileLanguage(c, profile.Preferences.Language)
	response["reaction"] = reaction
	response["message"] = handler.i18n.Translate(language, reaction)
	return c.Status(fiber.StatusCreated).JSON(response)
}
