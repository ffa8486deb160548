package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/services"
)

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	input := onboardingInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	now := handler.now()
	profile, err := handler.onboardingSvc.Complete(services.OnboardingInput{
		Name:            input.Name,
		LastPeriodStart: input.LastPeriodStart,
		Passcode:        input.Passcode,
	}, now)
	if err != nil {
		return respondServiceError(c, err)
	}

	if input.Language != "" {
		preferences := profile.Preferences
		preferences.Language = input.Language
		profile, err = handler.settingsService.UpdatePreferences(preferences, now)
		if err != nil {
			return respondServiceError(c, err)
		}
		handler.setLanguageCookie(c, input.Language)
	}

	if err := handler.setAuthCookie(c, profile); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}
