package api

import "github.com/gofiber/fiber/v2"

type onboardingCopy struct {
	Welcome string `json:"welcome"`
	Privacy string `json:"privacy"`
	Setup   string `json:"setup"`
}

func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	status, err := handler.setupService.Status()
	if err != nil {
		return respondServiceError(c, err)
	}

	language := currentLanguage(c)
	return c.JSON(fiber.Map{
		"requiresOnboarding": status.RequiresOnboarding,
		"lockEnabled":        status.LockEnabled,
		"language":           language,
		"copy": onboardingCopy{
			Welcome: handler.i18n.Translate(language, "onboarding.welcome"),
			Privacy: handler.i18n.Translate(language, "onboarding.privacy"),
			Setup:   handler.i18n.Translate(language, "onboarding.setup"),
		},
	})
}
