package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/services"
)

// UnlockRequired loads the profile for data routes. When a passcode is set
// the request must carry a valid unlock session.
func (handler *Handler) UnlockRequired(c *fiber.Ctx) error {
	profile, err := handler.profileService.Current(handler.now())
	if err != nil {
		if errors.Is(err, services.ErrNotOnboarded) {
			return apiError(c, fiber.StatusNotFound, "onboarding_required")
		}
		return respondServiceError(c, err)
	}

	if profile.PasscodeHash != "" {
		if err := handler.authenticateRequest(c, profile.ID, profile.PasscodeHash); err != nil {
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
	}

	c.Locals(contextProfileKey, profile)
	return c.Next()
}
