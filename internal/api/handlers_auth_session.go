package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/pocketlove/internal/services"
)

func (handler *Handler) Unlock(c *fiber.Ctx) error {
	input := unlockInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.unlockLimiter.tooManyRecent(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too_many_attempts")
	}

	profile, err := handler.authService.Unlock(input.Passcode, now)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPasscode) {
			handler.unlockLimiter.addFailure(limiterKey, now)
			log.Warn().Str("ip", limiterKey).Msg("failed unlock attempt")
		}
		return respondServiceError(c, err)
	}
	handler.unlockLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, profile); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Lock(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
