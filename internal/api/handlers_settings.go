package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/pocketlove/internal/services"
)

func (handler *Handler) UpdatePreferences(c *fiber.Ctx) error {
	input := preferencesInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	profile, err := handler.settingsService.UpdatePreferences(input.toModel(), handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	if profile.Preferences.Language != "" {
		handler.setLanguageCookie(c, profile.Preferences.Language)
	}
	return c.JSON(profile.Preferences)
}

// ChangePasscode re-issues the unlock session for the new passcode, since
// sessions opened with the old one stop validating.
func (handler *Handler) ChangePasscode(c *fiber.Ctx) error {
	input := changePasscodeInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	profile, err := handler.settingsService.ChangePasscode(input.CurrentPasscode, input.NewPasscode, input.ConfirmPasscode, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.setAuthCookie(c, profile); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "lockEnabled": profile.PasscodeHash != ""})
}

func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := clearDataInput{}
	if len(c.Body()) > 0 {
		if err := handler.parseBody(c, &input); err != nil {
			return respondServiceError(c, err)
		}
	}
	if profile.PasscodeHash != "" && !services.PasscodeMatches(profile.PasscodeHash, input.Passcode) {
		return respondServiceError(c, services.ErrInvalidPasscode)
	}

	if err := handler.settingsService.ClearAll(); err != nil {
		return respondServiceError(c, err)
	}
	log.Info().Msg("all local data cleared")

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
