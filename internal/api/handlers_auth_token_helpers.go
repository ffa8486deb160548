package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/models"
	"github.com/terraincognita07/pocketlove/internal/services"
)

const unlockSessionTTL = services.DefaultUnlockSessionTTL

// setAuthCookie opens an unlock session. Profiles without a passcode have
// nothing to unlock and get no cookie.
func (handler *Handler) setAuthCookie(c *fiber.Ctx, profile models.UserData) error {
	if profile.PasscodeHash == "" {
		handler.clearAuthCookie(c)
		return nil
	}

	now := handler.now()
	token, err := services.BuildUnlockToken(handler.secretKey, profile.ID, profile.PasscodeHash, unlockSessionTTL, now)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  now.Add(unlockSessionTTL),
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
