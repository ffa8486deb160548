package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/services"
)

func (handler *Handler) authenticateRequest(c *fiber.Ctx, profileID string, passcodeHash string) error {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	claims, err := services.ParseUnlockToken(handler.secretKey, rawToken, handler.now())
	if err != nil {
		return err
	}
	return services.ValidateUnlockSession(claims, profileID, passcodeHash)
}
