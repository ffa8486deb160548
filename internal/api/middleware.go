package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/models"
)

const (
	authCookieName     = "pocketlove_auth"
	languageCookieName = "pocketlove_lang"
	contextProfileKey  = "current_profile"
	contextLanguageKey = "current_language"
)

// currentProfile returns the profile loaded by UnlockRequired.
func currentProfile(c *fiber.Ctx) (models.UserData, bool) {
	profile, ok := c.Locals(contextProfileKey).(models.UserData)
	return profile, ok
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}
