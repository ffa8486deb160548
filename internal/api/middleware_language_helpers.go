package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// LanguageMiddleware picks the response language from the language cookie,
// then Accept-Language. Handlers that have the profile prefer its stored
// language through profileLanguage.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	cookieLanguage := c.Cookies(languageCookieName)
	language := handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	if cookieLanguage != "" {
		language = handler.i18n.NormalizeLanguage(cookieLanguage)
	}

	c.Locals(contextLanguageKey, language)
	return c.Next()
}

func (handler *Handler) profileLanguage(c *fiber.Ctx, stored string) string {
	if c.Cookies(languageCookieName) == "" && stored != "" {
		return handler.i18n.NormalizeLanguage(stored)
	}
	if language := currentLanguage(c); language != "" {
		return language
	}
	return handler.i18n.DefaultLanguage()
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(1, 0, 0),
	})
}
