package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/pocketlove/internal/db"
)

// Health reports readiness: the database answers and its schema version.
func (handler *Handler) Health(c *fiber.Ctx) error {
	sqlDB, err := handler.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		log.Error().Err(err).Msg("health check: database unreachable")
		return apiError(c, fiber.StatusServiceUnavailable, "database_unavailable")
	}

	version, err := db.SchemaVersion(handler.db)
	if err != nil {
		log.Error().Err(err).Msg("health check: schema version")
		return apiError(c, fiber.StatusServiceUnavailable, "database_unavailable")
	}
	return c.JSON(fiber.Map{"status": "ok", "schemaVersion": version})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "not_found")
}
