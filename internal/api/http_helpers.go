package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/pocketlove/internal/services"
)

type serviceErrorResponse struct {
	target error
	status int
	code   string
}

var serviceErrorResponses = []serviceErrorResponse{
	{services.ErrNotOnboarded, fiber.StatusNotFound, "onboarding_required"},
	{services.ErrAlreadyOnboarded, fiber.StatusConflict, "already_onboarded"},
	{services.ErrOnboardingNameRequired, fiber.StatusBadRequest, "name_required"},
	{services.ErrDisplayNameTooLong, fiber.StatusBadRequest, "name_too_long"},
	{services.ErrOnboardingStartRequired, fiber.StatusBadRequest, "last_period_start_required"},
	{services.ErrOnboardingStartInFuture, fiber.StatusBadRequest, "last_period_start_in_future"},
	{services.ErrInvalidPeriodDate, fiber.StatusBadRequest, "invalid_period_date"},
	{services.ErrInvalidPeriodLength, fiber.StatusBadRequest, "invalid_period_length"},
	{services.ErrPeriodAlreadyLogged, fiber.StatusConflict, "period_already_logged"},
	{services.ErrPeriodNotFound, fiber.StatusNotFound, "period_not_found"},
	{services.ErrInvalidRating, fiber.StatusBadRequest, "invalid_rating"},
	{services.ErrMilestoneTitleRequired, fiber.StatusBadRequest, "title_required"},
	{services.ErrInvalidMilestoneTime, fiber.StatusBadRequest, "invalid_milestone_time"},
	{services.ErrMilestoneNotFound, fiber.StatusNotFound, "milestone_not_found"},
	{services.ErrSpecialDateTitleRequired, fiber.StatusBadRequest, "title_required"},
	{services.ErrInvalidSpecialDate, fiber.StatusBadRequest, "invalid_special_date"},
	{services.ErrInvalidRecurrence, fiber.StatusBadRequest, "invalid_recurrence"},
	{services.ErrInvalidReminderDays, fiber.StatusBadRequest, "invalid_reminder_days"},
	{services.ErrSpecialDateNotFound, fiber.StatusNotFound, "special_date_not_found"},
	{services.ErrJournalContentRequired, fiber.StatusBadRequest, "content_required"},
	{services.ErrJournalContentTooLong, fiber.StatusBadRequest, "content_too_long"},
	{services.ErrInvalidJournalDate, fiber.StatusBadRequest, "invalid_journal_date"},
	{services.ErrInvalidPreferences, fiber.StatusBadRequest, "invalid_preferences"},
	{services.ErrWeakPasscode, fiber.StatusBadRequest, "weak_passcode"},
	{services.ErrPasscodeMismatch, fiber.StatusBadRequest, "passcode_mismatch"},
	{services.ErrPasscodeMustDiffer, fiber.StatusBadRequest, "passcode_must_differ"},
	{services.ErrInvalidPasscode, fiber.StatusUnauthorized, "invalid_passcode"},
	{services.ErrExportFromDateInvalid, fiber.StatusBadRequest, "invalid_from_date"},
	{services.ErrExportToDateInvalid, fiber.StatusBadRequest, "invalid_to_date"},
	{services.ErrExportRangeInvalid, fiber.StatusBadRequest, "invalid_range"},
}

func apiError(c *fiber.Ctx, status int, code string) error {
	return c.Status(status).JSON(fiber.Map{"error": code})
}

// mapServiceError maps service sentinels to a status and a stable error code.
// Anything unknown is an internal error.
func mapServiceError(err error) (int, string) {
	var validationErr *requestValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest, validationErr.code()
	}
	for _, response := range serviceErrorResponses {
		if errors.Is(err, response.target) {
			return response.status, response.code
		}
	}
	return fiber.StatusInternalServerError, "internal_error"
}

func respondServiceError(c *fiber.Ctx, err error) error {
	status, code := mapServiceError(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	}
	return apiError(c, status, code)
}

var fiberErrorCodes = map[int]string{
	fiber.StatusBadRequest:            "bad_request",
	fiber.StatusNotFound:              "not_found",
	fiber.StatusMethodNotAllowed:      "method_not_allowed",
	fiber.StatusRequestEntityTooLarge: "payload_too_large",
}

// ErrorHandler renders errors that escape handlers, recovered panics
// included, in the same JSON shape as handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if code, ok := fiberErrorCodes[fiberErr.Code]; ok {
			return apiError(c, fiberErr.Code, code)
		}
		if fiberErr.Code < fiber.StatusInternalServerError {
			return apiError(c, fiberErr.Code, "request_failed")
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("unhandled request error")
	return apiError(c, fiber.StatusInternalServerError, "internal_error")
}
