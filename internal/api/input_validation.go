package api

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/models"
	"github.com/terraincognita07/pocketlove/internal/services"
)

// requestValidationError names the first JSON field that failed validation.
type requestValidationError struct {
	field string
}

func (err *requestValidationError) Error() string {
	return "invalid " + err.field
}

func (err *requestValidationError) code() string {
	if err.field == "" {
		return "invalid_input"
	}
	return "invalid_" + toSnakeCase(err.field)
}

func newRequestValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegisterValidation(validate, "calendar_date", func(level validator.FieldLevel) bool {
		_, err := services.ParseDay(level.Field().String())
		return err == nil
	})
	mustRegisterValidation(validate, "clock_time", func(level validator.FieldLevel) bool {
		_, err := services.ParseMilestoneTime("2000-01-01T"+strings.TrimSpace(level.Field().String()), time.UTC)
		return err == nil
	})
	return validate
}

func mustRegisterValidation(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// parseBody decodes a JSON body into destination and validates it.
func (handler *Handler) parseBody(c *fiber.Ctx, destination any) error {
	if err := c.BodyParser(destination); err != nil {
		return &requestValidationError{}
	}
	trimDateFields(reflect.ValueOf(destination))
	if err := handler.validate.Struct(destination); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return &requestValidationError{field: validationErrors[0].Field()}
		}
		return &requestValidationError{}
	}
	return nil
}

// trimDateFields strips surrounding whitespace from string fields tagged
// calendar_date, descending into nested structs.
func trimDateFields(value reflect.Value) {
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return
	}

	for index := 0; index < value.NumField(); index++ {
		field := value.Field(index)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			if strings.Contains(value.Type().Field(index).Tag.Get("validate"), "calendar_date") {
				field.SetString(strings.TrimSpace(field.String()))
			}
		case reflect.Struct, reflect.Pointer:
			trimDateFields(field)
		}
	}
}

func (input preferencesInput) toModel() models.Preferences {
	return models.Preferences{
		Theme:    input.Theme,
		Language: input.Language,
		NotificationSettings: models.NotificationSettings{
			PeriodWarningDays:    input.NotificationSettings.PeriodWarningDays,
			PmsWarningDays:       input.NotificationSettings.PmsWarningDays,
			FertilityWarningDays: input.NotificationSettings.FertilityWarningDays,
			EnableVibrations:     input.NotificationSettings.EnableVibrations,
		},
		Privacy: models.PrivacySettings{
			CloudBackup: input.Privacy.CloudBackup,
			Encrypted:   input.Privacy.Encrypted,
		},
	}
}

func toSnakeCase(raw string) string {
	var builder strings.Builder
	for index, char := range raw {
		if char >= 'A' && char <= 'Z' {
			if index > 0 {
				builder.WriteByte('_')
			}
			builder.WriteRune(char + ('a' - 'A'))
			continue
		}
		builder.WriteRune(char)
	}
	return builder.String()
}
