package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/services"
)

func (handler *Handler) exportBackup(c *fiber.Ctx) (services.ExportBackup, time.Time, error) {
	profile, ok := currentProfile(c)
	if !ok {
		return services.ExportBackup{}, time.Time{}, services.ErrNotOnboarded
	}
	exportRange, err := services.ParseExportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return services.ExportBackup{}, time.Time{}, err
	}
	now := handler.now()
	return services.BuildExportBackup(profile, exportRange, now), now, nil
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	backup, _, err := handler.exportBackup(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(services.BuildExportSummary(backup))
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	backup, now, err := handler.exportBackup(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	serialized, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "export_failed")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	backup, now, err := handler.exportBackup(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "export_failed")
	}
	if err := writer.WriteAll(services.BuildExportCSVRows(backup)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "export_failed")
	}

	setExportAttachmentHeaders(c, "text/csv; charset=utf-8", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("pocketlove-backup-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
