package services

import (
	"strconv"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

const ExportFormatVersion = 1

var ExportCSVHeaders = []string{
	"Start date",
	"Length days",
	"Notes",
}

// ExportBackup is the downloadable copy of everything stored on the device.
// The passcode hash never leaves the server.
type ExportBackup struct {
	Version           int                      `json:"version"`
	ExportedAt        string                   `json:"exportedAt"`
	Name              string                   `json:"name"`
	Preferences       models.Preferences       `json:"preferences"`
	PeriodHistory     []models.PeriodEntry     `json:"periodHistory"`
	LoveMeter         []models.LoveLog         `json:"loveMeter"`
	SpecialDates      []models.SpecialDate     `json:"specialDates"`
	Journal           []models.JournalEntry    `json:"journal"`
	TimePassedEntries []models.TimePassedEntry `json:"timePassedEntries"`
}

type ExportSummary struct {
	TotalEntries int    `json:"totalEntries"`
	HasData      bool   `json:"hasData"`
	DateFrom     string `json:"dateFrom,omitempty"`
	DateTo       string `json:"dateTo,omitempty"`
}

// BuildExportBackup filters every dated collection by exportRange. Special
// dates are anchors rather than events and are always exported whole.
func BuildExportBackup(data models.UserData, exportRange ExportRange, now time.Time) ExportBackup {
	backup := ExportBackup{
		Version:           ExportFormatVersion,
		ExportedAt:        now.UTC().Format(time.RFC3339),
		Name:              data.Name,
		Preferences:       data.Preferences,
		PeriodHistory:     make([]models.PeriodEntry, 0, len(data.CycleStats.PeriodHistory)),
		LoveMeter:         make([]models.LoveLog, 0, len(data.LoveMeter)),
		SpecialDates:      append([]models.SpecialDate{}, data.SpecialDates...),
		Journal:           make([]models.JournalEntry, 0, len(data.Journal)),
		TimePassedEntries: make([]models.TimePassedEntry, 0, len(data.TimePassedEntries)),
	}

	for _, entry := range data.CycleStats.PeriodHistory {
		if exportRange.Contains(entry.StartDate) {
			backup.PeriodHistory = append(backup.PeriodHistory, entry)
		}
	}
	for _, entry := range data.LoveMeter {
		if exportRange.Contains(entry.Date) {
			backup.LoveMeter = append(backup.LoveMeter, entry)
		}
	}
	for _, entry := range data.Journal {
		if exportRange.Contains(entry.Date) {
			backup.Journal = append(backup.Journal, entry)
		}
	}
	for _, entry := range data.TimePassedEntries {
		if exportRange.Contains(entry.DateTime) {
			backup.TimePassedEntries = append(backup.TimePassedEntries, entry)
		}
	}
	return backup
}

// BuildExportSummary describes the period history covered by the backup.
func BuildExportSummary(backup ExportBackup) ExportSummary {
	if len(backup.PeriodHistory) == 0 {
		return ExportSummary{}
	}

	first := backup.PeriodHistory[0].StartDate
	last := first
	for _, entry := range backup.PeriodHistory[1:] {
		if entry.StartDate < first {
			first = entry.StartDate
		}
		if entry.StartDate > last {
			last = entry.StartDate
		}
	}
	return ExportSummary{
		TotalEntries: len(backup.PeriodHistory),
		HasData:      true,
		DateFrom:     first,
		DateTo:       last,
	}
}

func BuildExportCSVRows(backup ExportBackup) [][]string {
	rows := make([][]string, 0, len(backup.PeriodHistory))
	for _, entry := range backup.PeriodHistory {
		rows = append(rows, []string{
			entry.StartDate,
			strconv.Itoa(entry.LengthDays),
			entry.Notes,
		})
	}
	return rows
}
