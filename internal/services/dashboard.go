package services

import (
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

const (
	dashboardRecentPeriods = 5
	dashboardSpecialDates  = 2
)

type DashboardSummary struct {
	Today               string                `json:"today"`
	Status              models.DayStatus      `json:"status"`
	DaysUntilNextPeriod int                   `json:"daysUntilNextPeriod"`
	NextPeriodStart     string                `json:"nextPeriodStart"`
	IsPeriodDay         bool                  `json:"isPeriodDay"`
	IsFertile           bool                  `json:"isFertile"`
	AvgCycleLength      int                   `json:"avgCycleLength"`
	AvgPeriodLength     int                   `json:"avgPeriodLength"`
	AverageMood         *float64              `json:"averageMood"`
	RecentPeriods       []models.PeriodEntry  `json:"recentPeriods"`
	SpecialDates        []UpcomingSpecialDate `json:"specialDates"`
	Reminders           []Reminder            `json:"reminders"`
}

// BuildDashboard expects data.CycleStats to be freshly computed.
func BuildDashboard(data models.UserData, now time.Time) DashboardSummary {
	today := calendarDay(now)
	stats := data.CycleStats
	status := ClassifyDay(today, stats)

	summary := DashboardSummary{
		Today:           FormatDay(today),
		Status:          status,
		NextPeriodStart: stats.Computed.PredictedNextStart,
		IsPeriodDay:     status == models.DayStatusPeriod,
		IsFertile:       status == models.DayStatusFertile,
		AvgCycleLength:  stats.AvgCycleLength,
		AvgPeriodLength: stats.AvgPeriodLength,
		RecentPeriods:   stats.PeriodHistory,
		SpecialDates:    UpcomingSpecialDates(data.SpecialDates, today, dashboardSpecialDates),
		Reminders:       BuildReminders(data, today),
	}
	if len(summary.RecentPeriods) > dashboardRecentPeriods {
		summary.RecentPeriods = summary.RecentPeriods[:dashboardRecentPeriods]
	}

	if next, err := ParseDay(stats.Computed.PredictedNextStart); err == nil {
		if daysLeft := daysBetween(today, next); daysLeft > 0 {
			summary.DaysUntilNextPeriod = daysLeft
		}
	}
	if average, ok := RecentMoodAverage(data.LoveMeter, RecentMoodWindow); ok {
		summary.AverageMood = &average
	}
	return summary
}
