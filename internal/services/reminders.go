package services

import (
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

type ReminderKind string

const (
	ReminderPeriodSoon  ReminderKind = "period_soon"
	ReminderPMS         ReminderKind = "pms"
	ReminderFertileSoon ReminderKind = "fertile_soon"
	ReminderSpecialDate ReminderKind = "special_date"
)

// Reminder is an in-app notice shown on the dashboard. Nothing is scheduled
// or delivered outside the app.
type Reminder struct {
	Kind      ReminderKind `json:"kind"`
	Date      string       `json:"date"`
	DaysUntil int          `json:"daysUntil"`
	Title     string       `json:"title,omitempty"`
}

// BuildReminders applies the notification settings to freshly computed stats.
func BuildReminders(data models.UserData, now time.Time) []Reminder {
	today := calendarDay(now)
	settings := data.Preferences.NotificationSettings
	computed := data.CycleStats.Computed
	reminders := make([]Reminder, 0)

	if next, err := ParseDay(computed.PredictedNextStart); err == nil {
		daysUntil := daysBetween(today, next)
		if daysUntil > 0 && daysUntil <= settings.PeriodWarningDays {
			reminders = append(reminders, Reminder{Kind: ReminderPeriodSoon, Date: FormatDay(next), DaysUntil: daysUntil})
		}
		if daysUntil > 0 && daysUntil <= settings.PmsWarningDays {
			reminders = append(reminders, Reminder{Kind: ReminderPMS, Date: FormatDay(next), DaysUntil: daysUntil})
		}
	}

	if fertileStart, err := ParseDay(computed.FertileWindowStart); err == nil {
		daysUntil := daysBetween(today, fertileStart)
		if daysUntil >= 0 && daysUntil <= settings.FertilityWarningDays {
			reminders = append(reminders, Reminder{Kind: ReminderFertileSoon, Date: FormatDay(fertileStart), DaysUntil: daysUntil})
		}
	}

	for _, upcoming := range UpcomingSpecialDates(data.SpecialDates, today, 0) {
		if !upcoming.ReminderDue {
			continue
		}
		reminders = append(reminders, Reminder{
			Kind:      ReminderSpecialDate,
			Date:      upcoming.NextDate,
			DaysUntil: upcoming.DaysUntil,
			Title:     upcoming.Title,
		})
	}
	return reminders
}
