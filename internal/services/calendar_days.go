package services

import (
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

type CalendarDayState struct {
	Date          string           `json:"date"`
	Day           int              `json:"day"`
	InMonth       bool             `json:"inMonth"`
	IsToday       bool             `json:"isToday"`
	Status        models.DayStatus `json:"status"`
	SpecialTitles []string         `json:"specialTitles,omitempty"`
}

type CalendarMonth struct {
	Month string             `json:"month"`
	Days  []CalendarDayState `json:"days"`
}

// BuildCalendarMonth lays out a Sunday-first grid covering the month of
// month, padded with the neighbouring days to whole weeks.
func BuildCalendarMonth(month time.Time, stats models.CycleStats, specialDates []models.SpecialDate, now time.Time) (CalendarMonth, error) {
	classifier, err := NewDayClassifier(stats)
	if err != nil {
		return CalendarMonth{}, err
	}

	anchor := calendarDay(month)
	monthStart := anchor.AddDate(0, 0, 1-anchor.Day())
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))
	today := calendarDay(now)

	days := make([]CalendarDayState, 0, daysBetween(gridStart, gridEnd)+1)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		state := CalendarDayState{
			Date:    FormatDay(day),
			Day:     day.Day(),
			InMonth: day.Month() == monthStart.Month(),
			IsToday: day.Equal(today),
			Status:  classifier.Classify(day),
		}
		for _, special := range specialDates {
			if OccursOn(special, day) {
				state.SpecialTitles = append(state.SpecialTitles, special.Title)
			}
		}
		days = append(days, state)
	}

	return CalendarMonth{
		Month: monthStart.Format("2006-01"),
		Days:  days,
	}, nil
}

// ParseCalendarMonth accepts YYYY-MM and falls back to the current month.
func ParseCalendarMonth(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		today := calendarDay(now)
		return today.AddDate(0, 0, 1-today.Day()), nil
	}
	return time.ParseInLocation("2006-01", raw, time.UTC)
}
