package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

var (
	ErrInvalidPeriodDate   = errors.New("invalid period start date")
	ErrInvalidPeriodLength = errors.New("invalid period length")
)

// BuildCycleStats recomputes averages and predictions from the full history.
// Averages are rounded half away from zero. Entries sharing a start date keep
// their input order.
func BuildCycleStats(history []models.PeriodEntry, now time.Time) (models.CycleStats, error) {
	starts := make([]time.Time, len(history))
	for index, entry := range history {
		start, err := ParseDay(entry.StartDate)
		if err != nil {
			return models.CycleStats{}, fmt.Errorf("%w: %q", ErrInvalidPeriodDate, entry.StartDate)
		}
		starts[index] = start
	}

	order := make([]int, len(history))
	for index := range order {
		order[index] = index
	}
	sort.SliceStable(order, func(i, j int) bool {
		return starts[order[i]].After(starts[order[j]])
	})

	sorted := make([]models.PeriodEntry, len(history))
	sortedStarts := make([]time.Time, len(history))
	for position, index := range order {
		sorted[position] = history[index]
		sortedStarts[position] = starts[index]
	}

	stats := models.CycleStats{
		PeriodHistory:   sorted,
		AvgCycleLength:  models.DefaultCycleLength,
		AvgPeriodLength: models.DefaultPeriodLength,
	}

	switch count := len(sorted); {
	case count >= 2:
		cycleSum := 0
		periodSum := 0
		for i := 0; i < count-1; i++ {
			cycleSum += daysBetween(sortedStarts[i+1], sortedStarts[i])
			periodSum += sorted[i].LengthDays
		}
		periodSum += sorted[count-1].LengthDays

		stats.AvgCycleLength = roundedAverage(cycleSum, count-1)
		stats.AvgPeriodLength = roundedAverage(periodSum, count)
	case count == 1:
		stats.AvgPeriodLength = sorted[0].LengthDays
	}

	lastStart := calendarDay(now)
	if len(sortedStarts) > 0 {
		lastStart = sortedStarts[0]
	}

	nextStart := lastStart.AddDate(0, 0, stats.AvgCycleLength)
	ovulation := nextStart.AddDate(0, 0, -models.LutealPhaseDays)
	stats.Computed = models.CycleComputed{
		LastPeriodStart:    FormatDay(lastStart),
		PredictedNextStart: FormatDay(nextStart),
		PredictedOvulation: FormatDay(ovulation),
		FertileWindowStart: FormatDay(ovulation.AddDate(0, 0, -models.FertileLeadDays)),
		FertileWindowEnd:   FormatDay(ovulation.AddDate(0, 0, models.FertileTrailDays)),
	}
	return stats, nil
}

// ValidatePeriodEntries rejects entries the calculator cannot accept.
func ValidatePeriodEntries(entries []models.PeriodEntry) error {
	for _, entry := range entries {
		if _, err := ParseDay(entry.StartDate); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidPeriodDate, entry.StartDate)
		}
		if entry.LengthDays <= 0 {
			return fmt.Errorf("%w: %d days starting %s", ErrInvalidPeriodLength, entry.LengthDays, entry.StartDate)
		}
	}
	return nil
}

// ParseDay parses a YYYY-MM-DD value as a UTC midnight. Surrounding
// whitespace is rejected.
func ParseDay(raw string) (time.Time, error) {
	return time.ParseInLocation(models.DateLayout, raw, time.UTC)
}

func FormatDay(day time.Time) string {
	return day.Format(models.DateLayout)
}

// calendarDay maps any instant to the UTC midnight of its local calendar date,
// so day arithmetic is free of DST shifts.
func calendarDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from time.Time, to time.Time) int {
	return int(calendarDay(to).Sub(calendarDay(from)).Hours() / 24)
}

func roundedAverage(sum int, count int) int {
	if count <= 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
