package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

type dayInterval struct {
	start time.Time
	end   time.Time
}

func (interval dayInterval) contains(day time.Time) bool {
	return !day.Before(interval.start) && !day.After(interval.end)
}

// DayClassifier holds the parsed intervals of one CycleStats value.
// It is immutable and safe for concurrent use.
type DayClassifier struct {
	periods   []dayInterval
	predicted *dayInterval
	fertile   *dayInterval
}

// ClassifyDay maps a calendar day to its phase. Logged periods win over the
// predicted window, which wins over the fertile window.
func ClassifyDay(day time.Time, stats models.CycleStats) models.DayStatus {
	classifier, _ := NewDayClassifier(stats)
	return classifier.Classify(day)
}

func (classifier *DayClassifier) Classify(day time.Time) models.DayStatus {
	target := calendarDay(day)

	for _, period := range classifier.periods {
		if period.contains(target) {
			return models.DayStatusPeriod
		}
	}
	if classifier.predicted != nil && classifier.predicted.contains(target) {
		return models.DayStatusPredicted
	}
	if classifier.fertile != nil && classifier.fertile.contains(target) {
		return models.DayStatusFertile
	}
	return models.DayStatusNone
}

// NewDayClassifier parses every interval of stats up front and reports the
// first malformed date. The classifier is returned even then and simply
// skips the intervals that did not parse.
func NewDayClassifier(stats models.CycleStats) (*DayClassifier, error) {
	classifier := &DayClassifier{
		periods: make([]dayInterval, 0, len(stats.PeriodHistory)),
	}
	var invalid error
	markInvalid := func(raw string) {
		if invalid == nil {
			invalid = fmt.Errorf("%w: %q", ErrInvalidPeriodDate, raw)
		}
	}

	for _, entry := range stats.PeriodHistory {
		start, err := ParseDay(entry.StartDate)
		if err != nil {
			markInvalid(entry.StartDate)
			continue
		}
		classifier.periods = append(classifier.periods, dayInterval{
			start: start,
			end:   start.AddDate(0, 0, entry.LengthDays-1),
		})
	}

	if predictedStart, err := ParseDay(stats.Computed.PredictedNextStart); err == nil {
		classifier.predicted = &dayInterval{
			start: predictedStart,
			end:   predictedStart.AddDate(0, 0, stats.AvgPeriodLength-1),
		}
	} else {
		markInvalid(stats.Computed.PredictedNextStart)
	}

	fertileStart, startErr := ParseDay(stats.Computed.FertileWindowStart)
	fertileEnd, endErr := ParseDay(stats.Computed.FertileWindowEnd)
	switch {
	case startErr != nil:
		markInvalid(stats.Computed.FertileWindowStart)
	case endErr != nil:
		markInvalid(stats.Computed.FertileWindowEnd)
	default:
		classifier.fertile = &dayInterval{start: fertileStart, end: fertileEnd}
	}

	return classifier, invalid
}
