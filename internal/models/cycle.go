package models

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
	LutealPhaseDays     = 14
	FertileLeadDays     = 5
	FertileTrailDays    = 1

	DateLayout = "2006-01-02"
)

type DayStatus string

const (
	DayStatusPeriod    DayStatus = "period"
	DayStatusPredicted DayStatus = "predicted"
	DayStatusFertile   DayStatus = "fertile"
	DayStatusNone      DayStatus = "none"
)

// PeriodEntry is one logged period. StartDate is a YYYY-MM-DD calendar date.
type PeriodEntry struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	UserID     uint   `gorm:"not null;index" json:"-"`
	Position   int    `gorm:"not null;default:0" json:"-"`
	StartDate  string `gorm:"not null" json:"startDate"`
	LengthDays int    `gorm:"not null" json:"lengthDays"`
	Notes      string `json:"notes"`
}

type CycleComputed struct {
	LastPeriodStart    string `json:"lastPeriodStart"`
	PredictedNextStart string `json:"predictedNextStart"`
	PredictedOvulation string `json:"predictedOvulation"`
	FertileWindowStart string `json:"fertileWindowStart"`
	FertileWindowEnd   string `json:"fertileWindowEnd"`
}

// CycleStats is derived from PeriodHistory and is never stored on its own.
type CycleStats struct {
	PeriodHistory   []PeriodEntry `json:"periodHistory"`
	AvgCycleLength  int           `json:"avgCycleLength"`
	AvgPeriodLength int           `json:"avgPeriodLength"`
	Computed        CycleComputed `json:"computed"`
}
