package models

const (
	RecurrenceYearly  = "yearly"
	RecurrenceMonthly = "monthly"
	RecurrenceNone    = "none"

	MinMoodRating = 1
	MaxMoodRating = 5

	// DateTimeLayout is the local minute-precision timestamp used by milestones.
	DateTimeLayout = "2006-01-02T15:04"
)

type LoveLog struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   uint   `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null;default:0" json:"-"`
	Date     string `gorm:"not null" json:"date"`
	Rating   int    `gorm:"not null" json:"rating"`
	Note     string `json:"note"`
}

type SpecialDate struct {
	ID           string `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"not null;index" json:"-"`
	Position     int    `gorm:"not null;default:0" json:"-"`
	Title        string `gorm:"not null" json:"title"`
	Date         string `gorm:"not null" json:"date"`
	Recurrence   string `gorm:"not null;default:none" json:"recurrence"`
	ReminderDays int    `gorm:"not null;default:0" json:"reminderDays"`
}

type JournalEntry struct {
	ID       string `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null;default:0" json:"-"`
	Date     string `gorm:"not null" json:"date"`
	Content  string `gorm:"not null" json:"content"`
	Mood     string `json:"mood,omitempty"`
}

type TimePassedEntry struct {
	ID       string `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null;default:0" json:"-"`
	Title    string `gorm:"not null" json:"title"`
	DateTime string `gorm:"not null" json:"dateTime"`
}
