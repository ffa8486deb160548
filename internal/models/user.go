package models

import "time"

type User struct {
	ID           uint        `gorm:"primaryKey"`
	PublicID     string      `gorm:"uniqueIndex;not null"`
	Name         string      `gorm:"not null"`
	PasscodeHash string      `gorm:"not null;default:''"`
	Preferences  Preferences `gorm:"serializer:json"`
	CreatedAt    time.Time   `gorm:"not null"`
	UpdatedAt    time.Time
}

func (user *User) HasPasscode() bool {
	return user != nil && user.PasscodeHash != ""
}

// UserData is the whole profile as exchanged with the presentation layer.
type UserData struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Preferences       Preferences       `json:"preferences"`
	CycleStats        CycleStats        `json:"cycleStats"`
	LoveMeter         []LoveLog         `json:"loveMeter"`
	SpecialDates      []SpecialDate     `json:"specialDates"`
	Journal           []JournalEntry    `json:"journal"`
	TimePassedEntries []TimePassedEntry `json:"timePassedEntries"`

	PasscodeHash string `json:"-"`
}
