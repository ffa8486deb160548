package api

type onboardingInput struct {
	Name            string `json:"name" validate:"required,max=64"`
	LastPeriodStart string `json:"lastPeriodStart" validate:"required,calendar_date"`
	Passcode        string `json:"passcode" validate:"omitempty,min=4,max=64"`
	Language        string `json:"language" validate:"omitempty,oneof=en ru"`
}

type unlockInput struct {
	Passcode string `json:"passcode" validate:"required"`
}

type profileInput struct {
	Name string `json:"name" validate:"required,max=64"`
}

type periodInput struct {
	StartDate  string `json:"startDate" validate:"omitempty,calendar_date"`
	LengthDays int    `json:"lengthDays" validate:"gte=0,lte=31"`
	Notes      string `json:"notes" validate:"max=500"`
}

type moodInput struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Note   string `json:"note" validate:"max=500"`
}

type milestoneInput struct {
	Title string `json:"title" validate:"required,max=100"`
	Date  string `json:"date" validate:"required,calendar_date"`
	Time  string `json:"time" validate:"required,clock_time"`
}

type specialDateInput struct {
	Title        string `json:"title" validate:"required,max=100"`
	Date         string `json:"date" validate:"required,calendar_date"`
	Recurrence   string `json:"recurrence" validate:"omitempty,oneof=yearly monthly none"`
	ReminderDays int    `json:"reminderDays" validate:"gte=0,lte=60"`
}

type journalInput struct {
	Date    string `json:"date" validate:"omitempty,calendar_date"`
	Content string `json:"content" validate:"required"`
	Mood    string `json:"mood" validate:"max=32"`
}

type notificationSettingsInput struct {
	PeriodWarningDays    int  `json:"periodWarningDays" validate:"gte=0,lte=14"`
	PmsWarningDays       int  `json:"pmsWarningDays" validate:"gte=0,lte=14"`
	FertilityWarningDays int  `json:"fertilityWarningDays" validate:"gte=0,lte=14"`
	EnableVibrations     bool `json:"enableVibrations"`
}

type privacySettingsInput struct {
	CloudBackup bool `json:"cloudBackup"`
	Encrypted   bool `json:"encrypted"`
}

type preferencesInput struct {
	Theme                string                    `json:"theme" validate:"max=32"`
	Language             string                    `json:"language" validate:"omitempty,oneof=en ru"`
	NotificationSettings notificationSettingsInput `json:"notificationSettings"`
	Privacy              privacySettingsInput      `json:"privacy"`
}

type changePasscodeInput struct {
	CurrentPasscode string `json:"currentPasscode"`
	NewPasscode     string `json:"newPasscode" validate:"omitempty,min=4,max=64"`
	ConfirmPasscode string `json:"confirmPasscode"`
}

type clearDataInput struct {
	Passcode string `json:"passcode"`
}
