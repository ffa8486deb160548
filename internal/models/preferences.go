package models

const (
	ThemeMinimalCute = "minimal-cute"
	LanguageEN       = "en"
)

type NotificationSettings struct {
	PeriodWarningDays    int  `json:"periodWarningDays"`
	PmsWarningDays       int  `json:"pmsWarningDays"`
	FertilityWarningDays int  `json:"fertilityWarningDays"`
	EnableVibrations     bool `json:"enableVibrations"`
}

type PrivacySettings struct {
	CloudBackup bool `json:"cloudBackup"`
	Encrypted   bool `json:"encrypted"`
}

type Preferences struct {
	Theme                string               `json:"theme"`
	Language             string               `json:"language,omitempty"`
	NotificationSettings NotificationSettings `json:"notificationSettings"`
	Privacy              PrivacySettings      `json:"privacy"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme: ThemeMinimalCute,
		NotificationSettings: NotificationSettings{
			PeriodWarningDays:    2,
			PmsWarningDays:       3,
			FertilityWarningDays: 2,
			EnableVibrations:     true,
		},
		Privacy: PrivacySettings{
			CloudBackup: false,
			Encrypted:   true,
		},
	}
}
