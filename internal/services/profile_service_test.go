package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

type memoryUserDataStore struct {
	data    models.UserData
	found   bool
	saves   int
	saveErr error
}

func (store *memoryUserDataStore) Load() (models.UserData, bool, error) {
	if !store.found {
		return models.UserData{}, false, nil
	}
	return cloneUserData(store.data), true, nil
}

func (store *memoryUserDataStore) Save(data models.UserData) error {
	if store.saveErr != nil {
		return store.saveErr
	}
	store.data = cloneUserData(data)
	store.found = true
	store.saves++
	return nil
}

func (store *memoryUserDataStore) Clear() error {
	store.data = models.UserData{}
	store.found = false
	return nil
}

func cloneUserData(data models.UserData) models.UserData {
	clone := data
	clone.CycleStats.PeriodHistory = append([]models.PeriodEntry(nil), data.CycleStats.PeriodHistory...)
	clone.LoveMeter = append([]models.LoveLog(nil), data.LoveMeter...)
	clone.SpecialDates = append([]models.SpecialDate(nil), data.SpecialDates...)
	clone.Journal = append([]models.JournalEntry(nil), data.Journal...)
	clone.TimePassedEntries = append([]models.TimePassedEntry(nil), data.TimePassedEntries...)
	return clone
}

func newOnboardedStore(history ...models.PeriodEntry) *memoryUserDataStore {
	return &memoryUserDataStore{
		found: true,
		data: models.UserData{
			ID:          "owner",
			Name:        "Mira",
			Preferences: models.DefaultPreferences(),
			CycleStats:  models.CycleStats{PeriodHistory: history},
		},
	}
}

func TestProfileServiceCurrentRecomputesStats(t *testing.T) {
	t.Parallel()

	store := newOnboardedStore(
		models.PeriodEntry{StartDate: "2024-01-01", LengthDays: 5},
		models.PeriodEntry{StartDate: "2024-02-01", LengthDays: 4},
	)
	store.data.CycleStats.AvgCycleLength = 99

	data, err := NewProfileService(store).Current(mustParseDay("2024-02-10"))
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if data.CycleStats.AvgCycleLength != 31 {
		t.Fatalf("expected recomputed cycle length 31, got %d", data.CycleStats.AvgCycleLength)
	}
	if data.CycleStats.Computed.PredictedNextStart != "2024-03-03" {
		t.Fatalf("expected next start 2024-03-03, got %s", data.CycleStats.Computed.PredictedNextStart)
	}
}

func TestProfileServiceCurrentRequiresOnboarding(t *testing.T) {
	t.Parallel()

	_, err := NewProfileService(&memoryUserDataStore{}).Current(time.Now())
	if !errors.Is(err, ErrNotOnboarded) {
		t.Fatalf("expected ErrNotOnboarded, got %v", err)
	}
}

func TestProfileServiceUpdateSurfacesSaveFailure(t *testing.T) {
	t.Parallel()

	store := newOnboardedStore(models.PeriodEntry{StartDate: "2024-01-01", LengthDays: 5})
	store.saveErr = errors.New("disk full")

	_, err := NewProfileService(store).Update(mustParseDay("2024-01-10"), func(data *models.UserData) error {
		data.Name = "Changed"
		return nil
	})
	if err == nil || !errors.Is(err, store.saveErr) {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
	if store.data.Name != "Mira" {
		t.Fatalf("expected stored data unchanged, got name %q", store.data.Name)
	}
}

func TestOnboardingServiceComplete(t *testing.T) {
	t.Parallel()

	store := &memoryUserDataStore{}
	service := NewOnboardingService(NewProfileService(store))

	data, err := service.Complete(OnboardingInput{
		Name:            "  Mira ",
		LastPeriodStart: "2024-01-01",
		Passcode:        "2468",
	}, mustParseDay("2024-01-10"))
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	if data.Name != "Mira" || data.ID == "" {
		t.Fatalf("unexpected profile identity: %+v", data)
	}
	if len(data.CycleStats.PeriodHistory) != 1 {
		t.Fatalf("expected one seeded period, got %d", len(data.CycleStats.PeriodHistory))
	}
	seeded := data.CycleStats.PeriodHistory[0]
	if seeded.LengthDays != 5 || seeded.Notes != "Initial entry" {
		t.Fatalf("unexpected seeded entry: %+v", seeded)
	}
	if data.CycleStats.Computed.PredictedNextStart != "2024-01-29" {
		t.Fatalf("expected next start 2024-01-29, got %s", data.CycleStats.Computed.PredictedNextStart)
	}
	if !PasscodeMatches(store.data.PasscodeHash, "2468") {
		t.Fatal("expected stored passcode hash to match")
	}
	if data.Preferences != models.DefaultPreferences() {
		t.Fatalf("expected default preferences, got %+v", data.Preferences)
	}

	if _, err := service.Complete(OnboardingInput{Name: "Again", LastPeriodStart: "2024-01-01"}, mustParseDay("2024-01-10")); !errors.Is(err, ErrAlreadyOnboarded) {
		t.Fatalf("expected ErrAlreadyOnboarded, got %v", err)
	}
}

func TestOnboardingServiceCompleteValidatesInput(t *testing.T) {
	t.Parallel()

	now := mustParseDay("2024-01-10")
	tests := []struct {
		name  string
		input OnboardingInput
		want  error
	}{
		{"missing name", OnboardingInput{LastPeriodStart: "2024-01-01"}, ErrOnboardingNameRequired},
		{"missing start", OnboardingInput{Name: "Mira"}, ErrOnboardingStartRequired},
		{"malformed start", OnboardingInput{Name: "Mira", LastPeriodStart: "01.01.2024"}, ErrInvalidPeriodDate},
		{"future start", OnboardingInput{Name: "Mira", LastPeriodStart: "2024-01-11"}, ErrOnboardingStartInFuture},
		{"short passcode", OnboardingInput{Name: "Mira", LastPeriodStart: "2024-01-01", Passcode: "12"}, ErrWeakPasscode},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			store := &memoryUserDataStore{}
			_, err := NewOnboardingService(NewProfileService(store)).Complete(test.input, now)
			if !errors.Is(err, test.want) {
				t.Fatalf("expected %v, got %v", test.want, err)
			}
			if store.found {
				t.Fatal("expected nothing saved on invalid input")
			}
		})
	}
}
