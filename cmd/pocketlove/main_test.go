package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/pocketlove/internal/api"
	"github.com/terraincognita07/pocketlove/internal/db"
	"github.com/terraincognita07/pocketlove/internal/i18n"
	"github.com/terraincognita07/pocketlove/internal/services"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func openTestDatabasePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "pocketlove.db")
}

func TestNewAppServesHealthAndJSONNotFound(t *testing.T) {
	database, err := db.OpenSQLite(openTestDatabasePath(t))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	i18nManager, err := i18n.NewManager("en", i18n.EmbeddedLocales())
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}
	handler, err := api.NewHandler(database, testSecretKey, time.UTC, i18nManager, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	app := newApp(handler, io.Discard)

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	response, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	if err != nil {
		t.Fatalf("missing request failed: %v", err)
	}
	defer response.Body.Close()
	body, _ := io.ReadAll(response.Body)
	if response.StatusCode != http.StatusNotFound || !strings.Contains(string(body), `"not_found"`) {
		t.Fatalf("expected JSON 404, got %d %s", response.StatusCode, string(body))
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"serve", "reset-passcode"} {
		if command, _, err := root.Find([]string{name}); err != nil || command.Name() != name {
			t.Fatalf("expected %s subcommand, got %v (%v)", name, command, err)
		}
	}
}

func TestResetPasscodeCommand(t *testing.T) {
	dbPath := openTestDatabasePath(t)
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repositories := db.NewRepositories(database)
	onboarding := services.NewOnboardingService(services.NewProfileService(repositories.UserData))
	if _, err := onboarding.Complete(services.OnboardingInput{
		Name:            "Mira",
		LastPeriodStart: "2024-01-01",
		Passcode:        "2468",
	}, time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"reset-passcode", "--db", dbPath})
	if err := root.Execute(); err != nil {
		t.Fatalf("reset-passcode failed: %v", err)
	}

	var passcode string
	for _, line := range strings.Split(out.String(), "\n") {
		if value, ok := strings.CutPrefix(line, "Temporary passcode: "); ok {
			passcode = value
		}
	}
	owner, found, err := repositories.Users.FindOwner()
	if err != nil || !found {
		t.Fatalf("load owner: found=%v err=%v", found, err)
	}
	if passcode == "" || !services.PasscodeMatches(owner.PasscodeHash, passcode) {
		t.Fatalf("expected stored hash to match printed passcode, output=%q", out.String())
	}
	if services.PasscodeMatches(owner.PasscodeHash, "2468") {
		t.Fatal("old passcode must stop working")
	}
}

func TestResetPasscodeCommandWithoutProfile(t *testing.T) {
	root := newRootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"reset-passcode", "--db", openTestDatabasePath(t)})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "onboarding") {
		t.Fatalf("expected missing profile error, got %v", err)
	}
}
