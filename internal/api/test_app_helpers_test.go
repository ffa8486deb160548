package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/db"
	"github.com/terraincognita07/pocketlove/internal/i18n"
)

const testSecretKey = "test-secret-key-with-enough-entropy-0123456789"

var testNow = time.Date(2024, time.February, 20, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "pocketlove-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager("en", i18n.EmbeddedLocales())
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, testSecretKey, time.UTC, i18nManager, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.clock = func() time.Time { return testNow }

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}

type testResponse struct {
	status  int
	body    []byte
	cookies []*http.Cookie
	header  http.Header
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, payload any, headers map[string]string) testResponse {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for name, value := range headers {
		request.Header.Set(name, value)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return testResponse{
		status:  response.StatusCode,
		body:    content,
		cookies: response.Cookies(),
		header:  response.Header,
	}
}

func withCookie(cookie string) map[string]string {
	if cookie == "" {
		return nil
	}
	return map[string]string{"Cookie": cookie}
}

func decodeResponse[T any](t *testing.T, response testResponse) T {
	t.Helper()

	var value T
	if err := json.Unmarshal(response.body, &value); err != nil {
		t.Fatalf("decode response %q: %v", string(response.body), err)
	}
	return value
}

func assertStatus(t *testing.T, response testResponse, want int) {
	t.Helper()

	if response.status != want {
		t.Fatalf("expected status %d, got %d: %s", want, response.status, string(response.body))
	}
}

func assertErrorCode(t *testing.T, response testResponse, status int, code string) {
	t.Helper()

	assertStatus(t, response, status)
	payload := decodeResponse[map[string]string](t, response)
	if payload["error"] != code {
		t.Fatalf("expected error %q, got %q", code, payload["error"])
	}
}

func authCookieHeader(t *testing.T, response testResponse) string {
	t.Helper()

	for _, cookie := range response.cookies {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("auth cookie is missing in response")
	return ""
}

// onboard completes onboarding and returns the unlock cookie, if any.
func onboard(t *testing.T, app *fiber.App, passcode string) string {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/api/onboarding", onboardingInput{
		Name:            "Mira",
		LastPeriodStart: "2024-01-01",
		Passcode:        passcode,
	}, nil)
	assertStatus(t, response, http.StatusCreated)
	if passcode == "" {
		return ""
	}
	return authCookieHeader(t, response)
}
