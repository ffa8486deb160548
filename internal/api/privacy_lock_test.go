package api

import (
	"net/http"
	"testing"
)

func TestPrivacyLockGuardsDataRoutes(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := onboard(t, app, "2468")

	assertErrorCode(t, doRequest(t, app, http.MethodGet, "/api/profile", nil, nil), http.StatusUnauthorized, "unauthorized")
	assertErrorCode(t, doRequest(t, app, http.MethodGet, "/api/profile", nil, withCookie(authCookieName+"=forged")), http.StatusUnauthorized, "unauthorized")
	assertStatus(t, doRequest(t, app, http.MethodGet, "/api/profile", nil, withCookie(cookie)), http.StatusOK)

	assertStatus(t, doRequest(t, app, http.MethodGet, "/healthz", nil, nil), http.StatusOK)
	assertStatus(t, doRequest(t, app, http.MethodGet, "/api/setup-status", nil, nil), http.StatusOK)
}

func TestUnlockIssuesSession(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	onboard(t, app, "2468")

	assertErrorCode(t, doRequest(t, app, http.MethodPost, "/api/auth/unlock", unlockInput{Passcode: "1357"}, nil), http.StatusUnauthorized, "invalid_passcode")

	unlocked := doRequest(t, app, http.MethodPost, "/api/auth/unlock", unlockInput{Passcode: "2468"}, nil)
	assertStatus(t, unlocked, http.StatusOK)
	cookie := authCookieHeader(t, unlocked)
	assertStatus(t, doRequest(t, app, http.MethodGet, "/api/dashboard", nil, withCookie(cookie)), http.StatusOK)

	locked := doRequest(t, app, http.MethodPost, "/api/auth/lock", nil, withCookie(cookie))
	assertStatus(t, locked, http.StatusOK)
	for _, responseCookie := range locked.cookies {
		if responseCookie.Name == authCookieName && responseCookie.Value != "" {
			t.Fatalf("expected lock to clear the auth cookie, got %q", responseCookie.Value)
		}
	}
}

func TestUnlockRateLimitsFailedAttempts(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	onboard(t, app, "2468")

	for attempt := 0; attempt < unlockAttemptLimit; attempt++ {
		assertStatus(t, doRequest(t, app, http.MethodPost, "/api/auth/unlock", unlockInput{Passcode: "0000"}, nil), http.StatusUnauthorized)
	}
	assertErrorCode(t, doRequest(t, app, http.MethodPost, "/api/auth/unlock", unlockInput{Passcode: "2468"}, nil), http.StatusTooManyRequests, "too_many_attempts")
}

func TestChangePasscodeEndsOldSessions(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	oldCookie := onboard(t, app, "2468")

	assertErrorCode(t, doRequest(t, app, http.MethodPost, "/api/settings/passcode", changePasscodeInput{
		CurrentPasscode: "2468",
		NewPasscode:     "1357",
		ConfirmPasscode: "7531",
	}, withCookie(oldCookie)), http.StatusBadRequest, "passcode_mismatch")

	changed := doRequest(t, app, http.MethodPost, "/api/settings/passcode", changePasscodeInput{
		CurrentPasscode: "2468",
		NewPasscode:     "1357",
		ConfirmPasscode: "1357",
	}, withCookie(oldCookie))
	assertStatus(t, changed, http.StatusOK)
	newCookie := authCookieHeader(t, changed)

	assertStatus(t, doRequest(t, app, http.MethodGet, "/api/profile", nil, withCookie(oldCookie)), http.StatusUnauthorized)
	assertStatus(t, doRequest(t, app, http.MethodGet, "/api/profile", nil, withCookie(newCookie)), http.StatusOK)

	disabled := doRequest(t, app, http.MethodPost, "/api/settings/passcode", changePasscodeInput{
		CurrentPasscode: "1357",
	}, withCookie(newCookie))
	assertStatus(t, disabled, http.StatusOK)
	if payload := decodeResponse[map[string]any](t, disabled); payload["lockEnabled"] != false {
		t.Fatalf("expected lock disabled, got %+v", payload)
	}
	assertStatus(t, doRequest(t, app, http.MethodGet, "/api/profile", nil, nil), http.StatusOK)
}

func TestClearDataRequiresPasscodeWhenLocked(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := onboard(t, app, "2468")

	assertErrorCode(t, doRequest(t, app, http.MethodPost, "/api/settings/clear-data", clearDataInput{Passcode: "0000"}, withCookie(cookie)), http.StatusUnauthorized, "invalid_passcode")
	assertStatus(t, doRequest(t, app, http.MethodPost, "/api/settings/clear-data", clearDataInput{Passcode: "2468"}, withCookie(cookie)), http.StatusOK)

	status := decodeResponse[map[string]any](t, doRequest(t, app, http.MethodGet, "/api/setup-status", nil, nil))
	if status["requiresOnboarding"] != true {
		t.Fatalf("expected onboarding to be required after clearing data, got %+v", status)
	}
}
