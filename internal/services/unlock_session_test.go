package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var temporaryPasscodePattern = regexp.MustCompile(`^[0-9]{6}$`)

func TestBuildAndParseUnlockToken(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	passcodeHash := "$2a$10$testhashvaluefortokenclaims"

	token, err := BuildUnlockToken(secret, "profile-1", passcodeHash, time.Hour, now)
	if err != nil {
		t.Fatalf("BuildUnlockToken() unexpected error: %v", err)
	}

	claims, err := ParseUnlockToken(secret, token, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("ParseUnlockToken() unexpected error: %v", err)
	}
	if claims.Profile != "profile-1" {
		t.Fatalf("expected profile-1, got %q", claims.Profile)
	}
	if err := ValidateUnlockSession(claims, "profile-1", passcodeHash); err != nil {
		t.Fatalf("ValidateUnlockSession() unexpected error: %v", err)
	}
	if err := ValidateUnlockSession(claims, "profile-1", "$2a$10$another"); !errors.Is(err, ErrUnlockTokenPasscodeState) {
		t.Fatalf("expected ErrUnlockTokenPasscodeState after passcode change, got %v", err)
	}
	if err := ValidateUnlockSession(claims, "profile-2", passcodeHash); !errors.Is(err, ErrUnlockTokenProfile) {
		t.Fatalf("expected ErrUnlockTokenProfile, got %v", err)
	}
}

func TestParseUnlockTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	token, err := BuildUnlockToken(secret, "profile-1", "$2a$10$hash", time.Minute, now)
	if err != nil {
		t.Fatalf("BuildUnlockToken() unexpected error: %v", err)
	}

	_, err = ParseUnlockToken(secret, token, now.Add(2*time.Minute))
	if !errors.Is(err, ErrUnlockTokenExpired) {
		t.Fatalf("expected ErrUnlockTokenExpired, got %v", err)
	}
}

func TestParseUnlockTokenRejectsWrongPurposeAndSecret(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	claims := UnlockClaims{
		Profile:       "profile-1",
		Purpose:       "another-purpose",
		PasscodeState: "state",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ParseUnlockToken(secret, signed, now); !errors.Is(err, ErrUnlockTokenPurpose) {
		t.Fatalf("expected ErrUnlockTokenPurpose, got %v", err)
	}
	if _, err := ParseUnlockToken([]byte("other-secret"), signed, now); !errors.Is(err, ErrUnlockTokenInvalid) {
		t.Fatalf("expected ErrUnlockTokenInvalid, got %v", err)
	}
	if _, err := ParseUnlockToken(secret, "  ", now); !errors.Is(err, ErrUnlockTokenMissing) {
		t.Fatalf("expected ErrUnlockTokenMissing, got %v", err)
	}
}

func TestBuildUnlockTokenRequiresPasscode(t *testing.T) {
	t.Parallel()

	_, err := BuildUnlockToken([]byte("secret"), "profile-1", "", time.Hour, time.Now())
	if !errors.Is(err, ErrUnlockTokenPasscodeState) {
		t.Fatalf("expected ErrUnlockTokenPasscodeState, got %v", err)
	}
}

func TestGenerateTemporaryPasscode(t *testing.T) {
	t.Parallel()

	passcode, hash, err := GenerateTemporaryPasscode()
	if err != nil {
		t.Fatalf("GenerateTemporaryPasscode() unexpected error: %v", err)
	}
	if !temporaryPasscodePattern.MatchString(passcode) {
		t.Fatalf("expected six digit passcode, got %q", passcode)
	}
	if !PasscodeMatches(hash, passcode) {
		t.Fatalf("expected hash to match generated passcode")
	}
}
