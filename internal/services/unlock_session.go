package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/pocketlove/internal/security"
)

const (
	unlockTokenPurpose      = "unlock"
	DefaultUnlockSessionTTL = 12 * time.Hour
	temporaryPasscodeLength = 6

	passcodeStateDomain = "pocketlove.unlock.passcode-state.v1"
)

var (
	ErrUnlockTokenMissing       = errors.New("missing unlock token")
	ErrUnlockTokenInvalid       = errors.New("invalid unlock token")
	ErrUnlockTokenPurpose       = errors.New("invalid unlock token purpose")
	ErrUnlockTokenExpired       = errors.New("expired unlock token")
	ErrUnlockTokenProfile       = errors.New("invalid unlock token profile")
	ErrUnlockTokenPasscodeState = errors.New("invalid unlock token passcode state")
)

// UnlockClaims bind a session to the passcode it was opened with, so changing
// or resetting the passcode ends every open session.
type UnlockClaims struct {
	Profile       string `json:"pid"`
	Purpose       string `json:"purpose"`
	PasscodeState string `json:"passcode_state"`
	jwt.RegisteredClaims
}

func BuildUnlockToken(secretKey []byte, profileID string, passcodeHash string, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		ttl = DefaultUnlockSessionTTL
	}
	if now.IsZero() {
		now = time.Now()
	}
	if strings.TrimSpace(profileID) == "" {
		return "", ErrUnlockTokenProfile
	}
	passcodeState := PasscodeStateFingerprint(passcodeHash)
	if passcodeState == "" {
		return "", ErrUnlockTokenPasscodeState
	}

	claims := UnlockClaims{
		Profile:       profileID,
		Purpose:       unlockTokenPurpose,
		PasscodeState: passcodeState,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func ParseUnlockToken(secretKey []byte, rawToken string, now time.Time) (*UnlockClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrUnlockTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &UnlockClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secretKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrUnlockTokenExpired
		}
		return nil, ErrUnlockTokenInvalid
	}
	if !token.Valid {
		return nil, ErrUnlockTokenInvalid
	}
	if claims.Purpose != unlockTokenPurpose {
		return nil, ErrUnlockTokenPurpose
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, ErrUnlockTokenExpired
	}
	if strings.TrimSpace(claims.Profile) == "" {
		return nil, ErrUnlockTokenProfile
	}
	if strings.TrimSpace(claims.PasscodeState) == "" {
		return nil, ErrUnlockTokenPasscodeState
	}
	return claims, nil
}

// ValidateUnlockSession checks a parsed session against the stored profile.
func ValidateUnlockSession(claims *UnlockClaims, profileID string, passcodeHash string) error {
	if claims == nil || claims.Profile != profileID {
		return ErrUnlockTokenProfile
	}
	if !IsPasscodeStateFingerprintMatch(claims.PasscodeState, passcodeHash) {
		return ErrUnlockTokenPasscodeState
	}
	return nil
}

func PasscodeStateFingerprint(passcodeHash string) string {
	return security.Fingerprint(passcodeStateDomain, passcodeHash)
}

func IsPasscodeStateFingerprintMatch(expected string, passcodeHash string) bool {
	return security.FingerprintsEqual(expected, PasscodeStateFingerprint(passcodeHash))
}

// GenerateTemporaryPasscode returns a numeric passcode and its bcrypt hash.
func GenerateTemporaryPasscode() (string, string, error) {
	passcode, err := security.RandomDigits(temporaryPasscodeLength)
	if err != nil {
		return "", "", err
	}
	hash, err := HashPasscode(passcode)
	if err != nil {
		return "", "", err
	}
	return passcode, hash, nil
}
