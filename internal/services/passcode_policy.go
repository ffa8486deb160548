package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const MinPasscodeLength = 4

var (
	ErrWeakPasscode    = errors.New("weak passcode")
	ErrInvalidPasscode = errors.New("invalid passcode")
)

// HashPasscode returns an empty hash for an empty passcode, which leaves the
// privacy lock disabled.
func HashPasscode(passcode string) (string, error) {
	if passcode == "" {
		return "", nil
	}
	if err := ValidatePasscode(passcode); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func ValidatePasscode(passcode string) error {
	if strings.TrimSpace(passcode) != passcode || len([]rune(passcode)) < MinPasscodeLength {
		return ErrWeakPasscode
	}
	return nil
}

func PasscodeMatches(hash string, passcode string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
