package services

import "errors"

var (
	ErrPasscodeMismatch   = errors.New("passcode mismatch")
	ErrPasscodeMustDiffer = errors.New("new passcode must differ")
)

// ValidatePasscodeChange checks the form fields before any hashing happens.
// An empty next passcode is allowed and turns the lock off.
func ValidatePasscodeChange(current string, next string, confirm string) error {
	if next != confirm {
		return ErrPasscodeMismatch
	}
	if next != "" && next == current {
		return ErrPasscodeMustDiffer
	}
	return nil
}
