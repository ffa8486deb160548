package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/pocketlove/internal/db"
	"github.com/terraincognita07/pocketlove/internal/models"
	"github.com/terraincognita07/pocketlove/internal/services"
)

var errNoProfile = errors.New("no profile found: complete onboarding first")

type PasscodeStore interface {
	FindOwner() (models.User, bool, error)
	UpdatePasscodeHash(userID uint, passcodeHash string) error
}

// ResetOptions select how the new passcode is chosen. Without Prompt or
// Disable a temporary numeric passcode is generated and printed.
type ResetOptions struct {
	Prompt  bool
	Disable bool
	Stdin   *os.File
	Out     io.Writer
}

type passcodeReader func(stdin *os.File) ([]byte, error)

func RunResetPasscodeCommand(dbPath string, options ResetOptions) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	return resetPasscode(db.NewUserRepository(database), options, readPasscodeNoEcho)
}

func resetPasscode(store PasscodeStore, options ResetOptions, readPasscode passcodeReader) error {
	if options.Prompt && options.Disable {
		return errors.New("--prompt and --disable cannot be combined")
	}
	out := options.Out
	if out == nil {
		out = os.Stdout
	}
	stdin := options.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	user, found, err := store.FindOwner()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return errNoProfile
	}

	var passcode, passcodeHash string
	switch {
	case options.Disable:
	case options.Prompt:
		passcode, err = promptPasscode(out, stdin, readPasscode)
		if err != nil {
			return err
		}
		passcodeHash, err = services.HashPasscode(passcode)
		if err != nil {
			return fmt.Errorf("hash passcode: %w", err)
		}
	default:
		passcode, passcodeHash, err = services.GenerateTemporaryPasscode()
		if err != nil {
			return fmt.Errorf("generate temporary passcode: %w", err)
		}
	}

	if err := store.UpdatePasscodeHash(user.ID, passcodeHash); err != nil {
		return fmt.Errorf("update passcode: %w", err)
	}
	log.Info().Str("profile", user.PublicID).Bool("lock_enabled", passcodeHash != "").Msg("passcode reset")

	fmt.Fprintln(out, "✅ Passcode reset successful")
	switch {
	case options.Disable:
		fmt.Fprintln(out, "Privacy lock is now off.")
	case options.Prompt:
		fmt.Fprintln(out, "Use the new passcode to unlock.")
	default:
		fmt.Fprintf(out, "Temporary passcode: %s\n", passcode)
		fmt.Fprintln(out, "Change it in settings after unlocking.")
	}
	return nil
}

func promptPasscode(out io.Writer, stdin *os.File, readPasscode passcodeReader) (string, error) {
	fmt.Fprint(out, "New passcode: ")
	next, err := readPasscode(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read passcode: %w", err)
	}

	fmt.Fprint(out, "Confirm passcode: ")
	confirm, err := readPasscode(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read passcode: %w", err)
	}

	if len(next) == 0 {
		return "", errors.New("passcode is required; use --disable to turn the lock off")
	}
	if err := services.ValidatePasscodeChange("", string(next), string(confirm)); err != nil {
		return "", err
	}
	if err := services.ValidatePasscode(string(next)); err != nil {
		return "", err
	}
	return string(next), nil
}
