package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/terraincognita07/pocketlove/internal/models"
	"github.com/terraincognita07/pocketlove/internal/services"
)

type stubPasscodeStore struct {
	user    models.User
	found   bool
	updated bool
	hash    string
}

func (store *stubPasscodeStore) FindOwner() (models.User, bool, error) {
	return store.user, store.found, nil
}

func (store *stubPasscodeStore) UpdatePasscodeHash(userID uint, passcodeHash string) error {
	if userID != store.user.ID {
		return errors.New("unexpected user id")
	}
	store.updated = true
	store.hash = passcodeHash
	return nil
}

func scriptedReader(lines ...string) passcodeReader {
	return func(_ *os.File) ([]byte, error) {
		if len(lines) == 0 {
			return nil, errors.New("no more input")
		}
		line := lines[0]
		lines = lines[1:]
		return []byte(line), nil
	}
}

func newStubStore() *stubPasscodeStore {
	return &stubPasscodeStore{user: models.User{ID: 7, PublicID: "owner"}, found: true}
}

func TestResetPasscodeGeneratesTemporaryPasscode(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	var out bytes.Buffer
	if err := resetPasscode(store, ResetOptions{Out: &out}, scriptedReader()); err != nil {
		t.Fatalf("resetPasscode() unexpected error: %v", err)
	}

	var passcode string
	for _, line := range strings.Split(out.String(), "\n") {
		if value, ok := strings.CutPrefix(line, "Temporary passcode: "); ok {
			passcode = value
		}
	}
	if len(passcode) != 6 {
		t.Fatalf("expected a 6 digit passcode in output, got %q", out.String())
	}
	if !store.updated || !services.PasscodeMatches(store.hash, passcode) {
		t.Fatal("expected stored hash to match the printed passcode")
	}
}

func TestResetPasscodePromptMode(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	var out bytes.Buffer
	if err := resetPasscode(store, ResetOptions{Prompt: true, Out: &out}, scriptedReader("8642", "8642")); err != nil {
		t.Fatalf("resetPasscode() unexpected error: %v", err)
	}
	if !services.PasscodeMatches(store.hash, "8642") {
		t.Fatal("expected prompted passcode to be stored")
	}
	if strings.Contains(out.String(), "8642") {
		t.Fatal("prompted passcode must not be echoed")
	}
}

func TestResetPasscodePromptRejectsMismatch(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	err := resetPasscode(store, ResetOptions{Prompt: true, Out: &bytes.Buffer{}}, scriptedReader("8642", "2468"))
	if !errors.Is(err, services.ErrPasscodeMismatch) {
		t.Fatalf("expected ErrPasscodeMismatch, got %v", err)
	}
	if store.updated {
		t.Fatal("store must not change on mismatch")
	}

	err = resetPasscode(store, ResetOptions{Prompt: true, Out: &bytes.Buffer{}}, scriptedReader("12", "12"))
	if !errors.Is(err, services.ErrWeakPasscode) {
		t.Fatalf("expected ErrWeakPasscode, got %v", err)
	}
}

func TestResetPasscodeDisable(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.hash = "old"
	if err := resetPasscode(store, ResetOptions{Disable: true, Out: &bytes.Buffer{}}, scriptedReader()); err != nil {
		t.Fatalf("resetPasscode() unexpected error: %v", err)
	}
	if !store.updated || store.hash != "" {
		t.Fatalf("expected lock to be disabled, hash=%q", store.hash)
	}
}

func TestResetPasscodeRequiresProfile(t *testing.T) {
	t.Parallel()

	store := &stubPasscodeStore{}
	if err := resetPasscode(store, ResetOptions{Out: &bytes.Buffer{}}, scriptedReader()); !errors.Is(err, errNoProfile) {
		t.Fatalf("expected errNoProfile, got %v", err)
	}
	if err := resetPasscode(newStubStore(), ResetOptions{Prompt: true, Disable: true}, scriptedReader()); err == nil {
		t.Fatal("expected conflicting flags to fail")
	}
}
