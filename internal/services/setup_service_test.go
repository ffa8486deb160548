package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/pocketlove/internal/models"
)

type stubSetupUsers struct {
	owner models.User
	found bool
	err   error
}

func (stub stubSetupUsers) FindOwner() (models.User, bool, error) {
	return stub.owner, stub.found, stub.err
}

func TestSetupServiceStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		users stubSetupUsers
		want  SetupStatus
	}{
		{"no owner", stubSetupUsers{}, SetupStatus{RequiresOnboarding: true}},
		{"owner without passcode", stubSetupUsers{owner: models.User{PublicID: "p"}, found: true}, SetupStatus{}},
		{"owner with passcode", stubSetupUsers{owner: models.User{PublicID: "p", PasscodeHash: "hash"}, found: true}, SetupStatus{LockEnabled: true}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			status, err := NewSetupService(test.users).Status()
			if err != nil {
				t.Fatalf("Status returned error: %v", err)
			}
			if status != test.want {
				t.Fatalf("Status = %+v, want %+v", status, test.want)
			}
		})
	}
}

func TestSetupServiceStatusPropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if _, err := NewSetupService(stubSetupUsers{err: boom}).Status(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
