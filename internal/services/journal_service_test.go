package services

import (
	"errors"
	"strings"
	"testing"
)

func TestJournalServiceAdd(t *testing.T) {
	t.Parallel()

	service := NewJournalService(NewProfileService(newOnboardedStore()))
	now := mustParseDay("2024-04-02")

	if _, err := service.Add("2024-04-01", "Picnic in the park", "happy", now); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	data, err := service.Add("", "Quiet evening", "", now)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if len(data.Journal) != 2 {
		t.Fatalf("expected 2 journal entries, got %d", len(data.Journal))
	}
	if data.Journal[0].Date != "2024-04-02" || data.Journal[0].Content != "Quiet evening" {
		t.Fatalf("expected newest entry first, got %+v", data.Journal[0])
	}
	if data.Journal[1].Mood != "happy" {
		t.Fatalf("expected mood to be kept, got %+v", data.Journal[1])
	}
}

func TestJournalServiceAddValidatesInput(t *testing.T) {
	t.Parallel()

	service := NewJournalService(NewProfileService(newOnboardedStore()))
	now := mustParseDay("2024-04-02")

	if _, err := service.Add("", "   ", "", now); !errors.Is(err, ErrJournalContentRequired) {
		t.Fatalf("expected ErrJournalContentRequired, got %v", err)
	}
	if _, err := service.Add("", strings.Repeat("a", MaxJournalContentLength+1), "", now); !errors.Is(err, ErrJournalContentTooLong) {
		t.Fatalf("expected ErrJournalContentTooLong, got %v", err)
	}
	if _, err := service.Add("April 1", "text", "", now); !errors.Is(err, ErrInvalidJournalDate) {
		t.Fatalf("expected ErrInvalidJournalDate, got %v", err)
	}
}
