package store

import (
	"path/filepath"
	"testing"
	"time"

	"deskpulse/internal/ticket"
)

func sample() []ticket.Ticket {
	resolved := time.Date(2024, 3, 16, 14, 30, 0, 0, time.UTC)
	return []ticket.Ticket{
		{
			ID:              "T-1",
			Subject:         "Login broken",
			Status:          ticket.StatusClosed,
			Assignees:       []string{"a@x.com"},
			Customer:        "Acme",
			Priority:        "High",
			TicketType:      "Incident",
			Rating:          4,
			CreatedAt:       time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
			ResolvedAt:      &resolved,
			ResolutionHours: 30.5,
		},
		{
			ID:         "T-2",
			Subject:    "Feature request",
			Status:     ticket.StatusOpen,
			TicketType: "Request",
			CreatedAt:  time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestReplaceAndAll(t *testing.T) {
	s := New()
	s.Replace(sample())

	if s.Count() != 2 {
		t.Fatalf("Expected 2 tickets, got %d", s.Count())
	}

	got := s.All()
	got[0].Subject = "mutated"
	if s.All()[0].Subject != "Login broken" {
		t.Error("All must return a copy; external mutation leaked into the store")
	}
}

func TestGenerationBumpsOnSwap(t *testing.T) {
	s := New()
	g0 := s.Generation()

	s.Replace(sample())
	if s.Generation() != g0+1 {
		t.Errorf("Expected generation %d after replace, got %d", g0+1, s.Generation())
	}

	s.Reset()
	if s.Generation() != g0+2 {
		t.Errorf("Expected generation %d after reset, got %d", g0+2, s.Generation())
	}
	if s.Count() != 0 {
		t.Errorf("Expected empty store after reset, got %d tickets", s.Count())
	}
}

func TestOnReplaceHook(t *testing.T) {
	s := New()
	calls := 0
	s.OnReplace(func() { calls++ })

	s.Replace(sample())
	s.Reset()

	if calls != 2 {
		t.Errorf("Expected hook to fire on replace and reset, got %d calls", calls)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.json")

	s := New()
	s.Replace(sample())
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	restored := New()
	if err := restored.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := restored.All()
	if len(got) != 2 {
		t.Fatalf("Expected 2 tickets after load, got %d", len(got))
	}

	want := sample()[0]
	if !got[0].CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("createdAt did not survive the round trip: %v vs %v", got[0].CreatedAt, want.CreatedAt)
	}
	if got[0].ResolvedAt == nil || !got[0].ResolvedAt.Equal(*want.ResolvedAt) {
		t.Errorf("resolvedAt did not revive as an instant: %v", got[0].ResolvedAt)
	}
	if got[1].ResolvedAt != nil {
		t.Error("Expected absent resolvedAt to stay absent")
	}
	if got[0].ResolutionHours != 30.5 {
		t.Errorf("Expected resolution hours 30.5, got %f", got[0].ResolutionHours)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	s := New()
	if err := s.Load(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("Expected nil error for missing file, got %v", err)
	}
	if s.Count() != 0 {
		t.Errorf("Expected empty store, got %d tickets", s.Count())
	}
}
