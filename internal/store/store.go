package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"deskpulse/internal/ticket"

	"github.com/rs/zerolog/log"
)

// Store holds the canonical ticket collection. The collection is only ever
// replaced wholesale (upload, load, reset), never patched in place, so
// derived computations running against a snapshot stay consistent.
type Store struct {
	mu         sync.RWMutex
	tickets    []ticket.Ticket
	generation uint64
	onReplace  []func()
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// OnReplace registers a hook invoked after every wholesale swap of the
// collection. Used to invalidate derived caches on data replace.
func (s *Store) OnReplace(fn func()) {
	s.mu.Lock()
	s.onReplace = append(s.onReplace, fn)
	s.mu.Unlock()
}

// Replace swaps in a new ticket collection and bumps the generation.
func (s *Store) Replace(tickets []ticket.Ticket) {
	s.swap(tickets)
}

// Reset discards the collection.
func (s *Store) Reset() {
	s.swap(nil)
}

func (s *Store) swap(tickets []ticket.Ticket) {
	s.mu.Lock()
	s.tickets = tickets
	s.generation++
	hooks := s.onReplace
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// All returns a copy of the collection; callers may not observe later swaps
// through it.
func (s *Store) All() []ticket.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ticket.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Count returns the number of tickets currently held.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}

// Generation returns the swap counter. A response computed against an older
// generation can be detected and dropped instead of overwriting newer state.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Load restores the collection from a JSON file. The instants come back as
// time.Time values via their ISO-8601 encoding. A missing file is not an
// error; it just means nothing has been imported yet.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read ticket file: %w", err)
	}

	var tickets []ticket.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		return fmt.Errorf("failed to decode ticket file: %w", err)
	}

	s.swap(tickets)
	log.Info().Int("count", len(tickets)).Str("path", path).Msg("Loaded tickets from disk")
	return nil
}

// Save persists the collection as a JSON array, writing to a temp file and
// renaming so readers never see a partial write.
func (s *Store) Save(path string) error {
	tickets := s.All()

	data, err := json.MarshalIndent(tickets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tickets: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp ticket file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename ticket file: %w", err)
	}

	log.Info().Int("count", len(tickets)).Str("path", path).Msg("Tickets saved to disk")
	return nil
}
