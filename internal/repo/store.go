// Package repo contains the Trip Store: the canonical, process-wide
// collection of trips, backed by whole-collection JSON serialization to a
// single file on disk. No business logic lives here — only persistence and
// type-safe access.
//
// After any successful mutating call returns, the on-disk state reflects the
// in-memory state. There is no write-ahead log or rollback; atomicity is
// whatever a temp-file-plus-rename gives on the host filesystem.
package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// Store holds every trip in memory and mirrors each mutation to the data
// file. A single RWMutex guards both the slice and the disk write, so
// concurrent mutations cannot race or interleave file writes.
type Store struct {
	path string

	mu    sync.RWMutex
	trips []domain.Trip
}

// NewStore returns a Store persisting to path. Call Load before first use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the entire collection from disk.
// A missing file is not an error: the collection starts empty.
// An unreadable or undecodable file is surfaced (wrapping domain.ErrCorruptData
// for decode failures) rather than swallowed — starting empty over a corrupt
// file would overwrite it on the next save.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.trips = nil
			return nil
		}
		return fmt.Errorf("repo.Store.Load: %w", err)
	}

	var trips []domain.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		return fmt.Errorf("repo.Store.Load: %w: %s", domain.ErrCorruptData, err)
	}

	s.trips = trips
	return nil
}

// save serializes the whole collection and atomically replaces the data file.
// Callers must hold the write lock.
func (s *Store) save() error {
	trips := s.trips
	if trips == nil {
		trips = []domain.Trip{}
	}
	data, err := json.MarshalIndent(trips, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal trips: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".trips-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// indexOf returns the position of the trip with the given id, or -1.
// Callers must hold at least the read lock. Linear scan: the collection is
// personal-scale, a few dozen trips at most.
func (s *Store) indexOf(id uuid.UUID) int {
	for i := range s.trips {
		if s.trips[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneTrip deep-copies a trip so callers never hold a slice that aliases
// store-internal state.
func cloneTrip(t domain.Trip) domain.Trip {
	out := t
	out.Accommodations = make([]domain.Accommodation, len(t.Accommodations))
	copy(out.Accommodations, t.Accommodations)
	out.Activities = make([]domain.Activity, len(t.Activities))
	copy(out.Activities, t.Activities)
	out.Transports = make([]domain.Transport, len(t.Transports))
	copy(out.Transports, t.Transports)
	return out
}
