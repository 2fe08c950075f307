package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// TripRepo defines the persistence operations for trips.
// The service layer depends on this interface, not the concrete Store,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create appends a new trip and returns the persisted record
	// (with a generated id and normalized empty sub-lists).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by id.
	// Returns domain.ErrNotFound if no trip with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips in insertion order.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update replaces the trip with a matching id and returns the updated
	// record. Returns domain.ErrNotFound if no trip with that id exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by id. Returns domain.ErrNotFound if it does
	// not exist — deleting a missing trip never mutates state.
	Delete(ctx context.Context, id uuid.UUID) error
}

// compile-time check: Store must satisfy TripRepo.
var _ TripRepo = (*Store)(nil)

// Create appends the trip and persists the whole collection.
func (s *Store) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	normalize(&trip)

	s.trips = append(s.trips, trip)
	if err := s.save(); err != nil {
		// Roll the append back so memory and disk stay in agreement.
		s.trips = s.trips[:len(s.trips)-1]
		return domain.Trip{}, fmt.Errorf("repo.Store.Create: %w", err)
	}
	return cloneTrip(trip), nil
}

// GetByID retrieves a trip by id via linear scan.
func (s *Store) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("repo.Store.GetByID: %w", domain.ErrNotFound)
	}
	return cloneTrip(s.trips[i]), nil
}

// List returns a copy of every trip in insertion order.
func (s *Store) List(_ context.Context) ([]domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Trip, len(s.trips))
	for i := range s.trips {
		out[i] = cloneTrip(s.trips[i])
	}
	return out, nil
}

// Update replaces the stored trip with a matching id and persists.
func (s *Store) Update(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(trip.ID)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("repo.Store.Update: %w", domain.ErrNotFound)
	}

	normalize(&trip)
	prev := s.trips[i]
	s.trips[i] = trip
	if err := s.save(); err != nil {
		s.trips[i] = prev
		return domain.Trip{}, fmt.Errorf("repo.Store.Update: %w", err)
	}
	return cloneTrip(trip), nil
}

// Delete removes a trip by id and persists.
func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("repo.Store.Delete: %w", domain.ErrNotFound)
	}

	prev := s.trips
	s.trips = append(s.trips[:i:i], s.trips[i+1:]...)
	if err := s.save(); err != nil {
		s.trips = prev
		return fmt.Errorf("repo.Store.Delete: %w", err)
	}
	return nil
}

// normalize replaces nil sub-lists with empty ones so the persisted JSON
// carries [] instead of null and round-trips to an equal collection.
func normalize(t *domain.Trip) {
	if t.Accommodations == nil {
		t.Accommodations = []domain.Accommodation{}
	}
	if t.Activities == nil {
		t.Activities = []domain.Activity{}
	}
	if t.Transports == nil {
		t.Transports = []domain.Transport{}
	}
}
