package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// ItineraryRepo defines the sub-item mutations on a trip's itinerary lists.
// Every operation locates the parent trip by id, mutates one sub-list, and
// persists the whole collection. Returns domain.ErrNotFound when either the
// trip or the targeted item does not exist.
type ItineraryRepo interface {
	AddAccommodation(ctx context.Context, tripID uuid.UUID, a domain.Accommodation) (domain.Accommodation, error)
	DeleteAccommodation(ctx context.Context, tripID, itemID uuid.UUID) error

	AddActivity(ctx context.Context, tripID uuid.UUID, a domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, tripID, itemID uuid.UUID) error

	AddTransport(ctx context.Context, tripID uuid.UUID, tr domain.Transport) (domain.Transport, error)
	DeleteTransport(ctx context.Context, tripID, itemID uuid.UUID) error

	// GetTransport retrieves one transport leg, scoped to its trip.
	GetTransport(ctx context.Context, tripID, itemID uuid.UUID) (domain.Transport, error)
}

// compile-time check: Store must satisfy ItineraryRepo.
var _ ItineraryRepo = (*Store)(nil)

// AddAccommodation appends to the trip's accommodation list and persists.
func (s *Store) AddAccommodation(_ context.Context, tripID uuid.UUID, a domain.Accommodation) (domain.Accommodation, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	err := s.mutateTrip("repo.Store.AddAccommodation", tripID, func(t *domain.Trip) error {
		t.Accommodations = append(t.Accommodations, a)
		return nil
	})
	if err != nil {
		return domain.Accommodation{}, err
	}
	return a, nil
}

// DeleteAccommodation filters the item out of the trip's list and persists.
func (s *Store) DeleteAccommodation(_ context.Context, tripID, itemID uuid.UUID) error {
	return s.mutateTrip("repo.Store.DeleteAccommodation", tripID, func(t *domain.Trip) error {
		for i := range t.Accommodations {
			if t.Accommodations[i].ID == itemID {
				t.Accommodations = append(t.Accommodations[:i:i], t.Accommodations[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// AddActivity appends to the trip's activity list and persists.
func (s *Store) AddActivity(_ context.Context, tripID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	err := s.mutateTrip("repo.Store.AddActivity", tripID, func(t *domain.Trip) error {
		t.Activities = append(t.Activities, a)
		return nil
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

// DeleteActivity filters the item out of the trip's list and persists.
func (s *Store) DeleteActivity(_ context.Context, tripID, itemID uuid.UUID) error {
	return s.mutateTrip("repo.Store.DeleteActivity", tripID, func(t *domain.Trip) error {
		for i := range t.Activities {
			if t.Activities[i].ID == itemID {
				t.Activities = append(t.Activities[:i:i], t.Activities[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// AddTransport appends to the trip's transport list and persists.
func (s *Store) AddTransport(_ context.Context, tripID uuid.UUID, tr domain.Transport) (domain.Transport, error) {
	if tr.ID == uuid.Nil {
		tr.ID = uuid.New()
	}
	err := s.mutateTrip("repo.Store.AddTransport", tripID, func(t *domain.Trip) error {
		t.Transports = append(t.Transports, tr)
		return nil
	})
	if err != nil {
		return domain.Transport{}, err
	}
	return tr, nil
}

// DeleteTransport filters the item out of the trip's list and persists.
func (s *Store) DeleteTransport(_ context.Context, tripID, itemID uuid.UUID) error {
	return s.mutateTrip("repo.Store.DeleteTransport", tripID, func(t *domain.Trip) error {
		for i := range t.Transports {
			if t.Transports[i].ID == itemID {
				t.Transports = append(t.Transports[:i:i], t.Transports[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// GetTransport retrieves one transport leg by id, scoped to its trip.
func (s *Store) GetTransport(_ context.Context, tripID, itemID uuid.UUID) (domain.Transport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(tripID)
	if i < 0 {
		return domain.Transport{}, fmt.Errorf("repo.Store.GetTransport: %w", domain.ErrNotFound)
	}
	for _, tr := range s.trips[i].Transports {
		if tr.ID == itemID {
			return tr, nil
		}
	}
	return domain.Transport{}, fmt.Errorf("repo.Store.GetTransport: %w", domain.ErrNotFound)
}

// mutateTrip runs fn against a working copy of the trip with the given id,
// then swaps the copy in and persists. On any failure the original trip
// stays in place, so memory and disk never diverge.
func (s *Store) mutateTrip(op string, tripID uuid.UUID, fn func(t *domain.Trip) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(tripID)
	if i < 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	work := cloneTrip(s.trips[i])
	if err := fn(&work); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	prev := s.trips[i]
	s.trips[i] = work
	if err := s.save(); err != nil {
		s.trips[i] = prev
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
