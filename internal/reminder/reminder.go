// Package reminder builds and holds the reminder schedule for trips.
//
// Every trip gets up to four reminders at fixed offsets: three days before
// the start date, one day before, on the start date, and on the end date.
// Reminders whose fire time has already passed are skipped at scheduling
// time. Delivery itself is out of scope — this package only keeps the
// (trip, title, body, fire time) tuples a delivery channel would consume.
package reminder

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// Reminder is a single scheduled notification for a trip.
type Reminder struct {
	ID     string    `json:"id"` // stable per trip+kind, e.g. "pretrip-<uuid>"
	TripID uuid.UUID `json:"trip_id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fire_at"`
}

// Build computes the reminder set for a trip. Reminders that would fire at
// or before now are dropped.
func Build(trip domain.Trip, now time.Time) []Reminder {
	candidates := []Reminder{
		{
			ID:     "pretrip-" + trip.ID.String(),
			TripID: trip.ID,
			Title:  "Upcoming Trip: " + trip.Name,
			Body:   fmt.Sprintf("Your trip to %s is coming up in 3 days. Time to start packing!", trip.Name),
			FireAt: trip.StartDate.AddDate(0, 0, -3),
		},
		{
			ID:     "daybefore-" + trip.ID.String(),
			TripID: trip.ID,
			Title:  "Trip Tomorrow: " + trip.Name,
			Body:   fmt.Sprintf("Your trip to %s starts tomorrow. Make sure you're ready!", trip.Name),
			FireAt: trip.StartDate.AddDate(0, 0, -1),
		},
		{
			ID:     "departure-" + trip.ID.String(),
			TripID: trip.ID,
			Title:  "Trip Starting Today: " + trip.Name,
			Body:   fmt.Sprintf("Your trip to %s begins today. Have a great journey!", trip.Name),
			FireAt: trip.StartDate,
		},
		{
			ID:     "return-" + trip.ID.String(),
			TripID: trip.ID,
			Title:  "Trip Ending: " + trip.Name,
			Body:   fmt.Sprintf("Your trip to %s ends today. We hope you had a wonderful time!", trip.Name),
			FireAt: trip.EndDate,
		},
	}

	var out []Reminder
	for _, r := range candidates {
		if r.FireAt.After(now) {
			out = append(out, r)
		}
	}
	return out
}

// MemoryScheduler keeps the reminder schedule in process memory.
// Safe for concurrent use.
type MemoryScheduler struct {
	now func() time.Time

	mu      sync.RWMutex
	pending map[uuid.UUID][]Reminder
}

// NewMemoryScheduler returns an empty scheduler using the wall clock.
func NewMemoryScheduler() *MemoryScheduler {
	return NewMemorySchedulerAt(time.Now)
}

// NewMemorySchedulerAt returns a scheduler with an injectable clock for tests.
func NewMemorySchedulerAt(now func() time.Time) *MemoryScheduler {
	return &MemoryScheduler{now: now, pending: make(map[uuid.UUID][]Reminder)}
}

// Schedule replaces the trip's reminders with a freshly built set.
// Scheduling a trip whose reminders would all be in the past clears its entry.
func (m *MemoryScheduler) Schedule(_ context.Context, trip domain.Trip) error {
	rs := Build(trip, m.now())

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(rs) == 0 {
		delete(m.pending, trip.ID)
		return nil
	}
	m.pending[trip.ID] = rs
	return nil
}

// Cancel removes all reminders for a trip. Cancelling an unknown trip is a no-op.
func (m *MemoryScheduler) Cancel(_ context.Context, tripID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, tripID)
	return nil
}

// ListByTrip returns the trip's scheduled reminders ordered by fire time.
func (m *MemoryScheduler) ListByTrip(_ context.Context, tripID uuid.UUID) ([]Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rs := m.pending[tripID]
	out := make([]Reminder, len(rs))
	copy(out, rs)
	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out, nil
}
