// Package domain contains the core data types for the TripMate backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level planning unit a user creates. It spans a date range
// and owns three ordered itinerary collections. Sub-lists are append-only:
// insertion order is preserved because the display layer relies on it.
type Trip struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	// ImageRef is the filename of the cover image on disk, never the raw
	// bytes — images live next to the data file so the JSON stays small.
	ImageRef       string          `json:"image_ref,omitempty"`
	Budget         float64         `json:"budget"`
	Accommodations []Accommodation `json:"accommodations"`
	Activities     []Activity      `json:"activities"`
	Transports     []Transport     `json:"transports"`
}

// Days returns the number of calendar days the trip spans, inclusive.
// A trip starting and ending on the same day is one day long.
func (t Trip) Days() int {
	start := StartOfDay(t.StartDate)
	end := StartOfDay(t.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
