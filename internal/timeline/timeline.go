// Package timeline projects a trip's three heterogeneous itinerary
// collections into a single chronological, day-bucketed view.
//
// Build is a pure function: it holds no state, never mutates the trip, and
// can be recomputed whenever the trip changes.
package timeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// Item is one entry in the timeline: a tagged union over the three itinerary
// variants. Exactly one of Accommodation, Activity, Transport is non-nil,
// matching Kind.
type Item struct {
	Kind string    `json:"kind"`
	ID   uuid.UUID `json:"id"`
	// Date is the item's primary date: check-in for accommodations, the
	// scheduled time for activities and transports.
	Date time.Time `json:"date"`
	// End is the check-out time for accommodations, nil otherwise.
	End *time.Time `json:"end,omitempty"`

	Accommodation *domain.Accommodation `json:"accommodation,omitempty"`
	Activity      *domain.Activity      `json:"activity,omitempty"`
	Transport     *domain.Transport     `json:"transport,omitempty"`
}

// Day is one bucket of the timeline: all items whose primary date falls on
// the same calendar day, ordered by time ascending.
type Day struct {
	// Number counts from 1 at the trip's start date. Items dated before the
	// trip start produce numbers <= 0; items after the last day produce
	// numbers beyond Trip.Days(). Such days are kept, not clamped, and are
	// flagged OutOfRange so callers can render a marker.
	Number     int       `json:"number"`
	Date       time.Time `json:"date"` // start of the calendar day
	OutOfRange bool      `json:"out_of_range,omitempty"`
	Items      []Item    `json:"items"`
}

// Timeline is the day-ordered projection of a single trip.
type Timeline struct {
	TripID uuid.UUID `json:"trip_id"`
	Days   []Day     `json:"days"`
}

// Build computes the timeline for a trip.
//
// All accommodations, activities, and transports are flattened into one
// sequence and stable-sorted by primary date, so items sharing a timestamp
// keep their insertion order (accommodations first, then activities, then
// transports — the order they are appended to the trip). Each item lands in
// the bucket for its calendar day; buckets come out in ascending day order.
func Build(trip domain.Trip) Timeline {
	items := flatten(trip)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	tripStart := domain.StartOfDay(trip.StartDate)
	lastDay := trip.Days()

	var days []Day
	byNumber := make(map[int]int) // day number -> index into days
	for _, it := range items {
		itemDay := domain.StartOfDay(it.Date)
		number := daysBetween(tripStart, itemDay) + 1

		idx, ok := byNumber[number]
		if !ok {
			days = append(days, Day{
				Number:     number,
				Date:       itemDay,
				OutOfRange: number < 1 || number > lastDay,
			})
			idx = len(days) - 1
			byNumber[number] = idx
		}
		days[idx].Items = append(days[idx].Items, it)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Number < days[j].Number })

	return Timeline{TripID: trip.ID, Days: days}
}

// flatten concatenates the trip's itinerary collections into timeline items,
// preserving per-list insertion order.
func flatten(trip domain.Trip) []Item {
	items := make([]Item, 0, len(trip.Accommodations)+len(trip.Activities)+len(trip.Transports))
	for i := range trip.Accommodations {
		a := trip.Accommodations[i]
		end := a.CheckOut
		items = append(items, Item{
			Kind:          domain.KindAccommodation,
			ID:            a.ID,
			Date:          a.CheckIn,
			End:           &end,
			Accommodation: &trip.Accommodations[i],
		})
	}
	for i := range trip.Activities {
		a := trip.Activities[i]
		items = append(items, Item{
			Kind:     domain.KindActivity,
			ID:       a.ID,
			Date:     a.DateTime,
			Activity: &trip.Activities[i],
		})
	}
	for i := range trip.Transports {
		tr := trip.Transports[i]
		items = append(items, Item{
			Kind:      domain.KindTransport,
			ID:        tr.ID,
			Date:      tr.DateTime,
			Transport: &trip.Transports[i],
		})
	}
	return items
}

// daysBetween counts whole calendar days from a to b; both must already be
// start-of-day values. Negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
