// Package calendar renders trips as iCalendar documents so they can be
// imported into any calendar application.
package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// Renderer turns trips into single-event iCalendar files.
// The zero-value clock means time.Now; inject one in tests for stable output.
type Renderer struct {
	now func() time.Time
}

// NewRenderer returns a Renderer using the wall clock for DTSTAMP.
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// NewRendererAt returns a Renderer with an injectable clock.
func NewRendererAt(now func() time.Time) *Renderer {
	return &Renderer{now: now}
}

// Render produces an iCalendar document with one all-trip event:
// summary from the trip name, the trip's date range, and notes built from
// the trip budget. The event UID is derived from the trip id so re-imports
// update the same event instead of duplicating it.
func (r *Renderer) Render(trip domain.Trip) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//TripMate//Trip Planner//EN")

	event := cal.AddEvent("trip-" + trip.ID.String() + "@tripmate")
	event.SetDtStampTime(r.now().UTC())
	event.SetStartAt(trip.StartDate)
	event.SetEndAt(trip.EndDate)
	event.SetSummary("Trip: " + trip.Name)
	event.SetDescription(fmt.Sprintf("Trip to %s. Budget: %.2f", trip.Name, trip.Budget))

	return []byte(cal.Serialize()), nil
}
