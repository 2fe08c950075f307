package domain

import "time"

// Item kinds used in the export and timeline projections.
const (
	KindAccommodation = "accommodation"
	KindActivity      = "activity"
	KindTransport     = "transport"
)

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per itinerary item, with trip
// fields repeated for every item on that trip. Trips with no items yield one
// row with zero values for all item fields.
type ExportRow struct {
	// Trip fields — repeated for every item on the trip.
	TripID        string
	TripName      string
	TripStartDate string // "2006-01-02" formatted date
	TripEndDate   string
	TripBudget    float64

	// Item fields — zero values when the trip has no items.
	ItemKind string // accommodation | activity | transport, "" for empty trips
	ItemID   string
	ItemName string // transport legs use "start → end"
	// ItemDate is the primary date: check-in for accommodations, the
	// scheduled time for activities and transports.
	ItemDate   *time.Time
	ItemEnd    *time.Time // check-out; nil for activities and transports
	ItemBudget float64
	ItemNotes  string
}
