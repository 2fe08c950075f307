package service

import (
	"context"
	"fmt"

	"github.com/bhanukaonline/tripmate/internal/domain"
	"github.com/bhanukaonline/tripmate/internal/repo"
)

// ExportService assembles a full flat export of every trip and itinerary item.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the trip repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per itinerary item across all trips, in trip
// insertion order and per-trip list order (accommodations, activities,
// transports). Trips with no items contribute one row with empty item fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, trip := range trips {
		base := domain.ExportRow{
			TripID:        trip.ID.String(),
			TripName:      trip.Name,
			TripStartDate: trip.StartDate.Format("2006-01-02"),
			TripEndDate:   trip.EndDate.Format("2006-01-02"),
			TripBudget:    trip.Budget,
		}

		count := len(rows)
		for _, a := range trip.Accommodations {
			row := base
			row.ItemKind = domain.KindAccommodation
			row.ItemID = a.ID.String()
			row.ItemName = a.Name
			checkIn, checkOut := a.CheckIn, a.CheckOut
			row.ItemDate = &checkIn
			row.ItemEnd = &checkOut
			row.ItemBudget = a.Budget
			row.ItemNotes = a.Notes
			rows = append(rows, row)
		}
		for _, a := range trip.Activities {
			row := base
			row.ItemKind = domain.KindActivity
			row.ItemID = a.ID.String()
			row.ItemName = a.Name
			at := a.DateTime
			row.ItemDate = &at
			row.ItemBudget = a.Budget
			row.ItemNotes = a.Notes
			rows = append(rows, row)
		}
		for _, tr := range trip.Transports {
			row := base
			row.ItemKind = domain.KindTransport
			row.ItemID = tr.ID.String()
			row.ItemName = tr.StartLocation + " → " + tr.EndLocation
			at := tr.DateTime
			row.ItemDate = &at
			row.ItemBudget = tr.Budget
			row.ItemNotes = tr.Notes
			rows = append(rows, row)
		}

		if len(rows) == count {
			// Empty trip: a single row so the trip still shows up.
			rows = append(rows, base)
		}
	}

	return rows, nil
}
