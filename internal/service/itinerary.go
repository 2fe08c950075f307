package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
	"github.com/bhanukaonline/tripmate/internal/repo"
)

// Directions resolves a route between two coordinates for a transport mode.
// Implementations may fail (network, unknown area); callers fall back to a
// straight line between the endpoints.
type Directions interface {
	Route(ctx context.Context, start, end domain.GeoCoordinate, mode domain.TransportMode) ([]domain.GeoCoordinate, error)
}

// RouteResult is the resolved route for a transport leg, plus the map region
// that frames both endpoints.
type RouteResult struct {
	Mode     domain.TransportMode   `json:"mode"`
	Polyline []domain.GeoCoordinate `json:"polyline"`
	// Fallback is true when the directions service failed and the polyline
	// degraded to the straight line between the endpoints.
	Fallback bool          `json:"fallback"`
	Region   domain.Region `json:"region"`
}

// ItineraryService implements business logic for itinerary item operations.
// It holds the itinerary repo and the directions collaborator; the parent
// trip existence check is done by the repo as part of each mutation.
type ItineraryService struct {
	items      repo.ItineraryRepo
	directions Directions
}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService(items repo.ItineraryRepo, directions Directions) *ItineraryService {
	return &ItineraryService{items: items, directions: directions}
}

// AddAccommodation validates and appends an accommodation to the trip.
// Returns domain.ErrNotFound if the parent trip does not exist.
//
// CheckOut before CheckIn is deliberately not rejected: the stored model
// never enforced it and existing data may carry such pairs.
func (s *ItineraryService) AddAccommodation(ctx context.Context, tripID uuid.UUID, a domain.Accommodation) (domain.Accommodation, error) {
	if strings.TrimSpace(a.Name) == "" {
		return domain.Accommodation{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	created, err := s.items.AddAccommodation(ctx, tripID, a)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("service.ItineraryService.AddAccommodation: %w", err)
	}
	return created, nil
}

// DeleteAccommodation removes an accommodation from the trip.
func (s *ItineraryService) DeleteAccommodation(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.items.DeleteAccommodation(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.ItineraryService.DeleteAccommodation: %w", err)
	}
	return nil
}

// AddActivity validates and appends an activity to the trip.
func (s *ItineraryService) AddActivity(ctx context.Context, tripID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	if strings.TrimSpace(a.Name) == "" {
		return domain.Activity{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	created, err := s.items.AddActivity(ctx, tripID, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ItineraryService.AddActivity: %w", err)
	}
	return created, nil
}

// DeleteActivity removes an activity from the trip.
func (s *ItineraryService) DeleteActivity(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.items.DeleteActivity(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.ItineraryService.DeleteActivity: %w", err)
	}
	return nil
}

// AddTransport validates and appends a transport leg to the trip.
// The mode must be one of the known transport modes.
func (s *ItineraryService) AddTransport(ctx context.Context, tripID uuid.UUID, tr domain.Transport) (domain.Transport, error) {
	mode, err := domain.ParseTransportMode(string(tr.Mode))
	if err != nil {
		return domain.Transport{}, err
	}
	tr.Mode = mode
	created, err := s.items.AddTransport(ctx, tripID, tr)
	if err != nil {
		return domain.Transport{}, fmt.Errorf("service.ItineraryService.AddTransport: %w", err)
	}
	return created, nil
}

// DeleteTransport removes a transport leg from the trip.
func (s *ItineraryService) DeleteTransport(ctx context.Context, tripID, itemID uuid.UUID) error {
	if err := s.items.DeleteTransport(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.ItineraryService.DeleteTransport: %w", err)
	}
	return nil
}

// Route resolves the route for one transport leg. A directions failure is
// not an error to the caller: the polyline falls back to the straight line
// between the endpoints and the result is marked Fallback.
func (s *ItineraryService) Route(ctx context.Context, tripID, itemID uuid.UUID) (RouteResult, error) {
	leg, err := s.items.GetTransport(ctx, tripID, itemID)
	if err != nil {
		return RouteResult{}, fmt.Errorf("service.ItineraryService.Route: %w", err)
	}

	result := RouteResult{
		Mode:   leg.Mode,
		Region: domain.FitRegion(leg.StartCoordinate, leg.EndCoordinate),
	}
	polyline, err := s.directions.Route(ctx, leg.StartCoordinate, leg.EndCoordinate, leg.Mode)
	if err != nil || len(polyline) == 0 {
		result.Polyline = domain.StraightLine(leg.StartCoordinate, leg.EndCoordinate)
		result.Fallback = true
		return result, nil
	}
	result.Polyline = polyline
	return result, nil
}
