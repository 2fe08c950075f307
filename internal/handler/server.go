// Package handler implements the HTTP handlers for the TripMate API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, itinerary.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
	"github.com/bhanukaonline/tripmate/internal/geocode"
	"github.com/bhanukaonline/tripmate/internal/reminder"
	"github.com/bhanukaonline/tripmate/internal/service"
	"github.com/bhanukaonline/tripmate/internal/timeline"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Timeline(ctx context.Context, id uuid.UUID) (timeline.Timeline, error)
	Reminders(ctx context.Context, id uuid.UUID) ([]reminder.Reminder, error)
	Calendar(ctx context.Context, id uuid.UUID) ([]byte, error)
	SetImage(ctx context.Context, id uuid.UUID, data []byte) (domain.Trip, error)
}

// ItineraryServicer defines the itinerary item operations the handlers use.
type ItineraryServicer interface {
	AddAccommodation(ctx context.Context, tripID uuid.UUID, a domain.Accommodation) (domain.Accommodation, error)
	DeleteAccommodation(ctx context.Context, tripID, itemID uuid.UUID) error
	AddActivity(ctx context.Context, tripID uuid.UUID, a domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, tripID, itemID uuid.UUID) error
	AddTransport(ctx context.Context, tripID uuid.UUID, tr domain.Transport) (domain.Transport, error)
	DeleteTransport(ctx context.Context, tripID, itemID uuid.UUID) error
	Route(ctx context.Context, tripID, itemID uuid.UUID) (service.RouteResult, error)
}

// Exporter produces the flat full-data export.
type Exporter interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// PlaceSearcher is the geocoding collaborator consumed by the places handlers.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) ([]geocode.Place, error)
	Reverse(ctx context.Context, coord domain.GeoCoordinate) (string, error)
}

// ImageOpener reads stored cover images back for serving.
type ImageOpener interface {
	Open(name string) (data []byte, contentType string, err error)
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	trips  TripServicer
	items  ItineraryServicer
	export Exporter
	places PlaceSearcher
	images ImageOpener
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, items ItineraryServicer, export Exporter, places PlaceSearcher, images ImageOpener) *Server {
	return &Server{trips: trips, items: items, export: export, places: places, images: images}
}

// Routes mounts every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.health)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.createTrip)
		r.Get("/", s.listTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.getTrip)
			r.Put("/", s.updateTrip)
			r.Delete("/", s.deleteTrip)

			r.Get("/timeline", s.getTimeline)
			r.Get("/reminders", s.listReminders)
			r.Get("/calendar.ics", s.getCalendar)

			r.Put("/image", s.setImage)
			r.Get("/image", s.getImage)

			r.Post("/accommodations", s.addAccommodation)
			r.Delete("/accommodations/{itemID}", s.deleteAccommodation)
			r.Post("/activities", s.addActivity)
			r.Delete("/activities/{itemID}", s.deleteActivity)
			r.Post("/transports", s.addTransport)
			r.Delete("/transports/{itemID}", s.deleteTransport)
			r.Get("/transports/{itemID}/route", s.getRoute)
		})
	})

	r.Get("/places", s.searchPlaces)
	r.Get("/places/reverse", s.reversePlace)

	r.Get("/export", s.getExport)

	return r
}
