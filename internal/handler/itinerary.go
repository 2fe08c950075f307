package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// accommodationRequest is the wire shape for adding an accommodation.
type accommodationRequest struct {
	Name       string               `json:"name"`
	CheckIn    time.Time            `json:"check_in"`
	CheckOut   time.Time            `json:"check_out"`
	Coordinate domain.GeoCoordinate `json:"coordinate"`
	Budget     float64              `json:"budget"`
	Notes      string               `json:"notes"`
}

// activityRequest is the wire shape for adding an activity.
type activityRequest struct {
	Name       string               `json:"name"`
	DateTime   time.Time            `json:"date_time"`
	Location   string               `json:"location"`
	Coordinate domain.GeoCoordinate `json:"coordinate"`
	Budget     float64              `json:"budget"`
	Notes      string               `json:"notes"`
}

// transportRequest is the wire shape for adding a transport leg.
type transportRequest struct {
	Mode            string               `json:"mode"`
	DateTime        time.Time            `json:"date_time"`
	StartLocation   string               `json:"start_location"`
	StartCoordinate domain.GeoCoordinate `json:"start_coordinate"`
	EndLocation     string               `json:"end_location"`
	EndCoordinate   domain.GeoCoordinate `json:"end_coordinate"`
	Budget          float64              `json:"budget"`
	Notes           string               `json:"notes"`
}

// addAccommodation handles POST /trips/{tripID}/accommodations.
func (s *Server) addAccommodation(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	var req accommodationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	created, err := s.items.AddAccommodation(r.Context(), tripID, domain.Accommodation{
		Name:       req.Name,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Coordinate: req.Coordinate,
		Budget:     req.Budget,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// deleteAccommodation handles DELETE /trips/{tripID}/accommodations/{itemID}.
func (s *Server) deleteAccommodation(w http.ResponseWriter, r *http.Request) {
	s.deleteItem(w, r, s.items.DeleteAccommodation, "accommodation not found")
}

// addActivity handles POST /trips/{tripID}/activities.
func (s *Server) addActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	created, err := s.items.AddActivity(r.Context(), tripID, domain.Activity{
		Name:       req.Name,
		DateTime:   req.DateTime,
		Location:   req.Location,
		Coordinate: req.Coordinate,
		Budget:     req.Budget,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// deleteActivity handles DELETE /trips/{tripID}/activities/{itemID}.
func (s *Server) deleteActivity(w http.ResponseWriter, r *http.Request) {
	s.deleteItem(w, r, s.items.DeleteActivity, "activity not found")
}

// addTransport handles POST /trips/{tripID}/transports.
func (s *Server) addTransport(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	var req transportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	created, err := s.items.AddTransport(r.Context(), tripID, domain.Transport{
		Mode:            domain.TransportMode(req.Mode),
		DateTime:        req.DateTime,
		StartLocation:   req.StartLocation,
		StartCoordinate: req.StartCoordinate,
		EndLocation:     req.EndLocation,
		EndCoordinate:   req.EndCoordinate,
		Budget:          req.Budget,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// deleteTransport handles DELETE /trips/{tripID}/transports/{itemID}.
func (s *Server) deleteTransport(w http.ResponseWriter, r *http.Request) {
	s.deleteItem(w, r, s.items.DeleteTransport, "transport not found")
}

// getRoute handles GET /trips/{tripID}/transports/{itemID}/route.
func (s *Server) getRoute(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}
	route, err := s.items.Route(r.Context(), tripID, itemID)
	if err != nil {
		respondError(w, err, "transport not found")
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// deleteItem factors the shared shape of all sub-item deletions: parse both
// ids, call through, answer 204 or the mapped error.
func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, tripID, itemID uuid.UUID) error, notFoundMsg string) {
	tripID, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}
	if err := del(r.Context(), tripID, itemID); err != nil {
		respondError(w, err, notFoundMsg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
