package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// tripRequest is the wire shape for creating and updating trips.
// Dates are RFC 3339 timestamps.
type tripRequest struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Budget    float64   `json:"budget"`
}

// tripListResponse wraps the paginated trip listing.
type tripListResponse struct {
	Data       []domain.Trip `json:"data"`
	Pagination pagination    `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// createTrip handles POST /trips.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), domain.Trip{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Budget:    req.Budget,
	})
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// listTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)

	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, tripListResponse{
		Data: domain.PageOf(trips, params),
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(trips),
		},
	})
}

// getTrip handles GET /trips/{tripID}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// updateTrip handles PUT /trips/{tripID}.
// Only the top-level metadata is replaced; the itinerary lists and image
// reference stay as stored — sub-items have their own endpoints.
func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	current, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	current.Name = req.Name
	current.StartDate = req.StartDate
	current.EndDate = req.EndDate
	current.Budget = req.Budget

	updated, err := s.trips.Update(r.Context(), current)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteTrip handles DELETE /trips/{tripID}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondError(w, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- shared helpers --------------------------------------------------------

// decodeJSON reads a JSON body into v, rejecting unknown fields and trailing
// garbage. A missing body is an error: every POST/PUT here requires one.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid request body: " + err.Error())
	}
	return nil
}

// pathID parses the named chi URL parameter as a UUID, writing a 400 and
// returning false on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns the named query parameter as *int, or nil when absent or
// malformed (the pagination defaults kick in either way).
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
