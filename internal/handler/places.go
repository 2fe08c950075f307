package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// searchPlaces handles GET /places?q=.
func (s *Server) searchPlaces(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "query parameter q is required")
		return
	}
	places, err := s.places.Search(r.Context(), query)
	if err != nil {
		respondError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, places)
}

// reversePlace handles GET /places/reverse?lat=&lon=.
func (s *Server) reversePlace(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "lat and lon are required numeric parameters")
		return
	}

	label, err := s.places.Reverse(r.Context(), domain.GeoCoordinate{Latitude: lat, Longitude: lon})
	if err != nil {
		respondError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"label": label})
}
