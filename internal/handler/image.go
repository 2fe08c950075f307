package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/bhanukaonline/tripmate/internal/media"
)

// maxImageBytes caps cover image uploads at 10 MiB.
const maxImageBytes = 10 << 20

// setImage handles PUT /trips/{tripID}/image.
// The body is the raw image bytes; the response is the updated trip with its
// new image_ref.
func (s *Server) setImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImageBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "too_large", "image exceeds size limit")
		return
	}

	updated, err := s.trips.SetImage(r.Context(), id, data)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// getImage handles GET /trips/{tripID}/image.
func (s *Server) getImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	if trip.ImageRef == "" {
		writeError(w, http.StatusNotFound, "not_found", "trip has no image")
		return
	}

	data, contentType, err := s.images.Open(trip.ImageRef)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "image file missing")
			return
		}
		respondError(w, err, "")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
