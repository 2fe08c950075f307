package handler

import "net/http"

// getTimeline handles GET /trips/{tripID}/timeline.
func (s *Server) getTimeline(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	tl, err := s.trips.Timeline(r.Context(), id)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, tl)
}

// listReminders handles GET /trips/{tripID}/reminders.
func (s *Server) listReminders(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	rs, err := s.trips.Reminders(r.Context(), id)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, rs)
}

// getCalendar handles GET /trips/{tripID}/calendar.ics.
func (s *Server) getCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "tripID")
	if !ok {
		return
	}
	data, err := s.trips.Calendar(r.Context(), id)
	if err != nil {
		respondError(w, err, "trip not found")
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
