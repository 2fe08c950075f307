package handler

import "net/http"

// health handles GET /healthz. The store is loaded at startup and everything
// else is in-process, so reachable means healthy.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
