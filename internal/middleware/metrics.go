package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bhanukaonline/tripmate/internal/observability"
)

// NewMetrics returns a middleware that records a request counter and latency
// histogram per chi route pattern. Wire it inside the chi router so the route
// pattern is resolved (e.g. "/trips/{tripID}" rather than a raw path, which
// would blow up label cardinality).
func NewMetrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			observability.ObserveHTTP(route, r.Method, ww.Status(), time.Since(start))
		})
	}
}
