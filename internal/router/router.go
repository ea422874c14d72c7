package router

import (
	"net/http"

	"pico-pos/internal/handler"
	"pico-pos/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Session *handler.SessionHandler
	Menu    *handler.MenuHandler
	Floor   *handler.FloorHandler
	Order   *handler.OrderHandler
	Report  *handler.ReportHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// Everything except /health and /api/session requires an active session,
// as reported by sessionActive.
func New(h Handlers, sessionActive func() bool, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/session", h.Session.RegisterRoutes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(sessionActive, logger))

			r.Route("/profile", h.Session.RegisterProfileRoutes)
			r.Route("/menu", h.Menu.RegisterRoutes)
			r.Route("/tables", func(r chi.Router) {
				h.Floor.RegisterRoutes(r)
				h.Order.RegisterTableRoutes(r)
			})
			r.Route("/cart", h.Order.RegisterCartRoutes)
			r.Route("/orders", h.Order.RegisterOrderRoutes)
			r.Route("/reports", h.Report.RegisterRoutes)
		})
	})

	return r
}
