package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jaminalder/ocean-tic-tac-toe/internal/app"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service, logger *slog.Logger) http.Handler {
	logger = logger.With("component", "web")
	h := &handlers{svc: s, tpl: loadTemplates(), logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Post("/play/{index}", h.play)
	r.Post("/reset", h.reset)
	r.Get("/state", h.state)
	r.Get("/healthz", h.healthz)
	return r
}
