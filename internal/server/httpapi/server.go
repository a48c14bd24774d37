// Package httpapi exposes the service over an HTTP/JSON boundary: routing,
// request schema validation, and error-to-status translation live here.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nanosensei/backend/internal/logging"
	"github.com/nanosensei/backend/internal/server/services"
)

// HTTPServer wires the services into a chi router and runs the listener.
type HTTPServer struct {
	address         string
	logger          logging.Logger
	users           *services.UserService
	sessions        *services.SessionService
	shutdownTimeout time.Duration
}

// NewHTTPServer constructs the server; Run starts it.
func NewHTTPServer(address string, l logging.Logger, us *services.UserService, ss *services.SessionService, shutdownTimeout time.Duration) (*HTTPServer, error) {
	return &HTTPServer{
		address:         address,
		logger:          l.With("module", "http_server"),
		users:           us,
		sessions:        ss,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Router builds the route table. Exposed separately so tests can drive the
// handlers through httptest without a listener.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(cors)

	r.Get("/", s.root)
	r.Get("/health", s.health)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.createUser)
		r.Get("/", s.listUsers)
		r.Get("/{id}", s.getUser)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Get("/", s.listSessions)
		r.Get("/summary", s.getSessionSummary)
		r.Get("/{id}", s.getSession)
	})

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{
		"message": "NanoSensei API",
		"health":  "/health",
	}, http.StatusOK)
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{
		"status":  "ok",
		"message": "NanoSensei backend is running",
	}, http.StatusOK)
}
