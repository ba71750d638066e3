// Package api serves document builds over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/texweave/texweave/pkg/pipeline"
	"github.com/texweave/texweave/pkg/storage"
)

// DefaultMaxBody limits request bodies.
const DefaultMaxBody = 1 << 20

// Config configures a Server.
type Config struct {
	// APIKey, when set, is required as a bearer token on /api routes.
	APIKey string
	// MaxBody limits request bodies. Zero means DefaultMaxBody.
	MaxBody int64
	// Packages and Class are document defaults for every build.
	Class    string
	Packages []string
}

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	runner *pipeline.Runner
	store  storage.Store
	log    *log.Logger
	cfg    Config
}

// NewServer creates and configures the HTTP server.
func NewServer(runner *pipeline.Runner, store storage.Store, logger *log.Logger, cfg Config) *Server {
	if cfg.MaxBody <= 0 {
		cfg.MaxBody = DefaultMaxBody
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		store:  store,
		log:    logger,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}
		r.Use(middleware.RequestSize(s.cfg.MaxBody))

		r.Post("/api/render", s.handleRender)
		r.Post("/api/outline", s.handleOutline)

		r.Get("/api/documents", s.handleListDocuments)
		r.Post("/api/documents", s.handleCreateDocument)
		r.Get("/api/documents/{docID}", s.handleGetDocument)
		r.Delete("/api/documents/{docID}", s.handleDeleteDocument)
	})

	s.router = r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
