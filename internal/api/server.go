// Package api serves Maven Central search as a small JSON HTTP API.
//
// Routes:
//
//	GET /search?q=<term>                                  {"dependencies": [...]}
//	GET /versions?groupId=<g>&artifactId=<a>              {"versions": [...]}
//	GET /format?groupId=&artifactId=&version=&format=     {"snippet": "..."}
//	GET /healthz                                          ok
//
// Unlike the CLI, the API tells "no matches" apart from upstream failures:
// the latter answer 502 with a {"code", "message"} body. Every response
// carries an X-Request-ID header.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Fetcher is the strict side of the Maven client: failures are returned
// rather than collapsed into empty results.
type Fetcher interface {
	FetchSearch(ctx context.Context, term string) ([]maven.Dependency, error)
	FetchVersions(ctx context.Context, groupID, artifactID string) ([]string, error)
}

var _ Fetcher = (*maven.Client)(nil)

// Server is the HTTP API. It holds no per-request state and serves
// requests concurrently.
type Server struct {
	fetcher Fetcher
	logger  *log.Logger
	router  chi.Router
}

// New creates a Server backed by f. A nil logger uses log.Default().
func New(f Fetcher, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{fetcher: f, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/search", s.handleSearch)
	r.Get("/versions", s.handleVersions)
	r.Get("/format", s.handleFormat)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving HTTP API", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}
