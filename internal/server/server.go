// Package server provides the HTTP server scaffold for actions-web.
//
// It sets up a chi router with standard middleware (request ID, real IP,
// logging, recovery, timeout) and graceful shutdown. The entrypoint
// registers routes on Router before calling Run. Unmatched paths and
// methods both produce a plain 404: the service exposes exactly one route,
// so a wrong method on a known path is treated the same as an unknown path.
package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is an HTTP server with standard middleware and graceful shutdown.
type Server struct {
	Router *chi.Mux
	srv    *http.Server
}

// New creates a Server with standard middleware already applied.
// The returned Router is ready for route registration. notFound is used
// for every request that matches no registered route or method.
func New(notFound http.HandlerFunc) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return &Server{Router: r}
}

// Run starts the server on addr and blocks until shutdown.
// It handles SIGINT/SIGTERM for graceful shutdown. A bind failure is
// returned immediately; there is no retry.
func (s *Server) Run(addr string) error {
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	log.Println("Server stopped")
	return nil
}
