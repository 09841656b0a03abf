package server

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
}

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	// Every request may block on a serial poll, so the write timeout
	// must comfortably exceed the source's read timeout.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// normalizeAddr accepts "8080" or ":8080" and returns a listen address.
func normalizeAddr(port string) string {
	if port == "" || strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// Run starts the HTTP server on the given port using the provided handler.
func (s *Server) Run(port string, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              normalizeAddr(port),
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
