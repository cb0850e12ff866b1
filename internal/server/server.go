// Package server provides the HTTP server setup for go-pdftools.
//
// NewServer creates and configures the HTTP server, session manager, and file directories.
//
// Expected outputs:
// - Server listens on the configured port (default 8080)
// - Expired sessions and their files are cleaned up periodically
//
// Usage:
//
//	server, err := server.NewServer(ctx, cfg)
//	server.ListenAndServe()
//
// See internal/server/routes.go for route registration.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go-pdftools/internal/config"
	"go-pdftools/internal/session"
)

const sweepInterval = time.Minute

type Server struct {
	Config         *config.Config
	SessionManager *session.SessionManager
}

func NewServer(ctx context.Context, cfg *config.Config) (*http.Server, error) {
	for _, dir := range []string{cfg.UploadDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	srv := &Server{
		Config:         cfg,
		SessionManager: session.NewSessionManager(),
	}
	go srv.sweep(ctx)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  time.Minute,
		WriteTimeout: 2 * time.Minute,
	}

	return server, nil
}

// sweep drops expired sessions until ctx is done.
func (s *Server) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.SessionManager.Sweep(now, s.Config.SessionTTL); n > 0 {
				slog.Info("expired sessions removed", "count", n, "active", s.SessionManager.Len())
			}
		}
	}
}
