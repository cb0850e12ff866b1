// Package main API.
//
// go-pdftools provides a REST API for merging, splitting, reshaping and
// inspecting PDF files.
//
//	Schemes: http
//	BasePath: /
//	Version: 1.0.0
//	Host: localhost:8080
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//	- application/pdf
//	- application/zip
//
// swagger:meta
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go-pdftools/internal/config"
	"go-pdftools/internal/server"
)

const shutdownTimeout = 5 * time.Second

func gracefulShutdown(ctx context.Context, stop context.CancelFunc, apiServer *http.Server, done chan<- struct{}, cleanupFunc func()) {
	// Listen for the interrupt signal.
	<-ctx.Done()
	// A second signal now kills the process.
	stop()

	slog.Info("shutting down gracefully, press Ctrl+C again to force")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "err", err)
	}

	// Cleanup all session files and temp files
	if cleanupFunc != nil {
		slog.Info("cleaning directories")
		cleanupFunc()
	}

	slog.Info("server exiting")

	close(done)
}

func cleanDirs(dirs ...string) {
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				_ = os.Remove(filepath.Join(dir, entry.Name()))
			}
		}
	}
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	cleanup := func() { cleanDirs(cfg.UploadDir, cfg.OutputDir) }
	// Cleanup uploads and output on startup
	cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiServer, err := server.NewServer(ctx, cfg)
	if err != nil {
		slog.Error("create server", "err", err)
		os.Exit(1)
	}

	done := make(chan struct{})
	go gracefulShutdown(ctx, stop, apiServer, done, cleanup)

	slog.Info("starting server", "addr", apiServer.Addr, "upload_dir", cfg.UploadDir, "output_dir", cfg.OutputDir)
	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("http server error", "err", err)
		os.Exit(1)
	}

	// Wait for the graceful shutdown to complete
	<-done
	slog.Info("graceful shutdown complete")
}
