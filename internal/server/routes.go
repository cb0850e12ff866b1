package server

import (
	"log/slog"
	"net"
	"net/http"

	_ "go-pdftools/docs"
	"go-pdftools/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Only allow requests from localhost to /swagger/*
func localhostOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, _ := net.SplitHostPort(r.RemoteAddr)
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// endpoint registers a POST tool endpoint that the settings file can
// switch off, alone or with its group.
func (s *Server) endpoint(r chi.Router, group, name string, h http.HandlerFunc) {
	r.Post("/"+name, func(w http.ResponseWriter, req *http.Request) {
		if !s.Config.Settings.Enabled(group, name) {
			slog.Debug("disabled endpoint called", "group", group, "endpoint", name)
			http.Error(w, "This endpoint is disabled", http.StatusForbidden)
			return
		}
		h(w, req)
	})
}

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
	}))
	r.With(localhostOnly).Get("/swagger/*", httpSwagger.WrapHandler)

	h := handlers.NewAPIHandler(s.SessionManager, s.Config)
	r.Route("/api/v1/general", func(api chi.Router) {
		s.endpoint(api, "general", "merge-pdfs", h.MergePDFs)
		s.endpoint(api, "general", "split-pages", h.SplitPages)
		s.endpoint(api, "general", "split-by-count", h.SplitByCount)
		s.endpoint(api, "general", "split-pdf-by-sections", h.SplitSections)
		s.endpoint(api, "general", "split-pdf-by-chapters", h.SplitChapters)
		s.endpoint(api, "general", "rotate-pdf", h.RotatePDF)
		s.endpoint(api, "general", "crop", h.CropPDF)
		s.endpoint(api, "general", "scale-pages", h.ScalePages)
		s.endpoint(api, "general", "rearrange-pages", h.RearrangePages)
		s.endpoint(api, "general", "remove-pages", h.RemovePages)
		s.endpoint(api, "general", "multi-page-layout", h.MultiPageLayout)
		s.endpoint(api, "general", "overlay-pdfs", h.OverlayPDFs)
	})
	r.Route("/api/v1/analysis", func(api chi.Router) {
		s.endpoint(api, "analysis", "page-count", h.PageCount)
		s.endpoint(api, "analysis", "basic-info", h.BasicInfo)
		s.endpoint(api, "analysis", "document-properties", h.DocumentProperties)
		s.endpoint(api, "analysis", "page-dimensions", h.PageDimensions)
		s.endpoint(api, "analysis", "form-fields", h.FormFields)
		s.endpoint(api, "analysis", "annotation-info", h.AnnotationInfo)
		s.endpoint(api, "analysis", "font-info", h.FontInfo)
		s.endpoint(api, "analysis", "security-info", h.SecurityInfo)
		s.endpoint(api, "analysis", "info", h.Info)
	})
	r.Route("/api/sessions", func(api chi.Router) {
		api.Use(s.sessionsEnabled)
		api.Post("/", h.CreateSession)
		api.Post("/{sessionID}/files", h.UploadFile)
		api.Post("/{sessionID}/signature", h.UploadSignature)
		api.Put("/{sessionID}/order", h.UpdateOrder)
		api.Post("/{sessionID}/actions/merge", h.MergeFiles)
		api.Post("/{sessionID}/sign", h.SignPDF)
		api.Get("/{sessionID}/files/{filename}", h.DownloadFile)
	})

	return r
}

func (s *Server) sessionsEnabled(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.Config.Settings.Enabled("session", "sessions") {
			http.Error(w, "This endpoint is disabled", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
