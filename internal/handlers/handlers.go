// Package handlers provides the HTTP handlers of the PDF tools API.
//
// Stateless tools live under /api/v1/general and /api/v1/analysis: each
// request carries its PDF as the multipart field fileInput and gets the
// result back in the response. The session handlers in this file keep
// uploads on disk between calls for the upload, order, merge, stamp and
// download workflow.
//
// Example usage:
//
//	h := handlers.NewAPIHandler(sessionManager, cfg)
//	r := chi.NewRouter()
//	r.Post("/api/sessions/", h.CreateSession)
//	r.Post("/api/v1/general/merge-pdfs", h.MergePDFs)
//
// All handlers are designed to be used with the chi router.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go-pdftools/internal/config"
	"go-pdftools/internal/pdf"
	"go-pdftools/internal/session"
	"go-pdftools/internal/utils"

	"github.com/go-chi/chi/v5"
)

const maxSignatureSize = 5 << 20

// downloadGrace is how long a session survives its download.
const downloadGrace = time.Second

type APIHandler struct {
	SessionManager *session.SessionManager
	UploadDir      string
	OutputDir      string
	MaxUpload      int64
	Settings       *config.Settings
}

func NewAPIHandler(sm *session.SessionManager, cfg *config.Config) *APIHandler {
	return &APIHandler{
		SessionManager: sm,
		UploadDir:      cfg.UploadDir,
		OutputDir:      cfg.OutputDir,
		MaxUpload:      cfg.MaxUpload,
		Settings:       cfg.Settings,
	}
}

func (h *APIHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, exists := h.SessionManager.GetSession(chi.URLParam(r, "sessionID"))
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
	}
	return s, exists
}

// CreateSession godoc
// @Summary      Create a new session
// @Description  Creates a new upload session and returns its ID
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  map[string]string  "{ sessionId: string }"
// @Router       /api/sessions/ [post]
func (h *APIHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.SessionManager.CreateSession()
	slog.Debug("session created", "session", s.ID)
	writeJSON(w, http.StatusOK, map[string]string{"sessionId": s.ID})
}

// UploadFile godoc
// @Summary      Upload a PDF file
// @Description  Uploads a PDF file to the session
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Param        pdf        formData  file    true  "PDF file"
// @Success      200  {object}  map[string]interface{}  "{ filename: string, size: int }"
// @Failure      400  {string}  string  "Bad request"
// @Failure      404  {string}  string  "Session not found"
// @Router       /api/sessions/{sessionID}/files [post]
func (h *APIHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := h.parseForm(w, r); err != nil {
		fail(w, r, "upload file", err)
		return
	}

	files := r.MultipartForm.File["pdf"]
	if len(files) == 0 {
		http.Error(w, "Error retrieving file", http.StatusBadRequest)
		return
	}
	if !strings.EqualFold(filepath.Ext(files[0].Filename), ".pdf") {
		http.Error(w, "Only PDF files are allowed", http.StatusBadRequest)
		return
	}
	in, err := openPDF(files[0])
	if err != nil {
		fail(w, r, "upload file", err)
		return
	}
	defer in.File.Close()

	filename := fmt.Sprintf("%s-%s", utils.GenerateUUID(), utils.SanitizeFilename(in.Name))
	if err := h.store(filename, in.File); err != nil {
		fail(w, r, "save file", err)
		return
	}
	s.AddFile(filepath.Join(h.UploadDir, filename))
	writeJSON(w, http.StatusOK, map[string]any{"filename": filename, "size": files[0].Size})
}

func (h *APIHandler) store(filename string, src io.Reader) error {
	dst, err := os.Create(filepath.Join(h.UploadDir, filename))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// UpdateOrder godoc
// @Summary      Set file order
// @Description  Sets the order of uploaded files for merging
// @Tags         files
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Param        files      body      object  true  "{ files: [string] }"
// @Success      200  {object}  map[string]bool  "{ success: true }"
// @Failure      400  {string}  string  "Bad request"
// @Failure      404  {string}  string  "Session not found"
// @Failure      409  {string}  string  "Merge in progress"
// @Router       /api/sessions/{sessionID}/order [put]
func (h *APIHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if s.Status() == session.StatusInProgress {
		http.Error(w, "Merge in progress", http.StatusConflict)
		return
	}
	var fileOrder struct {
		Files []string `json:"files"`
	}
	if err := json.NewDecoder(r.Body).Decode(&fileOrder); err != nil {
		http.Error(w, "Invalid file order data", http.StatusBadRequest)
		return
	}

	paths := make([]string, 0, len(fileOrder.Files))
	for _, name := range fileOrder.Files {
		p := filepath.Join(h.UploadDir, filepath.Base(name))
		if !s.HasFile(p) || slices.Contains(paths, p) {
			http.Error(w, "Invalid file in order list", http.StatusBadRequest)
			return
		}
		paths = append(paths, p)
	}
	if len(paths) > 0 {
		// stamp images stay attached to the session
		for _, f := range s.GetFiles() {
			if !isPDFPath(f) && !slices.Contains(paths, f) {
				paths = append(paths, f)
			}
		}
		s.SetFiles(paths)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func isPDFPath(p string) bool {
	return strings.EqualFold(filepath.Ext(p), ".pdf")
}

// MergeFiles godoc
// @Summary      Merge uploaded files
// @Description  Merges all uploaded PDFs of the session and returns a download URL
// @Tags         files
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200  {object}  map[string]string  "{ downloadUrl: string }"
// @Failure      400  {string}  string  "No files to merge"
// @Failure      404  {string}  string  "Session not found"
// @Failure      409  {string}  string  "Merge already in progress or done"
// @Router       /api/sessions/{sessionID}/actions/merge [post]
func (h *APIHandler) MergeFiles(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	switch status, started := s.BeginMerge(); {
	case started:
	case status == session.StatusInProgress:
		http.Error(w, "Merge already in progress", http.StatusConflict)
		return
	default:
		http.Error(w, "Files already merged", http.StatusConflict)
		return
	}
	output := ""
	defer func() { s.EndMerge(output) }()

	var srcs []pdf.Source
	for _, p := range s.GetFiles() {
		if !isPDFPath(p) {
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			fail(w, r, "merge PDFs", err)
			return
		}
		defer f.Close()
		srcs = append(srcs, pdf.Source{Name: filepath.Base(p), R: f})
	}
	if len(srcs) == 0 {
		http.Error(w, "No files to merge", http.StatusBadRequest)
		return
	}

	merged, err := pdf.Merge(srcs, nil, pdf.MergeOptions{})
	if err != nil {
		fail(w, r, "merge PDFs", err)
		return
	}
	outputFilename := fmt.Sprintf("merged-%s.pdf", utils.GenerateUUID())
	outputPath := filepath.Join(h.OutputDir, outputFilename)
	if err := os.WriteFile(outputPath, merged, 0644); err != nil {
		fail(w, r, "save merged PDF", err)
		return
	}
	output = outputPath

	downloadURL := fmt.Sprintf("/api/sessions/%s/files/%s", s.ID, outputFilename)
	writeJSON(w, http.StatusOK, map[string]string{"downloadUrl": downloadURL})
}

// DownloadFile godoc
// @Summary      Download the session result
// @Description  Downloads the merged or stamped PDF of the session and ends the session
// @Tags         files
// @Produce      application/pdf
// @Param        sessionID  path      string  true  "Session ID"
// @Param        filename   path      string  true  "Result filename"
// @Success      200  {file}  file  "PDF file download"
// @Failure      403  {string}  string  "Unauthorized access to file"
// @Failure      404  {string}  string  "Session or file not found"
// @Router       /api/sessions/{sessionID}/files/{filename} [get]
func (h *APIHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	path := filepath.Join(h.OutputDir, filepath.Base(chi.URLParam(r, "filename")))
	if s.OutputFile() != path {
		http.Error(w, "Unauthorized access to file", http.StatusForbidden)
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	name := "merged.pdf"
	if strings.HasPrefix(filepath.Base(path), "signed-") {
		name = "signed.pdf"
	}
	attachment(w, "application/pdf", name)
	http.ServeFile(w, r, path)

	time.AfterFunc(downloadGrace, func() {
		s.Cleanup()
		h.SessionManager.DeleteSession(s.ID)
	})
}

// signRequest places an uploaded image on one page of an uploaded PDF.
type signRequest struct {
	SourcePDF string  `json:"sourcePdf"` // filename as returned by the upload
	Signature string  `json:"signature"` // filename as returned by the upload
	Page      int     `json:"page"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Scale     float64 `json:"scale"`
}

// SignPDF godoc
// @Summary      Stamp a signature image
// @Description  Places a previously uploaded image on a PDF page at the given coordinates, in points from the lower-left corner
// @Tags         signature
// @Accept       json
// @Produce      json
// @Param        sessionID  path    string       true   "Session ID"
// @Param        request    body    signRequest  true   "Sign request"
// @Success      200  {object}  map[string]string  "{ downloadUrl: string }"
// @Failure      400  {string}  string  "Bad request"
// @Failure      404  {string}  string  "Session not found"
// @Router       /api/sessions/{sessionID}/sign [post]
func (h *APIHandler) SignPDF(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req signRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if req.SourcePDF == "" {
		http.Error(w, "PDF not specified", http.StatusBadRequest)
		return
	}
	if req.Signature == "" || req.Page < 1 {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	sourcePath := filepath.Join(h.UploadDir, filepath.Base(req.SourcePDF))
	if !s.HasFile(sourcePath) {
		http.Error(w, "Source PDF not found in session", http.StatusNotFound)
		return
	}
	sigPath := filepath.Join(h.UploadDir, filepath.Base(req.Signature))
	if !s.HasFile(sigPath) {
		http.Error(w, "Signature file not found in session", http.StatusNotFound)
		return
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		fail(w, r, "apply signature", err)
		return
	}
	defer src.Close()

	signed, err := pdf.StampImage(src, sigPath, req.Page, req.X, req.Y, req.Scale, pdf.Options{})
	if err != nil {
		fail(w, r, "apply signature", err)
		return
	}
	signedFilename := fmt.Sprintf("signed-%s.pdf", utils.GenerateUUID())
	signedPath := filepath.Join(h.OutputDir, signedFilename)
	if err := os.WriteFile(signedPath, signed, 0644); err != nil {
		fail(w, r, "save signed PDF", err)
		return
	}
	s.SetOutputFile(signedPath)

	downloadURL := fmt.Sprintf("/api/sessions/%s/files/%s", s.ID, signedFilename)
	writeJSON(w, http.StatusOK, map[string]string{"downloadUrl": downloadURL})
}

var imageExtensions = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
}

// UploadSignature godoc
// @Summary      Upload a signature image
// @Description  Uploads a signature image (PNG/JPEG) to the session
// @Tags         signature
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Param        signature  formData  file    true  "Signature image file (PNG/JPEG)"
// @Success      200  {object}  map[string]interface{}  "{ filename: string, size: int }"
// @Failure      400  {string}  string  "Bad request - invalid image format"
// @Failure      404  {string}  string  "Session not found"
// @Router       /api/sessions/{sessionID}/signature [post]
func (h *APIHandler) UploadSignature(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSignatureSize)
	if err := r.ParseMultipartForm(maxSignatureSize); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("signature")
	if err != nil {
		http.Error(w, "Error retrieving file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && err != io.ErrUnexpectedEOF {
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		fail(w, r, "process file", err)
		return
	}

	extensions, allowed := imageExtensions[http.DetectContentType(sniff[:n])]
	if !allowed {
		http.Error(w, "Invalid image format. Only PNG and JPEG images are allowed", http.StatusBadRequest)
		return
	}
	if !slices.Contains(extensions, ext) {
		http.Error(w, "File extension doesn't match content type", http.StatusBadRequest)
		return
	}

	filename := fmt.Sprintf("sig-%s-%s", utils.GenerateUUID(), utils.SanitizeFilename(header.Filename))
	if err := h.store(filename, file); err != nil {
		fail(w, r, "save file", err)
		return
	}
	s.AddFile(filepath.Join(h.UploadDir, filename))
	writeJSON(w, http.StatusOK, map[string]any{"filename": filename, "size": header.Size})
}
