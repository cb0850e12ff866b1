package handlers

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"go-pdftools/internal/pdf"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// errBadRequest marks malformed form input.
var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// namedDoc is one entry of a multi-document response.
type namedDoc struct {
	Name string
	Data []byte
}

func attachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
}

func writePDF(w http.ResponseWriter, filename string, data []byte) {
	attachment(w, "application/pdf", filename)
	w.Write(data)
}

// writeZip answers with all docs in one zip archive.
func writeZip(w http.ResponseWriter, filename string, docs []namedDoc) error {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, d := range docs {
		f, err := zw.Create(d.Name)
		if err != nil {
			return err
		}
		if _, err := f.Write(d.Data); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	attachment(w, "application/zip", filename)
	w.Write(buf.Bytes())
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

// statusFor maps operation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, pdf.ErrInvalidArgument),
		errors.Is(err, pdf.ErrInvalidPDF),
		errors.Is(err, pdf.ErrNoPages),
		errors.Is(err, pdfcpu.ErrWrongPassword):
		return http.StatusBadRequest
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// fail writes err as a plain text response. Server errors are logged with
// the operation name and their details are not sent to the client.
func fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("operation failed", "op", op, "err", err, "request_id", middleware.GetReqID(r.Context()))
		http.Error(w, fmt.Sprintf("Failed to %s", op), status)
		return
	}
	slog.Debug("request rejected", "op", op, "status", status, "err", err)
	http.Error(w, err.Error(), status)
}
