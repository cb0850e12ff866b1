package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"go-pdftools/internal/pdf"
)

// multipart parts beyond this size are spooled to disk
const maxMemory = 32 << 20

var pdfMagic = []byte("%PDF-")

func (h *APIHandler) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUpload)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return maxErr
		}
		return badRequest("invalid multipart form: %v", err)
	}
	return nil
}

// upload is an uploaded PDF that passed the header check.
type upload struct {
	Name string
	File multipart.File
}

func openPDF(fh *multipart.FileHeader) (*upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil || !bytes.Equal(header, pdfMagic) {
		f.Close()
		return nil, badRequest("%s is not a valid PDF", fh.Filename)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return &upload{Name: fh.Filename, File: f}, nil
}

// formPDF opens the single PDF in field. The caller closes it.
func formPDF(r *http.Request, field string) (*upload, error) {
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, badRequest("missing file %s", field)
	}
	return openPDF(files[0])
}

func options(r *http.Request) pdf.Options {
	return pdf.Options{Password: r.FormValue("password")}
}

func formInt(r *http.Request, key string, def int) (int, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badRequest("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func requiredInt(r *http.Request, key string) (int, error) {
	if strings.TrimSpace(r.FormValue(key)) == "" {
		return 0, badRequest("%s is required", key)
	}
	return formInt(r, key, 0)
}

func formFloat(r *http.Request, key string, def float64) (float64, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, badRequest("%s must be a number, got %q", key, v)
	}
	return f, nil
}

func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(strings.TrimSpace(r.FormValue(key))) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

// formInts parses a comma separated list of integers.
func formInts(r *http.Request, key string) ([]int, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, badRequest("%s must be a comma separated list of integers, got %q", key, v)
		}
		out = append(out, n)
	}
	return out, nil
}
