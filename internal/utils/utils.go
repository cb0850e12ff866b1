// Package utils provides helpers for naming stored and returned files.
//
// Functions:
//   - SanitizeFilename: Returns a safe filename for storage.
//   - GenerateFilename: Derives a result filename from the uploaded one.
//   - GenerateUUID: Returns a new UUID string.
//
// Used by the handlers for upload storage, download headers and zip entries.
package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxFilenameLen = 100

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" {
		base = ""
	}
	safe := unsafeChars.ReplaceAllString(base, "_")
	if len(safe) > maxFilenameLen {
		safe = safe[:maxFilenameLen]
	}
	if safe == "" {
		safe = "document"
	}
	return safe
}

// GenerateFilename strips the extension from original and appends suffix,
// e.g. ("report.pdf", "_merged.pdf") gives "report_merged.pdf".
func GenerateFilename(original, suffix string) string {
	base := SanitizeFilename(original)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "document"
	}
	return base + suffix
}

func GenerateUUID() string {
	return uuid.New().String()
}
