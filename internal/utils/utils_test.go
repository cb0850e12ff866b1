package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\scan 01.pdf`, "scan_01.pdf"},
		{"résumé.pdf", "r_sum_.pdf"},
		{"", "document"},
		{strings.Repeat("a", 150) + ".pdf", strings.Repeat("a", 100)},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		in, suffix, want string
	}{
		{"report.pdf", "_merged.pdf", "report_merged.pdf"},
		{"archive.tar.pdf", ".zip", "archive.tar.zip"},
		{"noext", "_1.pdf", "noext_1.pdf"},
		{"", ".pdf", "document.pdf"},
		{".pdf", "_x.pdf", "document_x.pdf"},
	}
	for _, tt := range tests {
		if got := GenerateFilename(tt.in, tt.suffix); got != tt.want {
			t.Errorf("GenerateFilename(%q, %q) = %q, want %q", tt.in, tt.suffix, got, tt.want)
		}
	}
}

func TestGenerateUUID(t *testing.T) {
	a, b := GenerateUUID(), GenerateUUID()
	if a == b {
		t.Fatalf("two calls returned the same id %q", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("GenerateUUID() = %q is not a UUID: %v", a, err)
	}
}
