package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		Port:       8080,
		UploadDir:  "uploads",
		OutputDir:  "output",
		MaxUpload:  25 << 20,
		SessionTTL: 5 * time.Minute,
		LogLevel:   slog.LevelInfo,
		Settings:   &Settings{},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadEnv(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"PORT":          "9090",
		"UPLOAD_DIR":    "/tmp/in",
		"OUTPUT_DIR":    "/tmp/out",
		"MAX_UPLOAD_MB": "50",
		"SESSION_TTL":   "90s",
		"LOG_LEVEL":     "debug",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9090 || cfg.UploadDir != "/tmp/in" || cfg.OutputDir != "/tmp/out" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.MaxUpload != 50<<20 || cfg.SessionTTL != 90*time.Second || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("unexpected limits %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, vars := range []map[string]string{
		{"PORT": "http"},
		{"PORT": "70000"},
		{"MAX_UPLOAD_MB": "-1"},
		{"SESSION_TTL": "soon"},
		{"LOG_LEVEL": "loud"},
		{"SETTINGS_FILE": "/does/not/exist.yml"},
	} {
		if _, err := load(env(vars)); err == nil {
			t.Errorf("load(%v) succeeded, want error", vars)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	data := `
endpoints:
  toRemove:
    - /Merge-PDFs
    - crop
    - crop
  groupsToRemove:
    - Analysis
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(env(map[string]string{"SETTINGS_FILE": path}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s := cfg.Settings
	if diff := cmp.Diff([]string{"merge-pdfs", "crop"}, s.Endpoints.ToRemove); diff != "" {
		t.Errorf("toRemove mismatch (-want +got):\n%s", diff)
	}
	if s.MaxMergeFiles() != defaultMaxMergeFiles {
		t.Errorf("MaxMergeFiles = %d, want default", s.MaxMergeFiles())
	}

	tests := []struct {
		group, endpoint string
		want            bool
	}{
		{"general", "merge-pdfs", false},
		{"general", "/crop", false},
		{"general", "rotate-pdf", true},
		{"analysis", "page-count", false},
		{"session", "sessions", true},
	}
	for _, tt := range tests {
		if got := s.Enabled(tt.group, tt.endpoint); got != tt.want {
			t.Errorf("Enabled(%q, %q) = %v, want %v", tt.group, tt.endpoint, got, tt.want)
		}
	}
}

func TestNilSettingsEnableEverything(t *testing.T) {
	var s *Settings
	if !s.Enabled("general", "merge-pdfs") {
		t.Error("nil settings disabled an endpoint")
	}
	if s.MaxMergeFiles() != defaultMaxMergeFiles {
		t.Errorf("MaxMergeFiles = %d", s.MaxMergeFiles())
	}
}
