package config

import (
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the optional YAML settings file.
type Settings struct {
	Endpoints EndpointSettings `yaml:"endpoints"`
	Limits    LimitSettings    `yaml:"limits"`
}

// EndpointSettings switches endpoints off, one by one or by group.
type EndpointSettings struct {
	ToRemove       []string `yaml:"toRemove"`       // e.g. merge-pdfs
	GroupsToRemove []string `yaml:"groupsToRemove"` // general | analysis | session
}

// LimitSettings bounds request sizes beyond MAX_UPLOAD_MB.
type LimitSettings struct {
	MaxMergeFiles int `yaml:"maxMergeFiles"`
}

const defaultMaxMergeFiles = 100

// LoadFile reads a YAML settings file.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	s.applyDefaults()
	return &s, nil
}

func (s *Settings) applyDefaults() {
	s.Endpoints.ToRemove = normalize(s.Endpoints.ToRemove)
	s.Endpoints.GroupsToRemove = normalize(s.Endpoints.GroupsToRemove)
	if s.Limits.MaxMergeFiles <= 0 {
		s.Limits.MaxMergeFiles = defaultMaxMergeFiles
	}
}

func normalize(names []string) []string {
	out := names[:0]
	for _, n := range names {
		n = strings.ToLower(strings.Trim(strings.TrimSpace(n), "/"))
		if n != "" && !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// MaxMergeFiles is the most files one merge request may carry.
func (s *Settings) MaxMergeFiles() int {
	if s == nil || s.Limits.MaxMergeFiles <= 0 {
		return defaultMaxMergeFiles
	}
	return s.Limits.MaxMergeFiles
}

// Enabled reports whether endpoint, in group, is served. An explicit
// removal wins over group membership.
func (s *Settings) Enabled(group, endpoint string) bool {
	if s == nil {
		return true
	}
	endpoint = strings.ToLower(strings.Trim(endpoint, "/"))
	if slices.Contains(s.Endpoints.ToRemove, endpoint) {
		return false
	}
	return !slices.Contains(s.Endpoints.GroupsToRemove, strings.ToLower(group))
}
