package config

import (
	"encoding/json"

	"github.com/keshon/gitlet/internal/fs"
)

// Settings is the per-repository configuration stored in .gitlet/config.json.
type Settings struct {
	DefaultBranch string `json:"default_branch"`
	// Preflight checks every path for obstructions before a snapshot is
	// written. When false, paths are checked and written one at a time.
	Preflight bool `json:"preflight"`
}

// DefaultSettings returns the settings used when config.json is missing.
func DefaultSettings() Settings {
	return Settings{
		DefaultBranch: DefaultBranch,
		Preflight:     true,
	}
}

// LoadSettings reads config.json. Missing or invalid files fall back to defaults,
// absent fields keep their default values.
func LoadSettings(fsys fs.FS, cfg *RepoConfig) Settings {
	s := DefaultSettings()

	data, err := fsys.ReadFile(cfg.SettingsFile())
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings()
	}
	if s.DefaultBranch == "" {
		s.DefaultBranch = DefaultBranch
	}
	return s
}
