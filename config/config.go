package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileName is the configuration file looked up in the working and home directories.
const FileName = ".locktrail.json"

// Config is the root configuration structure.
type Config struct {
	LockFile  string          `json:"lockFile"` // Default: "composer.lock"
	Branch    string          `json:"branch"`   // Default: "" (HEAD)
	Output    OutputConfig    `json:"output"`
	Discovery DiscoveryConfig `json:"discovery"`
}

// OutputConfig holds report output options.
type OutputConfig struct {
	Format      string `json:"format"`      // Default: "console"
	ShowSkipped bool   `json:"showSkipped"` // Default: true
	TimeLayout  string `json:"timeLayout"`  // Go time layout for human-readable formats
}

// DiscoveryConfig holds lock file discovery options.
type DiscoveryConfig struct {
	Patterns []string `json:"patterns"` // Glob patterns matched against tree paths
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LockFile: "composer.lock",
		Output: OutputConfig{
			Format:      "console",
			ShowSkipped: true,
			TimeLayout:  "2006-01-02 15:04:05",
		},
		Discovery: DiscoveryConfig{
			Patterns: []string{
				"**/composer.lock",
				"**/Cargo.lock",
				"**/package-lock.json",
				"**/pubspec.lock",
			},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{FileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, FileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, FileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
