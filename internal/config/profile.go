package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// BlocklistProfile is a shareable YAML file of sites to block
type BlocklistProfile struct {
	ExportedAt time.Time `yaml:"exported_at,omitempty"`
	Name       string    `yaml:"name"`
	Sites      []string  `yaml:"sites"`
}

// LoadProfile reads a blocklist profile from a YAML file
func LoadProfile(path string) (*BlocklistProfile, error) {
	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile BlocklistProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	if len(profile.Sites) == 0 {
		return nil, fmt.Errorf("profile %s has no sites", path)
	}

	return &profile, nil
}

// SaveProfile writes a blocklist profile as YAML
func SaveProfile(path string, profile *BlocklistProfile) error {
	path = ExpandPath(path)
	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}
