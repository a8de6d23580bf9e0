package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Defaults applied when neither flags, env, nor settings.json provide a value
const (
	DefaultRedirectIP = "127.0.0.1"
	DefaultTickMillis = 1000
)

// Settings represents the structure of $PERRY_HOME/settings.json
type Settings struct {
	ActivityLog    string      `json:"activity_log,omitempty"`
	BlockByDefault *bool       `json:"block_by_default,omitempty"`
	BreakMinutes   *int        `json:"break_minutes,omitempty"`
	Cycles         *int        `json:"cycles,omitempty"`
	Debug          *bool       `json:"debug,omitempty"`
	DefaultPreset  string      `json:"default_preset,omitempty"`
	ExtraSites     StringArray `json:"extra_sites,omitempty"`
	HostsFile      string      `json:"hosts_file,omitempty"`
	MaxLogFiles    *int        `json:"max_log_files,omitempty"`
	Notifications  *bool       `json:"notifications,omitempty"`
	RedirectIP     string      `json:"redirect_ip,omitempty"`
	Sound          *bool       `json:"sound,omitempty"`
	TickMillis     *int        `json:"tick_millis,omitempty"`
	WorkMinutes    *int        `json:"work_minutes,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $PERRY_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.HostsFile != "" {
		settings.HostsFile = ExpandPath(settings.HostsFile)
	}
	if settings.ActivityLog != "" {
		settings.ActivityLog = ExpandPath(settings.ActivityLog)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PERRY_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
