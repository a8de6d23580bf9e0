package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetPerryHome returns PERRY_HOME or ~/.perry default
func GetPerryHome() string {
	perryHome := os.Getenv("PERRY_HOME")
	if perryHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".perry"
		}
		return filepath.Join(homeDir, ".perry")
	}
	return ExpandPath(perryHome)
}

// GetDBPath returns $PERRY_HOME/perry.db
func GetDBPath() string {
	return filepath.Join(GetPerryHome(), "perry.db")
}

// GetSettingsPath returns $PERRY_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetPerryHome(), "settings.json")
}

// GetActivityLogPath returns $PERRY_HOME/user_activity_log.csv
func GetActivityLogPath() string {
	return filepath.Join(GetPerryHome(), "user_activity_log.csv")
}

// DefaultHostsPath returns the OS hosts file location
func DefaultHostsPath() string {
	if runtime.GOOS == "windows" {
		systemRoot := os.Getenv("SystemRoot")
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}
		return filepath.Join(systemRoot, "System32", "drivers", "etc", "hosts")
	}
	return "/etc/hosts"
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
