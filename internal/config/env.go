package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds PERRY_* environment overrides. Empty variables are ignored.
type EnvConfig struct {
	ActivityLog string `env:"PERRY_ACTIVITY_LOG"`
	HostsFile   string `env:"PERRY_HOSTS_FILE"`
	NoNotify    bool   `env:"PERRY_NO_NOTIFY"`
	NoSound     bool   `env:"PERRY_NO_SOUND"`
	RedirectIP  string `env:"PERRY_REDIRECT_IP"`
	TickMillis  int    `env:"PERRY_TICK_MILLIS"`
}

// LoadEnv parses PERRY_* environment variables
func LoadEnv() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Runtime is the resolved configuration the container is built from
type Runtime struct {
	ActivityLogPath string
	BlockByDefault  bool
	DBPath          string
	HostsPath       string
	Notifications   bool
	RedirectIP      string
	Sound           bool
	TickInterval    time.Duration
}

// ResolveRuntime applies precedence env > settings.json > defaults.
// Either argument may be nil. The redirect address must be a plain IP.
func ResolveRuntime(settings *Settings, envCfg *EnvConfig) (Runtime, error) {
	if settings == nil {
		settings = &Settings{}
	}
	if envCfg == nil {
		envCfg = &EnvConfig{}
	}

	rt := Runtime{
		ActivityLogPath: GetActivityLogPath(),
		BlockByDefault:  true,
		DBPath:          GetDBPath(),
		HostsPath:       DefaultHostsPath(),
		Notifications:   true,
		RedirectIP:      DefaultRedirectIP,
		Sound:           true,
		TickInterval:    DefaultTickMillis * time.Millisecond,
	}

	// settings.json
	if settings.ActivityLog != "" {
		rt.ActivityLogPath = settings.ActivityLog
	}
	if settings.BlockByDefault != nil {
		rt.BlockByDefault = *settings.BlockByDefault
	}
	if settings.HostsFile != "" {
		rt.HostsPath = settings.HostsFile
	}
	if settings.Notifications != nil {
		rt.Notifications = *settings.Notifications
	}
	if settings.RedirectIP != "" {
		rt.RedirectIP = settings.RedirectIP
	}
	if settings.Sound != nil {
		rt.Sound = *settings.Sound
	}
	if settings.TickMillis != nil && *settings.TickMillis > 0 {
		rt.TickInterval = time.Duration(*settings.TickMillis) * time.Millisecond
	}

	// Environment
	if envCfg.ActivityLog != "" {
		rt.ActivityLogPath = ExpandPath(envCfg.ActivityLog)
	}
	if envCfg.HostsFile != "" {
		rt.HostsPath = ExpandPath(envCfg.HostsFile)
	}
	if envCfg.NoNotify {
		rt.Notifications = false
	}
	if envCfg.NoSound {
		rt.Sound = false
	}
	if envCfg.RedirectIP != "" {
		rt.RedirectIP = envCfg.RedirectIP
	}
	if envCfg.TickMillis > 0 {
		rt.TickInterval = time.Duration(envCfg.TickMillis) * time.Millisecond
	}

	if net.ParseIP(rt.RedirectIP) == nil {
		return Runtime{}, fmt.Errorf("invalid redirect_ip %q: not an IP address", rt.RedirectIP)
	}

	return rt, nil
}
