package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Vinyaaggarwal/Perry/internal/config"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"200"`

	Focus      FocusCmd      `cmd:"" help:"Start the focus timer TUI (default)" default:"withargs"`
	Start      StartCmd      `cmd:"start" help:"Run a focus session without the TUI"`
	Reconcile  ReconcileCmd  `cmd:"reconcile" help:"Remove blocking left behind by an interrupted session"`
	Status     StatusCmd     `cmd:"status" help:"Show blocking status and the current blocklist"`
	Sites      SitesCmd      `cmd:"sites" help:"Manage the blocklist (list, add, del, reset, import, export)"`
	Activity   ActivityCmd   `cmd:"activity" help:"Summarize, export, or prune the activity log"`
	Settings   SettingsCmd   `cmd:"settings" help:"Show settings file location and resolved values"`
	PlaySound  PlaySoundCmd  `cmd:"play-sound" help:"Play a phase sound (cross-platform)" hidden:""`
	NotifyTest NotifyTestCmd `cmd:"notify-test" help:"Send a test desktop notification" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// LoadedSettings returns the loaded settings.json, never nil
func (c *CLI) LoadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and builds the container
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("PERRY_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PERRY_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	// gorm's logger reads PERRY_DEBUG; set it after initialization
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PERRY_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PERRY_DEBUG_FILE", logFilePath)
		}
	}

	envCfg, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	rt, err := config.ResolveRuntime(c.settings, envCfg)
	if err != nil {
		return err
	}

	logging.Logger.Info("Runtime configuration resolved",
		"hosts_file", rt.HostsPath,
		"activity_log", rt.ActivityLogPath,
		"db", rt.DBPath,
		"notifications", rt.Notifications,
		"sound", rt.Sound,
		"tick_interval", rt.TickInterval)

	// Container is created after logging so gorm's logger is live
	container, err := NewContainer(rt)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
