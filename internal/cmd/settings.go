package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/Vinyaaggarwal/Perry/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"show" help:"Show settings file location, resolved values, and available options" default:"1"`
}

// SettingsShowCmd displays settings metadata
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()
	rt := cli.Container.Runtime

	if s.Format == "json" {
		output := map[string]any{
			"format":        example,
			"resolved":      rt,
			"settings_file": settingsFile,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)

	fmt.Println("Resolved configuration:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  hosts_file\t%s\n", rt.HostsPath)
	fmt.Fprintf(w, "  activity_log\t%s\n", rt.ActivityLogPath)
	fmt.Fprintf(w, "  database\t%s\n", rt.DBPath)
	fmt.Fprintf(w, "  redirect_ip\t%s\n", rt.RedirectIP)
	fmt.Fprintf(w, "  block_by_default\t%t\n", rt.BlockByDefault)
	fmt.Fprintf(w, "  notifications\t%t\n", rt.Notifications)
	fmt.Fprintf(w, "  sound\t%t\n", rt.Sound)
	fmt.Fprintf(w, "  tick_interval\t%s\n", rt.TickInterval)
	w.Flush()

	fmt.Println()
	fmt.Println("Example settings.json:")
	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "  %s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure perry.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}
