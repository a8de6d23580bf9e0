package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
)

// StatusCmd shows whether sites can be blocked and which are blocked now
type StatusCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

type statusOutput struct {
	BlockedNow  []string `json:"blocked_now"`
	Blocklist   int      `json:"blocklist"`
	CanBlock    bool     `json:"can_block"`
	HostsFile   string   `json:"hosts_file"`
	ActivityLog string   `json:"activity_log"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	container := cli.Container

	managed, err := container.BlockList.ListManagedEntries()
	if err != nil {
		return fmt.Errorf("failed to read hosts file: %w", err)
	}
	sites, err := container.SiteService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}

	out := statusOutput{
		ActivityLog: container.Runtime.ActivityLogPath,
		BlockedNow:  managed,
		Blocklist:   len(sites),
		CanBlock:    container.FocusController.ElevationAvailable(),
		HostsFile:   container.Runtime.HostsPath,
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Hosts file:    %s\n", out.HostsFile)
	fmt.Printf("Activity log:  %s\n", out.ActivityLog)
	if out.CanBlock {
		fmt.Println("Blocking:      available")
	} else {
		fmt.Println("Blocking:      unavailable (run with administrator rights)")
	}
	fmt.Printf("Blocklist:     %d domains\n", out.Blocklist)

	if len(managed) == 0 {
		fmt.Printf("%s No sites blocked right now\n", domain.SymbolIdle)
		return nil
	}
	fmt.Printf("%s %d sites blocked right now (run 'perry reconcile' if no session is running)\n",
		domain.SymbolWorking, len(managed))
	return nil
}
