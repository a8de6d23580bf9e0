package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
)

// SitesCmd manages the blocklist
type SitesCmd struct {
	Add    SitesAddCmd    `cmd:"add" help:"Add a site (and its www. variant)"`
	Del    SitesDelCmd    `cmd:"del" aliases:"rm" help:"Remove a site (and its www. variant)"`
	Export SitesExportCmd `cmd:"export" help:"Write the blocklist to a YAML profile"`
	Import SitesImportCmd `cmd:"import" help:"Add every site from a YAML profile"`
	List   SitesListCmd   `cmd:"list" help:"List blocked sites" default:"1"`
	Reset  SitesResetCmd  `cmd:"reset" help:"Restore the default blocklist"`
}

// SitesListCmd lists the blocklist
type SitesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SitesListCmd) Run(cli *CLI) error {
	sites, err := cli.Container.SiteService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(sites, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tSOURCE\tADDED")
	for _, site := range sites {
		fmt.Fprintf(w, "%s\t%s\t%s\n", site.Domain, site.Source, humanize.Time(site.CreatedAt))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d domains\n", len(sites))
	return nil
}

// SitesAddCmd adds a site
type SitesAddCmd struct {
	Domain string `arg:"" help:"Domain or URL to block (e.g. reddit.com)"`
}

// Run executes the add command
func (s *SitesAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sites add command", "domain", s.Domain)

	added, err := cli.Container.SiteService.Add(context.Background(), s.Domain)
	if err != nil {
		return fmt.Errorf("failed to add site: %w", err)
	}
	if len(added) == 0 {
		fmt.Printf("%s is already on the blocklist\n", domain.NormalizeDomain(s.Domain))
		return nil
	}

	for _, d := range added {
		fmt.Printf("Added %s\n", d)
	}
	return nil
}

// SitesDelCmd removes a site
type SitesDelCmd struct {
	Domain string `arg:"" help:"Domain to unblock"`
}

// Run executes the del command
func (s *SitesDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sites del command", "domain", s.Domain)

	removed, err := cli.Container.SiteService.Remove(context.Background(), s.Domain)
	if errors.Is(err, domain.ErrSiteNotFound) {
		return fmt.Errorf("%s is not on the blocklist", domain.NormalizeDomain(s.Domain))
	}
	if err != nil {
		return fmt.Errorf("failed to remove site: %w", err)
	}

	fmt.Printf("Removed %d entries for %s\n", removed, domain.NormalizeDomain(s.Domain))
	return nil
}

// SitesResetCmd restores the default blocklist
type SitesResetCmd struct {
	Force bool `help:"Reset without confirmation" short:"f"`
}

// Run executes the reset command
func (s *SitesResetCmd) Run(cli *CLI) error {
	if !s.Force {
		fmt.Print("This replaces your blocklist with the defaults. Continue? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.SiteService.Reset(context.Background()); err != nil {
		return fmt.Errorf("failed to reset blocklist: %w", err)
	}
	fmt.Printf("Blocklist reset to %d default sites\n", len(domain.DefaultBlockedSites))
	return nil
}

// SitesImportCmd adds sites from a YAML profile
type SitesImportCmd struct {
	Path string `arg:"" help:"Profile file to import" type:"path"`
}

// Run executes the import command
func (s *SitesImportCmd) Run(cli *CLI) error {
	imported, err := cli.Container.SiteService.Import(context.Background(), s.Path)
	if err != nil {
		return fmt.Errorf("failed to import profile: %w", err)
	}
	fmt.Printf("Imported %d new domains from %s\n", imported, s.Path)
	return nil
}

// SitesExportCmd writes the blocklist to a YAML profile
type SitesExportCmd struct {
	Name string `help:"Profile name stored in the file" default:"perry"`
	Path string `arg:"" help:"Destination file" type:"path"`
}

// Run executes the export command
func (s *SitesExportCmd) Run(cli *CLI) error {
	count, err := cli.Container.SiteService.Export(context.Background(), s.Path, s.Name)
	if err != nil {
		return fmt.Errorf("failed to export profile: %w", err)
	}
	fmt.Printf("Exported %d sites to %s\n", count, s.Path)
	return nil
}
