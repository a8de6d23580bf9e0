package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
)

// ActivityCmd reports on and maintains the activity log
type ActivityCmd struct {
	Export  ActivityExportCmd  `cmd:"export" help:"Copy the activity log to a CSV file"`
	Prune   ActivityPruneCmd   `cmd:"prune" help:"Delete entries older than a number of days"`
	Summary ActivitySummaryCmd `cmd:"summary" help:"Summarize recent activity" default:"1"`
}

// ActivitySummaryCmd summarizes the activity log
type ActivitySummaryCmd struct {
	Days   int    `help:"Days to include (0 = today)" default:"7"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the summary command
func (a *ActivitySummaryCmd) Run(cli *CLI) error {
	summary, err := cli.Container.ActivityService.Summary(a.Days)
	if err != nil {
		return fmt.Errorf("failed to summarize activity: %w", err)
	}

	if a.Format == "json" {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printSummary(summary)
	return nil
}

func printSummary(summary *domain.ActivitySummary) {
	fmt.Printf("Activity since %s (%s)\n\n",
		summary.Since.Format("2006-01-02"),
		humanize.Time(summary.Since))

	if summary.Total == 0 {
		fmt.Println("No activity yet.")
		return
	}

	fmt.Printf("Sessions started:    %s\n", humanize.Comma(int64(summary.StartedSessions)))
	fmt.Printf("Sessions completed:  %s\n", humanize.Comma(int64(summary.CompletedSessions)))
	fmt.Printf("Sessions cancelled:  %s\n", humanize.Comma(int64(summary.CancelledSessions)))
	fmt.Printf("Focus time:          %s\n", summary.FocusTime.Round(time.Minute))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTIVITY\tCOUNT")
	types := make([]string, 0, len(summary.ByType))
	for t := range summary.ByType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(w, "%s\t%s\n", t, humanize.Comma(int64(summary.ByType[domain.ActivityType(t)])))
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tEVENTS")
	dates := make([]string, 0, len(summary.ByDate))
	for d := range summary.ByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		fmt.Fprintf(w, "%s\t%s\n", d, humanize.Comma(int64(summary.ByDate[d])))
	}
	w.Flush()

	fmt.Printf("\nTotal: %s events\n", humanize.Comma(int64(summary.Total)))
}

// ActivityExportCmd copies the activity log
type ActivityExportCmd struct {
	Path string `arg:"" optional:"" help:"Destination CSV (default: activity_export_<timestamp>.csv)" type:"path"`
}

// Run executes the export command
func (a *ActivityExportCmd) Run(cli *CLI) error {
	dst, err := cli.Container.ActivityService.Export(a.Path)
	if err != nil {
		return fmt.Errorf("failed to export activity log: %w", err)
	}
	fmt.Printf("Activity log exported to %s\n", dst)
	return nil
}

// ActivityPruneCmd deletes old activity entries
type ActivityPruneCmd struct {
	Days int `help:"Keep entries from the last N days" default:"30"`
}

// Run executes the prune command
func (a *ActivityPruneCmd) Run(cli *CLI) error {
	removed, err := cli.Container.ActivityService.Prune(a.Days)
	if err != nil {
		return fmt.Errorf("failed to prune activity log: %w", err)
	}
	fmt.Printf("Removed %s entries older than %d days\n", humanize.Comma(int64(removed)), a.Days)
	return nil
}
