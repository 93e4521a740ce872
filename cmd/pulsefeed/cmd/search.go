package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	searchLimit  int
	searchFormat string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search previously indexed items",
	Long: `Search the items indexed by past digest builds. Requires the hosted
query service to be configured.

Examples:
  # Basic search
  pulsefeed search "open weights"

  # Limit results
  pulsefeed search "robotics" --limit 5

  # JSON output for scripting
  pulsefeed search "agents" --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "Maximum number of results")
	searchCmd.Flags().StringVar(&searchFormat, "format", "text", "Output format: text or json")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	query := args[0]

	pipeline, err := buildPipeline(GetConfig())
	if err != nil {
		return err
	}

	items, err := pipeline.Search(ctx, query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	if searchFormat == "json" {
		output, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	stateStore, err := openState(GetConfig())
	if err != nil {
		return fmt.Errorf("failed to open state: %w", err)
	}

	fmt.Printf("Found %d results:\n\n", len(items))
	for i, item := range items {
		fmt.Printf("─── Result %d ───\n", i+1)
		fmt.Printf("Title:   %s\n", item.Title)
		fmt.Printf("Source:  %s\n", item.Source)
		fmt.Printf("Date:    %s\n", item.Date.Format("2006-01-02"))
		fmt.Printf("URL:     %s\n", item.URL)
		if stateStore.IsBookmarked(item.ID) {
			fmt.Printf("ID:      %s (bookmarked)\n", item.ID)
		} else {
			fmt.Printf("ID:      %s\n", item.ID)
		}
		if item.Description != "" {
			fmt.Printf("About:   %s\n", item.Description)
		}
		fmt.Println()
	}

	return nil
}
