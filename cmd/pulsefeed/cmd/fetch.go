package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"sort"
	"syscall"

	"github.com/pulsefeed/pulsefeed/pkg/models"
	"github.com/spf13/cobra"
)

var fetchFormat string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Aggregate all sources and report what came back",
	Long: `Run the full aggregation pass without date filtering or formatting.
Useful for checking which live sources respond and which fall back to
curated sets.

Examples:
  # Per-source summary
  pulsefeed fetch

  # Everything as JSON for scripting
  pulsefeed fetch --format json`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchFormat, "format", "text", "Output format: text or json")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	aggregator, err := buildAggregator(GetConfig())
	if err != nil {
		return err
	}

	result := aggregator.Run(ctx)

	if fetchFormat == "json" {
		output, err := json.MarshalIndent(result.Items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	kinds := make([]string, 0, len(result.PerKind))
	for kind := range result.PerKind {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		fmt.Printf("%-10s %d items\n", kind, result.PerKind[models.Source(kind)])
	}
	fmt.Printf("\nTotal: %d items in %v\n", len(result.Items), result.Duration)

	if len(result.Errors) > 0 {
		fmt.Println()
		for _, e := range result.Errors {
			fmt.Printf("Warning: %v\n", e)
		}
	}

	return nil
}
