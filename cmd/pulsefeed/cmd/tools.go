package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pulsefeed/pulsefeed/internal/static"
	"github.com/pulsefeed/pulsefeed/internal/store"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the AI tool directory",
	Long: `List the tool directory: entries from the hosted query service when
configured, the curated set otherwise.

Example:
  pulsefeed tools`,
	RunE: runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := buildStore(GetConfig())
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}

	tools := store.NewDirectory(client, static.Tools()).List(ctx)
	for _, tool := range tools {
		fmt.Printf("%s\n  %s\n  %s\n\n", tool.Title, tool.Description, tool.URL)
	}

	return nil
}
